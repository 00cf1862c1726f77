// Package codetimer measures how long a named step takes and renders the
// result as a human readable message, e.g. "import completed in 3 seconds.".
package codetimer

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prysmaticlabs/kit/runtime/lifecycle"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "codetimer")

var magnitudes = []humanize.RelTimeMagnitude{
	{D: time.Millisecond, Format: "0 milliseconds", DivBy: 1},
	{D: 2 * time.Millisecond, Format: "1 millisecond", DivBy: 1},
	{D: time.Second, Format: "%d milliseconds", DivBy: time.Millisecond},
	{D: 2 * time.Second, Format: "1 second", DivBy: 1},
	{D: time.Minute, Format: "%d seconds", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute", DivBy: 1},
	{D: time.Hour, Format: "%d minutes", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour", DivBy: 1},
	{D: humanize.Day, Format: "%d hours", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day", DivBy: 1},
	{D: humanize.Week, Format: "%d days", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week", DivBy: 1},
	{D: math.MaxInt64, Format: "%d weeks", DivBy: humanize.Week},
}

// CodeTimer is a stopwatch for a named step. It starts running on creation
// and is safe for concurrent use.
type CodeTimer struct {
	stepName string
	now      func() time.Time

	mu       sync.Mutex
	start    time.Time
	elapsed  time.Duration
	running  bool
	disposer lifecycle.Disposer
}

// Step starts a timer for stepName.
func Step(stepName string) *CodeTimer {
	return newTimer(stepName, time.Now)
}

func newTimer(stepName string, now func() time.Time) *CodeTimer {
	return &CodeTimer{
		stepName: stepName,
		now:      now,
		start:    now(),
		running:  true,
	}
}

// StepName returns the name of the timed step.
func (c *CodeTimer) StepName() string {
	return c.stepName
}

// Running reports whether the timer has not been stopped yet.
func (c *CodeTimer) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Elapsed returns the time elapsed so far, or the total time once stopped.
func (c *CodeTimer) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsedLocked()
}

func (c *CodeTimer) elapsedLocked() time.Duration {
	if c.running {
		return c.now().Sub(c.start)
	}
	return c.elapsed
}

// ElapsedText returns Elapsed in words, truncated to its largest unit, e.g.
// "2 seconds".
func (c *CodeTimer) ElapsedText() string {
	return humanizeDuration(c.Elapsed())
}

// Message returns "<step> running for <elapsed>." while the timer runs and
// "<step> completed in <elapsed>." once it has been stopped.
func (c *CodeTimer) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messageLocked()
}

func (c *CodeTimer) messageLocked() string {
	text := humanizeDuration(c.elapsedLocked())
	if c.running {
		return fmt.Sprintf("%s running for %s.", c.stepName, text)
	}
	return fmt.Sprintf("%s completed in %s.", c.stepName, text)
}

// String returns Message.
func (c *CodeTimer) String() string {
	return c.Message()
}

// Stop stops the timer if it is running and logs the completion message.
// It returns c so the result can be read in the same expression.
func (c *CodeTimer) Stop() *CodeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return c
	}
	c.elapsed = c.now().Sub(c.start)
	c.running = false
	log.WithFields(logrus.Fields{
		"step":    c.stepName,
		"elapsed": c.elapsed,
	}).Info(c.messageLocked())
	return c
}

// Close stops the timer. It never fails and may be called more than once.
func (c *CodeTimer) Close() error {
	return c.disposer.Dispose(func() error {
		c.Stop()
		return nil
	})
}

func humanizeDuration(d time.Duration) string {
	var zero time.Time
	return humanize.CustomRelTime(zero, zero.Add(d), "", "", magnitudes)
}
