package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/paulbellamy/ratecounter"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/kit/async"
	"github.com/prysmaticlabs/kit/cmd/flags"
	"github.com/prysmaticlabs/kit/config/params"
	"github.com/prysmaticlabs/kit/crypto/rand"
	"github.com/prysmaticlabs/kit/runtime/lifecycle"
	"github.com/prysmaticlabs/kit/time/codetimer"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// valueFunc draws one value from g and renders it as a line of output.
type valueFunc func(g rand.Generator) (string, error)

type closableGenerator interface {
	rand.Generator
	io.Closer
}

// nopCloser adapts generators that hold no resources.
type nopCloser struct {
	rand.Generator
}

func (nopCloser) Close() error {
	return nil
}

// newGenerator returns the generator for one worker. Seeded workers use
// seed+worker so that a batch is reproducible for a fixed worker count.
func newGenerator(ctx *cli.Context, worker int) closableGenerator {
	switch {
	case ctx.Bool(flags.SecureFlag.Name):
		return rand.NewSecureGenerator()
	case ctx.IsSet(flags.SeedFlag.Name):
		return nopCloser{rand.NewDeterministicGeneratorWithSeed(ctx.Int64(flags.SeedFlag.Name) + int64(worker))}
	default:
		return nopCloser{rand.NewDeterministicGenerator()}
	}
}

// generate draws the configured number of values with fn across the
// configured workers and writes them, in index order, to the app writer.
func generate(ctx *cli.Context, name string, fn valueFunc) error {
	if ctx.Bool(flags.SecureFlag.Name) && ctx.IsSet(flags.SeedFlag.Name) {
		return errors.Errorf("--%s cannot be combined with --%s", flags.SeedFlag.Name, flags.SecureFlag.Name)
	}
	conf := params.ActiveRandConfig()
	count, workers := conf.Count, conf.Workers
	if workers > count {
		workers = count
	}
	log.WithFields(logrus.Fields{
		"command": name,
		"count":   count,
		"workers": workers,
		"secure":  ctx.Bool(flags.SecureFlag.Name),
	}).Debug("Generating values")

	timer := codetimer.Step(fmt.Sprintf("Generating %d %s values", count, name))
	results, err := lifecycle.Using(timer, func(timer *codetimer.CodeTimer) ([]string, error) {
		return generateAll(ctx.Context, ctx, timer, count, workers, conf, fn)
	})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(ctx.App.Writer)
	for _, v := range results {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return errors.Wrap(err, "could not write value")
		}
	}
	return w.Flush()
}

func generateAll(
	parent context.Context,
	cliCtx *cli.Context,
	timer *codetimer.CodeTimer,
	count, workers int,
	conf *params.RandConfig,
	fn valueFunc,
) ([]string, error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	results := make([]string, count)
	var generated atomic.Int64
	rate := ratecounter.NewRateCounter(time.Second)
	progressDone := async.RunEvery(ctx, conf.ProgressInterval, func() {
		log.WithFields(logrus.Fields{
			"generated": generated.Load(),
			"total":     count,
			"perSecond": rate.Rate(),
		}).Info(timer.Message())
	})
	var bar *progressbar.ProgressBar
	if cliCtx.Bool(flags.ProgressBarFlag.Name) {
		bar = initializeProgressBar(cliCtx, count, timer.StepName())
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			_, err := lifecycle.Using(newGenerator(cliCtx, worker), func(gen closableGenerator) (struct{}, error) {
				for i := worker; i < count; i += workers {
					if err := ctx.Err(); err != nil {
						return struct{}{}, err
					}
					v, err := fn(gen)
					if err != nil {
						return struct{}{}, err
					}
					results[i] = v
					generated.Add(1)
					rate.Incr(1)
					if bar != nil {
						_ = bar.Add(1)
					}
				}
				return struct{}{}, nil
			})
			return err
		})
	}
	err := g.Wait()
	cancel()
	<-progressDone
	if err != nil {
		return nil, err
	}
	return results, nil
}

func initializeProgressBar(ctx *cli.Context, numItems int, msg string) *progressbar.ProgressBar {
	w := ctx.App.ErrWriter
	if w == os.Stderr {
		w = ansi.NewAnsiStderr()
	}
	return progressbar.NewOptions(
		numItems,
		progressbar.OptionFullWidth(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(w) }),
		progressbar.OptionSetDescription(msg),
	)
}
