package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prysmaticlabs/kit/async"
	"github.com/prysmaticlabs/kit/testing/assert"
)

func TestEveryRuns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	i := int32(0)
	done := async.RunEvery(ctx, 100*time.Millisecond, func() {
		atomic.AddInt32(&i, 1)
	})

	// Sleep for a bit and ensure the value has increased.
	time.Sleep(250 * time.Millisecond)

	if atomic.LoadInt32(&i) == 0 {
		t.Error("Counter failed to increment with ticker")
	}

	cancel()
	<-done

	last := atomic.LoadInt32(&i)

	// Sleep for a bit and ensure the value has not increased.
	time.Sleep(200 * time.Millisecond)

	if atomic.LoadInt32(&i) != last {
		t.Error("Counter incremented after stop")
	}
}

func TestEveryNonPositivePeriod(t *testing.T) {
	called := false
	done := async.RunEvery(context.Background(), 0, func() {
		called = true
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}
	assert.Equal(t, false, called)
}
