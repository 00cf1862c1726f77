// Package lifecycle provides the scoped-release pattern used by types that
// own an external resource: release happens exactly once, callers can tell
// whether it already happened, and Using guarantees release on every exit
// path.
package lifecycle

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Disposer runs a release function at most once. The zero value is ready to
// use; embed it in the type owning the resource.
type Disposer struct {
	once     sync.Once
	disposed atomic.Bool
	err      error
}

// Dispose runs release the first time it is called and returns its error.
// Later calls do nothing and return the error of the first call.
func (d *Disposer) Dispose(release func() error) error {
	d.once.Do(func() {
		d.disposed.Store(true)
		if release != nil {
			d.err = release()
		}
	})
	return d.err
}

// Disposed reports whether Dispose has been called.
func (d *Disposer) Disposed() bool {
	return d.disposed.Load()
}

// Using calls fn with c and closes c afterwards, whether fn returns normally,
// returns an error or panics. A close error is reported only when fn itself
// succeeded.
func Using[C io.Closer, R any](c C, fn func(C) (R, error)) (res R, err error) {
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "could not close resource")
		}
	}()
	return fn(c)
}
