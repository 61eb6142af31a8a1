package filesystem

import (
	"time"
)

// Observer receives the outcome of every filesystem operation.
// monitoring.Metrics satisfies it.
type Observer interface {
	ObserveOperation(op string, kind string, duration time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveOperation(string, string, time.Duration, error) {}

// FilesystemOps provides common filesystem operation helpers
type FilesystemOps struct {
	Observer Observer
}

// track returns a func that reports the operation's duration and result
func (ops *FilesystemOps) track(op string) func(err error) {
	start := time.Now()
	return func(err error) {
		obs := ops.Observer
		if obs == nil {
			obs = nopObserver{}
		}
		kind := ""
		if k := KindOf(err); k != 0 {
			kind = k.String()
		}
		obs.ObserveOperation(op, kind, time.Since(start), err)
	}
}
