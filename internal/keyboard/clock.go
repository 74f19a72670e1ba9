package keyboard

import "time"

// Timer is a cancellable pending call.
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Clock abstracts time for the controller so tests can drive the debounce,
// transition, and orientation-settle timers deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RealClock returns the wall-clock implementation used outside tests.
func RealClock() Clock { return realClock{} }
