package dmclock

import "time"

// Clock supplies monotonically non-decreasing, real-valued time in seconds.
// The core engine never calls time.Now directly so tests can drive the
// window/idle/erase timers deterministically.
type Clock interface {
	Now() float64
}

// realClock is the production Clock backed by the wall clock.
type realClock struct{}

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
