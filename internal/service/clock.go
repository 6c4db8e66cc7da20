package service

import "time"

// Clock is injectable time source. Services stamp entities through it so
// tests can supply fixed timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns Clock backed by system time.
func SystemClock() Clock {
	return systemClock{}
}
