package utils

import "time"

// Clock supplies the current UTC instant. Hold expiry and reservation
// timestamps go through this so tests can pin time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func NewClock() Clock {
	return realClock{}
}
