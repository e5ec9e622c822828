package service

import "time"

// Clock supplies the current instant to temporal booking predicates.
// Injecting it keeps the CURRENT/PAST/FUTURE states and the booking-dates
// aggregation deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
