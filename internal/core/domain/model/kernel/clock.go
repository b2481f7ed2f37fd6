package kernel

import "time"

// Clock supplies the current time to command handlers. Domain methods never
// read the wall clock themselves; they receive the instant as an argument.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns a Clock backed by time.Now in UTC, truncated to
// milliseconds so that values survive a JSON round trip unchanged.
func SystemClock() Clock {
	return ClockFunc(func() time.Time {
		return time.Now().UTC().Truncate(time.Millisecond)
	})
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time {
		return t
	})
}
