package util

import "time"

var clock = time.Now

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return clock().UTC()
}

// FreezeClock pins NowUTC to t until the returned func is called.
func FreezeClock(t time.Time) (restore func()) {
	prev := clock
	clock = func() time.Time { return t }
	return func() { clock = prev }
}
