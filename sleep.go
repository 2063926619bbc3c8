package main

import (
	"math"
	"time"
)

const maxSeconds = int64(math.MaxInt64 / int64(time.Second))

// secondsToDuration converts n seconds to a time.Duration, saturating at the
// largest representable duration instead of overflowing.
func secondsToDuration(n int) time.Duration {
	if int64(n) > maxSeconds {
		return time.Duration(math.MaxInt64)
	}
	if int64(n) < -maxSeconds {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(n) * time.Second
}
