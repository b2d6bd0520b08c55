// ABOUTME: Exponential backoff with jitter for retried API calls
// ABOUTME: Delay doubles per attempt and clamps to a caller-supplied ceiling
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff returns the sleep before retry number attempt: base doubled per
// attempt with ±25% jitter, never exceeding max. Attempt 0 is the initial
// call and sleeps nothing.
func Backoff(base time.Duration, attempt int, max time.Duration) time.Duration {
	if attempt <= 0 || base <= 0 {
		return 0
	}
	if attempt > 30 {
		// Keeps the shift below 63 bits.
		attempt = 30
	}
	d := base * time.Duration(1<<uint(attempt))
	if max > 0 && (d > max || d <= 0) {
		d = max
	}
	jitter := time.Duration(rand.Int64N(int64(d)/2)) - d/4
	return d + jitter
}
