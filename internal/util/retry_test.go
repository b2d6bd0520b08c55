// ABOUTME: Tests for exponential backoff calculation
// ABOUTME: Validates growth, cap clamping and jitter bounds
package util

import (
	"testing"
	"time"
)

func TestBackoffZeroOrNegativeAttempt(t *testing.T) {
	for _, attempt := range []int{0, -1, -100} {
		if got := Backoff(time.Second, attempt, 30*time.Second); got != 0 {
			t.Errorf("attempt %d: backoff = %v, want 0", attempt, got)
		}
	}
}

func TestBackoffExponentialGrowth(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 1; attempt <= 5; attempt++ {
		// 2^attempt * 100ms, jitter is ±25%.
		expected := base * time.Duration(1<<uint(attempt))
		minExpected := expected * 3 / 4
		maxExpected := expected * 5 / 4

		got := Backoff(base, attempt, 30*time.Second)
		if got < minExpected || got > maxExpected {
			t.Errorf("attempt %d: backoff = %v, want between %v and %v",
				attempt, got, minExpected, maxExpected)
		}
	}
}

func TestBackoffClampsToMax(t *testing.T) {
	// Attempt 10 would be 1024s unclamped; attempt 100 exercises the shift cap.
	maxAllowed := 37500 * time.Millisecond // 30s + 25% jitter
	for _, attempt := range []int{10, 100} {
		got := Backoff(time.Second, attempt, 30*time.Second)
		if got > maxAllowed {
			t.Errorf("attempt %d: backoff = %v, want <= %v", attempt, got, maxAllowed)
		}
		if got < 0 {
			t.Errorf("attempt %d: backoff negative", attempt)
		}
	}
}

func TestBackoffHonorsSmallMax(t *testing.T) {
	// 2s base at attempt 3 is 16s unclamped; a 5s cap binds instead.
	maxAllowed := 6250 * time.Millisecond // 5s + 25% jitter
	for i := 0; i < 20; i++ {
		got := Backoff(2*time.Second, 3, 5*time.Second)
		if got > maxAllowed {
			t.Errorf("sample %d: backoff = %v, want <= %v", i, got, maxAllowed)
		}
	}
}

func TestBackoffJitterVaries(t *testing.T) {
	base := time.Second
	attempt := 2 // 4s unclamped, bounds 3s..5s

	var results []time.Duration
	for i := 0; i < 100; i++ {
		got := Backoff(base, attempt, 30*time.Second)
		if got < 3*time.Second || got > 5*time.Second {
			t.Errorf("sample %d: backoff = %v, want between 3s and 5s", i, got)
		}
		results = append(results, got)
	}

	allSame := true
	for _, r := range results[1:] {
		if r != results[0] {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("jitter produced 100 identical samples")
	}
}
