package ratelimit

import (
	"testing"
	"time"
)

func TestKeyedRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name     string
		rps      float64
		burst    int
		calls    int
		wantPass int
	}{
		{
			name:     "burst allows initial requests",
			rps:      1,
			burst:    3,
			calls:    3,
			wantPass: 3,
		},
		{
			name:     "exceeding burst blocks",
			rps:      1,
			burst:    2,
			calls:    5,
			wantPass: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := New(tt.rps, tt.burst)
			defer rl.Stop()

			passed := 0
			for i := 0; i < tt.calls; i++ {
				if rl.Allow("10.0.0.1") {
					passed++
				}
			}

			if passed != tt.wantPass {
				t.Errorf("Allow() passed %d, want %d", passed, tt.wantPass)
			}
		})
	}
}

func TestKeyedRateLimiter_IndependentKeys(t *testing.T) {
	rl := New(1, 1)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("first key should be exhausted")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("second key should have its own bucket")
	}
}

func TestKeyedRateLimiter_Refill(t *testing.T) {
	rl := New(100, 1)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("initial request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(25 * time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("bucket should have refilled")
	}
}

func TestKeyedRateLimiter_Eviction(t *testing.T) {
	rl := New(1, 1)
	defer rl.Stop()
	rl.maxIdle = 0

	rl.Allow("10.0.0.1")
	rl.evictIdle(time.Now().Add(time.Second))

	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected all entries evicted, %d remain", remaining)
	}
}

func TestKeyedRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := New(1, 1)
	rl.Stop()
	rl.Stop()
}
