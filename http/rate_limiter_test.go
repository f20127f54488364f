package http

import (
	"testing"
	"time"
)

func TestRateLimiter_ExhaustsCapacity(t *testing.T) {

	rl := NewRateLimiter(3, time.Hour, time.Hour)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request beyond capacity should be denied")
	}
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {

	rl := NewRateLimiter(1, time.Hour, time.Hour)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("first client should be exhausted")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("second client should have its own bucket")
	}
}

func TestRateLimiter_RefillsAfterWindow(t *testing.T) {

	rl := NewRateLimiter(1, 10*time.Millisecond, time.Hour)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Error("bucket should refill after the window elapses")
	}
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {

	// A long refill window with a short idle TTL: the exhausted bucket must
	// come back only through cleanup eviction, not refill.
	rl := NewRateLimiter(1, time.Hour, 20*time.Millisecond)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(100 * time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Error("idle bucket should be evicted, giving the client a fresh one")
	}
}
