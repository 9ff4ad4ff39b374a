package exam

import "testing"

func TestCountdownTick(t *testing.T) {
	c := NewCountdown(3, nil)

	if got := c.Remaining(); got != 3 {
		t.Fatalf("initial remaining = %d, want 3", got)
	}
	if got := c.Tick(); got != 2 {
		t.Errorf("after first tick remaining = %d, want 2", got)
	}
	if got := c.Remaining(); got != 2 {
		t.Errorf("Remaining = %d, want 2", got)
	}
}

func TestCountdownExpiresExactlyOnce(t *testing.T) {
	fired := 0
	c := NewCountdown(2, func() { fired++ })

	c.Tick()
	c.Tick()
	// 归零后继续走表不得再次触发
	c.Tick()
	c.Tick()

	if fired != 1 {
		t.Errorf("expiry fired %d times, want exactly 1", fired)
	}
	if got := c.Remaining(); got != 0 {
		t.Errorf("remaining = %d, want 0", got)
	}
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	fired := 0
	c := NewCountdown(5, func() { fired++ })
	c.Stop()
	c.Stop()

	if fired != 0 {
		t.Errorf("stop must not trigger expiry, fired %d times", fired)
	}
}

func TestCountdownPercentRemaining(t *testing.T) {
	c := NewCountdown(200, nil)
	c.Tick()
	c.Tick()

	if got := c.PercentRemaining(); got != 99.0 {
		t.Errorf("percent remaining = %v, want 99.0", got)
	}

	zero := NewCountdown(0, nil)
	if got := zero.PercentRemaining(); got != 0 {
		t.Errorf("percent remaining of zero-length countdown = %v, want 0", got)
	}
}
