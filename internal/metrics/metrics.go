package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Process-wide counters reported by /health.
var (
	GatewayFailures Counter
	StorageFailures Counter
	DegradedSlots   Counter
	EmailFailures   Counter
)

// Snapshot returns the current counter values keyed by name.
func Snapshot() map[string]uint64 {
	return map[string]uint64{
		"gateway_failures": GatewayFailures.Load(),
		"storage_failures": StorageFailures.Load(),
		"degraded_slots":   DegradedSlots.Load(),
		"email_failures":   EmailFailures.Load(),
	}
}
