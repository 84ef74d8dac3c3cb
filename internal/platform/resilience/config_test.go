package resilience

import (
	"testing"
	"time"
)

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	if got.FailureThreshold != defaultFailureThreshold {
		t.Fatalf("FailureThreshold = %d, want %d", got.FailureThreshold, defaultFailureThreshold)
	}
	if got.OpenTimeout != defaultOpenTimeout {
		t.Fatalf("OpenTimeout = %v, want %v", got.OpenTimeout, defaultOpenTimeout)
	}
	if got.HalfOpenMaxReq != defaultHalfOpenMaxReq {
		t.Fatalf("HalfOpenMaxReq = %d, want %d", got.HalfOpenMaxReq, defaultHalfOpenMaxReq)
	}

	// Explicit settings pass through untouched.
	cfg := CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   1,
	}
	if NormalizeCircuitBreakerConfig(cfg) != cfg {
		t.Fatalf("explicit config was rewritten: %+v", NormalizeCircuitBreakerConfig(cfg))
	}
}
