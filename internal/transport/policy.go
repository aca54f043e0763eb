package transport

import "time"

const (
	DefaultTimeout       = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultBaseDelay     = 1000 * time.Millisecond
	DefaultMultiplier    = 2.0
	DefaultMaxConcurrent = 10
)

// Policy bounds a single logical upstream call.
type Policy struct {
	// Timeout applies to each attempt separately.
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// BaseDelay is the wait before the first retry.
	BaseDelay time.Duration

	// Multiplier grows the wait between consecutive retries.
	Multiplier float64

	// MaxConcurrent caps in-flight upstream requests across the process.
	MaxConcurrent int
}

// DefaultPolicy returns the default policy.
func DefaultPolicy() Policy {
	return Policy{
		Timeout:       DefaultTimeout,
		MaxRetries:    DefaultMaxRetries,
		BaseDelay:     DefaultBaseDelay,
		Multiplier:    DefaultMultiplier,
		MaxConcurrent: DefaultMaxConcurrent,
	}
}

// Delay returns the wait before the given retry (1-based):
// BaseDelay * Multiplier^(retry-1).
func (p Policy) Delay(retry int) time.Duration {
	d := float64(p.BaseDelay)
	for i := 1; i < retry; i++ {
		d *= p.Multiplier
	}
	return time.Duration(d)
}

func (p Policy) withDefaults() Policy {
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.Multiplier <= 1 {
		p.Multiplier = DefaultMultiplier
	}
	if p.MaxConcurrent <= 0 {
		p.MaxConcurrent = DefaultMaxConcurrent
	}
	return p
}
