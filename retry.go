package sdk

import (
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig controls exponential backoff for transient failures. This is
// independent of the 401 refresh path, which always retries exactly once.
type RetryConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	RetryPost   bool
}

func (r RetryConfig) normalized() RetryConfig {
	cfg := r
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 300 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	return cfg
}

func (r RetryConfig) backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	exp := attempt - 2
	base := float64(r.BaseBackoff) * math.Pow(2, float64(exp))
	cap := float64(r.MaxBackoff)
	if base > cap {
		base = cap
	}
	// jitter 0.5x..1.5x
	jitter := 0.5 + rand.Float64()
	d := time.Duration(base * jitter)
	if d > r.MaxBackoff {
		d = r.MaxBackoff
	}
	return d
}

// retryable reports whether a failed attempt may be repeated. Client errors
// (including a 401 that survived the refresh path) are never retried.
func (r RetryConfig) retryable(method string, err error) bool {
	var apiErr APIError
	if errors.As(err, &apiErr) && apiErr.Status < 500 {
		return false
	}
	if method != http.MethodGet && !r.RetryPost {
		return false
	}
	return true
}
