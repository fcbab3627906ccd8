package apex

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RateHintHeader carries the currently allowed request rate on 429 responses.
const RateHintHeader = "X-Current-Rate"

// DefaultRetryDelay applies when a 429 has no usable rate hint.
const DefaultRetryDelay = 3 * time.Second

// maxHintSeconds bounds hints to what a time.Duration can hold.
const maxHintSeconds = float64(math.MaxInt64) / float64(time.Second)

type attempt int

const (
	attemptInitial attempt = iota
	attemptRetried
)

// retryDelay reads the rate hint as float seconds, falling back to def.
func retryDelay(h http.Header, def time.Duration) time.Duration {
	if h == nil {
		return def
	}
	raw := strings.TrimSpace(h.Get(RateHintHeader))
	if raw == "" {
		return def
	}
	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 || math.IsNaN(secs) || secs >= maxHintSeconds {
		return def
	}
	return time.Duration(secs * float64(time.Second))
}

// shouldRetry is the single transition out of attemptInitial.
func shouldRetry(err error, allowRetry bool, state attempt) (*Error, bool) {
	if !allowRetry || state != attemptInitial {
		return nil, false
	}
	apiErr, ok := err.(*Error)
	if !ok || apiErr.Kind != KindRateLimited {
		return nil, false
	}
	return apiErr, true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
