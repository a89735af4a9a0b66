package utils

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a minimum interval between successive external calls. The
// market API throttles request bursts, so the analysis loop is deliberately
// sequential and waits on the pacer between searches.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer for the given interval. An interval of zero or
// less disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call slot is available or the context ends.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
