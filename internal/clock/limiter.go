package clock

import (
	"context"
	"time"
)

// Limiter caps a loop at a fixed number of iterations per second. Each Wait
// parks until one frame interval has passed since the previous Wait returned.
// A frame that overran is not made up for by shortening the next one.
type Limiter struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

func NewLimiter(fps int) *Limiter {
	if fps <= 0 {
		fps = 1
	}
	return &Limiter{
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
	}
}

func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Wait blocks until the frame deadline or until ctx is done, whichever is
// first. It returns ctx.Err() on cancellation.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := l.now()
	if l.last.IsZero() {
		l.last = now
		return nil
	}

	// time.Time from time.Now carries a monotonic reading, so Sub is immune
	// to wall clock jumps
	remaining := l.interval - now.Sub(l.last)
	if remaining <= 0 {
		l.last = now
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		l.last = l.now()
		return nil
	}
}
