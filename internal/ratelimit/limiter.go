package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Default limits per the warframe.market ToS ("max 3 requests/second").
const (
	DefaultLimit  = 3
	DefaultWindow = time.Second
)

// Limiter admits at most limit requests per window. The window reset runs
// as a background goroutine between Start and Stop; the counter itself is
// usable (and tested) without the goroutine via TryAdmit/Reset.
type Limiter struct {
	limit  int
	window time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	count int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Limiter. Non-positive limit or window fall back to the
// defaults.
func New(limit int, window time.Duration, logger *slog.Logger) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Limiter{
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Limit returns the configured per-window request limit.
func (l *Limiter) Limit() int { return l.limit }

// Window returns the configured window duration.
func (l *Limiter) Window() time.Duration { return l.window }

// TryAdmit reports whether a request may be issued in the current window.
// On admission the in-window counter is incremented; a denial has no side
// effect.
func (l *Limiter) TryAdmit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

// Reset zeroes the in-window counter. Called by the background task once
// per window; exported so tests can drive window boundaries directly.
func (l *Limiter) Reset() {
	l.mu.Lock()
	l.count = 0
	l.mu.Unlock()
}

// Start launches the window-reset goroutine. It runs until Stop is called
// or ctx is cancelled, whichever comes first.
func (l *Limiter) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)

	l.wg.Add(1)
	go l.run(ctx)

	l.logger.Debug("rate limiter started",
		"limit", l.limit,
		"window", l.window,
	)
}

// Stop cancels the window-reset goroutine and waits for it to exit.
// Safe to call when Start was never called.
func (l *Limiter) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}

func (l *Limiter) run(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("rate limiter stopped")
			return
		case <-ticker.C:
			l.Reset()
		}
	}
}
