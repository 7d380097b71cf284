// Package flightx coordinates a screen's load/refresh requests: at most one
// outstanding request per fingerprint, newer triggers supersede older ones,
// and rapid re-triggers are throttled away before they reach the network.
//
// Terminal outcomes are published on a single-consumer channel. A superseded
// flight never publishes, even if its response arrives after the winning
// flight started, so stale data can never overwrite newer state and a loading
// indicator driven off the channel releases exactly once per terminal state.
package flightx

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum spacing between accepted triggers.
// One second matches the refresh cadence the app has always shipped with.
const DefaultMinInterval = time.Second

// Fingerprint identifies a logical load operation on a screen, such as
// "shop:all". Triggers for the same fingerprint supersede each other;
// different fingerprints are fully independent.
type Fingerprint string

// Result is the terminal outcome of an accepted, non-superseded trigger.
type Result[T any] struct {
	Fingerprint Fingerprint
	Value       T
	Err         error
}

type flight struct {
	gen    uint64
	cancel context.CancelFunc
}

type config struct {
	minInterval time.Duration
	buffer      int
	log         *slog.Logger
}

// Option configures a Controller.
type Option func(*config)

// WithMinInterval sets the trigger throttle interval. Zero disables
// throttling entirely.
func WithMinInterval(d time.Duration) Option {
	return func(c *config) { c.minInterval = d }
}

// WithResultBuffer sets the capacity of the results channel.
func WithResultBuffer(n int) Option {
	return func(c *config) { c.buffer = n }
}

// WithLogger sets the controller's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) { c.log = log }
}

// Controller runs one screen's requests. The zero value is not usable;
// construct with New.
type Controller[T any] struct {
	limiter *rate.Limiter
	results chan Result[T]
	log     *slog.Logger

	mu      sync.Mutex
	gen     uint64
	flights map[Fingerprint]*flight
}

// New returns a Controller with a 1s trigger throttle unless overridden.
func New[T any](opts ...Option) *Controller[T] {
	cfg := config{
		minInterval: DefaultMinInterval,
		buffer:      16,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Controller[T]{
		results: make(chan Result[T], cfg.buffer),
		log:     cfg.log,
		flights: make(map[Fingerprint]*flight),
	}
	if cfg.minInterval > 0 {
		// Burst of one: the very first trigger is always admitted, then
		// one more per interval.
		c.limiter = rate.NewLimiter(rate.Every(cfg.minInterval), 1)
	}
	return c
}

// Results delivers terminal outcomes. The channel is never closed; it is
// meant to be consumed for the lifetime of the screen that owns the
// controller.
func (c *Controller[T]) Results() <-chan Result[T] {
	return c.results
}

// Trigger requests a run of fetch for the given fingerprint. It reports
// whether the trigger was accepted:
//
//   - a trigger inside the throttle interval is dropped outright, with no
//     state transition and no call to fetch;
//   - an accepted trigger cancels any outstanding flight for the same
//     fingerprint and takes its place.
//
// fetch runs on its own goroutine with a context that is cancelled when a
// newer trigger supersedes it. The outcome reaches Results only if the
// flight is still current when fetch returns.
func (c *Controller[T]) Trigger(ctx context.Context, fp Fingerprint, fetch func(context.Context) (T, error)) bool {
	if c.limiter != nil && !c.limiter.Allow() {
		c.log.Debug("trigger dropped by throttle", "fingerprint", fp)
		return false
	}

	c.mu.Lock()
	if prev, ok := c.flights[fp]; ok {
		prev.cancel()
	}
	c.gen++
	gen := c.gen
	fctx, cancel := context.WithCancel(ctx)
	c.flights[fp] = &flight{gen: gen, cancel: cancel}
	c.mu.Unlock()

	go func() {
		value, err := fetch(fctx)
		cancel()
		c.settle(fp, gen, value, err)
	}()
	return true
}

// InFlight reports whether a flight is outstanding for the fingerprint.
func (c *Controller[T]) InFlight(fp Fingerprint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.flights[fp]
	return ok
}

// settle publishes the outcome if, and only if, the flight is still the
// current one for its fingerprint. A superseded flight finds a newer
// generation (or nothing) in the map and goes silent.
func (c *Controller[T]) settle(fp Fingerprint, gen uint64, value T, err error) {
	c.mu.Lock()
	cur, ok := c.flights[fp]
	if !ok || cur.gen != gen {
		c.mu.Unlock()
		c.log.Debug("ignoring superseded completion", "fingerprint", fp)
		return
	}
	delete(c.flights, fp)
	c.mu.Unlock()

	c.results <- Result[T]{Fingerprint: fp, Value: value, Err: err}
}
