// Package subscription runs periodic product notifications for subscribed users.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/pricewatch-bot/internal/config"
	"github.com/heartmarshall/pricewatch-bot/internal/domain"
	"github.com/heartmarshall/pricewatch-bot/internal/observability/metrics"
)

// ErrSchedulerClosed is returned by Subscribe after Shutdown.
var ErrSchedulerClosed = errors.New("scheduler closed")

type productRefresher interface {
	Refresh(ctx context.Context, code string) (domain.Product, error)
}

type notifier interface {
	Notify(ctx context.Context, userID int64, p domain.Product) error
}

// task is the handle of one running notification loop.
type task struct {
	userID int64
	code   string
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler runs one notification loop per subscribed user. Each loop
// refreshes the product, delivers it, then waits one interval. A loop stops
// at the first tick boundary after its user leaves the Registry.
type Scheduler struct {
	registry    *Registry
	products    productRefresher
	notifier    notifier
	clock       clockwork.Clock
	metrics     *metrics.Metrics
	interval    time.Duration
	tickTimeout time.Duration
	log         *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	tasks  map[int64]*task
	closed bool
}

// NewScheduler creates a Scheduler. m may be nil.
func NewScheduler(
	log *slog.Logger,
	cfg config.SubscriptionConfig,
	registry *Registry,
	products productRefresher,
	n notifier,
	clock clockwork.Clock,
	m *metrics.Metrics,
) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		registry:    registry,
		products:    products,
		notifier:    n,
		clock:       clock,
		metrics:     m,
		interval:    cfg.Interval,
		tickTimeout: cfg.TickTimeout,
		log:         log.With("service", "subscription"),
		ctx:         ctx,
		cancel:      cancel,
		tasks:       make(map[int64]*task),
	}
}

// Subscribe registers userID and starts notifying about code.
// Subscribing again to the same code while its loop runs is a no-op.
// Subscribing to a different code replaces the running loop.
func (s *Scheduler) Subscribe(userID int64, code string) error {
	code, err := domain.NormalizeCode(code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSchedulerClosed
	}

	s.registry.Subscribe(userID)

	if existing, ok := s.tasks[userID]; ok {
		if existing.code == code {
			return nil
		}
		existing.cancel()
		s.log.Info("subscription replaced",
			slog.Int64("user_id", userID),
			slog.String("old_code", existing.code),
			slog.String("code", code),
		)
	}

	ctx, cancel := context.WithCancel(s.ctx)
	t := &task{userID: userID, code: code, cancel: cancel, done: make(chan struct{})}
	s.tasks[userID] = t
	s.metrics.SetActiveSubscriptions(len(s.tasks))

	s.wg.Add(1)
	go s.run(ctx, t)

	return nil
}

// Unsubscribe removes userID from the registry. The running loop, if any,
// stops at its next tick boundary. Reports whether the user was subscribed.
func (s *Scheduler) Unsubscribe(userID int64) bool {
	removed := s.registry.Unsubscribe(userID)
	if removed {
		s.log.Info("unsubscribed", slog.Int64("user_id", userID))
	}
	return removed
}

// ActiveCode returns the code userID's running loop notifies about.
func (s *Scheduler) ActiveCode(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[userID]
	if !ok {
		return "", false
	}
	return t.code, true
}

// ActiveCount returns the number of running loops.
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// Shutdown cancels every loop and waits until all of them have returned
// or ctx is done. Subscribe fails with ErrSchedulerClosed afterwards.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown: %w", ctx.Err())
	}
}

// ---------------------------------------------------------------------------
// Loop
// ---------------------------------------------------------------------------

func (s *Scheduler) run(ctx context.Context, t *task) {
	defer s.wg.Done()
	defer close(t.done)
	defer s.release(t)

	log := s.log.With(slog.Int64("user_id", t.userID), slog.String("code", t.code))
	log.Info("subscription started")

	for {
		if ctx.Err() != nil {
			log.Debug("subscription cancelled")
			return
		}
		if !s.claim(t) {
			log.Info("subscription terminated")
			return
		}

		s.tick(ctx, t, log)

		select {
		case <-ctx.Done():
			log.Debug("subscription cancelled")
			return
		case <-s.clock.After(s.interval):
		}
	}
}

// claim reports whether t should run another tick: its user is still
// subscribed and t has not been replaced. When the user has left, t is
// removed under the same lock so a concurrent Subscribe starts a fresh loop.
func (s *Scheduler) claim(t *task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks[t.userID] != t {
		return false
	}
	if !s.registry.IsSubscribed(t.userID) {
		delete(s.tasks, t.userID)
		s.metrics.SetActiveSubscriptions(len(s.tasks))
		return false
	}
	return true
}

// release drops t from the task table unless it was already replaced.
func (s *Scheduler) release(t *task) {
	t.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks[t.userID] == t {
		delete(s.tasks, t.userID)
		s.metrics.SetActiveSubscriptions(len(s.tasks))
	}
}

// tick refreshes the product and delivers it. Failures are logged and the
// subscription stays active.
func (s *Scheduler) tick(ctx context.Context, t *task, log *slog.Logger) {
	tickCtx, cancel := context.WithTimeout(ctx, s.tickTimeout)
	defer cancel()

	p, err := s.products.Refresh(tickCtx, t.code)
	if err != nil {
		s.metrics.IncTick(metrics.TickLookupFailed)
		log.WarnContext(ctx, "tick lookup failed", slog.String("error", err.Error()))
		return
	}

	// Membership may have changed while the lookup was in flight.
	if ctx.Err() != nil || !s.registry.IsSubscribed(t.userID) {
		s.metrics.IncTick(metrics.TickSkipped)
		return
	}

	if err := s.notifier.Notify(tickCtx, t.userID, p); err != nil {
		s.metrics.IncTick(metrics.TickDeliveryFailed)
		log.WarnContext(ctx, "tick delivery failed", slog.String("error", err.Error()))
		return
	}

	s.metrics.IncTick(metrics.TickDelivered)
	log.DebugContext(ctx, "tick delivered", slog.Int64("price", p.Price))
}
