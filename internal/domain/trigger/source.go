package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/summarize-console/pkg/errors"
)

// Listener is invoked once per fire.
type Listener func(ctx context.Context) error

// FailureSink receives listener failures that nobody else observes.
type FailureSink func(ctx context.Context, inv Invocation, listener string, err error)

// Invocation identifies one fire of the source.
type Invocation struct {
	ID      uuid.UUID `json:"invocationId"`
	Source  string    `json:"source"`
	FiredAt time.Time `json:"firedAt"`
}

type registration struct {
	name string
	fn   Listener
}

// Source is an event source in the manner of a button: every Fire starts
// each registered listener on its own goroutine. Fires are never
// deduplicated or cancelled.
type Source struct {
	name      string
	logger    *slog.Logger
	onFailure FailureSink

	mu        sync.RWMutex
	listeners []registration
	inflight  sync.WaitGroup
	now       func() time.Time
}

// NewSource builds a source whose failures are logged.
func NewSource(name string, logger *slog.Logger) *Source {
	s := &Source{
		name:   name,
		logger: logger.With("component", "trigger.source", "source", name),
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.onFailure = s.logFailure
	return s
}

// OnFailure replaces the default logging sink.
func (s *Source) OnFailure(sink FailureSink) {
	if sink == nil {
		return
	}
	s.mu.Lock()
	s.onFailure = sink
	s.mu.Unlock()
}

// Register attaches a listener. Intended to be called during initialization.
func (s *Source) Register(name string, fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, registration{name: name, fn: fn})
}

// Fire starts all listeners and returns without waiting for them.
// Listeners run detached from ctx cancellation but keep its values.
func (s *Source) Fire(ctx context.Context) Invocation {
	inv := Invocation{ID: uuid.New(), Source: s.name, FiredAt: s.now()}

	s.mu.RLock()
	listeners := append([]registration(nil), s.listeners...)
	sink := s.onFailure
	s.mu.RUnlock()

	if len(listeners) == 0 {
		s.logger.Warn("trigger fired with no listeners", "invocation_id", inv.ID.String())
		return inv
	}

	runCtx := context.WithoutCancel(ctx)
	for _, l := range listeners {
		s.inflight.Add(1)
		go func(l registration) {
			defer s.inflight.Done()
			s.logger.Debug("listener started", "invocation_id", inv.ID.String(), "listener", l.name)
			if err := l.fn(runCtx); err != nil {
				sink(runCtx, inv, l.name, err)
				return
			}
			s.logger.Debug("listener finished", "invocation_id", inv.ID.String(), "listener", l.name)
		}(l)
	}
	return inv
}

// Wait blocks until every in-flight listener returns or ctx is done.
func (s *Source) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Source) logFailure(_ context.Context, inv Invocation, listener string, err error) {
	s.logger.Error("unhandled listener failure",
		"invocation_id", inv.ID.String(),
		"listener", listener,
		"code", apperrors.CodeOf(err),
		"error", err,
	)
}
