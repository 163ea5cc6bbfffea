// Package mutation orchestrates calls that change data on the server.
//
// A Mutation is used exactly once: it goes from idle to pending when it is
// run and settles as success or failure. On success, the store policy is
// applied before the user is notified. On failure, the error is classified
// and a message for its class is surfaced. The store is never touched.
package mutation

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrAlreadyUsed = errors.New("the mutation has already been run")

// Status is the state of a mutation.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	}

	return "unknown"
}

// Settled reports whether s is a terminal status.
func (s Status) Settled() bool {
	return s == StatusSuccess || s == StatusFailure
}

// Config configures the side effects of a mutation.
type Config[Out any] struct {
	// OnSuccess applies the store policy with the response of the server.
	OnSuccess func(Out)

	// Messages are the notifications surfaced on settlement.
	Messages Messages

	// Notifier surfaces the messages. Defaults to a LogNotifier on the global logger.
	Notifier Notifier

	// Reset is called after a success, e.g. to clear a form.
	Reset []func()

	Logger *zerolog.Logger
}

// Mutation is a single-use remote operation.
type Mutation[In, Out any] struct {
	fn  func(context.Context, In) (Out, error)
	cfg Config[Out]

	mu     sync.Mutex
	status Status
	result Out
	err    error
	done   chan struct{}
}

// New creates an idle mutation calling fn.
func New[In, Out any](fn func(context.Context, In) (Out, error), cfg Config[Out]) *Mutation[In, Out] {
	if cfg.Notifier == nil {
		cfg.Notifier = LogNotifier{Logger: log.Logger}
	}

	if cfg.Logger == nil {
		cfg.Logger = &log.Logger
	}

	return &Mutation[In, Out]{
		fn:   fn,
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

// Run executes the mutation and blocks until it is settled.
//
// The error of the remote call is returned after it has been surfaced to
// the notifier. Running a mutation a second time returns ErrAlreadyUsed.
func (m *Mutation[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	m.mu.Lock()
	if m.status != StatusIdle {
		m.mu.Unlock()

		var zero Out
		return zero, ErrAlreadyUsed
	}
	m.status = StatusPending
	m.mu.Unlock()

	out, err := m.fn(ctx, in)
	if err != nil {
		m.fail(err)
		return out, err
	}

	if m.cfg.OnSuccess != nil {
		m.cfg.OnSuccess(out)
	}

	m.settle(StatusSuccess, out, nil)
	if m.cfg.Messages.Success != "" {
		m.cfg.Notifier.Success(m.cfg.Messages.Success)
	}

	for _, reset := range m.cfg.Reset {
		reset()
	}

	close(m.done)
	return out, nil
}

// Start runs the mutation in a goroutine. Use Done to wait for it.
func (m *Mutation[In, Out]) Start(ctx context.Context, in In) {
	go func() {
		_, _ = m.Run(ctx, in)
	}()
}

func (m *Mutation[In, Out]) fail(err error) {
	kind := Classify(err)
	m.cfg.Logger.Debug().Err(err).Str("kind", kind.String()).Msg("mutation failed")

	var zero Out
	m.settle(StatusFailure, zero, err)
	m.cfg.Notifier.Error(m.cfg.Messages.For(kind, err))

	close(m.done)
}

func (m *Mutation[In, Out]) settle(status Status, out Out, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = status
	m.result = out
	m.err = err
}

// Status returns the current status.
func (m *Mutation[In, Out]) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

// IsPending reports whether the remote call is in flight.
func (m *Mutation[In, Out]) IsPending() bool {
	return m.Status() == StatusPending
}

// Result returns the response and error of a settled mutation.
func (m *Mutation[In, Out]) Result() (Out, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.result, m.err
}

// Done is closed once the mutation is settled and all side effects ran.
func (m *Mutation[In, Out]) Done() <-chan struct{} {
	return m.done
}
