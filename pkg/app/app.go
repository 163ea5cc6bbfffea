// Package app binds the API client, the store and mutations together.
//
// It defines the query keys, the fetchers registered for them and the store
// policy every mutation applies on success.
package app

import (
	"context"

	"github.com/budget-ok/budget-ok/pkg/models"
	"github.com/budget-ok/budget-ok/pkg/mutation"
	"github.com/budget-ok/budget-ok/pkg/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvelopesKey is the key of the envelope list.
var EnvelopesKey = store.NewKey("envelopes")

// ExpensesKey is the key of the expense list of an envelope.
func ExpensesKey(envelopeID uuid.UUID) store.Key {
	return store.NewKey("expenses", envelopeID.String())
}

// Client is the API used by the app. It is implemented by *api.Client.
type Client interface {
	ListEnvelopes(ctx context.Context, includeExpenses bool) ([]models.Envelope, error)
	CreateEnvelope(ctx context.Context, envelope models.EnvelopeEditable) (models.Envelope, error)
	UpdateEnvelope(ctx context.Context, id uuid.UUID, envelope models.EnvelopeEditable) (models.Envelope, error)
	DeleteEnvelope(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, envelopeID uuid.UUID) ([]models.Expense, error)
	CreateExpense(ctx context.Context, envelopeID uuid.UUID, expense models.ExpenseEditable) (models.Expense, error)
}

type App struct {
	client   Client
	store    *store.Store
	notifier mutation.Notifier
	logger   zerolog.Logger

	// embedExpenses lists envelopes with their expenses
	embedExpenses bool
}

// Option configures an App.
type Option func(*App)

// WithEmbeddedExpenses lists envelopes with their expenses embedded.
func WithEmbeddedExpenses(embed bool) Option {
	return func(a *App) {
		a.embedExpenses = embed
	}
}

// WithLogger sets the logger. It defaults to the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// New creates the app. If s is nil, a new store is created. If notifier is nil,
// notifications are logged.
func New(client Client, s *store.Store, notifier mutation.Notifier, opts ...Option) *App {
	a := &App{
		client:   client,
		store:    s,
		notifier: notifier,
		logger:   log.Logger,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.store == nil {
		a.store = store.New(store.WithLogger(a.logger))
	}

	if a.notifier == nil {
		a.notifier = mutation.LogNotifier{Logger: a.logger}
	}

	return a
}

// Store returns the store of the app.
func (a *App) Store() *store.Store {
	return a.store
}

// Close tears down the store.
func (a *App) Close() {
	a.store.Close()
}

func (a *App) listEnvelopes(ctx context.Context) ([]models.Envelope, error) {
	return a.client.ListEnvelopes(ctx, a.embedExpenses)
}

func (a *App) listExpenses(envelopeID uuid.UUID) func(context.Context) ([]models.Expense, error) {
	return func(ctx context.Context) ([]models.Expense, error) {
		return a.client.ListExpenses(ctx, envelopeID)
	}
}

// Envelopes returns the cached envelopes and starts fetching them if needed.
func (a *App) Envelopes() ([]models.Envelope, store.State) {
	return store.QueryAs(a.store, EnvelopesKey, a.listEnvelopes)
}

// FetchEnvelopes returns the envelopes, waiting for a fetch if needed.
func (a *App) FetchEnvelopes(ctx context.Context) ([]models.Envelope, error) {
	return store.FetchAs(ctx, a.store, EnvelopesKey, a.listEnvelopes)
}

// SubscribeEnvelopes calls fn on every change of the envelope list.
func (a *App) SubscribeEnvelopes(fn func(store.State)) (unsubscribe func()) {
	return a.store.Subscribe(EnvelopesKey, fn)
}

// Expenses returns the cached expenses of an envelope and starts fetching them if needed.
func (a *App) Expenses(envelopeID uuid.UUID) ([]models.Expense, store.State) {
	return store.QueryAs(a.store, ExpensesKey(envelopeID), a.listExpenses(envelopeID))
}

// FetchExpenses returns the expenses of an envelope, waiting for a fetch if needed.
func (a *App) FetchExpenses(ctx context.Context, envelopeID uuid.UUID) ([]models.Expense, error) {
	return store.FetchAs(ctx, a.store, ExpensesKey(envelopeID), a.listExpenses(envelopeID))
}

// SubscribeExpenses calls fn on every change of the expense list of an envelope.
func (a *App) SubscribeExpenses(envelopeID uuid.UUID, fn func(store.State)) (unsubscribe func()) {
	return a.store.Subscribe(ExpensesKey(envelopeID), fn)
}
