package app

import (
	"context"

	"github.com/budget-ok/budget-ok/pkg/models"
	"github.com/budget-ok/budget-ok/pkg/mutation"
	"github.com/budget-ok/budget-ok/pkg/store"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

const networkError = "Network error, please try again later!"

var (
	createEnvelopeMessages = mutation.Messages{
		Success:    "Envelope created successfully",
		Network:    networkError,
		Validation: "Envelope with this name already exists!",
		Remote:     "Failed to create envelope!",
	}

	// Validation errors surface the message of the server
	updateEnvelopeMessages = mutation.Messages{
		Success: "Envelope updated successfully",
		Network: networkError,
		Remote:  "Failed to update envelope!",
	}

	deleteEnvelopeMessages = mutation.Messages{
		Success: "Envelope deleted successfully",
		Remote:  "Failed to delete envelope",
	}

	createExpenseMessages = mutation.Messages{
		Success: "Expense added successfully",
		Remote:  "Failed to add expense",
	}
)

// CreateEnvelope returns a mutation creating an envelope.
// The envelope list is invalidated on success.
func (a *App) CreateEnvelope(resetters ...func()) *mutation.Mutation[models.EnvelopeEditable, models.Envelope] {
	return mutation.New(a.client.CreateEnvelope, mutation.Config[models.Envelope]{
		OnSuccess: func(models.Envelope) {
			a.store.Invalidate(EnvelopesKey)
		},
		Messages: createEnvelopeMessages,
		Notifier: a.notifier,
		Reset:    resetters,
		Logger:   &a.logger,
	})
}

// UpdateEnvelope returns a mutation updating the envelope with the given id.
// The envelope list is patched with the response.
func (a *App) UpdateEnvelope(id uuid.UUID, resetters ...func()) *mutation.Mutation[models.EnvelopeEditable, models.Envelope] {
	update := func(ctx context.Context, envelope models.EnvelopeEditable) (models.Envelope, error) {
		return a.client.UpdateEnvelope(ctx, id, envelope)
	}

	return mutation.New(update, mutation.Config[models.Envelope]{
		OnSuccess: a.replaceEnvelope,
		Messages:  updateEnvelopeMessages,
		Notifier:  a.notifier,
		Reset:     resetters,
		Logger:    &a.logger,
	})
}

// DeleteEnvelope returns a mutation deleting an envelope by its id.
// The envelope is removed from the envelope list and its expenses are dropped
// from the store.
func (a *App) DeleteEnvelope() *mutation.Mutation[uuid.UUID, uuid.UUID] {
	remove := func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
		if err := a.client.DeleteEnvelope(ctx, id); err != nil {
			return uuid.Nil, err
		}
		return id, nil
	}

	return mutation.New(remove, mutation.Config[uuid.UUID]{
		OnSuccess: a.dropEnvelope,
		Messages:  deleteEnvelopeMessages,
		Notifier:  a.notifier,
		Logger:    &a.logger,
	})
}

// CreateExpense returns a mutation adding an expense to an envelope.
// The expenses of the envelope are invalidated on success, as is the envelope
// list if it embeds expenses.
func (a *App) CreateExpense(envelopeID uuid.UUID, resetters ...func()) *mutation.Mutation[models.ExpenseEditable, models.Expense] {
	create := func(ctx context.Context, expense models.ExpenseEditable) (models.Expense, error) {
		return a.client.CreateExpense(ctx, envelopeID, expense)
	}

	return mutation.New(create, mutation.Config[models.Expense]{
		OnSuccess: func(models.Expense) {
			a.store.Invalidate(ExpensesKey(envelopeID))
			if a.embedExpenses {
				a.store.Invalidate(EnvelopesKey)
			}
		},
		Messages: createExpenseMessages,
		Notifier: a.notifier,
		Reset:    resetters,
		Logger:   &a.logger,
	})
}

// replaceEnvelope replaces an envelope in the envelope list, keeping its
// loaded expenses. If the envelope is not in the list, the list is invalidated.
func (a *App) replaceEnvelope(updated models.Envelope) {
	found := false
	store.PatchAs(a.store, EnvelopesKey, func(envelopes []models.Envelope) []models.Envelope {
		i := slices.IndexFunc(envelopes, func(e models.Envelope) bool {
			return e.ID == updated.ID
		})
		if i < 0 {
			return envelopes
		}

		found = true
		patched := slices.Clone(envelopes)
		updated.Expenses = patched[i].Expenses
		patched[i] = updated
		return patched
	})

	if !found {
		a.store.Invalidate(EnvelopesKey)
	}
}

// dropEnvelope removes an envelope from the envelope list and drops its expenses.
func (a *App) dropEnvelope(id uuid.UUID) {
	store.PatchAs(a.store, EnvelopesKey, func(envelopes []models.Envelope) []models.Envelope {
		return slices.DeleteFunc(slices.Clone(envelopes), func(e models.Envelope) bool {
			return e.ID == id
		})
	})

	a.store.Remove(ExpensesKey(id))
}
