package controllers

import (
	"github.com/budget-ok/budget-ok/internal/models"
	"github.com/budget-ok/budget-ok/internal/uuid"
	dto "github.com/budget-ok/budget-ok/pkg/models"
)

// EnvelopeQueryFilter are the query parameters of the envelope list.
type EnvelopeQueryFilter struct {
	IncludeExpenses bool `form:"includeExpenses"` // Embed the expenses of each envelope
}

// ExpenseQueryFilter are the query parameters of the expense list.
type ExpenseQueryFilter struct {
	EnvelopeID uuid.UUID `form:"envelopeId"` // Only list expenses of this envelope
}

func newEnvelope(e models.Envelope) dto.Envelope {
	return dto.Envelope{
		ID:        e.ID,
		Name:      e.Name,
		Budget:    dto.NewAmount(e.Budget),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EnvelopeWithExpenses is an envelope with its expenses embedded. The
// expenses are always rendered, an envelope without expenses has an
// empty list.
type EnvelopeWithExpenses struct {
	dto.Envelope
	Expenses []dto.Expense `json:"expenses"`
}

func newEnvelopeWithExpenses(e models.Envelope) EnvelopeWithExpenses {
	envelope := EnvelopeWithExpenses{
		Envelope: newEnvelope(e),
		Expenses: make([]dto.Expense, 0, len(e.Expenses)),
	}

	for _, expense := range e.Expenses {
		envelope.Expenses = append(envelope.Expenses, newExpense(expense))
	}

	return envelope
}

func newExpense(e models.Expense) dto.Expense {
	return dto.Expense{
		ID:              e.ID,
		EnvelopeID:      e.EnvelopeID,
		Amount:          dto.NewAmount(e.Amount),
		TransactionType: dto.TransactionType(e.TransactionType),
		Memo:            e.Memo,
		Description:     e.Description,
		Date:            e.Date,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// editable returns the editable fields of an envelope as payload.
func editable(e models.Envelope) dto.EnvelopeEditable {
	return newEnvelope(e).Editable()
}
