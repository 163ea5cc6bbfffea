package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Envelope is a named budget bucket with a target amount.
type Envelope struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // Server-assigned ID of the envelope
	Name      string    `json:"name" example:"Groceries"`                          // Name of the envelope, unique among all envelopes
	Budget    Amount    `json:"budget" swaggertype:"number" example:"300.00"`      // Target amount of the envelope
	Expenses  []Expense `json:"expenses,omitempty"`                                // Expenses of the envelope. Empty unless requested with includeExpenses
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`   // Time the envelope was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"`   // Last time the envelope was updated
}

// EnvelopeEditable is the payload to create or update an envelope.
type EnvelopeEditable struct {
	Name   string `json:"name" example:"Groceries" validate:"required,notblank"` // Name of the envelope
	Budget Amount `json:"budget" swaggertype:"number" example:"300.00" validate:"gte=0"`
}

// Editable returns the editable fields of the envelope.
func (e Envelope) Editable() EnvelopeEditable {
	return EnvelopeEditable{
		Name:   e.Name,
		Budget: e.Budget,
	}
}

// Normalize trims the name.
func (e EnvelopeEditable) Normalize() EnvelopeEditable {
	e.Name = strings.TrimSpace(e.Name)
	e.Budget = NewAmount(e.Budget.Decimal)
	return e
}

// Balance is the sum of all deposits minus the sum of all withdrawals
// of the loaded expenses of the envelope.
func (e Envelope) Balance() decimal.Decimal {
	return Balance(e.Expenses)
}

// Available is the budget plus the balance.
func (e Envelope) Available() decimal.Decimal {
	return e.Budget.Decimal.Add(e.Balance())
}

// Balance sums up expenses: deposits increase the balance, withdrawals decrease it.
func Balance(expenses []Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range expenses {
		sum = sum.Add(expense.Signed())
	}

	return sum
}
