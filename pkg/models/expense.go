package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of an expense.
type TransactionType string

const (
	TransactionWithdraw TransactionType = "WITHDRAW" // Reduces the envelope balance
	TransactionDeposit  TransactionType = "DEPOSIT"  // Increases the envelope balance
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionWithdraw || t == TransactionDeposit
}

// Expense is a single withdrawal or deposit against an envelope.
//
// The amount is always positive, the direction is defined only by the
// transaction type.
type Expense struct {
	ID              uuid.UUID       `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`         // Server-assigned ID of the expense
	EnvelopeID      uuid.UUID       `json:"envelopeId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the envelope the expense belongs to
	Amount          Amount          `json:"amount" swaggertype:"number" example:"45.50"`               // Positive amount of the expense
	TransactionType TransactionType `json:"transactionType" enums:"WITHDRAW,DEPOSIT" example:"WITHDRAW"`
	Memo            string          `json:"memo" example:"milk"`                                      // Short note
	Description     string          `json:"description,omitempty" example:"Weekly shopping"`          // Optional free text
	Date            time.Time       `json:"date" example:"2022-04-02T00:00:00Z"`                      // Date of the expense
	CreatedAt       time.Time       `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`          // Time the expense was created
	UpdatedAt       time.Time       `json:"updatedAt" example:"2022-04-02T19:28:44.491514Z"`          // Last time the expense was updated
}

// Signed returns the amount with the sign of its effect on the balance.
func (e Expense) Signed() decimal.Decimal {
	if e.TransactionType == TransactionWithdraw {
		return e.Amount.Decimal.Neg()
	}

	return e.Amount.Decimal
}

// ExpenseEditable is the payload to create an expense.
type ExpenseEditable struct {
	Amount          Amount          `json:"amount" swaggertype:"number" example:"45.50" validate:"gt=0"`
	Memo            string          `json:"memo" example:"milk" validate:"required,notblank"`
	Description     string          `json:"description,omitempty" example:"Weekly shopping"`
	TransactionType TransactionType `json:"transactionType" enums:"WITHDRAW,DEPOSIT" example:"WITHDRAW" validate:"oneof=WITHDRAW DEPOSIT"`
	Date            *time.Time      `json:"date,omitempty" example:"2022-04-02T00:00:00Z"` // Defaults to the time of creation
}

// Normalize trims the text fields and rounds the amount.
func (e ExpenseEditable) Normalize() ExpenseEditable {
	e.Memo = strings.TrimSpace(e.Memo)
	e.Description = strings.TrimSpace(e.Description)
	e.Amount = NewAmount(e.Amount.Decimal)
	return e
}
