package models

import (
	"github.com/shopspring/decimal"
)

// Envelope is a named budget bucket.
type Envelope struct {
	DefaultModel
	Name     string          `gorm:"uniqueIndex:envelope_name_unique;not null"`
	Budget   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Expenses []Expense       `gorm:"constraint:OnDelete:CASCADE"`
}

// Balance is the sum of deposits minus the sum of withdrawals of the
// loaded expenses.
func (e Envelope) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range e.Expenses {
		sum = sum.Add(expense.Signed())
	}

	return sum
}
