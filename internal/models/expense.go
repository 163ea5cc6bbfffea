package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionWithdraw = "WITHDRAW"
	TransactionDeposit  = "DEPOSIT"
)

// Expense is a withdrawal or deposit against an envelope.
//
// Amount is always positive, the direction is stored in TransactionType.
type Expense struct {
	DefaultModel
	EnvelopeID      uuid.UUID       `gorm:"index;not null"`
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8);check:amount_positive,amount > 0"`
	TransactionType string          `gorm:"check:transaction_type_valid,transaction_type IN ('WITHDRAW', 'DEPOSIT')"`
	Memo            string
	Description     string
	Date            time.Time
}

// AfterFind sets the timezone of all timestamps to UTC.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return e.DefaultModel.AfterFind(tx)
}

// Signed returns the amount with the sign of its effect on the balance.
func (e Expense) Signed() decimal.Decimal {
	if e.TransactionType == TransactionWithdraw {
		return e.Amount.Neg()
	}

	return e.Amount
}
