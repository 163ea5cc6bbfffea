package models_test

import (
	"testing"
	"time"

	"github.com/budget-ok/budget-ok/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseConstraints() {
	envelope := suite.createEnvelope("Groceries")

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{
			"Negative amount",
			models.Expense{EnvelopeID: envelope.ID, Amount: decimal.RequireFromString("-10"), TransactionType: models.TransactionWithdraw},
			models.ErrExpenseAmountNotPositive,
		},
		{
			"Zero amount",
			models.Expense{EnvelopeID: envelope.ID, Amount: decimal.Zero, TransactionType: models.TransactionWithdraw},
			models.ErrExpenseAmountNotPositive,
		},
		{
			"Invalid transaction type",
			models.Expense{EnvelopeID: envelope.ID, Amount: decimal.RequireFromString("10"), TransactionType: "TRANSFER"},
			models.ErrTransactionTypeInvalid,
		},
		{
			"Envelope does not exist",
			models.Expense{EnvelopeID: uuid.New(), Amount: decimal.RequireFromString("10"), TransactionType: models.TransactionDeposit},
			models.ErrReferenceNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := suite.db.Create(&tt.expense).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseDateUTC() {
	envelope := suite.createEnvelope("Groceries")

	berlin := time.FixedZone("CET", 60*60)
	expense := models.Expense{
		EnvelopeID:      envelope.ID,
		Amount:          decimal.RequireFromString("45.50"),
		TransactionType: models.TransactionWithdraw,
		Memo:            "milk",
		Date:            time.Date(2024, 3, 1, 10, 0, 0, 0, berlin),
	}
	suite.Require().Nil(suite.db.Create(&expense).Error)

	var found models.Expense
	suite.Require().Nil(suite.db.First(&found, expense.ID).Error)

	suite.Assert().Equal(time.UTC, found.Date.Location())
	suite.Assert().True(expense.Date.Equal(found.Date))
	suite.Assert().True(decimal.RequireFromString("-45.5").Equal(found.Signed()))
}
