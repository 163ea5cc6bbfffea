package models_test

import (
	"testing"

	"github.com/budget-ok/budget-ok/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func expense(t models.TransactionType, amount string) models.Expense {
	return models.Expense{
		ID:              uuid.New(),
		Amount:          models.MustAmount(amount),
		TransactionType: t,
		Memo:            "test",
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		balance  string
	}{
		{"No expenses", nil, "0"},
		{"Only deposits", []models.Expense{
			expense(models.TransactionDeposit, "10.00"),
			expense(models.TransactionDeposit, "2.50"),
		}, "12.5"},
		{"Only withdrawals", []models.Expense{
			expense(models.TransactionWithdraw, "10.00"),
			expense(models.TransactionWithdraw, "0.01"),
		}, "-10.01"},
		{"Mixed", []models.Expense{
			expense(models.TransactionDeposit, "300.00"),
			expense(models.TransactionWithdraw, "45.50"),
			expense(models.TransactionDeposit, "5.25"),
			expense(models.TransactionWithdraw, "100"),
		}, "159.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.balance)
			got := models.Balance(tt.expenses)
			assert.True(t, want.Equal(got), "Balance should be %s, but is %s", want, got)
		})
	}
}

// TestBalanceIncrement verifies that a single additional expense changes the balance
// by exactly its amount in the direction of its transaction type.
func TestBalanceIncrement(t *testing.T) {
	base := []models.Expense{
		expense(models.TransactionDeposit, "120.00"),
		expense(models.TransactionWithdraw, "19.99"),
	}
	before := models.Balance(base)

	for _, amount := range []string{"0.01", "45.50", "1000", "33.33"} {
		a := decimal.RequireFromString(amount)

		afterDeposit := models.Balance(append(append([]models.Expense{}, base...), expense(models.TransactionDeposit, amount)))
		assert.True(t, before.Add(a).Equal(afterDeposit), "Deposit of %s", amount)

		afterWithdraw := models.Balance(append(append([]models.Expense{}, base...), expense(models.TransactionWithdraw, amount)))
		assert.True(t, before.Sub(a).Equal(afterWithdraw), "Withdrawal of %s", amount)
	}
}

// TestEnvelopeBalanceWithdraw covers a withdrawal of 45.50 from an envelope with a balance of 300.00.
func TestEnvelopeBalanceWithdraw(t *testing.T) {
	e := models.Envelope{
		Name:     "Groceries",
		Budget:   models.MustAmount("300.00"),
		Expenses: []models.Expense{expense(models.TransactionDeposit, "300.00")},
	}
	assert.Equal(t, "300.00", e.Balance().StringFixed(2))

	e.Expenses = append(e.Expenses, expense(models.TransactionWithdraw, "45.50"))
	assert.Equal(t, "254.50", e.Balance().StringFixed(2))
	assert.Equal(t, "554.50", e.Available().StringFixed(2))
}

func TestExpenseSigned(t *testing.T) {
	assert.Equal(t, "-45.50", expense(models.TransactionWithdraw, "45.50").Signed().StringFixed(2))
	assert.Equal(t, "45.50", expense(models.TransactionDeposit, "45.50").Signed().StringFixed(2))
}

func TestEnvelopeEditable(t *testing.T) {
	e := models.Envelope{ID: uuid.New(), Name: "Rent", Budget: models.MustAmount("900")}
	assert.Equal(t, models.EnvelopeEditable{Name: "Rent", Budget: models.MustAmount("900")}, e.Editable())
}
