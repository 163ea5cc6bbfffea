package app

import (
	"strings"

	"github.com/budget-ok/budget-ok/pkg/models"
)

// EnvelopeForm is the input state of the envelope form.
type EnvelopeForm struct {
	Name   string
	Budget string
}

// EnvelopeFormFor returns the form to edit an envelope.
func EnvelopeFormFor(e models.Envelope) EnvelopeForm {
	return EnvelopeForm{
		Name:   e.Name,
		Budget: e.Budget.String(),
	}
}

// Request maps the form to the payload. An empty budget is 0.
func (f EnvelopeForm) Request() (models.EnvelopeEditable, error) {
	var budget models.Amount
	if strings.TrimSpace(f.Budget) != "" {
		var err error
		budget, err = models.ParseAmount(strings.TrimSpace(f.Budget))
		if err != nil {
			return models.EnvelopeEditable{}, err
		}
	}

	e := models.EnvelopeEditable{Name: f.Name, Budget: budget}.Normalize()
	return e, e.Validate()
}

// Reset clears the form.
func (f *EnvelopeForm) Reset() {
	*f = EnvelopeForm{}
}

// ExpenseForm is the input state of the expense form.
type ExpenseForm struct {
	Amount          string
	Memo            string
	Description     string
	TransactionType string // Defaults to WITHDRAW
}

// Request maps the form to the payload.
//
// The amount is always sent as a positive number, the direction is
// defined by the transaction type only.
func (f ExpenseForm) Request() (models.ExpenseEditable, error) {
	amount, err := models.ParseAmount(strings.TrimSpace(f.Amount))
	if err != nil {
		return models.ExpenseEditable{}, err
	}

	transactionType := models.TransactionType(strings.ToUpper(strings.TrimSpace(f.TransactionType)))
	if transactionType == "" {
		transactionType = models.TransactionWithdraw
	}

	e := models.ExpenseEditable{
		Amount:          amount.Abs(),
		Memo:            f.Memo,
		Description:     f.Description,
		TransactionType: transactionType,
	}.Normalize()

	return e, e.Validate()
}

// Reset clears the form.
func (f *ExpenseForm) Reset() {
	*f = ExpenseForm{}
}
