package models

import "errors"

var (
	ErrAmountUnparseable        = errors.New("the amount is not a valid decimal number")
	ErrEnvelopeNameRequired     = errors.New("the envelope name must not be empty")
	ErrEnvelopeBudgetNegative   = errors.New("the envelope budget must not be negative")
	ErrExpenseAmountNotPositive = errors.New("the expense amount must be positive")
	ErrExpenseMemoRequired      = errors.New("the expense memo must not be empty")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be WITHDRAW or DEPOSIT")
)
