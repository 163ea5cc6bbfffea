package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEnvelopeNameNotUnique    = errors.New("the envelope name must be unique")
	ErrExpenseAmountNotPositive = errors.New("the expense amount must be positive")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be WITHDRAW or DEPOSIT")
	ErrReferenceNotFound        = errors.New("a resource ID you specified does not identify an existing resource")
)
