package models

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// fieldErrors maps the struct fields of the payloads to the error returned
// when their validation fails.
var fieldErrors = map[string]error{
	"EnvelopeEditable.Name":           ErrEnvelopeNameRequired,
	"EnvelopeEditable.Budget":         ErrEnvelopeBudgetNegative,
	"ExpenseEditable.Amount":          ErrExpenseAmountNotPositive,
	"ExpenseEditable.Memo":            ErrExpenseMemoRequired,
	"ExpenseEditable.TransactionType": ErrTransactionTypeInvalid,
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Amounts are validated by their numeric value
		validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if a, ok := field.Interface().(Amount); ok {
				return a.InexactFloat64()
			}
			return nil
		}, Amount{})

		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})

	return validate
}

// Validate verifies the envelope payload.
func (e EnvelopeEditable) Validate() error {
	return validateStruct(e.Normalize())
}

// Validate verifies the expense payload.
func (e ExpenseEditable) Validate() error {
	return validateStruct(e.Normalize())
}

func validateStruct(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	// Only the first failing field is reported
	fe := fieldErrs[0]
	if known, ok := fieldErrors[fe.StructNamespace()]; ok {
		return known
	}

	return fmt.Errorf("%s failed on %s validation", fe.StructNamespace(), fe.Tag())
}
