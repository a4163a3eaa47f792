package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoIncludedScenarios is returned when a simulation is asked to run
	// without any included debt scenario.
	ErrNoIncludedScenarios = errors.New("no scenarios included")

	// ErrAccountNotFound is returned when an operation references an unknown account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrExpenseNotFound is returned when an operation references an unknown expense.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInsufficientFunds is returned when a payment exceeds the bank balance.
	ErrInsufficientFunds = errors.New("amount exceeds bank balance")
)

// InsufficientTotalError reports a distribution total below the sum of
// minimum payments of the included scenarios.
type InsufficientTotalError struct {
	Required decimal.Decimal
	Provided decimal.Decimal
}

func (e *InsufficientTotalError) Error() string {
	return fmt.Sprintf("total %s is below the required minimum %s", e.Provided, e.Required)
}

// ValidationError reports invalid user input. It blocks the action and
// leaves state untouched.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// Invalid builds a ValidationError.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}
