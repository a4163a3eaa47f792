package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppState is the whole persisted application state: one JSON blob,
// one writer, saved as a single overwrite.
type AppState struct {
	BankBalance   decimal.Decimal   `json:"bank_balance"`
	EmergencyFund decimal.Decimal   `json:"emergency_fund"`
	SavingsGoal   *decimal.Decimal  `json:"savings_goal,omitempty"`
	Accounts      []Account         `json:"accounts"`
	Expenses      []Expense         `json:"expenses"`
	PaymentLogs   []PaymentLogEntry `json:"payment_logs"`
}

// Clone returns a deep copy of the state.
func (s AppState) Clone() AppState {
	c := s
	if s.SavingsGoal != nil {
		goal := *s.SavingsGoal
		c.SavingsGoal = &goal
	}
	c.Accounts = make([]Account, len(s.Accounts))
	for i, a := range s.Accounts {
		c.Accounts[i] = a.Clone()
	}
	c.Expenses = append([]Expense(nil), s.Expenses...)
	c.PaymentLogs = append([]PaymentLogEntry(nil), s.PaymentLogs...)
	return c
}

// Snapshot is a deep copy of ledger-relevant state taken before a mutating
// operation, for the undo/redo stack.
type Snapshot struct {
	BankBalance   decimal.Decimal   `json:"bank_balance"`
	EmergencyFund decimal.Decimal   `json:"emergency_fund"`
	Accounts      []Account         `json:"accounts"`
	Expenses      []Expense         `json:"expenses"`
	PaymentLogs   []PaymentLogEntry `json:"payment_logs"`
	Timestamp     time.Time         `json:"timestamp"`
}
