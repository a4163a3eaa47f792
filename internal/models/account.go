package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind distinguishes revolving credit from installment loans.
type AccountKind string

const (
	AccountCreditCard AccountKind = "credit_card"
	AccountLoan       AccountKind = "loan"
)

// Valid reports whether the kind is one of the known account kinds.
func (k AccountKind) Valid() bool {
	return k == AccountCreditCard || k == AccountLoan
}

// LastPayment records the most recent payment applied to an account.
type LastPayment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Kind   PaymentKind     `json:"kind"`
}

// Account represents a debt account (credit card or loan).
// Outstanding never goes below zero; payments decrease it, card charges increase it.
type Account struct {
	ID                        string           `json:"id"`
	Name                      string           `json:"name"`
	Kind                      AccountKind      `json:"kind"`
	Outstanding               decimal.Decimal  `json:"outstanding"`
	MinPayment                decimal.Decimal  `json:"min_payment"`
	InterestRateAnnualPercent float64          `json:"interest_rate_annual_percent"`
	DueDate                   time.Time        `json:"due_date"`
	CreditLimit               *decimal.Decimal `json:"credit_limit,omitempty"`
	LastPayment               *LastPayment     `json:"last_payment,omitempty"`
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	c := a
	if a.CreditLimit != nil {
		limit := *a.CreditLimit
		c.CreditLimit = &limit
	}
	if a.LastPayment != nil {
		lp := *a.LastPayment
		c.LastPayment = &lp
	}
	return c
}
