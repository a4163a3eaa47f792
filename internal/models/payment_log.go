package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentKind classifies how a payment amount was chosen.
type PaymentKind string

const (
	PaymentMinimum PaymentKind = "minimum"
	PaymentFull    PaymentKind = "full"
	PaymentCustom  PaymentKind = "custom"
	PaymentEmi     PaymentKind = "emi"
)

// Valid reports whether the kind is one of the known payment kinds.
func (k PaymentKind) Valid() bool {
	switch k {
	case PaymentMinimum, PaymentFull, PaymentCustom, PaymentEmi:
		return true
	}
	return false
}

// PaymentLogEntry is an immutable, append-only record of a payment that
// reduced an account's outstanding balance and debited the bank balance.
type PaymentLogEntry struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"account_id"`
	AccountName   string          `json:"account_name"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          PaymentKind     `json:"kind"`
	Date          time.Time       `json:"date"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}
