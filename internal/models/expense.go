package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType distinguishes recurring expenses from one-offs.
type ExpenseType string

const (
	ExpenseRecurring ExpenseType = "recurring"
	ExpenseOneTime   ExpenseType = "one_time"
)

// Valid reports whether the type is one of the known expense types.
func (t ExpenseType) Valid() bool {
	return t == ExpenseRecurring || t == ExpenseOneTime
}

// ExpenseCategory is the closed set of expense categories.
type ExpenseCategory string

const (
	CategoryHousing       ExpenseCategory = "housing"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryGroceries     ExpenseCategory = "groceries"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryHealthcare    ExpenseCategory = "healthcare"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryEducation     ExpenseCategory = "education"
	CategoryInsurance     ExpenseCategory = "insurance"
	CategorySavings       ExpenseCategory = "savings"
	CategoryOther         ExpenseCategory = "other"
)

// Valid reports whether the category is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryHousing, CategoryUtilities, CategoryGroceries, CategoryTransport,
		CategoryHealthcare, CategoryEntertainment, CategoryEducation,
		CategoryInsurance, CategorySavings, CategoryOther:
		return true
	}
	return false
}

// PaymentMethodKind tags how an expense is paid.
type PaymentMethodKind string

const (
	PayFromBank    PaymentMethodKind = "bank"
	PayFromAccount PaymentMethodKind = "account"
)

// PaymentMethod says where an expense is paid from: the bank balance, or a
// credit-card account referenced by ID. Account-paid expenses are charged to
// the card's outstanding balance and marked paid immediately.
type PaymentMethod struct {
	Kind      PaymentMethodKind `json:"kind"`
	AccountID string            `json:"account_id,omitempty"`
}

// BankPayment returns a method paying from the bank balance.
func BankPayment() PaymentMethod {
	return PaymentMethod{Kind: PayFromBank}
}

// AccountPayment returns a method charging the referenced account.
func AccountPayment(accountID string) PaymentMethod {
	return PaymentMethod{Kind: PayFromAccount, AccountID: accountID}
}

// Expense represents a planned or incurred expense.
type Expense struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Type          ExpenseType     `json:"type"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	IsPaid        bool            `json:"is_paid"`
	Date          time.Time       `json:"date"`
	DueDate       time.Time       `json:"due_date"`
	Category      ExpenseCategory `json:"category"`
}
