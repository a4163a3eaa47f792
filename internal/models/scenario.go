package models

import "github.com/shopspring/decimal"

// DebtScenario is a working copy of an Account used by the payment
// distributor. Edits to a scenario never touch the underlying Account;
// the caller applies an accepted plan separately.
type DebtScenario struct {
	ID                        string          `json:"id"`
	Name                      string          `json:"name"`
	Outstanding               decimal.Decimal `json:"outstanding"`
	MinPayment                decimal.Decimal `json:"min_payment"`
	InterestRateAnnualPercent float64         `json:"interest_rate_annual_percent"`
	Kind                      AccountKind     `json:"kind"`
	PaidAmount                decimal.Decimal `json:"paid_amount"`
	Include                   bool            `json:"include"`
}

// ScenarioFromAccount builds an included scenario from an account.
func ScenarioFromAccount(a Account) DebtScenario {
	return DebtScenario{
		ID:                        a.ID,
		Name:                      a.Name,
		Outstanding:               a.Outstanding,
		MinPayment:                a.MinPayment,
		InterestRateAnnualPercent: a.InterestRateAnnualPercent,
		Kind:                      a.Kind,
		PaidAmount:                a.MinPayment,
		Include:                   true,
	}
}
