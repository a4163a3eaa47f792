package simulator

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// Projection estimates when a payment plan clears the included debts and how
// much interest it saves over paying minimums only. It is a blended-rate
// what-if estimate, not an amortization table and not a financial guarantee.
type Projection struct {
	PayoffMonths   int             `json:"payoff_months"`
	InterestSaved  decimal.Decimal `json:"interest_saved"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	DebtFreeDate   time.Time       `json:"debt_free_date"`
}

// Project estimates the payoff horizon for the included scenarios' current
// PaidAmount plan, measured from now.
func Project(scenarios []models.DebtScenario, now time.Time) (*Projection, error) {
	monthlyPayment := decimal.Zero
	totalDebt := decimal.Zero
	totalMin := decimal.Zero
	weightedRate := 0.0
	included := 0
	for _, s := range scenarios {
		if !s.Include {
			continue
		}
		included++
		monthlyPayment = monthlyPayment.Add(s.PaidAmount)
		totalDebt = totalDebt.Add(s.Outstanding)
		totalMin = totalMin.Add(s.MinPayment)
		weightedRate += s.InterestRateAnnualPercent * s.Outstanding.InexactFloat64()
	}
	if included == 0 {
		return nil, models.ErrNoIncludedScenarios
	}

	p := &Projection{
		InterestSaved:  decimal.Zero,
		MonthlyPayment: monthlyPayment,
		DebtFreeDate:   now,
	}

	debt := totalDebt.InexactFloat64()
	if debt <= 0 {
		return p, nil
	}

	avgAnnualRate := weightedRate / debt
	monthlyRate := avgAnnualRate / 100 / 12
	principal := monthlyPayment.InexactFloat64() - debt*monthlyRate
	if principal <= 0 {
		// The plan is not reducing principal at the blended rate.
		return p, nil
	}

	months := int(math.Ceil(debt / principal))
	p.PayoffMonths = months
	p.DebtFreeDate = now.Add(time.Duration(months) * 30 * 24 * time.Hour)

	// Baseline: months to clear the debt paying minimums only, ignoring
	// interest. Rough on purpose.
	if minPay := totalMin.InexactFloat64(); minPay > 0 {
		baseline := int(math.Ceil(debt / minPay))
		if saved := float64(baseline-months) * debt * monthlyRate; saved > 0 {
			p.InterestSaved = decimal.NewFromFloat(saved).Round(2)
		}
	}

	return p, nil
}
