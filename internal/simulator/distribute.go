package simulator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// Strategy selects how extra payment money is allocated across debts.
type Strategy string

const (
	// StrategyAvalanche directs extra money to the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball directs extra money to the lowest outstanding balance first.
	StrategySnowball Strategy = "snowball"
	// StrategyEqual splits extra money evenly across included debts.
	StrategyEqual Strategy = "equal"
	// StrategyMinimum pays minimums only.
	StrategyMinimum Strategy = "minimum"
)

// Valid reports whether the strategy is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyAvalanche, StrategySnowball, StrategyEqual, StrategyMinimum:
		return true
	}
	return false
}

// Distribute allocates total across the included scenarios according to the
// strategy. Every included scenario is paid at least its minimum; whatever is
// left over is distributed per strategy. The input slice is not mutated; a
// fresh slice in the original order is returned.
func Distribute(scenarios []models.DebtScenario, total decimal.Decimal, strategy Strategy) ([]models.DebtScenario, error) {
	if !total.IsPositive() {
		return nil, models.Invalid("total", "must be positive")
	}

	out := append([]models.DebtScenario(nil), scenarios...)

	included := make([]*models.DebtScenario, 0, len(out))
	for i := range out {
		if out[i].Include {
			included = append(included, &out[i])
		}
	}
	if len(included) == 0 {
		return nil, models.ErrNoIncludedScenarios
	}

	minRequired := decimal.Zero
	for _, s := range included {
		minRequired = minRequired.Add(s.MinPayment)
	}
	if total.LessThan(minRequired) {
		return nil, &models.InsufficientTotalError{Required: minRequired, Provided: total}
	}

	for _, s := range included {
		s.PaidAmount = s.MinPayment
	}
	extra := total.Sub(minRequired)

	switch strategy {
	case StrategyMinimum:
		// minimums only, nothing extra to place
	case StrategyEqual:
		// Even split, not capped at each debt's headroom. A share can
		// overshoot what a debt actually needs to reach zero.
		share := extra.Div(decimal.NewFromInt(int64(len(included))))
		for _, s := range included {
			s.PaidAmount = s.PaidAmount.Add(share)
		}
	case StrategyAvalanche:
		ordered := append([]*models.DebtScenario(nil), included...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].InterestRateAnnualPercent > ordered[j].InterestRateAnnualPercent
		})
		allocateGreedy(ordered, extra)
	case StrategySnowball:
		ordered := append([]*models.DebtScenario(nil), included...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Outstanding.LessThan(ordered[j].Outstanding)
		})
		allocateGreedy(ordered, extra)
	default:
		return nil, models.Invalid("strategy", "unknown strategy "+string(strategy))
	}

	return out, nil
}

// allocateGreedy walks the ordered scenarios, topping each one up to its
// headroom (outstanding minus minimum payment) until the extra runs out.
// Debts with no headroom are skipped and the remainder carries on.
func allocateGreedy(ordered []*models.DebtScenario, extra decimal.Decimal) {
	for _, s := range ordered {
		if !extra.IsPositive() {
			return
		}
		headroom := s.Outstanding.Sub(s.MinPayment)
		if !headroom.IsPositive() {
			continue
		}
		alloc := decimal.Min(extra, headroom)
		s.PaidAmount = s.PaidAmount.Add(alloc)
		extra = extra.Sub(alloc)
	}
}
