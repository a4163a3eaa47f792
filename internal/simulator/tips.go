package simulator

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// Candidate extra payments suggested against an account, in currency units.
var tipCandidates = []float64{2000, 5000, 10000}

// A tip is only worth surfacing when it saves at least this much monthly interest.
const minInterestSaved = 10

// TipsFor suggests extra payments against the account that the bank balance
// can absorb. A candidate is skipped when it exceeds half the bank balance or
// the account's outstanding. Pure function of account and bank balance.
func TipsFor(account models.Account, bankBalance decimal.Decimal) []string {
	outstanding := account.Outstanding.InexactFloat64()
	bank := bankBalance.InexactFloat64()
	monthlyRate := account.InterestRateAnnualPercent / 100 / 12

	var tips []string
	for _, extra := range tipCandidates {
		if extra > bank/2 || extra > outstanding {
			continue
		}
		newOutstanding := math.Max(0, outstanding-extra)
		interestSaved := (outstanding - newOutstanding) * monthlyRate
		if interestSaved < minInterestSaved {
			continue
		}

		switch account.Kind {
		case models.AccountCreditCard:
			newMin := math.Max(500, newOutstanding*0.05)
			tips = append(tips, fmt.Sprintf(
				"Pay ₹%s extra on %s to save ₹%s/month in interest; new minimum payment ₹%s",
				humanize.Commaf(extra), account.Name,
				humanize.Commaf(round2(interestSaved)), humanize.Commaf(round2(newMin))))
		case models.AccountLoan:
			monthsSaved := loanMonths(outstanding, monthlyRate, account.MinPayment.InexactFloat64()) -
				loanMonths(newOutstanding, monthlyRate, account.MinPayment.InexactFloat64())
			tips = append(tips, fmt.Sprintf(
				"Pay ₹%s extra on %s to save ₹%s/month in interest and finish about %.0f months sooner",
				humanize.Commaf(extra), account.Name,
				humanize.Commaf(round2(interestSaved)), math.Max(0, monthsSaved)))
		}
	}

	if len(tips) == 0 {
		tips = append(tips, fmt.Sprintf(
			"Keep paying at least the minimum on %s and revisit once your bank balance grows", account.Name))
	}
	return tips
}

// loanMonths estimates the months left on a loan at the given balance,
// monthly rate and fixed payment. The payment is assumed to stay at the
// current EMI even after an extra principal payment, which understates the
// actual acceleration; kept as a known approximation.
func loanMonths(balance, monthlyRate, payment float64) float64 {
	if balance <= 0 || payment <= 0 {
		return 0
	}
	if monthlyRate <= 0 {
		return balance / payment
	}
	return math.Log(1+balance*monthlyRate/payment) / math.Log(1+monthlyRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
