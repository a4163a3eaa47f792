package simulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

func TestTipsFor_CreditCard(t *testing.T) {
	account := models.Account{
		ID: "a", Name: "Visa", Kind: models.AccountCreditCard,
		Outstanding: d(20000), MinPayment: d(1000), InterestRateAnnualPercent: 36,
	}

	tips := TipsFor(account, d(100000))
	require.Len(t, tips, 3, "all three candidates qualify")

	// Candidate 5000: saves (20000-15000)*0.03 = 150/month, new minimum
	// max(500, 15000*0.05) = 750.
	assert.Contains(t, tips[1], "5,000")
	assert.Contains(t, tips[1], "150")
	assert.Contains(t, tips[1], "750")
}

func TestTipsFor_Loan(t *testing.T) {
	account := models.Account{
		ID: "l", Name: "Car loan", Kind: models.AccountLoan,
		Outstanding: d(100000), MinPayment: d(2200), InterestRateAnnualPercent: 12,
	}

	tips := TipsFor(account, d(50000))
	require.Len(t, tips, 3)
	for _, tip := range tips {
		assert.Contains(t, tip, "months sooner")
	}
}

func TestTipsFor_CandidatesFilteredByBankBalance(t *testing.T) {
	account := models.Account{
		ID: "a", Name: "Visa", Kind: models.AccountCreditCard,
		Outstanding: d(20000), MinPayment: d(1000), InterestRateAnnualPercent: 36,
	}

	// Bank balance 8000: only 2000 fits under half the balance.
	tips := TipsFor(account, d(8000))
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "2,000")
}

func TestTipsFor_CandidatesFilteredByOutstanding(t *testing.T) {
	account := models.Account{
		ID: "a", Name: "Visa", Kind: models.AccountCreditCard,
		Outstanding: d(3000), MinPayment: d(300), InterestRateAnnualPercent: 36,
	}

	// 5000 and 10000 exceed the outstanding balance.
	tips := TipsFor(account, d(100000))
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "2,000")
}

func TestTipsFor_FallbackWhenNothingQualifies(t *testing.T) {
	account := models.Account{
		ID: "a", Name: "Visa", Kind: models.AccountCreditCard,
		// 2.4% annual: 2000 extra saves only 4/month, below the threshold.
		Outstanding: d(4000), MinPayment: d(300), InterestRateAnnualPercent: 2.4,
	}

	tips := TipsFor(account, d(100000))
	require.Len(t, tips, 1)
	assert.True(t, strings.Contains(tips[0], "Keep paying at least the minimum"), "got %q", tips[0])
}

func TestTipsFor_CardMinimumPaymentFloor(t *testing.T) {
	account := models.Account{
		ID: "a", Name: "Visa", Kind: models.AccountCreditCard,
		Outstanding: d(7000), MinPayment: d(500), InterestRateAnnualPercent: 36,
	}

	// Candidate 5000 leaves 2000 outstanding; 5% of that is 100, so the
	// 500 floor kicks in.
	tips := TipsFor(account, d(100000))
	require.Len(t, tips, 2)
	assert.Contains(t, tips[1], "500")
}
