package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

func TestProject_SingleDebt(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	scenarios := []models.DebtScenario{
		{ID: "a", Outstanding: d(12000), MinPayment: d(500), PaidAmount: d(1000), InterestRateAnnualPercent: 24, Include: true},
	}

	p, err := Project(scenarios, now)
	require.NoError(t, err)

	// monthlyRate 0.02, principal 1000 - 240 = 760, months ceil(12000/760) = 16.
	assert.Equal(t, 16, p.PayoffMonths)
	assert.True(t, p.MonthlyPayment.Equal(d(1000)))
	// baseline ceil(12000/500) = 24 months; saved (24-16)*12000*0.02 = 1920.
	assert.True(t, p.InterestSaved.Equal(d(1920)), "got %s", p.InterestSaved)
	assert.Equal(t, now.Add(16*30*24*time.Hour), p.DebtFreeDate)
}

func TestProject_NoPrincipalReduction(t *testing.T) {
	now := time.Now()
	scenarios := []models.DebtScenario{
		// 10000 at 36% accrues 300/month; paying 250 never amortizes.
		{ID: "a", Outstanding: d(10000), MinPayment: d(250), PaidAmount: d(250), InterestRateAnnualPercent: 36, Include: true},
	}

	p, err := Project(scenarios, now)
	require.NoError(t, err)
	assert.Equal(t, 0, p.PayoffMonths)
	assert.True(t, p.InterestSaved.IsZero())
	assert.True(t, p.MonthlyPayment.Equal(d(250)))
	assert.Equal(t, now, p.DebtFreeDate)
}

func TestProject_BlendedRateIsWeightedByOutstanding(t *testing.T) {
	now := time.Now()
	scenarios := []models.DebtScenario{
		{ID: "a", Outstanding: d(10000), MinPayment: d(500), PaidAmount: d(500), InterestRateAnnualPercent: 36, Include: true},
		{ID: "b", Outstanding: d(30000), MinPayment: d(1000), PaidAmount: d(2500), InterestRateAnnualPercent: 12, Include: true},
	}

	p, err := Project(scenarios, now)
	require.NoError(t, err)

	// Blended rate (36*10000 + 12*30000) / 40000 = 18% -> 0.015/month.
	// principal = 3000 - 600 = 2400; months = ceil(40000/2400) = 17.
	assert.Equal(t, 17, p.PayoffMonths)
}

func TestProject_ExcludedScenariosIgnored(t *testing.T) {
	scenarios := []models.DebtScenario{
		{ID: "a", Outstanding: d(12000), MinPayment: d(500), PaidAmount: d(1000), InterestRateAnnualPercent: 24, Include: true},
		{ID: "b", Outstanding: d(99999), MinPayment: d(9999), PaidAmount: d(9999), InterestRateAnnualPercent: 99, Include: false},
	}
	p, err := Project(scenarios, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 16, p.PayoffMonths)
}

func TestProject_NoIncludedScenarios(t *testing.T) {
	_, err := Project([]models.DebtScenario{{ID: "a", Include: false}}, time.Now())
	require.ErrorIs(t, err, models.ErrNoIncludedScenarios)
}

func TestProject_ZeroDebt(t *testing.T) {
	scenarios := []models.DebtScenario{
		{ID: "a", Outstanding: d(0), MinPayment: d(0), PaidAmount: d(100), Include: true},
	}
	p, err := Project(scenarios, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, p.PayoffMonths)
}
