package ledger

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
	"github.com/jayantaf631991/debt-dashboard/internal/recorder"
	"github.com/jayantaf631991/debt-dashboard/internal/simulator"
	"github.com/jayantaf631991/debt-dashboard/internal/storage"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestController(t *testing.T) (*Controller, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	ctrl, err := NewController(context.Background(), "test", store, recorder.NewNoopRecorder(), testLogger())
	require.NoError(t, err)
	require.NoError(t, ctrl.SetBankBalance(context.Background(), d(50000)))
	return ctrl, store
}

func addCard(t *testing.T, ctrl *Controller) *models.Account {
	t.Helper()
	account, err := ctrl.AddAccount(context.Background(), models.Account{
		Name: "Visa", Kind: models.AccountCreditCard,
		Outstanding: d(10000), MinPayment: d(500), InterestRateAnnualPercent: 36,
		DueDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return account
}

func TestRecordPayment(t *testing.T) {
	ctrl, _ := newTestController(t)
	account := addCard(t, ctrl)

	entry, err := ctrl.RecordPayment(context.Background(), account.ID, d(2000), models.PaymentCustom)
	require.NoError(t, err)

	assert.True(t, entry.BalanceBefore.Equal(d(10000)))
	assert.True(t, entry.BalanceAfter.Equal(d(8000)))

	state := ctrl.State()
	assert.True(t, state.Accounts[0].Outstanding.Equal(d(8000)))
	assert.True(t, state.BankBalance.Equal(d(48000)))
	require.Len(t, state.PaymentLogs, 1)
	require.NotNil(t, state.Accounts[0].LastPayment)
	assert.True(t, state.Accounts[0].LastPayment.Amount.Equal(d(2000)))
}

func TestRecordPayment_Validation(t *testing.T) {
	ctrl, _ := newTestController(t)
	account := addCard(t, ctrl)

	_, err := ctrl.RecordPayment(context.Background(), account.ID, d(20000), models.PaymentCustom)
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation, "payment above outstanding is rejected")

	_, err = ctrl.RecordPayment(context.Background(), "nope", d(100), models.PaymentCustom)
	require.ErrorIs(t, err, models.ErrAccountNotFound)

	require.NoError(t, ctrl.SetBankBalance(context.Background(), d(50)))
	_, err = ctrl.RecordPayment(context.Background(), account.ID, d(100), models.PaymentCustom)
	require.ErrorIs(t, err, models.ErrInsufficientFunds)

	// Failed operations leave no trace in the log.
	assert.Empty(t, ctrl.State().PaymentLogs)
}

func TestAddExpense_ChargedToCard(t *testing.T) {
	ctrl, _ := newTestController(t)
	account := addCard(t, ctrl)

	expense, err := ctrl.AddExpense(context.Background(), models.Expense{
		Name: "Groceries", Amount: d(1500), Type: models.ExpenseOneTime,
		PaymentMethod: models.AccountPayment(account.ID),
		Category:      models.CategoryGroceries,
		Date:          time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, expense.IsPaid, "card-charged expenses are paid immediately")
	state := ctrl.State()
	assert.True(t, state.Accounts[0].Outstanding.Equal(d(11500)))
	assert.True(t, state.BankBalance.Equal(d(50000)), "bank balance untouched")
}

func TestAddExpense_BankPendingThenPaid(t *testing.T) {
	ctrl, _ := newTestController(t)

	expense, err := ctrl.AddExpense(context.Background(), models.Expense{
		Name: "Rent", Amount: d(12000), Type: models.ExpenseRecurring,
		PaymentMethod: models.BankPayment(),
		Category:      models.CategoryHousing,
		Date:          time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, expense.IsPaid)

	require.NoError(t, ctrl.PayExpense(context.Background(), expense.ID))
	state := ctrl.State()
	assert.True(t, state.Expenses[0].IsPaid)
	assert.True(t, state.BankBalance.Equal(d(38000)))

	err = ctrl.PayExpense(context.Background(), expense.ID)
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation, "paying twice is rejected")
}

func TestUndoRedo(t *testing.T) {
	ctrl, _ := newTestController(t)
	account := addCard(t, ctrl)

	_, err := ctrl.RecordPayment(context.Background(), account.ID, d(2000), models.PaymentCustom)
	require.NoError(t, err)
	afterPayment := ctrl.State()

	require.True(t, ctrl.Undo(context.Background()))
	undone := ctrl.State()
	assert.True(t, undone.Accounts[0].Outstanding.Equal(d(10000)))
	assert.True(t, undone.BankBalance.Equal(d(50000)))
	assert.Empty(t, undone.PaymentLogs)

	require.True(t, ctrl.Redo(context.Background()))
	redone := ctrl.State()
	assert.True(t, redone.Accounts[0].Outstanding.Equal(afterPayment.Accounts[0].Outstanding))
	assert.True(t, redone.BankBalance.Equal(afterPayment.BankBalance))
	assert.Len(t, redone.PaymentLogs, len(afterPayment.PaymentLogs))
}

func TestUndo_NewActionClearsRedo(t *testing.T) {
	ctrl, _ := newTestController(t)
	account := addCard(t, ctrl)

	_, err := ctrl.RecordPayment(context.Background(), account.ID, d(1000), models.PaymentCustom)
	require.NoError(t, err)
	require.True(t, ctrl.Undo(context.Background()))
	require.True(t, ctrl.CanRedo())

	_, err = ctrl.RecordPayment(context.Background(), account.ID, d(500), models.PaymentCustom)
	require.NoError(t, err)
	assert.False(t, ctrl.CanRedo())
}

func TestUndo_EmptyStackIsNoop(t *testing.T) {
	store := storage.NewMemoryStore()
	ctrl, err := NewController(context.Background(), "empty", store, recorder.NewNoopRecorder(), testLogger())
	require.NoError(t, err)
	assert.False(t, ctrl.Undo(context.Background()))
	assert.False(t, ctrl.Redo(context.Background()))
}

func TestStatePersistedThroughStore(t *testing.T) {
	ctrl, store := newTestController(t)
	addCard(t, ctrl)

	data, err := store.Load(context.Background(), "test")
	require.NoError(t, err)

	var saved models.AppState
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Len(t, saved.Accounts, 1)
	assert.Equal(t, "Visa", saved.Accounts[0].Name)
	assert.True(t, saved.BankBalance.Equal(d(50000)))

	// A fresh controller over the same store sees the saved state.
	reloaded, err := NewController(context.Background(), "test", store, recorder.NewNoopRecorder(), testLogger())
	require.NoError(t, err)
	assert.Len(t, reloaded.State().Accounts, 1)
}

func TestAddCharge(t *testing.T) {
	ctrl, _ := newTestController(t)
	account := addCard(t, ctrl)

	require.NoError(t, ctrl.AddCharge(context.Background(), account.ID, d(2500)))
	assert.True(t, ctrl.State().Accounts[0].Outstanding.Equal(d(12500)))

	loan, err := ctrl.AddAccount(context.Background(), models.Account{
		Name: "Car loan", Kind: models.AccountLoan, Outstanding: d(100000), MinPayment: d(2200),
	})
	require.NoError(t, err)
	err = ctrl.AddCharge(context.Background(), loan.ID, d(100))
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation, "loans cannot take charges")
}

func TestAddCharge_CreditLimit(t *testing.T) {
	ctrl, _ := newTestController(t)
	limit := d(12000)
	account, err := ctrl.AddAccount(context.Background(), models.Account{
		Name: "Visa", Kind: models.AccountCreditCard,
		Outstanding: d(10000), MinPayment: d(500), CreditLimit: &limit,
	})
	require.NoError(t, err)

	err = ctrl.AddCharge(context.Background(), account.ID, d(3000))
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.True(t, ctrl.State().Accounts[0].Outstanding.Equal(d(10000)), "no state change on a blocked charge")
}

func TestApplyPlan(t *testing.T) {
	ctrl, _ := newTestController(t)
	card := addCard(t, ctrl)
	loan, err := ctrl.AddAccount(context.Background(), models.Account{
		Name: "Car loan", Kind: models.AccountLoan,
		Outstanding: d(30000), MinPayment: d(1500), InterestRateAnnualPercent: 12,
	})
	require.NoError(t, err)

	plan, err := simulator.Distribute(ctrl.Scenarios(), d(3000), simulator.StrategyAvalanche)
	require.NoError(t, err)

	entries, err := ctrl.ApplyPlan(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	state := ctrl.State()
	// Card (36%) gets min 500 + extra 1000; loan pays its EMI.
	for _, a := range state.Accounts {
		switch a.ID {
		case card.ID:
			assert.True(t, a.Outstanding.Equal(d(8500)), "card outstanding %s", a.Outstanding)
		case loan.ID:
			assert.True(t, a.Outstanding.Equal(d(28500)))
		}
	}
	assert.True(t, state.BankBalance.Equal(d(47000)))

	// One snapshot covers the whole plan.
	require.True(t, ctrl.Undo(context.Background()))
	reverted := ctrl.State()
	assert.True(t, reverted.BankBalance.Equal(d(50000)))
	assert.Empty(t, reverted.PaymentLogs)
}

func TestApplyPlan_InsufficientFunds(t *testing.T) {
	ctrl, _ := newTestController(t)
	addCard(t, ctrl)
	require.NoError(t, ctrl.SetBankBalance(context.Background(), d(100)))

	plan, err := simulator.Distribute(ctrl.Scenarios(), d(600), simulator.StrategyMinimum)
	require.NoError(t, err)
	_, err = ctrl.ApplyPlan(context.Background(), plan)
	require.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Empty(t, ctrl.State().PaymentLogs, "nothing partially applied")
}
