// Package ledger owns the application state. All mutations go through the
// Controller: validate, snapshot for undo, mutate, persist, record. One
// writer at a time; persistence is an injected dependency.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jayantaf631991/debt-dashboard/internal/history"
	"github.com/jayantaf631991/debt-dashboard/internal/models"
	"github.com/jayantaf631991/debt-dashboard/internal/recorder"
	"github.com/jayantaf631991/debt-dashboard/internal/storage"
)

// Controller is the single owner of the dashboard state.
type Controller struct {
	mu        sync.Mutex
	state     models.AppState
	history   *history.Stack
	store     storage.Store
	rec       recorder.Recorder
	log       *logrus.Logger
	namespace string
	now       func() time.Time
}

// NewController loads the namespace's saved state from the store and wraps
// it in a controller. An empty or unreadable blob starts a fresh dashboard.
func NewController(ctx context.Context, namespace string, store storage.Store, rec recorder.Recorder, log *logrus.Logger) (*Controller, error) {
	c := &Controller{
		history:   history.NewStack(),
		store:     store,
		rec:       rec,
		log:       log,
		namespace: namespace,
		now:       time.Now,
	}
	data, err := store.Load(ctx, namespace)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if err := json.Unmarshal(data, &c.state); err != nil {
		log.Warnf("saved state for %q is unreadable, starting fresh: %v", namespace, err)
		c.state = models.AppState{}
	}
	return c, nil
}

// State returns a deep copy of the current state.
func (c *Controller) State() models.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// CanUndo reports whether an undo step is available.
func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.CanRedo()
}

// SetBankBalance sets the bank balance.
func (c *Controller) SetBankBalance(ctx context.Context, balance decimal.Decimal) error {
	if balance.IsNegative() {
		return models.Invalid("bank_balance", "must not be negative")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordForUndo()
	c.state.BankBalance = balance
	c.persist(ctx)
	return nil
}

// SetEmergencyFund sets the emergency fund balance.
func (c *Controller) SetEmergencyFund(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return models.Invalid("emergency_fund", "must not be negative")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordForUndo()
	c.state.EmergencyFund = amount
	c.persist(ctx)
	return nil
}

// AddAccount adds a debt account, assigning an ID when none is set.
func (c *Controller) AddAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	if account.Name == "" {
		return nil, models.Invalid("name", "required")
	}
	if !account.Kind.Valid() {
		return nil, models.Invalid("kind", "must be credit_card or loan")
	}
	if account.Outstanding.IsNegative() {
		return nil, models.Invalid("outstanding", "must not be negative")
	}
	if account.MinPayment.IsNegative() {
		return nil, models.Invalid("min_payment", "must not be negative")
	}
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordForUndo()
	c.state.Accounts = append(c.state.Accounts, account)
	c.persist(ctx)
	c.log.Infof("account added: %s (%s)", account.Name, account.Kind)
	return &account, nil
}

// UpdateAccount replaces the stored account with the same ID.
func (c *Controller) UpdateAccount(ctx context.Context, account models.Account) error {
	if !account.Kind.Valid() {
		return models.Invalid("kind", "must be credit_card or loan")
	}
	if account.Outstanding.IsNegative() {
		return models.Invalid("outstanding", "must not be negative")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.findAccount(account.ID)
	if i < 0 {
		return models.ErrAccountNotFound
	}
	c.recordForUndo()
	c.state.Accounts[i] = account
	c.persist(ctx)
	return nil
}

// DeleteAccount removes the account with the given ID.
func (c *Controller) DeleteAccount(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.findAccount(id)
	if i < 0 {
		return models.ErrAccountNotFound
	}
	c.recordForUndo()
	c.state.Accounts = append(c.state.Accounts[:i], c.state.Accounts[i+1:]...)
	c.persist(ctx)
	return nil
}

// RecordPayment applies a payment to an account: the outstanding balance and
// the bank balance both go down, and an immutable log entry is appended.
func (c *Controller) RecordPayment(ctx context.Context, accountID string, amount decimal.Decimal, kind models.PaymentKind) (*models.PaymentLogEntry, error) {
	if !amount.IsPositive() {
		return nil, models.Invalid("amount", "must be positive")
	}
	if !kind.Valid() {
		return nil, models.Invalid("kind", "unknown payment kind")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.findAccount(accountID)
	if i < 0 {
		return nil, models.ErrAccountNotFound
	}
	account := &c.state.Accounts[i]
	if amount.GreaterThan(account.Outstanding) {
		return nil, models.Invalid("amount", "exceeds outstanding balance")
	}
	if amount.GreaterThan(c.state.BankBalance) {
		return nil, models.ErrInsufficientFunds
	}

	c.recordForUndo()
	entry := c.applyPayment(account, amount, kind)
	c.persist(ctx)
	return entry, nil
}

// applyPayment mutates the account, bank balance and payment log. The caller
// holds the lock and has already validated the amount.
func (c *Controller) applyPayment(account *models.Account, amount decimal.Decimal, kind models.PaymentKind) *models.PaymentLogEntry {
	before := account.Outstanding
	account.Outstanding = account.Outstanding.Sub(amount)
	c.state.BankBalance = c.state.BankBalance.Sub(amount)

	entry := models.PaymentLogEntry{
		ID:            uuid.NewString(),
		AccountID:     account.ID,
		AccountName:   account.Name,
		Amount:        amount,
		Kind:          kind,
		Date:          c.now(),
		BalanceBefore: before,
		BalanceAfter:  account.Outstanding,
	}
	account.LastPayment = &models.LastPayment{Amount: amount, Date: entry.Date, Kind: kind}
	c.state.PaymentLogs = append(c.state.PaymentLogs, entry)

	if err := c.rec.RecordPayment(entry); err != nil {
		c.log.Warnf("audit record failed for payment %s: %v", entry.ID, err)
	}
	c.log.Infof("payment recorded: %s %s to %s", kind, amount, account.Name)
	return &entry
}

// AddCharge adds a purchase to a credit card's outstanding balance.
func (c *Controller) AddCharge(ctx context.Context, accountID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return models.Invalid("amount", "must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.findAccount(accountID)
	if i < 0 {
		return models.ErrAccountNotFound
	}
	account := &c.state.Accounts[i]
	if account.Kind != models.AccountCreditCard {
		return models.Invalid("account", "charges can only be added to credit cards")
	}
	if account.CreditLimit != nil && account.Outstanding.Add(amount).GreaterThan(*account.CreditLimit) {
		return models.Invalid("amount", "charge would exceed the credit limit")
	}
	c.recordForUndo()
	account.Outstanding = account.Outstanding.Add(amount)
	c.persist(ctx)
	return nil
}

// AddExpense adds an expense. Card-paid expenses are charged to the card's
// outstanding balance and marked paid immediately; bank-paid expenses stay
// unpaid until PayExpense.
func (c *Controller) AddExpense(ctx context.Context, expense models.Expense) (*models.Expense, error) {
	if expense.Name == "" {
		return nil, models.Invalid("name", "required")
	}
	if !expense.Amount.IsPositive() {
		return nil, models.Invalid("amount", "must be positive")
	}
	if !expense.Type.Valid() {
		return nil, models.Invalid("type", "must be recurring or one_time")
	}
	if !expense.Category.Valid() {
		return nil, models.Invalid("category", "unknown category "+string(expense.Category))
	}
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch expense.PaymentMethod.Kind {
	case models.PayFromBank:
		expense.IsPaid = false
	case models.PayFromAccount:
		i := c.findAccount(expense.PaymentMethod.AccountID)
		if i < 0 {
			return nil, models.ErrAccountNotFound
		}
		if c.state.Accounts[i].Kind != models.AccountCreditCard {
			return nil, models.Invalid("payment_method", "expenses can only be charged to credit cards")
		}
	default:
		return nil, models.Invalid("payment_method", "must be bank or account")
	}

	c.recordForUndo()
	if expense.PaymentMethod.Kind == models.PayFromAccount {
		i := c.findAccount(expense.PaymentMethod.AccountID)
		c.state.Accounts[i].Outstanding = c.state.Accounts[i].Outstanding.Add(expense.Amount)
		expense.IsPaid = true
	}
	c.state.Expenses = append(c.state.Expenses, expense)
	c.persist(ctx)
	return &expense, nil
}

// PayExpense marks a pending bank-paid expense as paid, debiting the bank.
func (c *Controller) PayExpense(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.findExpense(id)
	if i < 0 {
		return models.ErrExpenseNotFound
	}
	expense := &c.state.Expenses[i]
	if expense.IsPaid {
		return models.Invalid("expense", "already paid")
	}
	if expense.Amount.GreaterThan(c.state.BankBalance) {
		return models.ErrInsufficientFunds
	}
	c.recordForUndo()
	c.state.BankBalance = c.state.BankBalance.Sub(expense.Amount)
	expense.IsPaid = true
	c.persist(ctx)
	return nil
}

// DeleteExpense removes the expense with the given ID.
func (c *Controller) DeleteExpense(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.findExpense(id)
	if i < 0 {
		return models.ErrExpenseNotFound
	}
	c.recordForUndo()
	c.state.Expenses = append(c.state.Expenses[:i], c.state.Expenses[i+1:]...)
	c.persist(ctx)
	return nil
}

// Scenarios builds an included simulator scenario per account.
func (c *Controller) Scenarios() []models.DebtScenario {
	c.mu.Lock()
	defer c.mu.Unlock()
	scenarios := make([]models.DebtScenario, 0, len(c.state.Accounts))
	for _, a := range c.state.Accounts {
		scenarios = append(scenarios, models.ScenarioFromAccount(a))
	}
	return scenarios
}

// ApplyPlan turns a distributed payment plan into real payments, one per
// included scenario, under a single undo snapshot. The whole plan must fit
// the bank balance; nothing is applied otherwise.
func (c *Controller) ApplyPlan(ctx context.Context, scenarios []models.DebtScenario) ([]models.PaymentLogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, s := range scenarios {
		if !s.Include || !s.PaidAmount.IsPositive() {
			continue
		}
		if c.findAccount(s.ID) < 0 {
			return nil, models.ErrAccountNotFound
		}
		total = total.Add(s.PaidAmount)
	}
	if total.IsZero() {
		return nil, models.ErrNoIncludedScenarios
	}
	if total.GreaterThan(c.state.BankBalance) {
		return nil, models.ErrInsufficientFunds
	}

	c.recordForUndo()
	entries := make([]models.PaymentLogEntry, 0, len(scenarios))
	for _, s := range scenarios {
		if !s.Include || !s.PaidAmount.IsPositive() {
			continue
		}
		i := c.findAccount(s.ID)
		account := &c.state.Accounts[i]
		amount := decimal.Min(s.PaidAmount, account.Outstanding)
		if !amount.IsPositive() {
			continue
		}
		kind := models.PaymentCustom
		if amount.Equal(account.MinPayment) {
			if account.Kind == models.AccountLoan {
				kind = models.PaymentEmi
			} else {
				kind = models.PaymentMinimum
			}
		}
		entries = append(entries, *c.applyPayment(account, amount, kind))
	}
	c.persist(ctx)
	return entries, nil
}

// ImportAccounts bulk-adds accounts under a single undo snapshot.
func (c *Controller) ImportAccounts(ctx context.Context, accounts []models.Account) error {
	if len(accounts) == 0 {
		return models.Invalid("accounts", "nothing to import")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordForUndo()
	c.state.Accounts = append(c.state.Accounts, accounts...)
	c.persist(ctx)
	c.log.Infof("imported %d accounts", len(accounts))
	return nil
}

// ReplaceState swaps in a full state, e.g. from a restored backup.
func (c *Controller) ReplaceState(ctx context.Context, state models.AppState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordForUndo()
	c.state = state.Clone()
	c.persist(ctx)
	return nil
}

// Undo restores the most recent snapshot. Returns false when there is
// nothing to undo.
func (c *Controller) Undo(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.history.Undo(c.snapshot())
	if snap == nil {
		return false
	}
	c.applySnapshot(*snap)
	c.persist(ctx)
	return true
}

// Redo reapplies the most recently undone snapshot. Returns false when
// there is nothing to redo.
func (c *Controller) Redo(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.history.Redo(c.snapshot())
	if snap == nil {
		return false
	}
	c.applySnapshot(*snap)
	c.persist(ctx)
	return true
}

func (c *Controller) snapshot() models.Snapshot {
	clone := c.state.Clone()
	return models.Snapshot{
		BankBalance:   clone.BankBalance,
		EmergencyFund: clone.EmergencyFund,
		Accounts:      clone.Accounts,
		Expenses:      clone.Expenses,
		PaymentLogs:   clone.PaymentLogs,
		Timestamp:     c.now(),
	}
}

func (c *Controller) recordForUndo() {
	c.history.Record(c.snapshot())
}

func (c *Controller) applySnapshot(snap models.Snapshot) {
	c.state.BankBalance = snap.BankBalance
	c.state.EmergencyFund = snap.EmergencyFund
	c.state.Accounts = snap.Accounts
	c.state.Expenses = snap.Expenses
	c.state.PaymentLogs = snap.PaymentLogs
}

// persist writes the state through the store. A failed save is reported and
// otherwise ignored: the mutation stays in memory, nothing is rolled back.
func (c *Controller) persist(ctx context.Context) {
	data, err := json.Marshal(c.state)
	if err != nil {
		c.log.Errorf("marshal state: %v", err)
		return
	}
	if err := c.store.Save(ctx, c.namespace, data); err != nil {
		c.log.Warnf("save state for %q failed, data remains in memory: %v", c.namespace, err)
	}
}

func (c *Controller) findAccount(id string) int {
	for i := range c.state.Accounts {
		if c.state.Accounts[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) findExpense(id string) int {
	for i := range c.state.Expenses {
		if c.state.Expenses[i].ID == id {
			return i
		}
	}
	return -1
}
