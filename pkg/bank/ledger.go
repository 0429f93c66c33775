package bank

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const modeLockName = "mode"

// Ledger owns balances, the global/per-guild mode, currency naming and balance bounds.
//
// Every call holds modeLock for reading except SetGlobal, which holds it for writing, so no caller
// ever observes a half-finished mode switch. Mutations additionally hold their scope's lock for
// writing (and the distributed Locker, if any); reads hold it for reading.
type Ledger struct {
	store    Store
	locker   Locker
	recorder Recorder
	now      func() time.Time

	modeLock   sync.RWMutex
	scopesLock sync.Mutex
	scopes     map[Scope]*sync.RWMutex
}

type Option func(*Ledger)

func WithLocker(locker Locker) Option {
	return func(ledger *Ledger) {
		ledger.locker = locker
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(ledger *Ledger) {
		ledger.recorder = recorder
	}
}

func WithClock(now func() time.Time) Option {
	return func(ledger *Ledger) {
		ledger.now = now
	}
}

func NewLedger(store Store, opts ...Option) *Ledger {
	ledger := &Ledger{
		store:    store,
		recorder: noopRecorder{},
		now:      time.Now,
		scopes:   make(map[Scope]*sync.RWMutex),
	}
	for _, opt := range opts {
		opt(ledger)
	}
	return ledger
}

func (ledger *Ledger) IsGlobal(ctx context.Context) (bool, error) {
	ledger.modeLock.RLock()
	defer ledger.modeLock.RUnlock()

	return ledger.store.IsGlobal(ctx)
}

// SetGlobal switches the bank mode, deleting every account and config of the mode being left.
// Setting the mode that is already active does nothing.
func (ledger *Ledger) SetGlobal(ctx context.Context, global bool) (err error) {
	defer func() { ledger.recorder.ObserveOperation("set_global", err) }()

	ledger.modeLock.Lock()
	defer ledger.modeLock.Unlock()

	release, err := ledger.distributedLock(ctx, modeLockName)
	if err != nil {
		return err
	}
	defer release()

	current, err := ledger.store.IsGlobal(ctx)
	if err != nil {
		return err
	}
	if current == global {
		return nil
	}
	if err := ledger.store.SwitchMode(ctx, global); err != nil {
		return fmt.Errorf("switching bank mode: %w", err)
	}
	ledger.recorder.ObserveModeSwitch(global)
	log.Printf("[Bank] Mode switched to global=%t; accounts of the previous mode were deleted", global)
	return nil
}

// Resolve maps the guild a command was issued in to the scope that is active for it.
func (ledger *Ledger) Resolve(ctx context.Context, guildID uint64) (Scope, error) {
	global, err := ledger.IsGlobal(ctx)
	if err != nil {
		return Global, err
	}
	if global {
		return Global, nil
	}
	if guildID == 0 {
		return Global, ErrGuildRequired
	}
	return Guild(guildID), nil
}

func (ledger *Ledger) Config(ctx context.Context, scope Scope) (*Config, error) {
	release := ledger.readLock(scope)
	defer release()

	return ledger.config(ctx, scope)
}

func (ledger *Ledger) BankName(ctx context.Context, scope Scope) (string, error) {
	cfg, err := ledger.Config(ctx, scope)
	if err != nil {
		return "", err
	}
	return cfg.BankName, nil
}

func (ledger *Ledger) CurrencyName(ctx context.Context, scope Scope) (string, error) {
	cfg, err := ledger.Config(ctx, scope)
	if err != nil {
		return "", err
	}
	return cfg.CurrencyName, nil
}

func (ledger *Ledger) DefaultBalance(ctx context.Context, scope Scope) (int64, error) {
	cfg, err := ledger.Config(ctx, scope)
	if err != nil {
		return 0, err
	}
	return cfg.DefaultBalance, nil
}

func (ledger *Ledger) GetMaxBalance(ctx context.Context, scope Scope) (int64, error) {
	cfg, err := ledger.Config(ctx, scope)
	if err != nil {
		return 0, err
	}
	return cfg.MaxBalance, nil
}

func (ledger *Ledger) SetBankName(ctx context.Context, name string, scope Scope) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return ledger.updateConfig(ctx, "set_bank_name", scope, func(cfg *Config) error {
		cfg.BankName = name
		return nil
	})
}

func (ledger *Ledger) SetCurrencyName(ctx context.Context, name string, scope Scope) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return ledger.updateConfig(ctx, "set_currency_name", scope, func(cfg *Config) error {
		cfg.CurrencyName = name
		return nil
	})
}

func (ledger *Ledger) SetDefaultBalance(ctx context.Context, amount int64, scope Scope) error {
	return ledger.updateConfig(ctx, "set_default_balance", scope, func(cfg *Config) error {
		if amount < 0 || amount > cfg.MaxBalance {
			return invalidAmount(amount)
		}
		cfg.DefaultBalance = amount
		return nil
	})
}

// SetMaxBalance sets the scope's max balance and clamps every balance above it, in one store
// transaction.
func (ledger *Ledger) SetMaxBalance(ctx context.Context, amount int64, scope Scope) (err error) {
	defer func() { ledger.recorder.ObserveOperation("set_max_balance", err) }()

	if amount <= 0 || amount > MaxBalance {
		return invalidAmount(amount)
	}

	release, err := ledger.configWriteLock(ctx, scope)
	if err != nil {
		return err
	}
	defer release()

	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return err
	}
	cfg.MaxBalance = amount
	cfg.DefaultBalance = clamp(cfg.DefaultBalance, amount)

	clamped, err := ledger.store.UpdateMaxBalance(ctx, scope, cfg)
	if err != nil {
		return fmt.Errorf("updating max balance for %s: %w", scope, err)
	}
	if clamped > 0 {
		ledger.recorder.ObserveClamped(scope, clamped)
		log.Printf("[Bank] Clamped %d account(s) in %s to the new max balance %d", clamped, scope, amount)
	}
	return nil
}

// Account returns the stored account, or ErrAccountNotFound.
func (ledger *Ledger) Account(ctx context.Context, scope Scope, userID uint64) (*Account, error) {
	release := ledger.readLock(scope)
	defer release()

	acc, err := ledger.store.Account(ctx, scope, userID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// Balance returns the user's balance, or the scope's default balance if they have no account yet.
func (ledger *Ledger) Balance(ctx context.Context, scope Scope, userID uint64) (int64, error) {
	release := ledger.readLock(scope)
	defer release()

	acc, err := ledger.store.Account(ctx, scope, userID)
	if err != nil {
		return 0, err
	}
	if acc != nil {
		return acc.Balance, nil
	}
	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return 0, err
	}
	return cfg.DefaultBalance, nil
}

func (ledger *Ledger) CanSpend(ctx context.Context, scope Scope, userID uint64, amount int64) (bool, error) {
	if amount < 0 {
		return false, invalidAmount(amount)
	}
	balance, err := ledger.Balance(ctx, scope, userID)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (ledger *Ledger) Deposit(ctx context.Context, scope Scope, userID uint64, amount int64) (balance int64, err error) {
	defer func() { ledger.recorder.ObserveOperation("deposit", err) }()

	if amount <= 0 {
		return 0, invalidAmount(amount)
	}
	release, err := ledger.activeWriteLock(ctx, scope)
	if err != nil {
		return 0, err
	}
	defer release()

	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return 0, err
	}
	acc, err := ledger.getOrCreateAccount(ctx, scope, userID, cfg)
	if err != nil {
		return 0, err
	}
	// written this way round so the check itself can't overflow
	if acc.Balance > cfg.MaxBalance-amount {
		return acc.Balance, ErrBalanceTooHigh
	}
	acc.Balance += amount
	if err := ledger.store.PutAccounts(ctx, acc); err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (ledger *Ledger) Withdraw(ctx context.Context, scope Scope, userID uint64, amount int64) (balance int64, err error) {
	defer func() { ledger.recorder.ObserveOperation("withdraw", err) }()

	if amount <= 0 {
		return 0, invalidAmount(amount)
	}
	release, err := ledger.activeWriteLock(ctx, scope)
	if err != nil {
		return 0, err
	}
	defer release()

	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return 0, err
	}
	acc, err := ledger.getOrCreateAccount(ctx, scope, userID, cfg)
	if err != nil {
		return 0, err
	}
	if acc.Balance < amount {
		return acc.Balance, ErrInsufficientFunds
	}
	acc.Balance -= amount
	if err := ledger.store.PutAccounts(ctx, acc); err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (ledger *Ledger) SetBalance(ctx context.Context, scope Scope, userID uint64, amount int64) (balance int64, err error) {
	defer func() { ledger.recorder.ObserveOperation("set_balance", err) }()

	release, err := ledger.activeWriteLock(ctx, scope)
	if err != nil {
		return 0, err
	}
	defer release()

	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return 0, err
	}
	if amount < 0 || amount > cfg.MaxBalance {
		return 0, invalidAmount(amount)
	}
	acc, err := ledger.getOrCreateAccount(ctx, scope, userID, cfg)
	if err != nil {
		return 0, err
	}
	acc.Balance = amount
	if err := ledger.store.PutAccounts(ctx, acc); err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (ledger *Ledger) Transfer(ctx context.Context, scope Scope, from, to uint64, amount int64) (t *Transfer, err error) {
	defer func() { ledger.recorder.ObserveOperation("transfer", err) }()

	if amount <= 0 {
		return nil, invalidAmount(amount)
	}
	if from == to {
		return nil, ErrSameAccount
	}
	release, err := ledger.activeWriteLock(ctx, scope)
	if err != nil {
		return nil, err
	}
	defer release()

	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return nil, err
	}
	sender, err := ledger.getOrCreateAccount(ctx, scope, from, cfg)
	if err != nil {
		return nil, err
	}
	recipient, err := ledger.getOrCreateAccount(ctx, scope, to, cfg)
	if err != nil {
		return nil, err
	}
	if sender.Balance < amount {
		return nil, ErrInsufficientFunds
	}
	if recipient.Balance > cfg.MaxBalance-amount {
		return nil, ErrBalanceTooHigh
	}
	sender.Balance -= amount
	recipient.Balance += amount
	if err := ledger.store.PutAccounts(ctx, sender, recipient); err != nil {
		return nil, err
	}
	return &Transfer{
		ID:          uuid.New(),
		Scope:       scope,
		From:        from,
		To:          to,
		Amount:      amount,
		FromBalance: sender.Balance,
		ToBalance:   recipient.Balance,
		Time:        ledger.now(),
	}, nil
}

// Leaderboard returns the n richest accounts of the scope; n <= 0 returns all of them.
func (ledger *Ledger) Leaderboard(ctx context.Context, scope Scope, n int) ([]*Account, error) {
	release := ledger.readLock(scope)
	defer release()

	accounts, err := ledger.store.Accounts(ctx, scope)
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].Balance == accounts[j].Balance {
			return accounts[i].UserID < accounts[j].UserID
		}
		return accounts[i].Balance > accounts[j].Balance
	})
	if n > 0 && n < len(accounts) {
		accounts = accounts[:n]
	}
	return accounts, nil
}

// getOrCreateAccount is the only place accounts come into existence. New accounts are not
// persisted here; the caller writes them along with the balance change that created them.
func (ledger *Ledger) getOrCreateAccount(ctx context.Context, scope Scope, userID uint64, cfg *Config) (*Account, error) {
	acc, err := ledger.store.Account(ctx, scope, userID)
	if err != nil {
		return nil, err
	}
	if acc != nil {
		return acc, nil
	}
	return &Account{
		Scope:     scope,
		UserID:    userID,
		Balance:   clamp(cfg.DefaultBalance, cfg.MaxBalance),
		CreatedAt: ledger.now().Unix(),
	}, nil
}

func (ledger *Ledger) config(ctx context.Context, scope Scope) (*Config, error) {
	cfg, err := ledger.store.Config(ctx, scope)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return MakeDefaultConfig(), nil
	}
	return cfg, nil
}

func (ledger *Ledger) updateConfig(ctx context.Context, op string, scope Scope, update func(*Config) error) (err error) {
	defer func() { ledger.recorder.ObserveOperation(op, err) }()

	release, err := ledger.configWriteLock(ctx, scope)
	if err != nil {
		return err
	}
	defer release()

	cfg, err := ledger.config(ctx, scope)
	if err != nil {
		return err
	}
	if err := update(cfg); err != nil {
		return err
	}
	return ledger.store.PutConfig(ctx, scope, cfg)
}

func (ledger *Ledger) scopeLock(scope Scope) *sync.RWMutex {
	ledger.scopesLock.Lock()
	defer ledger.scopesLock.Unlock()

	l, ok := ledger.scopes[scope]
	if !ok {
		l = &sync.RWMutex{}
		ledger.scopes[scope] = l
	}
	return l
}

func (ledger *Ledger) readLock(scope Scope) func() {
	ledger.modeLock.RLock()
	l := ledger.scopeLock(scope)
	l.RLock()
	return func() {
		l.RUnlock()
		ledger.modeLock.RUnlock()
	}
}

func (ledger *Ledger) writeLock(ctx context.Context, scope Scope) (func(), error) {
	ledger.modeLock.RLock()
	l := ledger.scopeLock(scope)
	l.Lock()

	release, err := ledger.distributedLock(ctx, scope.String())
	if err != nil {
		l.Unlock()
		ledger.modeLock.RUnlock()
		return nil, err
	}
	return func() {
		release()
		l.Unlock()
		ledger.modeLock.RUnlock()
	}, nil
}

// activeWriteLock is writeLock for account mutations, which are only allowed in the scope the
// current mode makes active.
func (ledger *Ledger) activeWriteLock(ctx context.Context, scope Scope) (func(), error) {
	return ledger.checkedWriteLock(ctx, scope, func(global bool) bool {
		return global == scope.IsGlobal()
	})
}

// configWriteLock is writeLock for config writes, see Scope.AcceptsConfig.
func (ledger *Ledger) configWriteLock(ctx context.Context, scope Scope) (func(), error) {
	return ledger.checkedWriteLock(ctx, scope, scope.AcceptsConfig)
}

func (ledger *Ledger) checkedWriteLock(ctx context.Context, scope Scope, allowed func(global bool) bool) (func(), error) {
	release, err := ledger.writeLock(ctx, scope)
	if err != nil {
		return nil, err
	}
	global, err := ledger.store.IsGlobal(ctx)
	if err != nil {
		release()
		return nil, err
	}
	if !allowed(global) {
		release()
		return nil, ErrScopeInactive
	}
	return release, nil
}

func (ledger *Ledger) distributedLock(ctx context.Context, name string) (func(), error) {
	if ledger.locker == nil {
		return func() {}, nil
	}
	release, err := ledger.locker.Lock(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("obtaining bank lock %s: %w", name, err)
	}
	return release, nil
}
