package bank

import "context"

// Store persists the mode flag, configs and accounts. Every method that writes more than one
// record must do so atomically.
type Store interface {
	IsGlobal(ctx context.Context) (bool, error)
	// SwitchMode deletes every account and config belonging to the mode being left and writes the
	// new flag in a single transaction.
	SwitchMode(ctx context.Context, global bool) error

	// Config returns nil when the scope has never been configured.
	Config(ctx context.Context, scope Scope) (*Config, error)
	PutConfig(ctx context.Context, scope Scope, cfg *Config) error
	// UpdateMaxBalance writes cfg and clamps every balance above cfg.MaxBalance in the same
	// transaction, returning the number of clamped accounts.
	UpdateMaxBalance(ctx context.Context, scope Scope, cfg *Config) (int64, error)

	// Account returns nil when the account does not exist.
	Account(ctx context.Context, scope Scope, userID uint64) (*Account, error)
	Accounts(ctx context.Context, scope Scope) ([]*Account, error)
	// PutAccounts upserts all accounts atomically, failing with ErrScopeInactive if any account's
	// scope does not match the stored mode at commit time.
	PutAccounts(ctx context.Context, accounts ...*Account) error
}

// Locker serializes mutations across processes sharing a store.
type Locker interface {
	Lock(ctx context.Context, name string) (func(), error)
}

type Recorder interface {
	ObserveOperation(op string, err error)
	ObserveClamped(scope Scope, n int64)
	ObserveModeSwitch(global bool)
}

type noopRecorder struct{}

func (noopRecorder) ObserveOperation(string, error) {}
func (noopRecorder) ObserveClamped(Scope, int64)    {}
func (noopRecorder) ObserveModeSwitch(bool)         {}
