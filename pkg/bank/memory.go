package bank

import (
	"context"
	"sync"
)

// MemoryStore keeps all ledger state in process memory. It is used for tests and single-node
// deployments that don't need persistence.
type MemoryStore struct {
	lock     sync.RWMutex
	global   bool
	configs  map[Scope]Config
	accounts map[Scope]map[uint64]Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		configs:  make(map[Scope]Config),
		accounts: make(map[Scope]map[uint64]Account),
	}
}

func (store *MemoryStore) IsGlobal(_ context.Context) (bool, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	return store.global, nil
}

func (store *MemoryStore) SwitchMode(_ context.Context, global bool) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	// when going global, every guild's data goes; when going per-guild, the global data goes
	for scope := range store.accounts {
		if scope.IsGlobal() != global {
			delete(store.accounts, scope)
		}
	}
	for scope := range store.configs {
		if scope.IsGlobal() != global {
			delete(store.configs, scope)
		}
	}
	store.global = global
	return nil
}

func (store *MemoryStore) Config(_ context.Context, scope Scope) (*Config, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	cfg, ok := store.configs[scope]
	if !ok {
		return nil, nil
	}
	return &cfg, nil
}

func (store *MemoryStore) PutConfig(_ context.Context, scope Scope, cfg *Config) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	if !scope.AcceptsConfig(store.global) {
		return ErrScopeInactive
	}
	store.configs[scope] = *cfg
	return nil
}

func (store *MemoryStore) UpdateMaxBalance(_ context.Context, scope Scope, cfg *Config) (int64, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	if !scope.AcceptsConfig(store.global) {
		return 0, ErrScopeInactive
	}
	store.configs[scope] = *cfg
	clamped := int64(0)
	for id, acc := range store.accounts[scope] {
		if acc.Balance > cfg.MaxBalance {
			acc.Balance = cfg.MaxBalance
			store.accounts[scope][id] = acc
			clamped++
		}
	}
	return clamped, nil
}

func (store *MemoryStore) Account(_ context.Context, scope Scope, userID uint64) (*Account, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	acc, ok := store.accounts[scope][userID]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

func (store *MemoryStore) Accounts(_ context.Context, scope Scope) ([]*Account, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	accounts := make([]*Account, 0, len(store.accounts[scope]))
	for _, acc := range store.accounts[scope] {
		acc := acc
		accounts = append(accounts, &acc)
	}
	return accounts, nil
}

func (store *MemoryStore) PutAccounts(_ context.Context, accounts ...*Account) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	for _, acc := range accounts {
		if acc.Scope.IsGlobal() != store.global {
			return ErrScopeInactive
		}
	}
	for _, acc := range accounts {
		if store.accounts[acc.Scope] == nil {
			store.accounts[acc.Scope] = make(map[uint64]Account)
		}
		store.accounts[acc.Scope][acc.UserID] = *acc
	}
	return nil
}
