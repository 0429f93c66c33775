package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/automuteus/bank/pkg/bank"
	"github.com/automuteus/bank/pkg/rediskey"
	redisv8 "github.com/go-redis/redis/v8"
)

func scopeKey(scope bank.Scope) string {
	return rediskey.ScopeKey(scope.Key())
}

func isGlobal(ctx context.Context, c redisv8.Cmdable) (bool, error) {
	v, err := c.Get(ctx, rediskey.BankGlobal).Result()
	if errors.Is(err, redisv8.Nil) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return strconv.ParseBool(v)
}

func (redisDriver *Driver) IsGlobal(ctx context.Context) (bool, error) {
	return isGlobal(ctx, redisDriver.client)
}

func (redisDriver *Driver) SwitchMode(ctx context.Context, global bool) error {
	return redisDriver.watch(ctx, func(tx *redisv8.Tx) error {
		scopes, err := tx.SMembers(ctx, rediskey.BankScopes).Result()
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redisv8.Pipeliner) error {
			for _, key := range scopes {
				// key "0" is the global scope; it goes when going per-guild, every other key goes when going global
				if (key == rediskey.ScopeKey(0)) != global {
					pipe.Del(ctx, rediskey.BankConfig(key), rediskey.BankAccounts(key))
					pipe.SRem(ctx, rediskey.BankScopes, key)
				}
			}
			pipe.Set(ctx, rediskey.BankGlobal, strconv.FormatBool(global), 0)
			return nil
		})
		return err
	}, rediskey.BankScopes, rediskey.BankGlobal)
}

func (redisDriver *Driver) Config(ctx context.Context, scope bank.Scope) (*bank.Config, error) {
	j, err := redisDriver.client.Get(ctx, rediskey.BankConfig(scopeKey(scope))).Result()
	if errors.Is(err, redisv8.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var cfg bank.Config
	if err := json.Unmarshal([]byte(j), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkConfigScope fails with ErrScopeInactive when scope's config can't be written in the current
// mode. Callers WATCH BankGlobal so a SwitchMode racing the write aborts it.
func checkConfigScope(ctx context.Context, tx *redisv8.Tx, scope bank.Scope) error {
	global, err := isGlobal(ctx, tx)
	if err != nil {
		return err
	}
	if !scope.AcceptsConfig(global) {
		return bank.ErrScopeInactive
	}
	return nil
}

func (redisDriver *Driver) PutConfig(ctx context.Context, scope bank.Scope, cfg *bank.Config) error {
	jBytes, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	key := scopeKey(scope)
	return redisDriver.watch(ctx, func(tx *redisv8.Tx) error {
		if err := checkConfigScope(ctx, tx, scope); err != nil {
			return err
		}
		_, err := tx.TxPipelined(ctx, func(pipe redisv8.Pipeliner) error {
			pipe.Set(ctx, rediskey.BankConfig(key), jBytes, 0)
			pipe.SAdd(ctx, rediskey.BankScopes, key)
			return nil
		})
		return err
	}, rediskey.BankGlobal)
}

func (redisDriver *Driver) UpdateMaxBalance(ctx context.Context, scope bank.Scope, cfg *bank.Config) (int64, error) {
	jBytes, err := json.Marshal(cfg)
	if err != nil {
		return 0, err
	}
	key := scopeKey(scope)
	accountsKey := rediskey.BankAccounts(key)

	var clamped int64
	err = redisDriver.watch(ctx, func(tx *redisv8.Tx) error {
		if err := checkConfigScope(ctx, tx, scope); err != nil {
			return err
		}
		accounts, err := hGetAccounts(ctx, tx, scope)
		if err != nil {
			return err
		}
		clamped = 0
		_, err = tx.TxPipelined(ctx, func(pipe redisv8.Pipeliner) error {
			pipe.Set(ctx, rediskey.BankConfig(key), jBytes, 0)
			pipe.SAdd(ctx, rediskey.BankScopes, key)
			for _, acc := range accounts {
				if acc.Balance > cfg.MaxBalance {
					acc.Balance = cfg.MaxBalance
					accBytes, err := json.Marshal(acc)
					if err != nil {
						return err
					}
					pipe.HSet(ctx, accountsKey, strconv.FormatUint(acc.UserID, 10), accBytes)
					clamped++
				}
			}
			return nil
		})
		return err
	}, rediskey.BankGlobal, accountsKey)
	return clamped, err
}

func (redisDriver *Driver) Account(ctx context.Context, scope bank.Scope, userID uint64) (*bank.Account, error) {
	j, err := redisDriver.client.HGet(ctx, rediskey.BankAccounts(scopeKey(scope)), strconv.FormatUint(userID, 10)).Result()
	if errors.Is(err, redisv8.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return decodeAccount(scope, j)
}

func (redisDriver *Driver) Accounts(ctx context.Context, scope bank.Scope) ([]*bank.Account, error) {
	return hGetAccounts(ctx, redisDriver.client, scope)
}

func (redisDriver *Driver) PutAccounts(ctx context.Context, accounts ...*bank.Account) error {
	keys := []string{rediskey.BankGlobal}
	for _, acc := range accounts {
		keys = append(keys, rediskey.BankAccounts(scopeKey(acc.Scope)))
	}

	return redisDriver.watch(ctx, func(tx *redisv8.Tx) error {
		global, err := isGlobal(ctx, tx)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			if acc.Scope.IsGlobal() != global {
				return bank.ErrScopeInactive
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redisv8.Pipeliner) error {
			for _, acc := range accounts {
				accBytes, err := json.Marshal(acc)
				if err != nil {
					return err
				}
				key := scopeKey(acc.Scope)
				pipe.HSet(ctx, rediskey.BankAccounts(key), strconv.FormatUint(acc.UserID, 10), accBytes)
				pipe.SAdd(ctx, rediskey.BankScopes, key)
			}
			return nil
		})
		return err
	}, keys...)
}

func hGetAccounts(ctx context.Context, c redisv8.Cmdable, scope bank.Scope) ([]*bank.Account, error) {
	entries, err := c.HGetAll(ctx, rediskey.BankAccounts(scopeKey(scope))).Result()
	if err != nil {
		return nil, err
	}
	accounts := make([]*bank.Account, 0, len(entries))
	for _, j := range entries {
		acc, err := decodeAccount(scope, j)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func decodeAccount(scope bank.Scope, j string) (*bank.Account, error) {
	var acc bank.Account
	if err := json.Unmarshal([]byte(j), &acc); err != nil {
		return nil, err
	}
	acc.Scope = scope
	return &acc, nil
}
