package storage

import (
	"context"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/automuteus/bank/pkg/bank"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxIface interface {
	Begin(context.Context) (pgx.Tx, error)
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
}

type PsqlInterface struct {
	Pool *pgxpool.Pool
}

func ConstructPsqlConnectURL(addr, username, password string) string {
	return fmt.Sprintf("postgres://%s?user=%s&password=%s", addr, username, password)
}

type PsqlParameters struct {
	Addr     string
	Username string
	Password string
}

type RedisParameters struct {
	Addr     string
	Username string
	Password string
}

func (psqlInterface *PsqlInterface) Init(addr string) error {
	dbpool, err := pgxpool.Connect(context.Background(), addr)
	if err != nil {
		return err
	}
	psqlInterface.Pool = dbpool
	return nil
}

func (psqlInterface *PsqlInterface) LoadAndExecFromFile(filepath string) error {
	f, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer f.Close()

	bytes, err := ioutil.ReadAll(f)
	if err != nil {
		return err
	}
	tag, err := psqlInterface.Pool.Exec(context.Background(), string(bytes))
	if err != nil {
		return err
	}
	log.Println(tag.String())
	return nil
}

func (psqlInterface *PsqlInterface) Ping(ctx context.Context) error {
	return psqlInterface.Pool.Ping(ctx)
}

func (psqlInterface *PsqlInterface) Close() {
	psqlInterface.Pool.Close()
}

// inTx runs fn inside a transaction, committing if fn succeeds and rolling back otherwise.
func inTx(ctx context.Context, conn PgxIface, fn func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Println(rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}

func (psqlInterface *PsqlInterface) IsGlobal(ctx context.Context) (bool, error) {
	return isGlobal(ctx, psqlInterface.Pool)
}

func isGlobal(ctx context.Context, conn PgxIface) (bool, error) {
	var global bool
	err := conn.QueryRow(ctx, "SELECT is_global FROM bank_mode WHERE id = 1;").Scan(&global)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return global, err
}

func (psqlInterface *PsqlInterface) SwitchMode(ctx context.Context, global bool) error {
	return switchMode(ctx, psqlInterface.Pool, global)
}

func switchMode(ctx context.Context, conn PgxIface, global bool) error {
	return inTx(ctx, conn, func(tx pgx.Tx) error {
		// taking the mode row first blocks any PutAccounts still checking the old mode
		_, err := tx.Exec(ctx, "INSERT INTO bank_mode VALUES (1, $1) ON CONFLICT (id) DO UPDATE SET is_global = EXCLUDED.is_global;", global)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, "DELETE FROM bank_accounts WHERE (scope_id = 0) <> $1;", global)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, "DELETE FROM bank_configs WHERE (scope_id = 0) <> $1;", global)
		return err
	})
}

func (psqlInterface *PsqlInterface) Config(ctx context.Context, scope bank.Scope) (*bank.Config, error) {
	return getConfig(ctx, psqlInterface.Pool, scope)
}

func getConfig(ctx context.Context, conn PgxIface, scope bank.Scope) (*bank.Config, error) {
	var configs []*bank.Config
	err := pgxscan.Select(ctx, conn, &configs, "SELECT bank_name, currency, default_balance, max_balance FROM bank_configs WHERE scope_id = $1;", scope.Key())
	if err != nil {
		return nil, err
	}
	if len(configs) > 0 {
		return configs[0], nil
	}
	return nil, nil
}

func (psqlInterface *PsqlInterface) PutConfig(ctx context.Context, scope bank.Scope, cfg *bank.Config) error {
	return putConfig(ctx, psqlInterface.Pool, scope, cfg)
}

func putConfig(ctx context.Context, conn PgxIface, scope bank.Scope, cfg *bank.Config) error {
	return inTx(ctx, conn, func(tx pgx.Tx) error {
		return upsertConfig(ctx, tx, scope, cfg)
	})
}

// upsertConfig writes the config under a share lock on the mode row, so it can't land on a scope
// that a concurrent SwitchMode just cleared.
func upsertConfig(ctx context.Context, tx pgx.Tx, scope bank.Scope, cfg *bank.Config) error {
	global, err := lockMode(ctx, tx)
	if err != nil {
		return err
	}
	if !scope.AcceptsConfig(global) {
		return bank.ErrScopeInactive
	}
	_, err = tx.Exec(ctx, "INSERT INTO bank_configs VALUES ($1, $2, $3, $4, $5) ON CONFLICT (scope_id) DO UPDATE SET "+
		"bank_name = EXCLUDED.bank_name, currency = EXCLUDED.currency, default_balance = EXCLUDED.default_balance, max_balance = EXCLUDED.max_balance;",
		scope.Key(), cfg.BankName, cfg.CurrencyName, cfg.DefaultBalance, cfg.MaxBalance)
	return err
}

// lockMode reads the mode row FOR SHARE; it stays locked against SwitchMode until tx ends.
func lockMode(ctx context.Context, tx pgx.Tx) (bool, error) {
	var global bool
	err := tx.QueryRow(ctx, "SELECT is_global FROM bank_mode WHERE id = 1 FOR SHARE;").Scan(&global)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return global, err
}

func (psqlInterface *PsqlInterface) UpdateMaxBalance(ctx context.Context, scope bank.Scope, cfg *bank.Config) (int64, error) {
	return updateMaxBalance(ctx, psqlInterface.Pool, scope, cfg)
}

func updateMaxBalance(ctx context.Context, conn PgxIface, scope bank.Scope, cfg *bank.Config) (int64, error) {
	var clamped int64
	err := inTx(ctx, conn, func(tx pgx.Tx) error {
		err := upsertConfig(ctx, tx, scope, cfg)
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, "UPDATE bank_accounts SET balance = $2 WHERE scope_id = $1 AND balance > $2;", scope.Key(), cfg.MaxBalance)
		if err != nil {
			return err
		}
		clamped = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return clamped, nil
}

func (psqlInterface *PsqlInterface) Account(ctx context.Context, scope bank.Scope, userID uint64) (*bank.Account, error) {
	return getAccount(ctx, psqlInterface.Pool, scope, userID)
}

func getAccount(ctx context.Context, conn PgxIface, scope bank.Scope, userID uint64) (*bank.Account, error) {
	var accounts []*PostgresAccount
	err := pgxscan.Select(ctx, conn, &accounts, "SELECT * FROM bank_accounts WHERE scope_id = $1 AND user_id = $2;", scope.Key(), userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) > 0 {
		return accounts[0].ToAccount(), nil
	}
	return nil, nil
}

func (psqlInterface *PsqlInterface) Accounts(ctx context.Context, scope bank.Scope) ([]*bank.Account, error) {
	return getAccounts(ctx, psqlInterface.Pool, scope)
}

func getAccounts(ctx context.Context, conn PgxIface, scope bank.Scope) ([]*bank.Account, error) {
	var rows []*PostgresAccount
	err := pgxscan.Select(ctx, conn, &rows, "SELECT * FROM bank_accounts WHERE scope_id = $1;", scope.Key())
	if err != nil {
		return nil, err
	}
	accounts := make([]*bank.Account, len(rows))
	for i, row := range rows {
		accounts[i] = row.ToAccount()
	}
	return accounts, nil
}

func (psqlInterface *PsqlInterface) PutAccounts(ctx context.Context, accounts ...*bank.Account) error {
	return putAccounts(ctx, psqlInterface.Pool, accounts...)
}

func putAccounts(ctx context.Context, conn PgxIface, accounts ...*bank.Account) error {
	return inTx(ctx, conn, func(tx pgx.Tx) error {
		global, err := lockMode(ctx, tx)
		if err != nil {
			return err
		}
		for _, acc := range accounts {
			if acc.Scope.IsGlobal() != global {
				return bank.ErrScopeInactive
			}
		}
		for _, acc := range accounts {
			_, err = tx.Exec(ctx, "INSERT INTO bank_accounts VALUES ($1, $2, $3, $4) ON CONFLICT (scope_id, user_id) DO UPDATE SET balance = EXCLUDED.balance;",
				acc.Scope.Key(), acc.UserID, acc.Balance, acc.CreatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
