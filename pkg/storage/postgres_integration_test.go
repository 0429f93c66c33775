//go:build integration

package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/automuteus/bank/pkg/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *PsqlInterface {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "bank",
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	psql := &PsqlInterface{}
	addr := fmt.Sprintf("%s:%s/bank", host, port.Port())
	require.NoError(t, psql.Init(ConstructPsqlConnectURL(addr, "postgres", "password")+"&sslmode=disable"))
	t.Cleanup(psql.Close)

	require.NoError(t, psql.LoadAndExecFromFile("../../storage/postgres.sql"))
	return psql
}

func TestPsqlInterface_Ledger(t *testing.T) {
	psql := startPostgres(t)
	ctx := context.Background()
	ledger := bank.NewLedger(psql)
	guild := bank.Guild(GuildIDInt)

	_, err := ledger.Deposit(ctx, guild, UserIDInt, 5000)
	require.NoError(t, err)

	require.NoError(t, ledger.SetMaxBalance(ctx, 1000, guild))
	balance, err := ledger.Balance(ctx, guild, UserIDInt)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	require.NoError(t, ledger.SetGlobal(ctx, true))
	accounts, err := psql.Accounts(ctx, guild)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	// guild writes are rejected by the store itself once the bank is global
	err = psql.PutAccounts(ctx, &bank.Account{Scope: guild, UserID: UserIDInt, Balance: 1})
	assert.ErrorIs(t, err, bank.ErrScopeInactive)
	err = psql.PutConfig(ctx, guild, bank.MakeDefaultConfig())
	assert.ErrorIs(t, err, bank.ErrScopeInactive)
	cfg, err := psql.Config(ctx, guild)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = ledger.Deposit(ctx, bank.Global, UserIDInt, 10)
	require.NoError(t, err)
	global, err := psql.IsGlobal(ctx)
	require.NoError(t, err)
	assert.True(t, global)
}
