//go:build integration

package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/automuteus/bank/pkg/bank"
	"github.com/automuteus/bank/pkg/rediskey"
	"github.com/automuteus/bank/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	UserID  uint64 = 123123123123123123
	GuildID uint64 = 234234234234234234
)

func startRedis(t *testing.T) *Driver {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	var driver Driver
	require.NoError(t, driver.Init(storage.RedisParameters{Addr: host + ":" + port.Port()}))
	t.Cleanup(func() {
		_ = driver.Close()
	})
	require.NoError(t, driver.Ping(ctx))
	return &driver
}

func TestDriver_Ledger(t *testing.T) {
	driver := startRedis(t)
	ctx := context.Background()
	ledger := bank.NewLedger(driver, bank.WithLocker(driver))
	guild := bank.Guild(GuildID)

	_, err := ledger.Deposit(ctx, guild, UserID, 5000)
	require.NoError(t, err)
	_, err = ledger.Deposit(ctx, guild, UserID+1, 500)
	require.NoError(t, err)

	require.NoError(t, ledger.SetMaxBalance(ctx, 1000, guild))
	balance, err := ledger.Balance(ctx, guild, UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
	balance, err = ledger.Balance(ctx, guild, UserID+1)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	assert.Equal(t, int64(1), rediskey.GetScopeCounter(ctx, driver.Client()))

	require.NoError(t, ledger.SetGlobal(ctx, true))
	accounts, err := driver.Accounts(ctx, guild)
	require.NoError(t, err)
	assert.Empty(t, accounts)
	cfg, err := driver.Config(ctx, guild)
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Equal(t, int64(0), rediskey.GetScopeCounter(ctx, driver.Client()))

	err = driver.PutAccounts(ctx, &bank.Account{Scope: guild, UserID: UserID, Balance: 1})
	assert.ErrorIs(t, err, bank.ErrScopeInactive)
	err = driver.PutConfig(ctx, guild, bank.MakeDefaultConfig())
	assert.ErrorIs(t, err, bank.ErrScopeInactive)
	_, err = driver.UpdateMaxBalance(ctx, guild, bank.MakeDefaultConfig())
	assert.ErrorIs(t, err, bank.ErrScopeInactive)
	require.NoError(t, ledger.SetBankName(ctx, "Vault", bank.Global))
}

func TestDriver_ConcurrentDeposits(t *testing.T) {
	driver := startRedis(t)
	ctx := context.Background()
	// two ledgers stand in for two processes sharing the same redis
	ledgers := []*bank.Ledger{
		bank.NewLedger(driver, bank.WithLocker(driver)),
		bank.NewLedger(driver, bank.WithLocker(driver)),
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(ledger *bank.Ledger) {
			defer wg.Done()
			_, err := ledger.Deposit(ctx, bank.Guild(GuildID), UserID, 10)
			assert.NoError(t, err)
		}(ledgers[i%2])
	}
	wg.Wait()

	balance, err := ledgers[0].Balance(ctx, bank.Guild(GuildID), UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), balance)
}
