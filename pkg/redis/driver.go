package redis

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/automuteus/bank/pkg/rediskey"
	"github.com/automuteus/bank/pkg/storage"
	"github.com/bsm/redislock"
	redisv8 "github.com/go-redis/redis/v8"
)

const LockTimeoutMs = 3000
const LinearBackoffMs = 100
const MaxRetries = 10

type Driver struct {
	client *redisv8.Client
}

func (redisDriver *Driver) Init(params interface{}) error {
	redisParams := params.(storage.RedisParameters)
	rdb := redisv8.NewClient(&redisv8.Options{
		Addr:     redisParams.Addr,
		Username: redisParams.Username,
		Password: redisParams.Password,
		DB:       0, // use default DB
	})
	redisDriver.client = rdb
	return nil
}

func (redisDriver *Driver) Client() *redisv8.Client {
	return redisDriver.client
}

func (redisDriver *Driver) Ping(ctx context.Context) error {
	return redisDriver.client.Ping(ctx).Err()
}

// Lock obtains the named bank lock, retrying with a linear backoff. The returned func releases it.
func (redisDriver *Driver) Lock(ctx context.Context, name string) (func(), error) {
	locker := redislock.New(redisDriver.client)
	lock, err := locker.Obtain(ctx, rediskey.BankLock(name), time.Millisecond*LockTimeoutMs, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(time.Millisecond*LinearBackoffMs), MaxRetries),
		Metadata:      "",
	})
	if err != nil {
		return nil, err
	}
	return func() {
		err := lock.Release(context.Background())
		if err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			log.Println(err)
		}
	}, nil
}

// watch runs fn in a WATCH/MULTI/EXEC transaction over keys, retrying when another client
// modified a watched key first.
func (redisDriver *Driver) watch(ctx context.Context, fn func(tx *redisv8.Tx) error, keys ...string) error {
	for i := 0; i < MaxRetries; i++ {
		err := redisDriver.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redisv8.TxFailedErr) {
			return err
		}
	}
	return redisv8.TxFailedErr
}

func (redisDriver *Driver) Close() error {
	return redisDriver.client.Close()
}
