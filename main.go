package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/automuteus/bank/api"
	"github.com/automuteus/bank/pkg"
	"github.com/automuteus/bank/pkg/bank"
	"github.com/automuteus/bank/pkg/config"
	"github.com/automuteus/bank/pkg/locale"
	"github.com/automuteus/bank/pkg/metrics"
	"github.com/automuteus/bank/pkg/redis"
	"github.com/automuteus/bank/pkg/rediskey"
	"github.com/automuteus/bank/pkg/server"
	"github.com/automuteus/bank/pkg/storage"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

func main() {
	err := bankMainWrapper()
	if err != nil {
		log.Println("Program exited with the following error:")
		log.Println(err)
		return
	}
}

func bankMainWrapper() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	if !cfg.DisableLogFile {
		logPath := cfg.LogPath
		if logPath == "" {
			logPath = "./"
		}
		file, err := os.Create(path.Join(logPath, "logs.txt"))
		if err != nil {
			return err
		}
		defer file.Close()
		mw := io.MultiWriter(os.Stdout, file)
		log.SetOutput(mw)
	}

	log.Println(pkg.Version + "-" + pkg.Commit)

	locale.InitLang(cfg.LocalePath, cfg.BotLang)

	nodeID, err := os.Hostname()
	if err != nil {
		nodeID = "unknown"
	}

	var store bank.Store
	var pinger server.Pinger
	var opts []bank.Option

	// redis serves as the lock backend whenever it's configured, even if postgres holds the data
	if cfg.Redis.Addr != "" {
		var redisDriver redis.Driver
		err := redisDriver.Init(storage.RedisParameters{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.User,
			Password: cfg.Redis.Pass,
		})
		if err != nil {
			return err
		}
		defer redisDriver.Close()

		opts = append(opts, bank.WithLocker(&redisDriver))
		prometheus.MustRegister(metrics.NewCollector(func() int64 {
			return rediskey.GetScopeCounter(context.Background(), redisDriver.Client())
		}, nodeID))

		if cfg.Storage == config.StorageRedis {
			store = &redisDriver
			pinger = &redisDriver
		}
	}

	switch cfg.Storage {
	case config.StoragePostgres:
		psql := &storage.PsqlInterface{}
		err := psql.Init(storage.ConstructPsqlConnectURL(cfg.Postgres.Addr, cfg.Postgres.User, cfg.Postgres.Pass))
		if err != nil {
			return err
		}
		defer psql.Close()

		if cfg.Postgres.Schema != "" {
			if err := psql.LoadAndExecFromFile(cfg.Postgres.Schema); err != nil {
				log.Println("Exiting with fatal error when attempting to execute " + cfg.Postgres.Schema + ":")
				return err
			}
		}
		store = psql
		pinger = psql
	case config.StorageMemory:
		log.Println("[Info] Using the in-memory store; balances will not survive a restart")
		store = bank.NewMemoryStore()
	}

	opts = append(opts, bank.WithRecorder(metrics.NewMetrics(prometheus.DefaultRegisterer)))
	ledger := bank.NewLedger(store, opts...)

	global, err := ledger.IsGlobal(context.Background())
	if err != nil {
		return err
	}
	log.Printf("[Bank] Storage: %s, global: %t", cfg.Storage, global)

	healthServer := server.StartHealthCheckServer(cfg.MetricsPort, pinger, prometheus.DefaultGatherer)
	apiServer := api.NewApi(cfg.URL, cfg.AdminPass, ledger).StartServer(cfg.APIPort)

	log.Println("Bank is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	log.Println("Received Sigterm or Kill signal. Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range []*http.Server{apiServer, healthServer} {
		if err := srv.Shutdown(ctx); err != nil {
			log.Println(err)
		}
	}
	return nil
}
