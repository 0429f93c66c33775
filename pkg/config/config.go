package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	DefaultURL            = "http://localhost:5000"
	DefaultAPIPort        = "5000"
	DefaultMetricsPort    = "2112"
	DefaultPostgresSchema = "./storage/postgres.sql"
)

type Redis struct {
	Addr string `toml:"addr"`
	User string `toml:"user"`
	Pass string `toml:"pass"`
}

type Postgres struct {
	Addr   string `toml:"addr"`
	User   string `toml:"user"`
	Pass   string `toml:"pass"`
	Schema string `toml:"schema"`
}

type Config struct {
	Storage        string   `toml:"storage"`
	Redis          Redis    `toml:"redis"`
	Postgres       Postgres `toml:"postgres"`
	URL            string   `toml:"url"`
	APIPort        string   `toml:"api_port"`
	MetricsPort    string   `toml:"metrics_port"`
	AdminPass      string   `toml:"admin_pass"`
	LocalePath     string   `toml:"locale_path"`
	BotLang        string   `toml:"bot_lang"`
	LogPath        string   `toml:"log_path"`
	DisableLogFile bool     `toml:"disable_log_file"`
}

func defaults() *Config {
	return &Config{
		Storage:     StorageMemory,
		Postgres:    Postgres{Schema: DefaultPostgresSchema},
		URL:         DefaultURL,
		APIPort:     DefaultAPIPort,
		MetricsPort: DefaultMetricsPort,
	}
}

// Load reads an optional .env file, then the TOML file at path (or BANK_CONFIG when path is empty),
// and finally lets environment variables override whatever the file set.
func Load(path string) (*Config, error) {
	// a missing .env is fine; the variables may come from the real environment
	_ = godotenv.Load()

	cfg := defaults()
	if path == "" {
		path = os.Getenv("BANK_CONFIG")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	overrides := []struct {
		env string
		dst *string
	}{
		{"STORAGE", &cfg.Storage},
		{"REDIS_ADDR", &cfg.Redis.Addr},
		{"REDIS_USER", &cfg.Redis.User},
		{"REDIS_PASS", &cfg.Redis.Pass},
		{"POSTGRES_ADDR", &cfg.Postgres.Addr},
		{"POSTGRES_USER", &cfg.Postgres.User},
		{"POSTGRES_PASS", &cfg.Postgres.Pass},
		{"POSTGRES_SCHEMA", &cfg.Postgres.Schema},
		{"HOST", &cfg.URL},
		{"API_PORT", &cfg.APIPort},
		{"METRICS_PORT", &cfg.MetricsPort},
		{"ADMIN_PASS", &cfg.AdminPass},
		{"LOCALE_PATH", &cfg.LocalePath},
		{"BOT_LANG", &cfg.BotLang},
		{"LOG_PATH", &cfg.LogPath},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
	if os.Getenv("DISABLE_LOG_FILE") != "" {
		cfg.DisableLogFile = true
	}

	return cfg, cfg.Validate()
}

func (cfg *Config) Validate() error {
	switch cfg.Storage {
	case StorageMemory:
	case StorageRedis:
		if cfg.Redis.Addr == "" {
			return errors.New("no REDIS_ADDR specified; exiting")
		}
	case StoragePostgres:
		if cfg.Postgres.Addr == "" {
			return errors.New("no POSTGRES_ADDR specified; exiting")
		}
		if cfg.Postgres.User == "" {
			return errors.New("no POSTGRES_USER specified; exiting")
		}
		if cfg.Postgres.Pass == "" {
			return errors.New("no POSTGRES_PASS specified; exiting")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q; expected %s, %s or %s", cfg.Storage, StorageMemory, StorageRedis, StoragePostgres)
	}
	if cfg.AdminPass == "" {
		return errors.New("no ADMIN_PASS specified; exiting")
	}
	return nil
}
