package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	for _, env := range []string{"BANK_CONFIG", "STORAGE", "REDIS_ADDR", "POSTGRES_ADDR", "POSTGRES_USER",
		"POSTGRES_PASS", "POSTGRES_SCHEMA", "API_PORT", "METRICS_PORT", "ADMIN_PASS", "DISABLE_LOG_FILE"} {
		t.Setenv(env, "")
	}
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_PASS", "hunter2")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage != StorageMemory {
		t.Error("expected the memory store by default, got " + cfg.Storage)
	}
	if cfg.APIPort != DefaultAPIPort || cfg.MetricsPort != DefaultMetricsPort {
		t.Error("expected default ports")
	}
	if cfg.DisableLogFile {
		t.Error("log file should be enabled by default")
	}
}

func TestLoad_file(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("DISABLE_LOG_FILE", "true")

	cfg, err := Load("testdata/bank.toml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage != StoragePostgres || cfg.Postgres.Addr != "localhost:5432/bank" {
		t.Errorf("file values were not applied: %+v", cfg)
	}
	if cfg.Postgres.Schema != DefaultPostgresSchema {
		t.Error("defaults should survive a file that doesn't set them")
	}
	if cfg.APIPort != "9090" {
		t.Error("environment should override the file")
	}
	if !cfg.DisableLogFile {
		t.Error("DISABLE_LOG_FILE should disable the log file")
	}
}

func TestLoad_missingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load("testdata/nope.toml")
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.AdminPass = "hunter2"
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}

	cfg.Storage = "firestore"
	if cfg.Validate() == nil {
		t.Error("expected an error for an unknown backend")
	}

	cfg.Storage = StorageRedis
	if cfg.Validate() == nil {
		t.Error("expected an error for redis without an address")
	}
	cfg.Redis.Addr = "localhost:6379"
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}

	cfg.AdminPass = ""
	if cfg.Validate() == nil {
		t.Error("expected an error without an admin password")
	}
}
