package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rackroom.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want localhost:6379", cfg.Store.Redis.Addr)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9090"

[store]
backend = "redis"

[store.redis]
addr = "redis.internal:6380"
db = 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Store.Backend != BackendRedis {
		t.Errorf("Store.Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Store.Redis.Addr != "redis.internal:6380" || cfg.Store.Redis.DB != 2 {
		t.Errorf("Redis config = %+v", cfg.Store.Redis)
	}
	// Unset sections keep their defaults.
	if cfg.Store.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q, want default", cfg.Store.Mongo.URI)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[store]
backend = "cassandra"
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted unknown backend, want error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() of missing file succeeded, want error")
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[server`)
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed TOML succeeded, want error")
	}
}
