package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(PathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.RadioGarden.BaseURL != "https://radio.garden/api" {
		t.Errorf("base url = %q", cfg.RadioGarden.BaseURL)
	}
	if cfg.RadioGarden.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.RadioGarden.Timeout)
	}
	if cfg.Nearby.Limit != 5 {
		t.Errorf("nearby limit = %d", cfg.Nearby.Limit)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte(`
server:
  port: "9090"
radiogarden:
  base_url: "http://localhost:7000/api"
  timeout: 3s
logging:
  level: debug
  format: console
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(PathEnvVar, path)
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("NEARBY_LIMIT", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9191" {
		t.Errorf("port = %q, want env override 9191", cfg.Server.Port)
	}
	if cfg.RadioGarden.BaseURL != "http://localhost:7000/api" {
		t.Errorf("base url = %q", cfg.RadioGarden.BaseURL)
	}
	if cfg.RadioGarden.Timeout != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", cfg.RadioGarden.Timeout)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Nearby.Limit != 8 {
		t.Errorf("nearby limit = %d, want 8", cfg.Nearby.Limit)
	}
}

func TestLoadServerPortBeatsPort(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	t.Setenv("PORT", "8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("port = %q, want PORT value 8000", cfg.Server.Port)
	}

	t.Setenv("SERVER_PORT", "9191")

	for i := 0; i < 5; i++ {
		cfg, err = Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Server.Port != "9191" {
			t.Fatalf("port = %q, want SERVER_PORT value 9191", cfg.Server.Port)
		}
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	t.Setenv("LOG_FORMAT", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for LOG_FORMAT=xml")
	}
}

func TestGet(t *testing.T) {
	t.Setenv("RG_TEST_KEY", "value")

	if got := Get("RG_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Get = %q, want value", got)
	}
	if got := Get("RG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Get = %q, want fallback", got)
	}
}
