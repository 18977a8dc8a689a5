package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected error for explicit missing config file")
	}

	// With no explicit path, defaults apply.
	cfg, err = loadFromDir(t)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.MaxConnections != 10 {
		t.Errorf("database.max_connections = %d, want 10", cfg.Database.MaxConnections)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("auth.token_ttl = %v, want 1h", cfg.Auth.TokenTTL)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging.format = %q, want json", cfg.Logging.Format)
	}
	if !cfg.Telemetry.Metrics.Enabled || cfg.Telemetry.Metrics.PrometheusPort != 9090 {
		t.Errorf("unexpected telemetry defaults: %+v", cfg.Telemetry)
	}
}

// loadFromDir runs Load from an empty working directory so no stray
// config.yaml on the developer machine leaks into the test.
func loadFromDir(t *testing.T) (*Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return Load("")
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 3000
database:
  name: portfolio_test
  max_connections: 4
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Database.Name != "portfolio_test" {
		t.Errorf("database.name = %q, want portfolio_test", cfg.Database.Name)
	}
	if cfg.Database.MaxConnections != 4 {
		t.Errorf("database.max_connections = %d, want 4", cfg.Database.MaxConnections)
	}
	// Unset keys still come from defaults.
	if cfg.Database.Host != "localhost" {
		t.Errorf("database.host = %q, want localhost", cfg.Database.Host)
	}
}

func TestEnvOverridesFileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 3000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PFB_SERVER_PORT", "4000")
	t.Setenv("PFB_DATABASE_PASSWORD", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("env did not override file: port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.Database.Password != "from-env" {
		t.Errorf("database.password = %q, want from-env", cfg.Database.Password)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080, BaseURL: "http://localhost:8080"},
			Database: DatabaseConfig{Host: "localhost", Name: "portfolio", User: "portfolio", MaxConnections: 10},
			Auth:     AuthConfig{TokenTTL: time.Hour},
			Logging:  LoggingConfig{Level: "info"},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"missing base url", func(c *Config) { c.Server.BaseURL = "" }},
		{"missing db host", func(c *Config) { c.Database.Host = "" }},
		{"missing db name", func(c *Config) { c.Database.Name = "" }},
		{"zero pool", func(c *Config) { c.Database.MaxConnections = 0 }},
		{"zero token ttl", func(c *Config) { c.Auth.TokenTTL = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := base().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "dbhost", Port: 5433, User: "u", Password: "p", Name: "portfolio", SSLMode: "disable",
	}
	want := "host=dbhost port=5433 user=u password=p dbname=portfolio sslmode=disable"
	if got := db.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestGetAddress(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8080}
	if got := s.GetAddress(); got != "0.0.0.0:8080" {
		t.Errorf("GetAddress() = %q", got)
	}
}
