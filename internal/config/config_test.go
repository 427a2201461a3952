package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_PATH", "ENV", "BIND_ADDR", "SESSION_SECRET", "SESSION_TTL_HOURS", "SESSION_COOKIE",
		"COOKIE_SECURE", "ALLOWED_ORIGINS", "DATABASE_URL", "REGISTRATION_SINK", "ARCHIVE_DIR",
		"R2_ENDPOINT", "R2_BUCKET_NAME", "SESSION_SWEEP_INTERVAL", "TUI_LOG_FILE",
	} {
		// register the restore, then unset: cleanenv treats an empty value as set
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "dev" || cfg.BindAddr != ":8080" || cfg.CookieName != "kyra_session" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.SessionTTL() != 12*time.Hour {
		t.Fatalf("expected 12h ttl, got %s", cfg.SessionTTL())
	}
	if cfg.SessionSweepInterval != 10*time.Minute {
		t.Fatalf("expected 10m sweep interval, got %s", cfg.SessionSweepInterval)
	}
	if cfg.TUILogFile != "" {
		t.Fatalf("expected no tui log file by default, got %q", cfg.TUILogFile)
	}
	if cfg.RegistrationSink != SinkDiscard {
		t.Fatalf("expected discard sink, got %s", cfg.RegistrationSink)
	}
	if err := cfg.RequireSessionSecret(); err != nil {
		t.Fatalf("secret should be present: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL_HOURS", "1")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REGISTRATION_SINK", "file")
	t.Setenv("ARCHIVE_DIR", "/tmp/kyra")
	t.Setenv("SESSION_SWEEP_INTERVAL", "30s")
	t.Setenv("TUI_LOG_FILE", "/tmp/kyra-tui.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessionTTL() != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", cfg.SessionTTL())
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.ArchiveDir != "/tmp/kyra" {
		t.Fatalf("unexpected archive dir %s", cfg.ArchiveDir)
	}
	if cfg.SessionSweepInterval != 30*time.Second {
		t.Fatalf("expected 30s sweep interval, got %s", cfg.SessionSweepInterval)
	}
	if cfg.TUILogFile != "/tmp/kyra-tui.log" {
		t.Fatalf("expected TUI_LOG_FILE to be read, got %q", cfg.TUILogFile)
	}
}

func TestRequireSessionSecret(t *testing.T) {
	cfg := &Config{SessionSecret: "  "}
	if err := cfg.RequireSessionSecret(); err == nil {
		t.Fatalf("expected blank secret to be rejected")
	}
}

func TestValidateSinks(t *testing.T) {
	cases := []struct {
		cfg  Config
		want string
	}{
		{Config{SessionTTLHours: 1, SessionSweepInterval: time.Minute, RegistrationSink: "ftp"}, "unknown REGISTRATION_SINK"},
		{Config{SessionTTLHours: 1, SessionSweepInterval: time.Minute, RegistrationSink: SinkDB}, "requires DATABASE_URL"},
		{Config{SessionTTLHours: 1, SessionSweepInterval: time.Minute, RegistrationSink: SinkR2, R2Endpoint: "https://r2"}, "R2_BUCKET_NAME"},
		{Config{SessionTTLHours: 0, SessionSweepInterval: time.Minute, RegistrationSink: SinkDiscard}, "SESSION_TTL_HOURS"},
		{Config{SessionTTLHours: 1, RegistrationSink: SinkDiscard}, "SESSION_SWEEP_INTERVAL"},
	}
	for _, tc := range cases {
		err := tc.cfg.validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("expected error containing %q, got %v", tc.want, err)
		}
	}
	ok := Config{SessionTTLHours: 1, SessionSweepInterval: time.Minute, RegistrationSink: SinkDB, DatabaseURL: "sqlite://x.db"}
	if err := ok.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
