package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "JWT_EXPIRY", "SMTP_PORT", "MAX_UPLOAD_SIZE"} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("unexpected db defaults %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("expected 24h token expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected smtp port 587, got %d", cfg.SMTPPort)
	}
	if cfg.MaxUploadSize != 4*1024*1024 {
		t.Errorf("expected 4MiB upload limit, got %d", cfg.MaxUploadSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()
	if cfg.DBHost != "db.internal" {
		t.Errorf("expected db.internal, got %s", cfg.DBHost)
	}
	if cfg.JWTExpiry != 15*time.Minute {
		t.Errorf("expected 15m, got %v", cfg.JWTExpiry)
	}
	if cfg.SMTPPort != 2525 {
		t.Errorf("expected 2525, got %d", cfg.SMTPPort)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := Load()
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("expected 24h fallback, got %v", cfg.JWTExpiry)
	}
	if cfg.SMTPPort != 587 {
		t.Errorf("expected 587 fallback, got %d", cfg.SMTPPort)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "pw",
		DBName:     "accounts_db",
		DBSSLMode:  "disable",
	}
	want := "host=localhost user=postgres password=pw dbname=accounts_db port=5432 sslmode=disable TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
