package config

import (
	"os"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budget")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	// Setenv registers the restore; the test itself needs PORT unset.
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []string{"DATABASE_URL", "JWT_SECRET", "ADMIN_PASSWORD_HASH"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")
			if _, err := Load(); err == nil {
				t.Errorf("Load succeeded without %s", key)
			}
		})
	}
}
