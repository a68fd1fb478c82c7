package cliparse

import (
	"testing"
)

func TestParseFlags(t *testing.T) {
	// Clear env so flags are the only input
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_TYPE", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "all flags provided",
			args: []string{"-p", "8080", "-d", "dayline.db", "-t", "sqlite"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 8080 {
					t.Errorf("Expected port 8080, got %d", cfg.Port)
				}
				if cfg.DatabaseURL != "dayline.db" {
					t.Errorf("Expected database URL 'dayline.db', got '%s'", cfg.DatabaseURL)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected database type 'sqlite', got '%s'", cfg.DatabaseType)
				}
			},
		},
		{
			name: "defaults applied",
			args: []string{"-d", "dayline.db"},
			check: func(t *testing.T, cfg Config) {
				if cfg.Port != 3324 {
					t.Errorf("Expected default port 3324, got %d", cfg.Port)
				}
				if cfg.DatabaseType != "sqlite" {
					t.Errorf("Expected default type 'sqlite', got '%s'", cfg.DatabaseType)
				}
			},
		},
		{
			name:    "missing database URL",
			args:    []string{"-p", "8080"},
			wantErr: true,
		},
		{
			name:    "unknown database type",
			args:    []string{"-d", "dayline.db", "-t", "mysql"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-z"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/dayline")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 9999 {
		t.Errorf("Expected port 9999 from env, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/dayline" {
		t.Errorf("Expected database URL from env, got '%s'", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("Expected database type 'postgres' from env, got '%s'", cfg.DatabaseType)
	}
}

func TestParseFlagsFlagPrecedence(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "env.db")

	cfg, err := ParseFlags([]string{"-p", "1234", "-d", "flag.db"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 1234 {
		t.Errorf("Expected flag port 1234 to win over env, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "flag.db" {
		t.Errorf("Expected flag database URL to win over env, got '%s'", cfg.DatabaseURL)
	}
}

func TestInvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "notanumber")
	t.Setenv("DATABASE_URL", "dayline.db")

	_, err := ParseFlags(nil)
	if err == nil {
		t.Fatal("Expected error for invalid PORT env variable")
	}
}
