package config

import "testing"

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FF_ENV_ID", "")
	cfg := FromEnv()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %d, got %d", defaultPort, cfg.Port)
	}
}

func TestFromEnv_ReadsPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg := FromEnv()
	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
}

func TestFromEnv_InvalidPortFallsBackToDefault(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	cfg := FromEnv()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port on invalid input, got %d", cfg.Port)
	}
}

func TestWithPort_OverridesWhenNonZero(t *testing.T) {
	cfg := Server{Port: defaultPort}
	cfg = cfg.WithPort(1234)
	if cfg.Port != 1234 {
		t.Fatalf("expected overridden port 1234, got %d", cfg.Port)
	}
}

func TestWithPort_LeavesExistingWhenZero(t *testing.T) {
	cfg := Server{Port: defaultPort}
	cfg = cfg.WithPort(0)
	if cfg.Port != defaultPort {
		t.Fatalf("expected unchanged port %d, got %d", defaultPort, cfg.Port)
	}
}
