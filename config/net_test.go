package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/swarmflag/shared/netconfig"
)

func TestLoadNetDefaults(t *testing.T) {
	t.Setenv(EnvLocalAddr, "")
	t.Setenv(EnvServerAddr, "")

	cfg, err := LoadNet(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadNet: %v", err)
	}
	if cfg.LocalAddr != netconfig.DefaultLocalAddr {
		t.Fatalf("LocalAddr = %q, want %q", cfg.LocalAddr, netconfig.DefaultLocalAddr)
	}
	if cfg.ServerAddr != netconfig.DefaultServerAddr {
		t.Fatalf("ServerAddr = %q, want %q", cfg.ServerAddr, netconfig.DefaultServerAddr)
	}
}

func TestLoadNetEnvOverride(t *testing.T) {
	t.Setenv(EnvLocalAddr, "")
	t.Setenv(EnvServerAddr, "127.0.0.1:4000")

	cfg, err := LoadNet(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadNet: %v", err)
	}
	if cfg.ServerAddr != "127.0.0.1:4000" {
		t.Fatalf("ServerAddr = %q, want %q", cfg.ServerAddr, "127.0.0.1:4000")
	}
	if cfg.LocalAddr != netconfig.DefaultLocalAddr {
		t.Fatalf("LocalAddr = %q, want default", cfg.LocalAddr)
	}
}

func TestLoadNetEnvFile(t *testing.T) {
	t.Setenv(EnvServerAddr, "")
	// Registers cleanup so the value godotenv sets does not leak.
	t.Setenv(EnvLocalAddr, "")
	os.Unsetenv(EnvLocalAddr)

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLocalAddr+"=0.0.0.0:5555\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := LoadNet(path)
	if err != nil {
		t.Fatalf("LoadNet: %v", err)
	}
	if cfg.LocalAddr != "0.0.0.0:5555" {
		t.Fatalf("LocalAddr = %q, want %q", cfg.LocalAddr, "0.0.0.0:5555")
	}
}

func TestLoadNetRejectsBadOverride(t *testing.T) {
	t.Setenv(EnvLocalAddr, "")
	t.Setenv(EnvServerAddr, "no-port-here")

	if _, err := LoadNet(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("LoadNet accepted %q", "no-port-here")
	}
}
