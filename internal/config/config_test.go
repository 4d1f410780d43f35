package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigWritesDefaultsOnFirstRun(t *testing.T) {
	homeDir := t.TempDir()
	c, err := NewConfig(homeDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Settings.TickRate != DefaultTickRate {
		t.Fatalf("expected default tick rate %d, got %d", DefaultTickRate, c.Settings.TickRate)
	}
	if _, err := os.Stat(c.SettingsPath()); err != nil {
		t.Fatalf("expected default settings file to be written: %v", err)
	}
	if _, err := os.Stat(c.LogsDir()); err != nil {
		t.Fatalf("expected logs dir to exist: %v", err)
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	homeDir := t.TempDir()
	appDir := filepath.Join(homeDir, AppDir)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	settingsYAML := strings.TrimSpace(`
version: 1
tick_rate: 60
seed: 42
muted: true
order_packs:
  - packs/extra.yaml
`)
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(settingsYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(homeDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Settings.TickRate != 60 {
		t.Fatalf("expected tick rate 60, got %d", c.Settings.TickRate)
	}
	if c.Settings.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", c.Settings.Seed)
	}
	if !c.Settings.Muted {
		t.Fatalf("expected muted to be true")
	}
	packs := c.OrderPacks()
	if len(packs) != 1 || !strings.HasPrefix(packs[0], appDir) {
		t.Fatalf("expected relative pack path resolved under app dir, got %v", packs)
	}
}

func TestNewConfigRejectsBadTickRate(t *testing.T) {
	homeDir := t.TempDir()
	appDir := filepath.Join(homeDir, AppDir)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte("tick_rate: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewConfig(homeDir); err == nil {
		t.Fatalf("expected tick rate validation error")
	} else if !strings.Contains(err.Error(), "tick_rate") {
		t.Fatalf("expected tick_rate error, got: %v", err)
	}
}

func TestSetMutedPersists(t *testing.T) {
	homeDir := t.TempDir()
	c, err := NewConfig(homeDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetMuted(true); err != nil {
		t.Fatalf("SetMuted returned error: %v", err)
	}
	reloaded, err := NewConfig(homeDir)
	if err != nil {
		t.Fatal(err)
	}
	if !reloaded.Settings.Muted {
		t.Fatalf("expected muted flag to survive reload")
	}
}
