package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogers-f/moodpet/internal/domain"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{
		"pet_name": "Biscuit",
		"store": "sqlite",
		"db_path": "/tmp/pet.db",
		"listen_addr": "127.0.0.1:8080"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PetName != "Biscuit" {
		t.Errorf("PetName = %q, want Biscuit", cfg.PetName)
	}
	if cfg.Store != StoreSQLite {
		t.Errorf("Store = %q, want sqlite", cfg.Store)
	}
	if cfg.DBPath != "/tmp/pet.db" {
		t.Errorf("DBPath = %q, want /tmp/pet.db", cfg.DBPath)
	}
	if cfg.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("ListenAddr = %q, want 127.0.0.1:8080", cfg.ListenAddr)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, dir, name, "pet_name: Pip\nstore: file\nstate_path: data/pet.toml\nshutdown_timeout_sec: 3\n")

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.PetName != "Pip" {
				t.Errorf("PetName = %q, want Pip", cfg.PetName)
			}
			if cfg.StatePath != "data/pet.toml" {
				t.Errorf("StatePath = %q, want data/pet.toml", cfg.StatePath)
			}
			if cfg.ShutdownTimeoutSec != 3 {
				t.Errorf("ShutdownTimeoutSec = %d, want 3", cfg.ShutdownTimeoutSec)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{not valid json}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", "pet_name: [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoad_UnknownStore(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{"store": "redis"}`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown store, got nil")
	}
	petErr, ok := err.(*domain.PetError)
	if !ok {
		t.Fatalf("expected PetError, got %T", err)
	}
	if petErr.Code != domain.ErrConfigInvalid.Code {
		t.Errorf("Code = %d, want %d", petErr.Code, domain.ErrConfigInvalid.Code)
	}
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{"shutdown_timeout_sec": -1}`)

	_, err := Load(path)
	petErr, ok := err.(*domain.PetError)
	if !ok {
		t.Fatalf("expected PetError, got %T (%v)", err, err)
	}
	if petErr.Code != domain.ErrConfigInvalid.Code {
		t.Errorf("Code = %d, want %d", petErr.Code, domain.ErrConfigInvalid.Code)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.json", `{}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.PetName != "Mochi" {
		t.Errorf("PetName = %q, want Mochi", cfg.PetName)
	}
	if cfg.Store != StoreFile {
		t.Errorf("Store = %q, want file", cfg.Store)
	}
	if cfg.StatePath != "pet_data.json" {
		t.Errorf("StatePath = %q, want pet_data.json", cfg.StatePath)
	}
	if cfg.DBPath != "pet.db" {
		t.Errorf("DBPath = %q, want pet.db", cfg.DBPath)
	}
	if cfg.ListenAddr != ":5000" {
		t.Errorf("ListenAddr = %q, want :5000", cfg.ListenAddr)
	}
	if cfg.ShutdownTimeout().Seconds() != 10 {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout())
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Store != StoreFile {
		t.Errorf("Store = %q, want file", cfg.Store)
	}
}
