package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rogers-f/moodpet/internal/domain"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds the server's runtime configuration.
type Config struct {
	PetName            string `json:"pet_name" yaml:"pet_name"`
	Store              string `json:"store" yaml:"store"`
	StatePath          string `json:"state_path" yaml:"state_path"`
	DBPath             string `json:"db_path" yaml:"db_path"`
	ListenAddr         string `json:"listen_addr" yaml:"listen_addr"`
	ShutdownTimeoutSec int    `json:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads a JSON or YAML config file, applies defaults, and validates.
// Files ending in .yaml or .yml are parsed as YAML; everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config JSON: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ShutdownTimeout returns the graceful shutdown window.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

func (c *Config) applyDefaults() {
	if c.PetName == "" {
		c.PetName = "Mochi"
	}
	if c.Store == "" {
		c.Store = StoreFile
	}
	if c.StatePath == "" {
		c.StatePath = "pet_data.json"
	}
	if c.DBPath == "" {
		c.DBPath = "pet.db"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.ShutdownTimeoutSec == 0 {
		c.ShutdownTimeoutSec = 10
	}
}

func (c *Config) validate() error {
	var problems []string

	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		problems = append(problems, fmt.Sprintf("store must be %q or %q, got %q", StoreFile, StoreSQLite, c.Store))
	}
	if c.ShutdownTimeoutSec < 0 {
		problems = append(problems, "shutdown_timeout_sec must not be negative")
	}
	if strings.TrimSpace(c.PetName) == "" {
		problems = append(problems, "pet_name must not be blank")
	}

	if len(problems) > 0 {
		return &domain.PetError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s: %v", domain.ErrConfigInvalid.Message, problems),
		}
	}
	return nil
}
