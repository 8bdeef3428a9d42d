package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"addressbook/internal/logging"
)

// Store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Environment variables that override the config file.
const (
	EnvStoreBackend = "ADDRESSBOOK_STORE_BACKEND"
	EnvStorePath    = "ADDRESSBOOK_STORE_PATH"
	EnvStoreKey     = "ADDRESSBOOK_STORE_KEY"
	EnvLogLevel     = "ADDRESSBOOK_LOG_LEVEL"
	EnvLogMode      = "ADDRESSBOOK_LOG_MODE"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Logging LoggingConfig `yaml:"logging"`
}

// StoreConfig selects and locates the catalog store.
type StoreConfig struct {
	Backend string `yaml:"backend"` // json or sqlite
	Path    string `yaml:"path"`    // file or database location; "~/" is expanded
	Key     string `yaml:"key"`     // sqlite row key
}

// LoggingConfig configures the status logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Mode  string `yaml:"mode"`  // dev (console) or prod (JSON)
}

// DefaultHome returns the directory holding the default store,
// $HOME/.addressbook.
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".addressbook"
	}
	return filepath.Join(dir, ".addressbook")
}

// DefaultConfigPath returns $HOME/.addressbook/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(DefaultHome(), "config.yaml")
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendJSON,
			Key:     "default",
		},
		Logging: LoggingConfig{
			Level: "info",
			Mode:  "dev",
		},
	}
}

// LoadConfig reads path over the defaults and applies environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	override := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	override(&c.Store.Backend, EnvStoreBackend)
	override(&c.Store.Path, EnvStorePath)
	override(&c.Store.Key, EnvStoreKey)
	override(&c.Logging.Level, EnvLogLevel)
	override(&c.Logging.Mode, EnvLogMode)
}

// Normalize lower-cases the backend, fills in the default store path for
// it, expands "~/" and checks the result.
func (c *Config) Normalize() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if c.Store.Backend == "" {
		c.Store.Backend = BackendJSON
	}
	switch c.Store.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)",
			c.Store.Backend, BackendJSON, BackendSQLite)
	}

	if c.Store.Path == "" {
		name := "contacts.json"
		if c.Store.Backend == BackendSQLite {
			name = "contacts.db"
		}
		c.Store.Path = filepath.Join(DefaultHome(), name)
	}
	c.Store.Path = expandHome(c.Store.Path)

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(dir, strings.TrimPrefix(path, "~"))
}
