// Package config loads the application configuration from defaults, an
// optional YAML file, a .env file and PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// AppName is used for XDG directory paths.
const AppName = "github-portfolio"

// Defaults of the repository loading pipeline.
const (
	DefaultOwner      = "brodyandre"
	DefaultPerPage    = 100
	DefaultMaxPages   = 5
	DefaultLimit      = 55
	DefaultBatchSize  = 5
	DefaultBatchPause = 150 * time.Millisecond
	DefaultListen     = "127.0.0.1:8080"
)

// envPrefix marks the environment variables that override the file.
const envPrefix = "PORTFOLIO_"

// Config is the top-level configuration, corresponding to config.yaml.
type Config struct {
	Owner string `yaml:"owner" koanf:"owner"`
	// Token is optional; empty means unauthenticated requests.
	Token   string `yaml:"token,omitempty" koanf:"token"`
	BaseURL string `yaml:"base_url,omitempty" koanf:"base_url"`

	PerPage    int           `yaml:"per_page" koanf:"per_page"`
	MaxPages   int           `yaml:"max_pages" koanf:"max_pages"`
	Limit      int           `yaml:"limit" koanf:"limit"`
	BatchSize  int           `yaml:"batch_size" koanf:"batch_size"`
	BatchPause time.Duration `yaml:"batch_pause" koanf:"batch_pause"`

	Listen          string   `yaml:"listen" koanf:"listen"`
	AllowedOrigins  []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	PreferencesPath string   `yaml:"preferences_path" koanf:"preferences_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Owner:           DefaultOwner,
		PerPage:         DefaultPerPage,
		MaxPages:        DefaultMaxPages,
		Limit:           DefaultLimit,
		BatchSize:       DefaultBatchSize,
		BatchPause:      DefaultBatchPause,
		Listen:          DefaultListen,
		AllowedOrigins:  []string{"http://localhost:*", "http://127.0.0.1:*"},
		PreferencesPath: DefaultPreferencesPath(),
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// DefaultPreferencesPath returns where the local UI preferences are stored.
func DefaultPreferencesPath() string {
	return filepath.Join(xdg.StateHome, AppName, "preferences.yaml")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*). A .env file in the working
// directory is loaded first; GITHUB_TOKEN fills the token when none is set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// PORTFOLIO_BATCH_SIZE -> batch_size, etc.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
// The token is never written.
func (c *Config) Save(path string) error {
	out := *c
	out.Token = ""
	data, err := yamlv3.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	switch {
	case c.Owner == "":
		return ErrNoOwner
	case c.PerPage <= 0 || c.PerPage > 100:
		return ErrInvalidPerPage
	case c.MaxPages <= 0:
		return ErrInvalidMaxPages
	case c.Limit <= 0:
		return ErrInvalidLimit
	case c.BatchSize <= 0:
		return ErrInvalidBatchSize
	case c.BatchPause < 0:
		return ErrInvalidPause
	}
	return nil
}
