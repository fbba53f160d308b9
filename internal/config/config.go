package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

// Config holds all himoney configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Allocation model.Allocation `toml:"allocation"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// DefaultConfig returns the default configuration: the canonical 25/15/50/10
// bucket split and dollar formatting.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "$",
		},
		Allocation: model.DefaultAllocation(),
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "himoney")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "himoney")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the store database, honoring the
// config override when set.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "himoney")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "himoney")
}

// DBPath returns the full path to the store database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "himoney.db")
}

// Load reads the config file, returning defaults if it doesn't exist. A
// stored allocation that fails validation also falls back to the default
// split so the engine never starts from an invalid weight set.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Allocation.Validate(); err != nil {
		cfg.Allocation = model.DefaultAllocation()
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
