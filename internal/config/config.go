// Package config loads and saves the stageward TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/stageward/internal/plan"
)

// Config holds all stageward configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Targets    TargetsConfig    `toml:"targets"`
	FIRE       FIREConfig       `toml:"fire"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// TargetsConfig holds the stage thresholds.
type TargetsConfig struct {
	NeedsToExcess       float64 `toml:"needs_to_excess"`
	EmergencyFundMonths float64 `toml:"emergency_fund_months"`
	HighAPRPercent      float64 `toml:"high_apr_percent"`
}

// FIREConfig holds projection rates.
type FIREConfig struct {
	GrowthRatePercent float64 `toml:"growth_rate_percent"`
	SafeRatePercent   float64 `toml:"safe_rate_percent"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	targets := plan.DefaultTargets()
	return Config{
		Targets: TargetsConfig{
			NeedsToExcess:       targets.NeedsToExcess,
			EmergencyFundMonths: targets.EmergencyFundMonths,
			HighAPRPercent:      targets.HighAPRPercent,
		},
		FIRE: FIREConfig{
			GrowthRatePercent: plan.DefaultGrowthRatePercent,
			SafeRatePercent:   plan.DefaultSafeRatePercent,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// PlanTargets converts the config section into engine thresholds, falling
// back to defaults for unset values.
func (c Config) PlanTargets() plan.Targets {
	targets := plan.DefaultTargets()
	if c.Targets.NeedsToExcess > 0 {
		targets.NeedsToExcess = c.Targets.NeedsToExcess
	}
	if c.Targets.EmergencyFundMonths > 0 {
		targets.EmergencyFundMonths = c.Targets.EmergencyFundMonths
	}
	if c.Targets.HighAPRPercent > 0 {
		targets.HighAPRPercent = c.Targets.HighAPRPercent
	}
	if c.FIRE.SafeRatePercent > 0 {
		targets.SafeRatePercent = c.FIRE.SafeRatePercent
	}
	return targets
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stageward")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stageward")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
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
