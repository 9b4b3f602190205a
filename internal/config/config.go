package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Store      StoreConfig
	Database   DatabaseConfig
	UI         UIConfig
	Attendance AttendanceConfig
	Log        LogConfig
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string
	Dir     string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartRoute    string        `mapstructure:"start_route"`
	ClockInterval time.Duration `mapstructure:"clock_interval"`
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	TimeFormat    string        `mapstructure:"time_format"`
}

// AttendanceConfig tunes the simulated attendance check. Seed 0 means a
// random seed.
type AttendanceConfig struct {
	SuccessProbability float64 `mapstructure:"success_probability"`
	Seed               uint64
}

// LogConfig holds logging settings. The terminal belongs to the UI, so logs
// go to a file.
type LogConfig struct {
	Path  string
	Level string
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "smartattend")
}

// Path returns the config file location: SMARTATTEND_CONFIG or the default.
func Path() string {
	if p := os.Getenv("SMARTATTEND_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "smartattend", "config.toml")
}

func defaults(v *viper.Viper) {
	v.SetDefault("store.backend", "sqlite")
	v.SetDefault("store.dir", filepath.Join(dataDir(), "store"))
	v.SetDefault("database.path", filepath.Join(dataDir(), "smartattend.db"))
	v.SetDefault("ui.start_route", "")
	v.SetDefault("ui.clock_interval", time.Second)
	v.SetDefault("ui.toast_duration", 2*time.Second)
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("attendance.success_probability", 0.8)
	v.SetDefault("attendance.seed", 0)
	v.SetDefault("log.path", filepath.Join(dataDir(), "smartattend.log"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. Env var overrides use prefix SMARTATTEND_.
func Load() (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetConfigType("toml")
	if p := os.Getenv("SMARTATTEND_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "smartattend"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SMARTATTEND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the app cannot run with.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store.Backend) {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	if p := c.Attendance.SuccessProbability; p < 0 || p > 1 {
		return fmt.Errorf("attendance.success_probability: %v not in [0,1]", p)
	}
	if c.UI.ClockInterval <= 0 {
		return fmt.Errorf("ui.clock_interval must be positive")
	}
	if c.UI.ToastDuration <= 0 {
		return fmt.Errorf("ui.toast_duration must be positive")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.backend", cfg.Store.Backend)
	v.Set("store.dir", cfg.Store.Dir)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.start_route", cfg.UI.StartRoute)
	v.Set("ui.clock_interval", cfg.UI.ClockInterval.String())
	v.Set("ui.toast_duration", cfg.UI.ToastDuration.String())
	v.Set("ui.time_format", cfg.UI.TimeFormat)
	v.Set("attendance.success_probability", cfg.Attendance.SuccessProbability)
	v.Set("attendance.seed", cfg.Attendance.Seed)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
