// Package config provides configuration management for Tempus.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/xvierd/tempus-cli/internal/domain"
	"github.com/xvierd/tempus-cli/internal/theme"
)

// EnvPrefix prefixes environment overrides, e.g. TEMPUS_THEME or TEMPUS_FOCUS_TICK.
const EnvPrefix = "TEMPUS"

// Clock formats accepted by clock_format.
const (
	Clock24h = "24h"
	Clock12h = "12h"
)

// Config holds all configuration for the Tempus application.
type Config struct {
	Theme         string              `mapstructure:"theme"`
	Bell          bool                `mapstructure:"bell"`
	Verbose       bool                `mapstructure:"verbose"`
	ClockFormat   string              `mapstructure:"clock_format"`
	BarWidth      int                 `mapstructure:"bar_width"`
	Notifications NotificationConfig  `mapstructure:"notifications"`
	Focus         FocusConfig         `mapstructure:"focus"`
	Log           LogConfig           `mapstructure:"log"`
	Presets       map[string]Duration `mapstructure:"presets"`
}

// NotificationConfig holds desktop notification settings.
// Notify turns completion notifications on by default; Enabled is the master switch.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Notify  bool `mapstructure:"notify"`
	Sound   bool `mapstructure:"sound"`
}

// FocusConfig holds the interactive focus mode settings.
type FocusConfig struct {
	Tick           Duration `mapstructure:"tick"`
	ExtendStep     Duration `mapstructure:"extend_step"`
	AlertThreshold Duration `mapstructure:"alert_threshold"`
	AlertStep      Duration `mapstructure:"alert_step"`
}

// LogConfig holds logging settings. An empty File logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := domain.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	presets := make(map[string]Duration, len(domain.DefaultPresets))
	for name, d := range domain.DefaultPresets {
		presets[name] = Duration(d)
	}
	return &Config{
		Theme:       theme.Gradient.String(),
		Bell:        true,
		Verbose:     false,
		ClockFormat: Clock24h,
		BarWidth:    40,
		Notifications: NotificationConfig{
			Enabled: true,
			Notify:  false,
			Sound:   false,
		},
		Focus: FocusConfig{
			Tick:           Duration(100 * time.Millisecond),
			ExtendStep:     Duration(time.Minute),
			AlertThreshold: Duration(domain.DefaultAlertThreshold),
			AlertStep:      Duration(10 * time.Second),
		},
		Log: LogConfig{
			Level: "warn",
		},
		Presets: presets,
	}
}

// Use12h reports whether clock labels use the 12-hour format.
func (c *Config) Use12h() bool {
	return strings.EqualFold(c.ClockFormat, Clock12h)
}

// PresetDurations returns the built-in presets overlaid with the configured ones.
func (c *Config) PresetDurations() map[string]time.Duration {
	out := make(map[string]time.Duration, len(domain.DefaultPresets)+len(c.Presets))
	for name, d := range domain.DefaultPresets {
		out[name] = d
	}
	for name, d := range c.Presets {
		out[strings.ToLower(name)] = time.Duration(d)
	}
	return out
}

// SessionConfig converts the focus settings into the domain session config.
func (c *Config) SessionConfig() domain.SessionConfig {
	return domain.SessionConfig{
		ExtendStep:     time.Duration(c.Focus.ExtendStep),
		AlertStep:      time.Duration(c.Focus.AlertStep),
		AlertThreshold: time.Duration(c.Focus.AlertThreshold),
	}
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating it with
// defaults if it does not exist. TEMPUS_* environment variables override it.
func LoadFrom(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal config: %v", domain.ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if _, err := theme.Parse(c.Theme); err != nil {
		return err
	}
	if !strings.EqualFold(c.ClockFormat, Clock24h) && !strings.EqualFold(c.ClockFormat, Clock12h) {
		return fmt.Errorf("%w: clock_format must be %q or %q, got %q", domain.ErrInvalidConfiguration, Clock24h, Clock12h, c.ClockFormat)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("%w: bar_width must be positive, got %d", domain.ErrInvalidConfiguration, c.BarWidth)
	}
	if c.Focus.Tick <= 0 {
		return fmt.Errorf("%w: focus.tick must be positive", domain.ErrInvalidConfiguration)
	}
	for name, d := range c.Presets {
		if d <= 0 {
			return fmt.Errorf("%w: preset %q must be positive", domain.ErrInvalidConfiguration, name)
		}
	}
	return nil
}

// Save saves the configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath as TOML.
func SaveTo(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("theme", cfg.Theme)
	v.Set("bell", cfg.Bell)
	v.Set("verbose", cfg.Verbose)
	v.Set("clock_format", cfg.ClockFormat)
	v.Set("bar_width", cfg.BarWidth)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.notify", cfg.Notifications.Notify)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("focus.tick", cfg.Focus.Tick.String())
	v.Set("focus.extend_step", cfg.Focus.ExtendStep.String())
	v.Set("focus.alert_threshold", cfg.Focus.AlertThreshold.String())
	v.Set("focus.alert_step", cfg.Focus.AlertStep.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	for name, d := range cfg.Presets {
		v.Set("presets."+strings.ToLower(name), d.String())
	}

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Set validates and stores a single key in the config file at configPath.
// Keys use dotted names, e.g. "focus.tick" or "presets.nap".
func Set(configPath, key, value string) error {
	cfg, err := LoadFrom(configPath)
	if err != nil {
		return err
	}

	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	if name, ok := strings.CutPrefix(key, "presets."); ok {
		if name == "" {
			return fmt.Errorf("%w: preset name is empty", domain.ErrInvalidConfiguration)
		}
		d, err := domain.ParseDuration(value)
		if err != nil {
			return err
		}
		if cfg.Presets == nil {
			cfg.Presets = map[string]Duration{}
		}
		cfg.Presets[name] = Duration(d)
		return SaveTo(configPath, cfg)
	}

	setter, ok := setters[key]
	if !ok {
		if s := domain.Suggest(key, Keys()); s != "" {
			return fmt.Errorf("%w: unknown key %q (did you mean %q?)", domain.ErrInvalidConfiguration, key, s)
		}
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidConfiguration, key)
	}
	if err := setter(cfg, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return SaveTo(configPath, cfg)
}

var setters = map[string]func(*Config, string) error{
	"theme": func(c *Config, v string) error {
		t, err := theme.Parse(v)
		if err != nil {
			return err
		}
		c.Theme = t.String()
		return nil
	},
	"bell":    boolSetter(func(c *Config) *bool { return &c.Bell }),
	"verbose": boolSetter(func(c *Config) *bool { return &c.Verbose }),
	"clock_format": func(c *Config, v string) error {
		c.ClockFormat = strings.ToLower(v)
		return nil
	},
	"bar_width": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: bar_width must be a number: %v", domain.ErrInvalidConfiguration, err)
		}
		c.BarWidth = n
		return nil
	},
	"notifications.enabled": boolSetter(func(c *Config) *bool { return &c.Notifications.Enabled }),
	"notifications.notify":  boolSetter(func(c *Config) *bool { return &c.Notifications.Notify }),
	"notifications.sound":   boolSetter(func(c *Config) *bool { return &c.Notifications.Sound }),
	"focus.tick":            durationSetter(func(c *Config) *Duration { return &c.Focus.Tick }),
	"focus.extend_step":     durationSetter(func(c *Config) *Duration { return &c.Focus.ExtendStep }),
	"focus.alert_threshold": durationSetter(func(c *Config) *Duration { return &c.Focus.AlertThreshold }),
	"focus.alert_step":      durationSetter(func(c *Config) *Duration { return &c.Focus.AlertStep }),
	"log.file": func(c *Config, v string) error {
		c.Log.File = v
		return nil
	},
	"log.level": func(c *Config, v string) error {
		switch strings.ToLower(v) {
		case "trace", "debug", "info", "warn", "error", "off":
			c.Log.Level = strings.ToLower(v)
			return nil
		}
		return fmt.Errorf("%w: log.level must be one of trace, debug, info, warn, error, off", domain.ErrInvalidConfiguration)
	},
}

func boolSetter(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: expected true or false, got %q", domain.ErrInvalidConfiguration, v)
		}
		*field(c) = b
		return nil
	}
}

func durationSetter(field func(*Config) *Duration) func(*Config, string) error {
	return func(c *Config, v string) error {
		d, err := domain.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(c) = Duration(d)
		return nil
	}
}

// Keys returns the settable keys, excluding per-preset keys.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tempus", "config.toml"), nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("bell", d.Bell)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("clock_format", d.ClockFormat)
	v.SetDefault("bar_width", d.BarWidth)
	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.notify", d.Notifications.Notify)
	v.SetDefault("notifications.sound", d.Notifications.Sound)
	v.SetDefault("focus.tick", d.Focus.Tick.String())
	v.SetDefault("focus.extend_step", d.Focus.ExtendStep.String())
	v.SetDefault("focus.alert_threshold", d.Focus.AlertThreshold.String())
	v.SetDefault("focus.alert_step", d.Focus.AlertStep.String())
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
}
