// Package config handles application configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Constants for configuration
const (
	EnvPrefix = "LAUNCHBOARD"

	DefaultDatasetPath     = "spacex_launch_dash.csv"
	DefaultPort            = 8050
	DefaultSliderMin       = 0
	DefaultSliderMax       = 10000
	DefaultSliderStep      = 1000
	DefaultReadTimeout     = "15s"
	DefaultWriteTimeout    = "30s"
	DefaultShutdownTimeout = "10s"
)

var (
	ErrNoDataset     = errors.New("dataset path is required")
	ErrInvalidPort   = errors.New("port must be between 1 and 65535")
	ErrInvalidSlider = errors.New("invalid slider configuration")
)

// AppConfig holds the application configuration
type AppConfig struct {
	Dataset string
	Port    int
	Debug   bool
	Slider  SliderConfig
	Server  ServerConfig
}

// SliderConfig describes the payload range control.
type SliderConfig struct {
	Min  float64
	Max  float64
	Step float64
}

// ServerConfig holds HTTP server timeouts.
type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// New returns a viper instance with defaults and environment binding applied.
// Environment keys use the LAUNCHBOARD_ prefix, e.g. LAUNCHBOARD_SLIDER_STEP.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("dataset", DefaultDatasetPath)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("debug", false)
	v.SetDefault("slider.min", DefaultSliderMin)
	v.SetDefault("slider.max", DefaultSliderMax)
	v.SetDefault("slider.step", DefaultSliderStep)
	v.SetDefault("read_timeout", DefaultReadTimeout)
	v.SetDefault("write_timeout", DefaultWriteTimeout)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)

	return v
}

// Load reads .env (if present), the optional config file and the environment,
// then decodes and validates the result.
func Load(v *viper.Viper, configPath string) (*AppConfig, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg := &AppConfig{
		Dataset: strings.TrimSpace(v.GetString("dataset")),
		Port:    v.GetInt("port"),
		Debug:   v.GetBool("debug"),
		Slider: SliderConfig{
			Min:  v.GetFloat64("slider.min"),
			Max:  v.GetFloat64("slider.max"),
			Step: v.GetFloat64("slider.step"),
		},
	}

	var err error
	if cfg.Server.ReadTimeout, err = parseDuration(v, "read_timeout"); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = parseDuration(v, "write_timeout"); err != nil {
		return nil, err
	}
	if cfg.Server.ShutdownTimeout, err = parseDuration(v, "shutdown_timeout"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseDuration accepts Go durations plus day and week units ("1d", "2w")
func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := str2duration.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// Validate checks the configuration for values the dashboard cannot run with.
func (c *AppConfig) Validate() error {
	if c.Dataset == "" {
		return ErrNoDataset
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.Slider.Step <= 0 {
		return fmt.Errorf("%w: step %v must be positive", ErrInvalidSlider, c.Slider.Step)
	}
	if c.Slider.Min >= c.Slider.Max {
		return fmt.Errorf("%w: min %v must be below max %v", ErrInvalidSlider, c.Slider.Min, c.Slider.Max)
	}
	return nil
}
