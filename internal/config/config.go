package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/willibrandon/rainbow/internal/birds"
	"github.com/willibrandon/rainbow/internal/chart"
	"github.com/willibrandon/rainbow/internal/palette"
)

// EnvPrefix prefixes environment overrides, e.g. RAINBOW_DATASET_PATH.
const EnvPrefix = "RAINBOW"

// Config represents the root configuration structure
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`
	Menu    MenuConfig    `mapstructure:"menu" yaml:"menu"`
	Chart   ChartConfig   `mapstructure:"chart" yaml:"chart"`
	Canvas  CanvasConfig  `mapstructure:"canvas" yaml:"canvas"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Debug   bool          `mapstructure:"debug" yaml:"debug"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-" yaml:"-"`
}

// DatasetConfig locates the abundance table
type DatasetConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Header bool   `mapstructure:"header" yaml:"header"`
}

// MenuConfig controls the bird picker
type MenuConfig struct {
	DefaultRow int    `mapstructure:"default_row" yaml:"default_row"`
	SortKey    string `mapstructure:"sort_key" yaml:"sort_key"`
}

// ChartConfig holds bar appearance
type ChartConfig struct {
	Background      string  `mapstructure:"background" yaml:"background"`
	Gap             float64 `mapstructure:"gap" yaml:"gap"`
	SaturationBoost float64 `mapstructure:"saturation_boost" yaml:"saturation_boost"`
	SmoothHue       bool    `mapstructure:"smooth_hue" yaml:"smooth_hue"`
}

// CanvasConfig sizes image and window output. Margins are subtracted from
// the window size, matching a canvas inset from the page edges.
type CanvasConfig struct {
	Width   int `mapstructure:"width" yaml:"width"`
	Height  int `mapstructure:"height" yaml:"height"`
	MarginX int `mapstructure:"margin_x" yaml:"margin_x"`
	MarginY int `mapstructure:"margin_y" yaml:"margin_y"`
}

// UIConfig holds terminal preferences. Margins are in cells.
type UIConfig struct {
	Theme   string `mapstructure:"theme" yaml:"theme"`
	MarginX int    `mapstructure:"margin_x" yaml:"margin_x"`
	MarginY int    `mapstructure:"margin_y" yaml:"margin_y"`
}

// LogConfig selects the log file
type LogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Load reads configuration from path, or from config.yaml in
// ~/.config/rainbow or the working directory when path is empty.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/rainbow")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	applyDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.Dataset.Path == "" {
		return fmt.Errorf("dataset.path cannot be empty")
	}
	if cfg.Menu.DefaultRow < 0 {
		return fmt.Errorf("menu.default_row must be >= 0, got %d", cfg.Menu.DefaultRow)
	}
	if _, err := birds.ParseSortKey(cfg.Menu.SortKey); err != nil {
		return fmt.Errorf("menu.sort_key: %w", err)
	}

	if _, err := palette.ParseColor(cfg.Chart.Background); err != nil {
		return fmt.Errorf("chart.background: %w", err)
	}
	if cfg.Chart.Gap < 0 {
		return fmt.Errorf("chart.gap must be >= 0, got %v", cfg.Chart.Gap)
	}
	if cfg.Chart.SaturationBoost <= 0 {
		return fmt.Errorf("chart.saturation_boost must be > 0, got %v", cfg.Chart.SaturationBoost)
	}

	if cfg.Canvas.Width < 1 || cfg.Canvas.Height < 1 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.MarginX < 0 || cfg.Canvas.MarginY < 0 {
		return fmt.Errorf("canvas margins must be >= 0, got %d,%d", cfg.Canvas.MarginX, cfg.Canvas.MarginY)
	}

	validThemes := []string{"dark", "light"}
	if !slices.Contains(validThemes, cfg.UI.Theme) {
		return fmt.Errorf("ui.theme must be one of: %v, got %s", validThemes, cfg.UI.Theme)
	}
	if cfg.UI.MarginX < 0 || cfg.UI.MarginY < 0 {
		return fmt.Errorf("ui margins must be >= 0, got %d,%d", cfg.UI.MarginX, cfg.UI.MarginY)
	}

	return nil
}

// ChartOptions converts the chart section into renderer options.
func (c *Config) ChartOptions() (chart.Options, error) {
	bg, err := palette.ParseColor(c.Chart.Background)
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{
		Background:      bg,
		Gap:             c.Chart.Gap,
		SaturationBoost: c.Chart.SaturationBoost,
		SmoothHue:       c.Chart.SmoothHue,
	}, nil
}

// SortKey returns the validated menu sort key.
func (c *Config) SortKey() birds.SortKey {
	k, err := birds.ParseSortKey(c.Menu.SortKey)
	if err != nil {
		return birds.SortRaw
	}
	return k
}

// LoadOptions returns dataset parsing options.
func (c *Config) LoadOptions() birds.LoadOptions {
	return birds.LoadOptions{Header: c.Dataset.Header}
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "./ninesprings.tsv")
	v.SetDefault("dataset.header", true)

	v.SetDefault("menu.default_row", birds.DefaultRowIndex)
	v.SetDefault("menu.sort_key", string(birds.SortRaw))

	v.SetDefault("chart.background", "gray")
	v.SetDefault("chart.gap", 2)
	v.SetDefault("chart.saturation_boost", 1.5)
	v.SetDefault("chart.smooth_hue", false)

	v.SetDefault("canvas.width", 1280)
	v.SetDefault("canvas.height", 720)
	v.SetDefault("canvas.margin_x", 32)
	v.SetDefault("canvas.margin_y", 16)

	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.margin_x", 2)
	v.SetDefault("ui.margin_y", 1)

	v.SetDefault("log.path", "")

	v.SetDefault("debug", false)
}
