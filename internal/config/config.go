// Package config loads Showcase configuration through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/opencode-ai/showcase/internal/tui/styles"
)

// Config represents the complete Showcase configuration.
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Tour    TourConfig    `mapstructure:"tour"`
	Logging LoggingConfig `mapstructure:"logging"`
	Paths   PathsConfig   `mapstructure:"paths"`
}

// TUIConfig controls the terminal host.
type TUIConfig struct {
	// Theme names a palette from styles.Themes.
	Theme string `mapstructure:"theme"`
	// Mouse enables mouse reporting so clicks can touch overlays.
	Mouse bool `mapstructure:"mouse"`
}

// TourConfig controls overlay and scroll behavior.
type TourConfig struct {
	// Radius is the highlight radius in terminal cells.
	Radius float64 `mapstructure:"radius"`
	// ClickInCircle lets clicks inside the highlight reach the view below.
	ClickInCircle bool `mapstructure:"click_in_circle"`
	// ScrollLinesPerTick is how far the document moves per animation frame.
	ScrollLinesPerTick int `mapstructure:"scroll_lines_per_tick"`
	// ScrollTickMs is the animation frame interval in milliseconds.
	ScrollTickMs int `mapstructure:"scroll_tick_ms"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives logs; the TUI owns the terminal so this defaults to a file.
	File string `mapstructure:"file"`
}

// PathsConfig locates on-disk state.
type PathsConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ScrollTick returns the animation interval as a duration.
func (c *TourConfig) ScrollTick() time.Duration {
	return time.Duration(c.ScrollTickMs) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	dataDir := DataDir()
	return &Config{
		TUI: TUIConfig{
			Theme: "default",
			Mouse: true,
		},
		Tour: TourConfig{
			Radius:             6,
			ClickInCircle:      true,
			ScrollLinesPerTick: 2,
			ScrollTickMs:       16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   filepath.Join(dataDir, "showcase.log"),
		},
		Paths: PathsConfig{
			DataDir: dataDir,
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.mouse", defaults.TUI.Mouse)

	viper.SetDefault("tour.radius", defaults.Tour.Radius)
	viper.SetDefault("tour.click_in_circle", defaults.Tour.ClickInCircle)
	viper.SetDefault("tour.scroll_lines_per_tick", defaults.Tour.ScrollLinesPerTick)
	viper.SetDefault("tour.scroll_tick_ms", defaults.Tour.ScrollTickMs)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
	viper.SetDefault("logging.file", defaults.Logging.File)

	viper.SetDefault("paths.data_dir", defaults.Paths.DataDir)
}

// Init points viper at the config file and environment. An explicit file
// must exist; the default file is optional.
func Init(file string) error {
	SetDefaults()
	viper.SetEnvPrefix("SHOWCASE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}

	viper.SetConfigFile(ConfigFile())
	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", ConfigFile(), err)
	}
	return nil
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() []error {
	var errs []error

	if _, ok := styles.Themes[c.TUI.Theme]; !ok {
		errs = append(errs, fmt.Errorf("tui.theme: unknown theme %q", c.TUI.Theme))
	}
	if c.Tour.Radius <= 0 {
		errs = append(errs, fmt.Errorf("tour.radius must be greater than 0"))
	}
	if c.Tour.ScrollLinesPerTick <= 0 {
		errs = append(errs, fmt.Errorf("tour.scroll_lines_per_tick must be greater than 0"))
	}
	if c.Tour.ScrollTickMs <= 0 {
		errs = append(errs, fmt.Errorf("tour.scroll_tick_ms must be greater than 0"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		errs = append(errs, fmt.Errorf("paths.data_dir is required"))
	}

	return errs
}

// ValidationErrors collects config validation failures.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, err := range v {
		parts = append(parts, err.Error())
	}
	return "invalid config: " + strings.Join(parts, "; ")
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "showcase")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".showcase"
	}
	return filepath.Join(home, ".config", "showcase")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the default directory for the database and logs.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "showcase")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".showcase"
	}
	return filepath.Join(home, ".local", "share", "showcase")
}
