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
	UI   UIConfig   `mapstructure:"ui" json:"ui"`
	Log  LogConfig  `mapstructure:"log" json:"log"`
	Demo DemoConfig `mapstructure:"demo" json:"demo"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	InitialTab    string `mapstructure:"initial_tab" json:"initial_tab,omitempty" jsonschema:"description=Title or id of the tab shown first"`
	HeaderWidth   int    `mapstructure:"header_width" json:"header_width" jsonschema:"minimum=0,description=Maximum cells per tab label; 0 disables truncation"`
	ActiveColor   string `mapstructure:"active_color" json:"active_color" jsonschema:"description=Background of the active tab"`
	InactiveColor string `mapstructure:"inactive_color" json:"inactive_color" jsonschema:"description=Foreground of inactive tabs"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
	File   string `mapstructure:"file" json:"file" jsonschema:"description=Log destination while the TUI owns the terminal"`
}

// DemoConfig drives the background steps of the demo screen.
type DemoConfig struct {
	Steps     []string      `mapstructure:"steps" json:"steps" jsonschema:"minItems=1"`
	StepDelay time.Duration `mapstructure:"step_delay" json:"step_delay" jsonschema:"description=Pause between steps such as 500ms"`
}

var DefaultSteps = []string{"Login", "Load goods", "Check stock", "Exchange"}

// Path is the config file location: $TEAKIT_CONFIG, or
// ~/.config/teakit/config.toml.
func Path() string {
	if p := os.Getenv("TEAKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "teakit", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.initial_tab", "")
	v.SetDefault("ui.header_width", 16)
	v.SetDefault("ui.active_color", "#89b4fa")
	v.SetDefault("ui.inactive_color", "#a6adc8")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "teakit.log"))
	v.SetDefault("demo.steps", DefaultSteps)
	v.SetDefault("demo.step_delay", "400ms")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("TEAKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// decode reads the file if present and unmarshals the merged settings.
func decode(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	normalize(&c)
	return c, nil
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

func normalize(c *Config) {
	c.UI.HeaderWidth = max(0, c.UI.HeaderWidth)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	steps := c.Demo.Steps[:0]
	for _, s := range c.Demo.Steps {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	c.Demo.Steps = steps
	if len(c.Demo.Steps) == 0 {
		c.Demo.Steps = append([]string(nil), DefaultSteps...)
	}
	c.Demo.StepDelay = max(0, c.Demo.StepDelay)
}

// Load reads configuration from file and env. Env var overrides use prefix TEAKIT_.
// A missing file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

func LoadFile(path string) (Config, error) {
	return decode(newViper(path))
}

// Save writes cfg to the config path, creating the directory if needed.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

func SaveFile(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for key, val := range Settings(cfg) {
		v.Set(key, val)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Settings flattens cfg into dotted keys as they appear in the file.
func Settings(cfg Config) map[string]any {
	return map[string]any{
		"ui.initial_tab":    cfg.UI.InitialTab,
		"ui.header_width":   cfg.UI.HeaderWidth,
		"ui.active_color":   cfg.UI.ActiveColor,
		"ui.inactive_color": cfg.UI.InactiveColor,
		"log.level":         cfg.Log.Level,
		"log.format":        cfg.Log.Format,
		"log.file":          cfg.Log.File,
		"demo.steps":        cfg.Demo.Steps,
		"demo.step_delay":   cfg.Demo.StepDelay.String(),
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
