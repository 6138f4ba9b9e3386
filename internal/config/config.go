package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todo/internal/logging"
)

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	Title        string `mapstructure:"title"`
	EmptyMessage string `mapstructure:"empty_message"`
	Placeholder  string `mapstructure:"placeholder"`
	CharLimit    int    `mapstructure:"char_limit"`
	Width        int    `mapstructure:"width"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"theme":     "ui.theme",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// Load reads configuration from defaults, a TOML file, env and flags, in
// increasing priority. Env var overrides use prefix TADA_.
//
// The file is taken from the "config" flag, then TADA_CONFIG, then
// $HOME/.config/tada/config.toml. Only the last may be missing.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.title", "Todo List")
	v.SetDefault("ui.empty_message", "No todos yet. Add one above!")
	v.SetDefault("ui.placeholder", "Add a new todo...")
	v.SetDefault("ui.char_limit", 200)
	v.SetDefault("ui.width", 60)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TADA_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			cfgPath = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tada"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TADA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case cfgPath == "" && errors.Is(err, fs.ErrNotExist):
		default:
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

// Validate reports the first unusable value.
func (c Config) Validate() error {
	if c.UI.CharLimit <= 0 {
		return fmt.Errorf("%w: ui.char_limit must be positive, got %d", ErrInvalid, c.UI.CharLimit)
	}
	if c.UI.Width <= 0 {
		return fmt.Errorf("%w: ui.width must be positive, got %d", ErrInvalid, c.UI.Width)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
