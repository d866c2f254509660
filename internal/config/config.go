package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Editor EditorConfig
	Log    LogConfig
	Seed   SeedConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme    string
	Title    string
	Currency string
	NoColor  bool `mapstructure:"no_color"`
}

// EditorConfig holds item form settings.
type EditorConfig struct {
	DefaultPrice float64 `mapstructure:"default_price"`
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path string
}

// SeedConfig points at an optional file of items loaded at start.
type SeedConfig struct {
	Path string
}

// New returns a viper instance with defaults and env overrides (prefix
// GOODS_) applied. cfgPath, when set, names the config file; otherwise
// $GOODS_CONFIG or ~/.config/goods/config.* is used if present.
func New(cfgPath string) *viper.Viper {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.title", "Goods")
	v.SetDefault("ui.currency", "")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("editor.default_price", 1.0)
	v.SetDefault("log.path", "")
	v.SetDefault("seed.path", "")

	if cfgPath == "" {
		cfgPath = os.Getenv("GOODS_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "goods"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GOODS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and decodes v. A missing file in the
// default location is not an error; a missing explicit file is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrapf(err, "failed to read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to unmarshal config")
	}
	if c.Editor.DefaultPrice <= 0 {
		return Config{}, errors.Errorf("editor.default_price must be greater than 0, got %v", c.Editor.DefaultPrice)
	}
	return c, nil
}
