// Package config loads the fin settings from defaults, a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the fin settings.
type Config struct {
	Ledger   LedgerConfig
	Forecast ForecastConfig
	Report   ReportConfig
	Log      LogConfig
}

// LedgerConfig locates the ledger document.
type LedgerConfig struct {
	File     string
	Currency string
}

// ForecastConfig tunes the forecast cache.
type ForecastConfig struct {
	CacheSize int `mapstructure:"cache_size"`
	Period    int
}

// ReportConfig holds presentation settings.
type ReportConfig struct {
	Large int64  // amounts at or above are flagged as large transactions
	Style string // glamour style, "auto" to detect the terminal background
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix FIN_.
func Load() (Config, error) {
	return load(os.Getenv("FIN_CONFIG"))
}

func load(cfgPath string) (Config, error) {
	v := viper.New()

	v.SetDefault("ledger.file", "ledger.json")
	v.SetDefault("ledger.currency", "KZT")
	v.SetDefault("forecast.cache_size", 1024)
	v.SetDefault("forecast.period", 3)
	v.SetDefault("report.large", 10000)
	v.SetDefault("report.style", "auto")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fin"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
