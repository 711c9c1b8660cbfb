package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Game    GameConfig    `mapstructure:"game"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Journal JournalConfig `mapstructure:"journal"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type GameConfig struct {
	Players []string `mapstructure:"players"`
	Locale  string   `mapstructure:"locale"`
}

// MetricsConfig leaves the metrics endpoint off when Address is empty.
type MetricsConfig struct {
	Address   string `mapstructure:"address"`
	Namespace string `mapstructure:"namespace"`
}

// JournalConfig turns on the JSON event journal on stderr.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var ErrInvalidPlayers = errors.New("game needs between 2 and 4 players")

// LoadConfig reads config.yaml from path. A missing file is not an error;
// defaults and LUDO_* environment variables still apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("game.players", []string{"Red", "Blue", "Yellow", "Green"})
	v.SetDefault("game.locale", "en")
	v.SetDefault("metrics.address", "")
	v.SetDefault("metrics.namespace", "ludo")
	v.SetDefault("journal.enabled", false)

	v.SetEnvPrefix("ludo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the seat count. Empty names are vacant seats and do not count.
func (c *Config) Validate() error {
	n := 0
	for _, name := range c.Game.Players {
		if strings.TrimSpace(name) != "" {
			n++
		}
	}
	if n < 2 || n > 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidPlayers, n)
	}
	return nil
}
