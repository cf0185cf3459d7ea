package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds the settings of the lexicon command.
type Config struct {
	CaseSensitive bool     `mapstructure:"case_sensitive"`
	Normalise     bool     `mapstructure:"normalise"`
	LogLevel      string   `mapstructure:"log_level"`
	WordLists     []string `mapstructure:"word_lists"`
}

// Load reads configuration from the file at path, if any, and from LEXICON_*
// environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("lexicon")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("case_sensitive", false)
	v.SetDefault("normalise", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("word_lists", []string{})
}

// Level returns the zerolog level named by LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level: %q", c.LogLevel)
}

// Validate checks that LogLevel names a known level and that no word list
// path is blank.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for _, path := range c.WordLists {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("word list path cannot be empty")
		}
	}
	return nil
}
