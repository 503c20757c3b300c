package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/nozzle/prng/generator"
)

// Config holds the settings shared by every command. Values come from the
// defaults, then prng.yaml, then PRNG_* environment variables, then flags.
type Config struct {
	// Algorithm is the uniform generator name, see "prng list".
	// Default: "xorshift128"
	Algorithm string `mapstructure:"algorithm"`

	// Seed for the generator. Ignored when RandomSeed is set.
	// Default: 0
	Seed uint32 `mapstructure:"seed"`

	// RandomSeed seeds from generator.NewSeed.
	// Default: true
	RandomSeed bool `mapstructure:"random_seed"`

	// Count is the number of draws per command.
	// Default: 10
	Count int `mapstructure:"count"`

	// Streams splits sampling into independently seeded generators.
	// Default: 1
	Streams int `mapstructure:"streams"`

	// Workers bounds the goroutines used by bench and multi-stream sample.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	Workers int `mapstructure:"workers"`

	// LogLevel is a zerolog level name.
	// Default: "info"
	LogLevel string `mapstructure:"log_level"`

	// ConfigFile is an explicit config path; empty searches for prng.yaml.
	ConfigFile string `mapstructure:"config_file"`
}

// DefaultConfig returns the default CLI configuration.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:  generator.Default.String(),
		Seed:       0,
		RandomSeed: true,
		Count:      10,
		Streams:    1,
		Workers:    0,
		LogLevel:   zerolog.LevelInfoValue,
	}
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"algorithm": "algorithm",
	"seed":      "seed",
	"count":     "count",
	"streams":   "streams",
	"workers":   "workers",
	"log-level": "log_level",
}

// LoadConfig loads configuration from file, environment, and flags, in that
// order of precedence.
func LoadConfig(c *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("algorithm", cfg.Algorithm)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("random_seed", cfg.RandomSeed)
	v.SetDefault("count", cfg.Count)
	v.SetDefault("streams", cfg.Streams)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("log_level", cfg.LogLevel)

	if path := c.String("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("prng")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.prng")
	}
	v.SetEnvPrefix("PRNG")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			v.Set(key, c.Value(flag))
		}
	}
	// An explicit seed means the run is meant to be reproducible, unless the
	// same sources also ask for a random seed.
	seedSet := v.InConfig("seed") || envSet("seed")
	randomSet := v.InConfig("random_seed") || envSet("random_seed")
	if c.IsSet("seed") || (seedSet && !randomSet) {
		v.Set("random_seed", false)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	if cfg.RandomSeed {
		cfg.Seed = generator.NewSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv("PRNG_" + strings.ToUpper(key))
	return ok
}

// Validate checks the values a command depends on.
func (cfg *Config) Validate() error {
	if _, err := generator.ParseAlgorithm(cfg.Algorithm); err != nil {
		return err
	}
	if cfg.Count < 0 {
		return fmt.Errorf("count must not be negative (count=%d)", cfg.Count)
	}
	if cfg.Streams < 1 {
		return fmt.Errorf("streams must be at least 1 (streams=%d)", cfg.Streams)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Generator builds the configured generator, offset by stream so that
// streams of one run do not share a sequence.
func (cfg *Config) Generator(stream int) (*generator.Generator, error) {
	alg, err := generator.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	return generator.New(alg, cfg.Seed+uint32(stream))
}

// loadConfig loads the configuration for a command and applies its log level
// unless the flag already set one.
func loadConfig(c *cli.Context) (*Config, error) {
	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, err
	}
	if !c.IsSet("log-level") {
		level, _ := zerolog.ParseLevel(cfg.LogLevel)
		log = log.Level(level)
	}
	log.Debug().
		Str("config_file", cfg.ConfigFile).
		Str("algorithm", cfg.Algorithm).
		Uint32("seed", cfg.Seed).
		Msg("configuration loaded")
	return cfg, nil
}
