package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"SEABATTLE_LOG_LEVEL" env-default:"info"`
	LogFile        string `yaml:"log-file" env:"SEABATTLE_LOG_FILE" env-default:"seabattle.log"`
	Seed           int64  `yaml:"seed" env:"SEABATTLE_SEED" env-default:"0"`
	RevealBotFleet bool   `yaml:"reveal-bot-fleet" env:"SEABATTLE_REVEAL_BOT_FLEET" env-default:"false"`
	Redis          Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"SEABATTLE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"SEABATTLE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"SEABATTLE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads .env next to the process (when present) and then the yaml file at path.
// A missing yaml file falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
