package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	DiscordToken       string
	CommandPrefix      string
	SettleDelaySeconds int
	HealthPort         string
	BotsFile           string
}

// Load reads configuration from environment variables. In development it
// first loads a .env file from the working directory, if one exists.
func Load() (Config, error) {
	if getEnv("SAUCIER_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:                getEnv("SAUCIER_ENV", "development"),
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		CommandPrefix:      getEnv("COMMAND_PREFIX", "*"),
		SettleDelaySeconds: getEnvInt("SETTLE_DELAY_SECONDS", 3),
		HealthPort:         getEnv("HEALTH_PORT", "8080"),
		BotsFile:           getEnv("BOTS_FILE", ""),
	}

	if cfg.DiscordToken == "" {
		return Config{}, fmt.Errorf("DISCORD_TOKEN is required")
	}

	return cfg, nil
}

// SettleDelay is the pause between parsing a confirmation message and
// sending the translated command downstream.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelaySeconds) * time.Second
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
