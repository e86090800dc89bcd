package config

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the service configuration
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Delay  DelayConfig
	Log    LogConfig

	// SeedData loads the demo data set at startup.
	SeedData bool
}

type ServerConfig struct {
	Port int
	Mode string // debug, release, test
}

type AuthConfig struct {
	Enabled     bool
	TokenSecret string
}

// DelayConfig bounds the simulated latency added to every stage of a route.
type DelayConfig struct {
	Enabled bool
	Min     time.Duration
	Max     time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

// Load reads envFile (or ./.env when empty) into the process environment
// and resolves the configuration from it. Variables already set in the
// environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "load env file %s", envFile)
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	} else if err != nil {
		logrus.Debug("No .env file found – relying on env vars")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("PORT"),
			Mode: v.GetString("GIN_MODE"),
		},
		Auth: AuthConfig{
			Enabled:     flag(v, "JWT_AUTH"),
			TokenSecret: v.GetString("TOKEN_SECRET"),
		},
		Delay: DelayConfig{
			Enabled: flag(v, "REQUEST_DELAY_ENABLE"),
			Min:     time.Duration(v.GetInt("REQUEST_DELAY_MIN_MS")) * time.Millisecond,
			Max:     time.Duration(v.GetInt("REQUEST_DELAY_MAX_MS")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		SeedData: flag(v, "SEED_DATA"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("JWT_AUTH", "false")
	v.SetDefault("REQUEST_DELAY_ENABLE", "false")
	v.SetDefault("REQUEST_DELAY_MIN_MS", 500)
	v.SetDefault("REQUEST_DELAY_MAX_MS", 1500)
	v.SetDefault("SEED_DATA", "true")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "./logs/app.log")
}

// flag treats only the literal "true" as enabled.
func flag(v *viper.Viper, key string) bool {
	return v.GetString(key) == "true"
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid PORT %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return errors.Errorf("invalid GIN_MODE %q, expected debug, release or test", c.Server.Mode)
	}
	if c.Auth.Enabled && c.Auth.TokenSecret == "" {
		return errors.New("TOKEN_SECRET is required when JWT_AUTH is enabled")
	}
	if c.Delay.Min < 0 || c.Delay.Max < c.Delay.Min {
		return errors.Errorf("invalid request delay bounds %s..%s", c.Delay.Min, c.Delay.Max)
	}
	return nil
}
