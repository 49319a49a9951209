package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lanestel/admin-gateway/internal/api/http"
	"github.com/lanestel/admin-gateway/internal/auth"
	"github.com/lanestel/admin-gateway/internal/provisioning"
	"github.com/spf13/viper"
)

type Config struct {
	Log      LogConfig
	Http     http.Config
	Auth     auth.Config
	Upstream provisioning.Config
}

var config Config

func InitConfig() {
	var err error

	_ = godotenv.Load()

	viper.SetConfigName("application")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./cmd/admin-gateway")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("auth.admin_username", "ADMIN_USER")
	_ = viper.BindEnv("auth.admin_password", "ADMIN_PASSWORD")
	_ = viper.BindEnv("auth.jwt.secret", "SESSION_SECRET")
	_ = viper.BindEnv("upstream.url", "UPSTREAM_URL")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		panic(err)
	}

	if err := validateConfig(&config); err != nil {
		panic(err)
	}

	// Initialize logger with configured log level
	initLogger(config.Log.Level)

	// Pretty print config as JSON (only at DEBUG level); secrets are
	// redacted first.
	if strings.ToUpper(config.Log.Level) == LOG_LEVEL_DEBUG {
		redacted := config
		redacted.Auth.AdminPassword = "***"
		redacted.Auth.JWT.Secret = "***"
		configJSON, err := json.MarshalIndent(redacted, "", "  ")
		if err == nil {
			fmt.Println("Config loaded:")
			fmt.Println(string(configJSON))
		}
	}
}

func validateConfig(c *Config) error {
	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("auth.admin_username and auth.admin_password are required (ADMIN_USER / ADMIN_PASSWORD)")
	}
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required (SESSION_SECRET)")
	}
	if c.Auth.JWT.Lifetime <= 0 {
		return fmt.Errorf("auth.jwt.lifetime must be positive")
	}
	if c.Upstream.URL == "" {
		return fmt.Errorf("upstream.url is required (UPSTREAM_URL)")
	}
	return nil
}
