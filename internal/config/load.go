package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables consumed by the
// application, e.g. BRICA_DATABASE_URL maps to database.url.
const envPrefix = "BRICA"

// configKeys lists every known configuration key so that viper picks up the
// corresponding environment variable even when no default exists for it.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"database.url",
	"storage.uri",
	"storage.database",
	"storage.bucket",
	"storage.public_url",
	"auth.jwt_secret",
	"auth.token_lifetime_minutes",
	"auth.bcrypt_cost",
	"email.api_key",
	"email.sender",
}

// Load reads configuration from environment variables and returns a
// validated Config. Environment variables use the BRICA_ prefix with dots
// replaced by underscores (e.g. BRICA_AUTH_JWT_SECRET).
// Returns an error if a required setting is missing or malformed; callers
// are expected to treat that as fatal.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for settings that have sensible ones. Connection settings
	// and secrets deliberately have no defaults.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("storage.database", "brica")
	v.SetDefault("storage.bucket", "listings")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 selects the bcrypt package default

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
