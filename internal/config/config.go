package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the user database connection settings.
// A missing URL is fatal at startup.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// StorageConfig contains the object store connection settings.
// Listing images and their metadata live in a GridFS bucket inside the
// configured MongoDB database. PublicURL is the externally reachable base
// under which stored objects resolve.
type StorageConfig struct {
	URI       string `mapstructure:"uri"        validate:"required"`
	Database  string `mapstructure:"database"   validate:"required"`
	Bucket    string `mapstructure:"bucket"     validate:"required"`
	PublicURL string `mapstructure:"public_url" validate:"required,url"`
}

// AuthConfig contains authentication and session settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"omitempty,gte=4,lte=31"`
}

// EmailConfig contains the notification provider settings.
// The API key is optional: without one, checkout notifications are logged
// instead of sent, since checkout is best-effort by contract.
type EmailConfig struct {
	APIKey string `mapstructure:"api_key"`
	Sender string `mapstructure:"sender" validate:"omitempty,email"`
}
