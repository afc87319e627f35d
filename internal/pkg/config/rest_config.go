package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WARDROBE_DATABASE_DSN
const EnvPrefix = "WARDROBE"

// RestConfig holds everything the REST API needs to start
type RestConfig struct {
	Port         string               `mapstructure:"port" validate:"required,numeric"`
	AllowOrigins []string             `mapstructure:"allow_origins" validate:"required,min=1"`
	Database     DatabaseSettings     `mapstructure:"database"`
	Logger       LoggerSettings       `mapstructure:"logger"`
	PhotoStorage PhotoStorageSettings `mapstructure:"photo_storage"`
	Auth         AuthSettings         `mapstructure:"auth"`
	Weather      WeatherSettings      `mapstructure:"weather"`
	Stylist      StylistSettings      `mapstructure:"stylist"`
	Redis        RedisSettings        `mapstructure:"redis"`
	Telemetry    TelemetrySettings    `mapstructure:"telemetry"`
}

// legacyEnv maps the variable names of the original deployment onto config keys
var legacyEnv = map[string]string{
	"port":            "PORT",
	"weather.api_key": "OPENWEATHER_KEY",
	"stylist.api_key": "ANTHROPIC_KEY",
	"auth.jwt_secret": "SUPABASE_JWT_SECRET",
	"database.dsn":    "DATABASE_URL",
}

// InitializeRestConfig loads .env (if present), the YAML file at path (if present)
// and environment overrides, then validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "Port", "AllowOrigins"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.PhotoStorage,
		&c.Auth,
		&c.Weather,
		&c.Stylist,
		&c.Redis,
	}
	for _, s := range validators {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	if err := validate.Struct(&c.Telemetry); err != nil {
		return fmt.Errorf("validation failed for TelemetrySettings: %w", err)
	}
	return nil
}

// setDefaults registers every key so that AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("allow_origins", []string{"*"})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "wardrobe.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("photo_storage.provider", LocalStorageProvider)
	v.SetDefault("photo_storage.connection_string", "")
	v.SetDefault("photo_storage.container_name", "clothing-photos")
	v.SetDefault("photo_storage.local_path", "./data/clothing-photos")
	v.SetDefault("photo_storage.max_upload_bytes", 5*1024*1024)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "wardrobe-app")
	v.SetDefault("auth.audience", "authenticated")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.base_url", "https://api.openweathermap.org")
	v.SetDefault("weather.timeout", 10*time.Second)
	v.SetDefault("weather.cache_ttl", 10*time.Minute)

	v.SetDefault("stylist.api_key", "")
	v.SetDefault("stylist.base_url", "https://api.anthropic.com")
	v.SetDefault("stylist.model", "claude-sonnet-4-6")
	v.SetDefault("stylist.max_tokens", 512)
	v.SetDefault("stylist.timeout", 60*time.Second)
	v.SetDefault("stylist.max_attempts", 3)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("telemetry.tracing_enabled", false)
	v.SetDefault("telemetry.service_name", "wardrobe-rest-api")
}
