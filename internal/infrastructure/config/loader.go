package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal images

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		// Not fatal: the environment may already carry every value
		fmt.Println("Warning: Could not load .env file:", err)
	}

	// Get environment
	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	// Add config paths
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadFromReader builds configuration from YAML content, applying the same
// defaults and environment overrides as LoadConfig
func LoadFromReader(env string, content string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return decode(v, env)
}

// decode applies environment overrides and unmarshals the result
func decode(v *viper.Viper, env string) (*Config, error) {
	// Set environment variables to override config
	v.SetEnvPrefix("YOZI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set the environment in the config
	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil // Successfully loaded .env file
			} else {
				lastError = err
			}
		}
	}

	// Return the last error encountered if no .env file was successfully loaded
	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("timezone", "Asia/Seoul")

	// Non-critical server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	// Database defaults for non-sensitive settings
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	// Session defaults; the secret has none and must be configured
	v.SetDefault("auth.jwtExpiration", 60*24) // minutes
	v.SetDefault("auth.stateCookieSecure", true)

	// Provider scopes
	v.SetDefault("oauth.google.scopes", []string{"openid", "email", "profile"})
	v.SetDefault("oauth.kakao.scopes", []string{"profile_nickname", "account_email"})

	// Optional features
	v.SetDefault("cors.allowOrigins", []string{"http://localhost:*"})
	v.SetDefault("category.seedOnStartup", true)
	v.SetDefault("analysis.priorMonthSummary", false)
	v.SetDefault("analysis.recordedDays", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("profiling.enabled", false)
}

// getEnvironment determines the environment to use based on YOZI_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("YOZI_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	// Credentials and endpoints
	stringOverrides := map[string]string{
		"YOZI_DB_DRIVER":             "database.driver",
		"YOZI_DB_HOST":               "database.host",
		"YOZI_DB_PORT":               "database.port",
		"YOZI_DB_USERNAME":           "database.username",
		"YOZI_DB_PASSWORD":           "database.password",
		"YOZI_DB_NAME":               "database.database",
		"YOZI_DB_SSL_MODE":           "database.sslMode",
		"YOZI_SERVER_HOST":           "server.host",
		"YOZI_SERVER_PORT":           "server.port",
		"YOZI_LOGGER_LEVEL":          "logger.level",
		"YOZI_TIMEZONE":              "timezone",
		"YOZI_JWT_SECRET":            "auth.jwtSecret",
		"YOZI_AUTH_SUCCESS_REDIRECT": "auth.successRedirectUrl",
		"YOZI_AUTH_ERROR_REDIRECT":   "auth.errorRedirectUrl",
		"YOZI_GOOGLE_CLIENT_ID":      "oauth.google.clientId",
		"YOZI_GOOGLE_CLIENT_SECRET":  "oauth.google.clientSecret",
		"YOZI_GOOGLE_REDIRECT_URL":   "oauth.google.redirectUrl",
		"YOZI_KAKAO_CLIENT_ID":       "oauth.kakao.clientId",
		"YOZI_KAKAO_CLIENT_SECRET":   "oauth.kakao.clientSecret",
		"YOZI_KAKAO_REDIRECT_URL":    "oauth.kakao.redirectUrl",
	}
	for envKey, configKey := range stringOverrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}

	// Comma separated origin patterns
	if origins := os.Getenv("YOZI_CORS_ALLOW_ORIGINS"); origins != "" {
		v.Set("cors.allowOrigins", strings.Split(origins, ","))
	}

	// Numeric overrides, ignored when unset or malformed
	if maxOpenConns := getEnvInt("YOZI_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("YOZI_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("YOZI_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("YOZI_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if expiration := getEnvInt("YOZI_JWT_EXPIRATION_MINUTES", 0); expiration > 0 {
		v.Set("auth.jwtExpiration", expiration)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	// minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Auth.JWTExpiration = time.Duration(config.Auth.JWTExpiration) * time.Minute
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
