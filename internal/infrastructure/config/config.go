package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Timezone    string         `mapstructure:"timezone"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	OAuth       OAuthConfig    `mapstructure:"oauth"`
	CORS        CORSConfig     `mapstructure:"cors"`
	Category    CategoryConfig `mapstructure:"category"`
	Analysis    AnalysisConfig `mapstructure:"analysis"`
	Metrics     FeatureToggle  `mapstructure:"metrics"`
	Profiling   FeatureToggle  `mapstructure:"profiling"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path or :memory: for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains session token and login redirect settings
type AuthConfig struct {
	JWTSecret          string        `mapstructure:"jwtSecret"`     // base64
	JWTExpiration      time.Duration `mapstructure:"jwtExpiration"` // minutes
	SuccessRedirectURL string        `mapstructure:"successRedirectUrl"`
	ErrorRedirectURL   string        `mapstructure:"errorRedirectUrl"`
	StateCookieSecure  bool          `mapstructure:"stateCookieSecure"`
}

// OAuthConfig holds the registered identity providers
type OAuthConfig struct {
	Google ProviderConfig `mapstructure:"google"`
	Kakao  ProviderConfig `mapstructure:"kakao"`
}

// ProviderConfig describes one OAuth client registration.
// Empty URLs fall back to the provider's well-known endpoints.
type ProviderConfig struct {
	ClientID     string   `mapstructure:"clientId"`
	ClientSecret string   `mapstructure:"clientSecret"`
	RedirectURL  string   `mapstructure:"redirectUrl"`
	AuthURL      string   `mapstructure:"authUrl"`
	TokenURL     string   `mapstructure:"tokenUrl"`
	UserInfoURL  string   `mapstructure:"userInfoUrl"`
	Scopes       []string `mapstructure:"scopes"`
}

// Enabled reports whether a client id is configured
func (p ProviderConfig) Enabled() bool {
	return p.ClientID != ""
}

// CORSConfig contains cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"` // glob patterns
}

// CategoryConfig controls the category registry
type CategoryConfig struct {
	SeedOnStartup bool `mapstructure:"seedOnStartup"`
}

// AnalysisConfig selects how the budget summaries are computed
type AnalysisConfig struct {
	PriorMonthSummary bool `mapstructure:"priorMonthSummary"` // previous figures from the prior month instead of the same one
	RecordedDays      bool `mapstructure:"recordedDays"`      // count real recorded days in habit feedback
}

// FeatureToggle switches an optional endpoint on or off
type FeatureToggle struct {
	Enabled bool `mapstructure:"enabled"`
}
