package config

import (
	"time"
)

// Config holds the environment-driven settings for the data service.
// Values are read once at startup; the legacy web.config transforms map
// onto plain environment variables here.
type Config struct {
	Host        string
	Port        string
	PublicURL   string
	APIPrefix   string
	Environment string
	LogLevel    string

	// Legacy SOAP endpoint path. The .svc alias is always registered alongside.
	SOAPPath string

	// Empty or whitespace-only names in GetData are replaced with "Guest"
	// when enabled. Some legacy variants returned "Hello ," literally.
	GuestFallback bool

	SessionCookieName  string
	SessionIdleTimeout time.Duration

	CORSAllowedOrigins []string

	RedisURL string
}

// Load reads the service configuration from the environment
func Load() *Config {
	return &Config{
		Host:               GetEnv("HOST", "0.0.0.0"),
		Port:               GetEnv("PORT", "8080"),
		PublicURL:          GetEnv("PUBLIC_URL", "http://localhost:8080"),
		APIPrefix:          GetEnv("API_PREFIX", "/api"),
		Environment:        GetEnv("ENVIRONMENT", "development"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		SOAPPath:           GetEnv("SOAP_PATH", "/GetDataService.asmx"),
		GuestFallback:      GetBoolEnv("GETDATA_GUEST_FALLBACK", true),
		SessionCookieName:  GetEnv("SESSION_COOKIE_NAME", "DATASVC_SESSION"),
		SessionIdleTimeout: GetDurationEnv("SESSION_IDLE_TIMEOUT", 20*time.Minute),
		CORSAllowedOrigins: GetSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RedisURL:           GetEnv("REDIS_URL", "redis://localhost:6379"),
	}
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return !c.IsProduction()
}
