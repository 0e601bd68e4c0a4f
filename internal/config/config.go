package config

import (
	"log"

	"github.com/spf13/viper"
)

// DefaultAdminPassword is the bootstrap credential used when the config file
// does not set one. Startup warns loudly while it is in effect.
const DefaultAdminPassword = "admin123"

type Config struct {
	DatabaseURL string          `mapstructure:"database_url"`
	Server      ServerConfig    `mapstructure:"server"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Email       EmailConfig     `mapstructure:"email"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// PublicBaseURL is the origin the public invitation site is served from.
	// QR codes and shareable links are built against it.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type RateLimitConfig struct {
	// RequestsPerMinute applies per client IP on the public submission
	// endpoints. Zero disables limiting.
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

// Load reads the configuration from a YAML file and returns a Config instance.
func Load() *Config {
	v := viper.New()

	// Look for config in the current directory and ./config
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("Error unmarshalling config: %v", err)
	}

	// Fallback defaults
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if config.Server.PublicBaseURL == "" {
		config.Server.PublicBaseURL = "http://localhost:" + config.Server.Port
	}

	if config.Auth.JWTSecret == "" {
		log.Fatal("JWT secret must be set in the config file")
	}
	if config.Auth.TokenTTLHours <= 0 {
		config.Auth.TokenTTLHours = 24
	}
	if config.Auth.AdminEmail == "" {
		config.Auth.AdminEmail = "admin@vivahalink.com"
	}
	if config.Auth.AdminPassword == "" {
		config.Auth.AdminPassword = DefaultAdminPassword
	}

	if config.Email.SMTPPort == 0 {
		config.Email.SMTPPort = 587
	}

	if config.RateLimit.RequestsPerMinute < 0 {
		config.RateLimit.RequestsPerMinute = 0
	}
	if config.RateLimit.Burst <= 0 {
		config.RateLimit.Burst = 5
	}

	return &config
}
