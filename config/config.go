package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `mapstructure:"APPNAME" json:"appname"`
	AppEnv  string `mapstructure:"APPENV" json:"appenv"`
	AppPort uint16 `mapstructure:"APPPORT" json:"appport"`
	GinMode string `mapstructure:"GINMODE" json:"ginmode"`

	DBDriver string `mapstructure:"DBDRIVER" json:"dbdriver"`
	DBHost   string `mapstructure:"DBHOST" json:"dbhost"`
	DBPort   uint16 `mapstructure:"DBPORT" json:"dbport"`
	DBName   string `mapstructure:"DBNAME" json:"dbname"`
	DBUser   string `mapstructure:"DBUSER" json:"dbuser"`
	DBPass   string `mapstructure:"DBPASS" json:"-"`

	JWTSecret   string        `mapstructure:"JWTSECRET" json:"-"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL" json:"token_ttl"`
	TokenIssuer string        `mapstructure:"TOKEN_ISSUER" json:"token_issuer"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS" json:"cors_origins"`
	TimeZone    string   `mapstructure:"TIMEZONE" json:"timezone"`
	PhoneMin    uint64   `mapstructure:"PHONE_MIN" json:"phone_min"`
	PhoneMax    uint64   `mapstructure:"PHONE_MAX" json:"phone_max"`

	RedisEnabled  bool   `mapstructure:"REDIS_ENABLED" json:"redis_enabled"`
	RedisAddr     string `mapstructure:"REDIS_ADDR" json:"redis_addr"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD" json:"-"`
	RedisDB       int    `mapstructure:"REDIS_DB" json:"redis_db"`

	LoginRateLimit  int           `mapstructure:"LOGIN_RATE_LIMIT" json:"login_rate_limit"`
	LoginRateWindow time.Duration `mapstructure:"LOGIN_RATE_WINDOW" json:"login_rate_window"`

	WhatsAppAPIURL      string `mapstructure:"WHATSAPP_API_URL" json:"whatsapp_api_url"`
	WhatsAppAccessToken string `mapstructure:"WHATSAPP_ACCESS_TOKEN" json:"-"`
	WhatsAppCountryCode string `mapstructure:"WHATSAPP_COUNTRY_CODE" json:"whatsapp_country_code"`
	ReminderEnabled     bool   `mapstructure:"REMINDER_ENABLED" json:"reminder_enabled"`
	ReminderAt          string `mapstructure:"REMINDER_AT" json:"reminder_at"`

	SentryDSN         string        `mapstructure:"SENTRY_DSN" json:"-"`
	GeoIPDBPath       string        `mapstructure:"GEOIP_DB_PATH" json:"geoip_db_path"`
	ReferenceCacheTTL time.Duration `mapstructure:"REFERENCE_CACHE_TTL" json:"reference_cache_ttl"`
	LogLevel          string        `mapstructure:"LOG_LEVEL" json:"log_level"`

	location *time.Location
}

var configKeys = []string{
	"APPNAME", "APPENV", "APPPORT", "GINMODE",
	"DBDRIVER", "DBHOST", "DBPORT", "DBNAME", "DBUSER", "DBPASS",
	"JWTSECRET", "TOKEN_TTL", "TOKEN_ISSUER",
	"CORS_ORIGINS", "TIMEZONE", "PHONE_MIN", "PHONE_MAX",
	"REDIS_ENABLED", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"LOGIN_RATE_LIMIT", "LOGIN_RATE_WINDOW",
	"WHATSAPP_API_URL", "WHATSAPP_ACCESS_TOKEN", "WHATSAPP_COUNTRY_CODE",
	"REMINDER_ENABLED", "REMINDER_AT",
	"SENTRY_DSN", "GEOIP_DB_PATH", "REFERENCE_CACHE_TTL", "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APPNAME", "Dentist API")
	v.SetDefault("APPENV", "development")
	v.SetDefault("APPPORT", 8080)
	v.SetDefault("GINMODE", "debug")
	v.SetDefault("DBDRIVER", "mysql")
	v.SetDefault("DBHOST", "localhost")
	v.SetDefault("DBPORT", 3306)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("TOKEN_ISSUER", "dentist-api")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("PHONE_MIN", 1000000000)
	v.SetDefault("PHONE_MAX", 9999999999)
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOGIN_RATE_LIMIT", 5)
	v.SetDefault("LOGIN_RATE_WINDOW", "15m")
	v.SetDefault("WHATSAPP_COUNTRY_CODE", "91")
	v.SetDefault("REMINDER_ENABLED", false)
	v.SetDefault("REMINDER_AT", "08:00")
	v.SetDefault("REFERENCE_CACHE_TTL", "10m")
	v.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig reads an optional .env file and the process environment into a Config.
// It is meant to be called once at startup; the result is passed to every component.
func LoadConfig() (*Config, error) {
	// A missing .env is fine: containers usually inject the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// viper only splits slices coming from config files, not from env strings.
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values LoadConfig cannot default sensibly and resolves the time zone.
func (c *Config) Validate() error {
	if c.JWTSecret == "" && !c.IsTest() {
		return errors.New("JWTSECRET is required")
	}
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DBDRIVER %q", c.DBDriver)
	}
	if c.PhoneMin > c.PhoneMax {
		return fmt.Errorf("PHONE_MIN %d is greater than PHONE_MAX %d", c.PhoneMin, c.PhoneMax)
	}
	if _, err := time.Parse("15:04", c.ReminderAt); err != nil {
		return fmt.Errorf("invalid REMINDER_AT %q: %w", c.ReminderAt, err)
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	c.location = loc
	return nil
}

// Location returns the clinic's time zone, UTC when it has not been resolved.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// IsTest reports whether the application runs under the test environment.
func (c *Config) IsTest() bool {
	return c.AppEnv == "test"
}

// IsDev reports whether the application runs in development mode.
func (c *Config) IsDev() bool {
	return c.AppEnv == "development"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
