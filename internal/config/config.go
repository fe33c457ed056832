package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	NWS      NWSConfig
	Display  DisplayConfig
	Location LocationConfig
	Screens  ScreensConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int    `validate:"min=1,max=65535"`
	GinMode string `validate:"oneof=debug release test"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// NWSConfig holds settings for the api.weather.gov client
type NWSConfig struct {
	BaseURL   string        `validate:"required,url"`
	UserAgent string        `validate:"required"`
	Timeout   time.Duration `validate:"gt=0"`
}

// DisplayConfig controls how forecasts are presented
type DisplayConfig struct {
	MaxPeriods int  `validate:"min=1"` // periods listed in the detail view
	WrapWidth  int  `validate:"min=1"` // max characters per detail line
	Celsius    bool // initial unit preference
}

// LocationConfig is the fixed position used when no device position is given
type LocationConfig struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`
}

// ScreensConfig controls how long abandoned screen sessions are kept
type ScreensConfig struct {
	IdleTimeout   time.Duration `validate:"gt=0"` // evict screens not polled for this long
	SweepInterval time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Load reads configuration from .env, the config file, and environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	// A missing .env is fine; variables may come from the real environment.
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.fhapp-weather")

	setDefaults(v)

	// Read from environment variables, e.g. FHAPP_WEATHER_NWS_USERAGENT
	v.SetEnvPrefix("FHAPP_WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromReader reads YAML configuration from r on top of the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(v)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("nws.baseurl", "https://api.weather.gov")
	v.SetDefault("nws.useragent", "fhapp-weather (support@example.com)")
	v.SetDefault("nws.timeout", 10*time.Second)
	v.SetDefault("display.maxperiods", 10)
	v.SetDefault("display.wrapwidth", 30)
	v.SetDefault("display.celsius", false)
	v.SetDefault("location.latitude", 39.1154)
	v.SetDefault("location.longitude", -107.6584)
	v.SetDefault("screens.idletimeout", 30*time.Minute)
	v.SetDefault("screens.sweepinterval", time.Minute)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w instead of stdout.
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: c.LogLevel(),
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// LogLevel parses Log.Level, falling back to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
