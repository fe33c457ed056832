package config

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.NWS.BaseURL != "https://api.weather.gov" {
		t.Errorf("NWS.BaseURL = %q", cfg.NWS.BaseURL)
	}
	if cfg.NWS.Timeout != 10*time.Second {
		t.Errorf("NWS.Timeout = %v, want 10s", cfg.NWS.Timeout)
	}
	if cfg.Display.MaxPeriods != 10 {
		t.Errorf("Display.MaxPeriods = %d, want 10", cfg.Display.MaxPeriods)
	}
	if cfg.Display.WrapWidth != 30 {
		t.Errorf("Display.WrapWidth = %d, want 30", cfg.Display.WrapWidth)
	}
	if cfg.Display.Celsius {
		t.Error("Display.Celsius = true, want Fahrenheit by default")
	}
	if cfg.Screens.IdleTimeout != 30*time.Minute || cfg.Screens.SweepInterval != time.Minute {
		t.Errorf("Screens = %+v, want 30m idle timeout swept every minute", cfg.Screens)
	}
	if cfg.GetServerAddr() != ":8080" {
		t.Errorf("GetServerAddr() = %q, want %q", cfg.GetServerAddr(), ":8080")
	}
}

func TestLoadFromReader(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "overrides",
			yaml: `
server:
  port: 9090
  ginmode: debug
nws:
  useragent: "my-app (me@example.com)"
  timeout: 3s
display:
  maxperiods: 5
  wrapwidth: 20
  celsius: true
location:
  latitude: 40.7128
  longitude: -74.006
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != 9090 {
					t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
				}
				if cfg.Server.GinMode != "debug" {
					t.Errorf("Server.GinMode = %q, want debug", cfg.Server.GinMode)
				}
				if cfg.NWS.UserAgent != "my-app (me@example.com)" {
					t.Errorf("NWS.UserAgent = %q", cfg.NWS.UserAgent)
				}
				if cfg.NWS.Timeout != 3*time.Second {
					t.Errorf("NWS.Timeout = %v, want 3s", cfg.NWS.Timeout)
				}
				if cfg.Display.MaxPeriods != 5 || cfg.Display.WrapWidth != 20 || !cfg.Display.Celsius {
					t.Errorf("Display = %+v", cfg.Display)
				}
				if cfg.Location.Latitude != 40.7128 || cfg.Location.Longitude != -74.006 {
					t.Errorf("Location = %+v", cfg.Location)
				}
				// untouched keys keep their defaults
				if cfg.NWS.BaseURL != "https://api.weather.gov" {
					t.Errorf("NWS.BaseURL = %q", cfg.NWS.BaseURL)
				}
			},
		},
		{
			name:        "zero wrap width",
			yaml:        "display:\n  wrapwidth: 0\n",
			wantErr:     true,
			errContains: "invalid config",
		},
		{
			name:        "latitude out of range",
			yaml:        "location:\n  latitude: 123\n",
			wantErr:     true,
			errContains: "Latitude",
		},
		{
			name:        "bad gin mode",
			yaml:        "server:\n  ginmode: verbose\n",
			wantErr:     true,
			errContains: "GinMode",
		},
		{
			name:        "malformed yaml",
			yaml:        "server: [",
			wantErr:     true,
			errContains: "failed to read config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromReader(strings.NewReader(tt.yaml))

			if tt.wantErr {
				if err == nil {
					t.Fatal("LoadFromReader() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("LoadFromReader() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadFromReader() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FHAPP_WEATHER_DISPLAY_WRAPWIDTH", "42")
	t.Setenv("FHAPP_WEATHER_NWS_USERAGENT", "env-agent")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Display.WrapWidth != 42 {
		t.Errorf("Display.WrapWidth = %d, want 42", cfg.Display.WrapWidth)
	}
	if cfg.NWS.UserAgent != "env-agent" {
		t.Errorf("NWS.UserAgent = %q, want env-agent", cfg.NWS.UserAgent)
	}
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "loud", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}}
			if got := cfg.LogLevel(); got != tt.want {
				t.Errorf("LogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_NewLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "json"}}
	logger := cfg.NewLoggerTo(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "component", "test")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record written at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) {
		t.Errorf("expected JSON warn record, got: %s", out)
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("logger not enabled at warn")
	}
}
