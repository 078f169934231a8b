package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeStdio {
		t.Errorf("DefaultConfig() Mode = %s, want %s", cfg.Mode, ModeStdio)
	}
	if cfg.Host != DefaultHost {
		t.Errorf("DefaultConfig() Host = %s, want %s", cfg.Host, DefaultHost)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("DefaultConfig() Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("DefaultConfig() LogLevel = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.ServerName != "pdf-navigator" {
		t.Errorf("DefaultConfig() ServerName = %s, want pdf-navigator", cfg.ServerName)
	}
	if cfg.Version == "" {
		t.Error("DefaultConfig() Version should not be empty")
	}
	if !strings.HasSuffix(cfg.SettingsPath, DefaultSettingsFileName) {
		t.Errorf("DefaultConfig() SettingsPath = %s, want a %s path", cfg.SettingsPath, DefaultSettingsFileName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid stdio config",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sse config",
			mutate: func(c *Config) { c.Mode = ModeSSE },
		},
		{
			name:   "valid http config",
			mutate: func(c *Config) { c.Mode = ModeHTTP },
		},
		{
			name:    "unknown transport",
			mutate:  func(c *Config) { c.Mode = "server" },
			wantErr: "unknown transport: server (must be one of: stdio, sse, http)",
		},
		{
			name:    "port too low for sse",
			mutate:  func(c *Config) { c.Mode = ModeSSE; c.Port = 0 },
			wantErr: "port must be between 1 and 65535",
		},
		{
			name:    "port too high for http",
			mutate:  func(c *Config) { c.Mode = ModeHTTP; c.Port = 70000 },
			wantErr: "port must be between 1 and 65535",
		},
		{
			// stdio never binds a socket, so the port is not checked
			name:   "bad port ignored for stdio",
			mutate: func(c *Config) { c.Port = 0 },
		},
		{
			name:    "empty settings path",
			mutate:  func(c *Config) { c.SettingsPath = "" },
			wantErr: "settings path cannot be empty",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level: verbose (must be one of: debug, info, warn, error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 9090}
	if got := cfg.Address(); got != "0.0.0.0:9090" {
		t.Errorf("Address() = %s, want 0.0.0.0:9090", got)
	}
}

func TestModeHelpers(t *testing.T) {
	tests := []struct {
		logLevel  string
		mode      string
		wantDebug bool
		wantStdio bool
	}{
		{"debug", ModeStdio, true, true},
		{"info", ModeStdio, false, true},
		{"debug", ModeSSE, true, false},
		{"warn", ModeHTTP, false, false},
	}

	for _, tt := range tests {
		cfg := &Config{Mode: tt.mode, LogLevel: tt.logLevel}
		if cfg.IsDebug() != tt.wantDebug {
			t.Errorf("IsDebug() with LogLevel=%s: got %v, want %v", tt.logLevel, cfg.IsDebug(), tt.wantDebug)
		}
		if cfg.IsStdioMode() != tt.wantStdio {
			t.Errorf("IsStdioMode() with Mode=%s: got %v, want %v", tt.mode, cfg.IsStdioMode(), tt.wantStdio)
		}
	}
}

func TestString(t *testing.T) {
	cfg := &Config{
		Mode:         ModeSSE,
		Host:         "127.0.0.1",
		Port:         8081,
		SettingsPath: "/home/u/.pdf-navigator-config.json",
		LogLevel:     "info",
	}

	got := cfg.String()
	for _, part := range []string{"sse", "127.0.0.1", "8081", ".pdf-navigator-config.json", "info"} {
		if !strings.Contains(got, part) {
			t.Errorf("String() = %q, missing %q", got, part)
		}
	}
}
