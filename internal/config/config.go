package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Transport modes
	ModeStdio = "stdio"
	ModeSSE   = "sse"
	ModeHTTP  = "http"

	// Default values
	DefaultPort     = 8080
	DefaultHost     = "127.0.0.1"
	DefaultLogLevel = "info"

	// DefaultSettingsFileName is the well-known persisted settings file,
	// resolved against the user's home directory.
	DefaultSettingsFileName = ".pdf-navigator-config.json"
)

// Config holds the process-level configuration for the PDF navigator server.
// Persisted navigator settings (reader choice, search tuning) live in
// Settings, not here.
type Config struct {
	// Transport configuration
	Mode string // "stdio", "sse" or "http"
	Host string
	Port int

	// Path to the persisted navigator settings file
	SettingsPath string

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:         ModeStdio, // stdio is what MCP clients spawn by default
		Host:         DefaultHost,
		Port:         DefaultPort,
		SettingsPath: defaultSettingsPath(),
		Version:      "1.0.0",
		ServerName:   "pdf-navigator",
		LogLevel:     DefaultLogLevel,
	}
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSettingsFileName
	}
	return filepath.Join(home, DefaultSettingsFileName)
}

// LoadFromFlags parses command line flags and environment variables and
// returns a configuration. The transport mode is the optional first
// positional argument; anything outside {stdio, sse, http} is rejected.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if pflag.NArg() > 0 {
		cfg.Mode = pflag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PDF_NAV")
	viper.AutomaticEnv()

	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("settings", cfg.SettingsPath)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("host", cfg.Host, "Server host address (sse/http modes only)")
	pflag.Int("port", cfg.Port, "Server port (sse/http modes only)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("settings", cfg.SettingsPath, "Path to the persisted navigator settings file")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("settings", pflag.Lookup("settings"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s [flags] [transport]:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPDF Navigator - a Model Context Protocol server for navigating PDF files\n\n")
		fmt.Fprintf(os.Stderr, "Transport: stdio (default), sse, or http\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                       # stdio transport (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sse --port=8081       # SSE transport\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s http --host=0.0.0.0   # streamable HTTP transport\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PDF_NAV_HOST      Server host\n")
		fmt.Fprintf(os.Stderr, "  PDF_NAV_PORT      Server port\n")
		fmt.Fprintf(os.Stderr, "  PDF_NAV_LOGLEVEL  Log level\n")
		fmt.Fprintf(os.Stderr, "  PDF_NAV_SETTINGS  Settings file path\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.SettingsPath = viper.GetString("settings")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeSSE && c.Mode != ModeHTTP {
		return fmt.Errorf("unknown transport: %s (must be one of: stdio, sse, http)", c.Mode)
	}

	if c.Mode != ModeStdio && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.SettingsPath == "" {
		return errors.New("settings path cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsStdioMode returns true if the server runs over standard I/O.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, SettingsPath: %s, LogLevel: %s}",
		c.Mode, c.Host, c.Port, c.SettingsPath, c.LogLevel)
}
