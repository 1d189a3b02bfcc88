package config

import (
	"net"
	"os"
	"strconv"
	"strings"

	"pdf-text-extractor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	Host           string
	ServerPort     string
	Debug          bool
	MaxFileSize    int64
	LogLevel       string
	LogFormat      string
	StagingDir     string
	PDFEngine      string
	AllowedOrigins []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return LoadConfig()
}

// LoadConfig reads the environment into a mutable AppConfig so command-line
// flags can override individual fields.
func LoadConfig() *AppConfig {
	cfg := &AppConfig{
		Host: getEnvOrDefault("HOST", "0.0.0.0"),
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "5000")),
		Debug:          getEnvBoolOrDefault("DEBUG", false),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvOrDefault("LOG_FORMAT", "json"),
		StagingDir:     getEnvOrDefault("STAGING_DIR", os.TempDir()),
		PDFEngine:      getEnvOrDefault("PDF_ENGINE", string(domain.PDFEnginePDF)),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
	}
	return cfg
}

// GetHost returns the interface to bind
func (c *AppConfig) GetHost() string {
	return c.Host
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetAddress returns host:port for http.Server
func (c *AppConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, c.ServerPort)
}

// IsDebug reports whether debug mode is on
func (c *AppConfig) IsDebug() bool {
	return c.Debug
}

// GetMaxFileSize returns the maximum allowed request body size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level; debug mode forces "debug"
func (c *AppConfig) GetLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}

// GetLogFormat returns "json" or "console"
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetStagingDir returns the directory uploads are staged in
func (c *AppConfig) GetStagingDir() string {
	return c.StagingDir
}

// GetPDFEngine returns the configured PDF parsing backend
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
