// Package config loads and validates the application configuration
// from environment variables.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port              string
	Address           string
	Env               string
	LogLevel          string
	LogRetentionWeeks int
	MaxLogFileSize    int64 // Maximum log file size in bytes
	MaxRequestBody    int64 // Maximum request body size in bytes
	MaxHeaderSize     int64 // Maximum header size in bytes
	DataDir           string

	// External adapter settings. Keys may be empty: the adapters then
	// degrade (no audio, no transcript, rule-based replies).
	MurfAPIKey      string
	DeepgramAPIKey  string
	OpenAIAPIKey    string
	GroqAPIKey      string
	LLMProvider     string
	ExternalTimeout time.Duration
}

// Load loads and validates configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8000"),
		Address:           getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:               getEnvWithDefault("ENV", "dev"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		LogRetentionWeeks: getIntEnvWithDefault("LOG_RETENTION_WEEKS", 4),
		MaxLogFileSize:    getInt64EnvWithDefault("MAX_LOG_FILE_SIZE", 104857600), // 100MB default
		MaxRequestBody:    getInt64EnvWithDefault("MAX_REQUEST_BODY", 1048576),    // 1MB default
		MaxHeaderSize:     getInt64EnvWithDefault("MAX_HEADER_SIZE", 1048576),     // 1MB default
		DataDir:           getEnvWithDefault("DATA_DIR", "files"),
		MurfAPIKey:        os.Getenv("MURF_API_KEY"),
		DeepgramAPIKey:    os.Getenv("DEEPGRAM_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		LLMProvider:       getEnvWithDefault("LLM_PROVIDER", "groq"),
		ExternalTimeout:   time.Duration(getIntEnvWithDefault("EXTERNAL_TIMEOUT_SECONDS", 15)) * time.Second,
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig validates all configuration values.
func validateConfig(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	if err := validateAddress(cfg.Address); err != nil {
		return fmt.Errorf("invalid ADDRESS: %w", err)
	}

	if err := validateOneOf(cfg.Env, "ENV", []string{"dev", "staging", "prod", "test"}); err != nil {
		return err
	}

	if err := validateOneOf(cfg.LogLevel, "LOG_LEVEL", []string{"debug", "info", "warn", "error"}); err != nil {
		return err
	}

	if err := validateOneOf(cfg.LLMProvider, "LLM_PROVIDER", []string{"openai", "groq", "none"}); err != nil {
		return err
	}

	if err := validateSizeLimit(cfg.MaxRequestBody, "MAX_REQUEST_BODY"); err != nil {
		return err
	}

	if err := validateSizeLimit(cfg.MaxHeaderSize, "MAX_HEADER_SIZE"); err != nil {
		return err
	}

	if cfg.LogRetentionWeeks <= 0 || cfg.LogRetentionWeeks > 52 {
		return fmt.Errorf("LOG_RETENTION_WEEKS must be between 1 and 52, got: %d", cfg.LogRetentionWeeks)
	}

	if cfg.MaxLogFileSize < 1024*1024 || cfg.MaxLogFileSize > 1024*1024*1024 {
		return fmt.Errorf("MAX_LOG_FILE_SIZE must be between 1MB and 1GB, got: %d bytes", cfg.MaxLogFileSize)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("DATA_DIR cannot be empty")
	}

	if cfg.ExternalTimeout <= 0 || cfg.ExternalTimeout > time.Minute {
		return fmt.Errorf("EXTERNAL_TIMEOUT_SECONDS must be between 1 and 60, got: %s", cfg.ExternalTimeout)
	}

	return nil
}

// validatePort validates the PORT environment variable.
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	if portNum < 1024 {
		return fmt.Errorf("PORT %d is privileged (less than 1024), use ports 1024-65535", portNum)
	}

	return nil
}

// validateAddress validates the ADDRESS environment variable.
func validateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("ADDRESS cannot be empty")
	}

	if address == "127.0.0.1" || address == "::1" || address == "localhost" {
		return nil
	}

	ip := net.ParseIP(address)
	if ip == nil {
		return fmt.Errorf("ADDRESS must be a valid IP address or 'localhost', got: %s", address)
	}

	if !ip.IsLoopback() && !ip.IsPrivate() && !ip.IsUnspecified() {
		return fmt.Errorf("ADDRESS %s is a public IP, consider using private network ranges", address)
	}

	return nil
}

// validateOneOf checks a value against an allowed set (case-insensitive).
func validateOneOf(value, name string, allowed []string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}

	value = strings.ToLower(value)
	for _, v := range allowed {
		if value == v {
			return nil
		}
	}

	return fmt.Errorf("%s must be one of: %v, got: %s", name, allowed, value)
}

// validateSizeLimit validates size limit configuration values.
func validateSizeLimit(size int64, configName string) error {
	if size <= 0 {
		return fmt.Errorf("%s must be positive, got: %d", configName, size)
	}

	if size > 100*1024*1024 { // 100MB
		return fmt.Errorf("%s is too large (max 100MB), got: %d bytes", configName, size)
	}

	return nil
}

// getEnvWithDefault gets an environment variable with a default value.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnvWithDefault gets an environment variable as int with a default value.
func getIntEnvWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64EnvWithDefault gets an environment variable as int64 with a default value.
func getInt64EnvWithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
