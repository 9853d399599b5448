package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	RosterFile    string
	Budget        string
	Coin          string
	Year          string
	CountryPrefix string
	MaxAttempts   int
	Seed          int64
	DryRun        bool
	LogLevel      string
	LogFormat     string

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	SNSSenderID         string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		RosterFile:    getEnv("SANTA_ROSTER_FILE", "list.csv"),
		Budget:        getEnv("SANTA_BUDGET", "20"),
		Coin:          getEnv("SANTA_COIN", "€"),
		Year:          getEnv("SANTA_YEAR", strconv.Itoa(time.Now().Year())),
		CountryPrefix: getEnv("SANTA_COUNTRY_PREFIX", "+351"),
		MaxAttempts:   getEnvAsInt("SANTA_MAX_ATTEMPTS", 1000),
		Seed:          getEnvAsInt64("SANTA_SEED", 0),
		DryRun:        getEnvAsBool("SANTA_DRY_RUN", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),

		AWSRegion:           getEnv("AWS_REGION", "eu-west-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		SNSSenderID:         getEnv("SANTA_SNS_SENDER_ID", ""),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 retrieves an environment variable as an int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
