// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB (user profiles)
	MongoURI string
	MongoDB  string

	// PostgreSQL (airline / airport reference tables)
	PostgresURI string

	// DynamoDB (lounge catalog)
	AWSRegion       string
	LoungesTable    string
	DynamoEndpoint  string
	SecretsEndpoint string

	// Amadeus flight data API
	AmadeusBaseURL    string
	AmadeusSecretName string
	CredentialTTL     time.Duration
	TokenTTL          time.Duration
	UpstreamTimeout   time.Duration

	// Recommendation policy
	BoardingBufferMinutes  int
	MCTSameTerminal        int
	MCTTerminalChange      int
	MCTMobilityExtra       int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "loungeadvisor"),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		LoungesTable:    getEnv("LOUNGES_TABLE", "Lounges"),
		DynamoEndpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		SecretsEndpoint: getEnv("SECRETSMANAGER_ENDPOINT", ""),

		AmadeusBaseURL:    getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusSecretName: getEnv("AMADEUS_SECRET_NAME", "loungeadvisor/amadeus/credentials"),
		CredentialTTL:     time.Duration(getEnvAsInt("CREDENTIAL_TTL_SECONDS", 3600)) * time.Second,
		TokenTTL:          time.Duration(getEnvAsInt("TOKEN_TTL_SECONDS", 1500)) * time.Second,
		UpstreamTimeout:   time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,

		BoardingBufferMinutes:  getEnvAsInt("BOARDING_BUFFER_MINUTES", 45),
		MCTSameTerminal:        getEnvAsInt("MCT_SAME_TERMINAL_MINUTES", 45),
		MCTTerminalChange:      getEnvAsInt("MCT_TERMINAL_CHANGE_MINUTES", 90),
		MCTMobilityExtra:       getEnvAsInt("MCT_MOBILITY_EXTRA_MINUTES", 30),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
