package config

import (
	"os"
	"strconv"

	"lms/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBDSN      string // Overrides the assembled DSN when set

	JWTKey              string
	JWTAccessTTLMinutes int
	JWTRefreshTTLHours  int
	SaltRound           int

	StorageDriver  string
	MediaRoot      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	ReleaseNotifyCron string
	SendgridAPIKey    string
	EmailSender       string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
// and sets up the global logger from it.
func LoadConfig() {
	// Load .env file if it exists
	envErr := godotenv.Load()

	AppConfig = FromEnv()
	logger.Init(AppConfig.AppEnv, AppConfig.LogLevel)

	if envErr != nil {
		log.Warn().Msg(".env file not found. Using system environment variables.")
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Warn().Msg("Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// FromEnv builds a Config from the current environment without touching AppConfig.
func FromEnv() *Config {
	return &Config{
		Port:     getEnv("PORT", "3000"),
		AppEnv:   getEnv("APP_ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "lms"),
		DBDSN:      getEnv("DB_DSN", ""),

		JWTKey:              getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTAccessTTLMinutes: getEnvInt("JWT_ACCESS_TTL_MINUTES", 60),
		JWTRefreshTTLHours:  getEnvInt("JWT_REFRESH_TTL_HOURS", 168),
		SaltRound:           getEnvInt("SALT_ROUND", 10),

		StorageDriver:  getEnv("STORAGE_DRIVER", "local"),
		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "lms"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),

		ReleaseNotifyCron: getEnv("RELEASE_NOTIFY_CRON", "*/15 * * * *"),
		SendgridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		EmailSender:       getEnv("EMAIL_SENDER", "no-reply@lms.local"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("invalid integer in environment, using default")
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("invalid boolean in environment, using default")
		return defaultValue
	}
	return b
}
