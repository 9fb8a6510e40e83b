package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Env         string
	APIUrl      string
	FrontendURL string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeZone string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Session gate
	JWTSecret          string
	AdminTokenDuration time.Duration
	AdminPassKey       string
	AdminPassKeyHash   string
	AdminCookieName    string

	// Object storage (S3-compatible)
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UsePathStyle    bool
	StorageBucket     string
	StoragePublicURL  string

	// Uploads
	UploadMaxFileSize  int64
	UploadMaxPerDay    int
	UploadAllowedMimes []string

	// SMTP (contact form relay)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ContactTo    string

	// Pagination
	BlogPageSize      int
	PortfolioPageSize int

	// Security
	BcryptCost        int
	RateLimitRequests int
	RateLimitDuration time.Duration

	// CORS
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

func New() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		APIUrl:      getEnv("API_URL", "http://localhost:8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "devfolio"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "devfolio_db"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "Asia/Dhaka"),

		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// Session gate
		JWTSecret:          getEnv("JWT_SECRET", "your-secret-key"),
		AdminTokenDuration: getEnvAsDuration("ADMIN_TOKEN_DURATION", "168h"),
		AdminPassKey:       getEnv("ADMIN_PASS_KEY", ""),
		AdminPassKeyHash:   getEnv("ADMIN_PASS_KEY_HASH", ""),
		AdminCookieName:    getEnv("ADMIN_COOKIE_NAME", "admin-token"),

		// Object storage
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3UsePathStyle:    getEnv("S3_USE_PATH_STYLE", "true") == "true",
		StorageBucket:     getEnv("STORAGE_BUCKET", ""),
		StoragePublicURL:  getEnv("STORAGE_PUBLIC_URL", ""),

		// Uploads
		UploadMaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 30*1024*1024),
		UploadMaxPerDay:   getEnvAsInt("UPLOAD_MAX_PER_DAY", 100),
		UploadAllowedMimes: getEnvAsSlice("UPLOAD_ALLOWED_MIMES", []string{
			"image/jpeg", "image/png", "image/svg+xml", "image/webp", "image/gif",
		}),

		// SMTP
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 465),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		ContactTo:    getEnv("CONTACT_TO", ""),

		// Pagination
		BlogPageSize:      getEnvAsInt("BLOG_PAGE_SIZE", 6),
		PortfolioPageSize: getEnvAsInt("PORTFOLIO_PAGE_SIZE", 12),

		// Security
		BcryptCost:        getEnvAsInt("BCRYPT_COST", 12),
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitDuration: getEnvAsDuration("RATE_LIMIT_DURATION", "1m"),

		// CORS
		AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods: getEnvAsSlice("ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders: getEnvAsSlice("ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
	}
}

// Validate checks the settings the storage and auth layers cannot run without.
// The bucket must be known before any store operation is attempted.
func (c *Config) Validate() error {
	if c.StorageBucket == "" {
		return errors.New("STORAGE_BUCKET is not set")
	}
	if c.StoragePublicURL == "" {
		return errors.New("STORAGE_PUBLIC_URL is not set")
	}
	if c.AdminPassKey == "" && c.AdminPassKeyHash == "" {
		return errors.New("ADMIN_PASS_KEY or ADMIN_PASS_KEY_HASH is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if duration, err := time.ParseDuration(defaultValue); err == nil {
		return duration
	}
	return time.Hour
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
