package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Log      LogConfig
	Services ServicesConfig
	Policy   PolicyConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	RateLimitPerSec float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// DatabaseConfig selects the persistence backend: postgres, sqlite or mongo
type DatabaseConfig struct {
	Driver      string
	DSN         string
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	CacheTTL time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	GoogleClientID string
	SecureCookie   bool
}

type LogConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type ServicesConfig struct {
	CloudinaryURL   string
	StripeSecretKey string
	Currency        string
	GoongAPIKey     string
	GoongRatePerSec float64
}

// PolicyConfig holds the business switches of the platform
type PolicyConfig struct {
	CommissionRate     float64
	StrictApproval     bool
	SearchApprovedOnly bool
}

// LoadEnv reads .env when present; the process environment wins
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}
}

func Load() *Config {
	LoadEnv()

	return &Config{
		Env: getEnv("APP_ENV", "prod"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			AllowedOrigins:  getEnvSlice("ALLOWED_ORIGINS", nil),
			RateLimitPerSec: getEnvFloat("RATE_LIMIT_PER_SEC", 20),
			RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 40),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "postgres"),
			DSN:         getEnv("DB_DSN", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", ""),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "hulu"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_CONNECTION_STRING", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "hulu"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Username: getEnv("REDIS_USER", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvDuration("SEARCH_CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET_KEY", ""),
			TokenTTL:       getEnvDuration("TOKEN_TTL", constants.TokenTTL),
			GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
			SecureCookie:   getEnvBool("SECURE_COOKIE", false),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE_PATH", "logs/hulu.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Services: ServicesConfig{
			CloudinaryURL:   getEnv("CLOUDINARY_URL", ""),
			StripeSecretKey: getEnv("STRIPE_API_KEY", ""),
			Currency:        getEnv("PAYMENT_CURRENCY", constants.DefaultCurrency),
			GoongAPIKey:     getEnv("GOONG_API_KEY", ""),
			GoongRatePerSec: getEnvFloat("GOONG_RATE_PER_SEC", 5),
		},
		Policy: PolicyConfig{
			CommissionRate:     getEnvFloat("COMMISSION_RATE", 0.1),
			StrictApproval:     getEnvBool("STRICT_APPROVAL", false),
			SearchApprovedOnly: getEnvBool("SEARCH_APPROVED_ONLY", false),
		},
	}
}

func (c *Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
