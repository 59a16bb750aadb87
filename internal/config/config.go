package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrDefaultSecret = errors.New("JWT_SECRET must be set for persistent store drivers")

const (
	StoreDriverMemory   = "memory"
	StoreDriverMySQL    = "mysql"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"

	defaultJWTSecret = "zenflow-dev-secret"
)

type Config struct {
	AppPort           string
	StoreDriver       string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	PostgresURL       string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	TokenTTL          time.Duration
	BcryptCost        int
	SimulatedLatency  time.Duration
	AuthRateLimit     int
	AuthRateWindow    time.Duration
	SeedUsers         bool
	SeedAdminEmail    string
	SeedAdminUsername string
	SeedAdminPassword string
	SeedDemoEmail     string
	SeedDemoUsername  string
	SeedDemoPassword  string
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMemory)),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "zenflow"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "zenflow"),
		DbName:            getEnv("MYSQL_DATABASE", "zenflow"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		PostgresURL:       getEnv("POSTGRES_URL", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		JWTSecret:         getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:          getEnvDuration("TOKEN_TTL", time.Hour),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		SimulatedLatency:  getEnvDuration("SIMULATED_LATENCY", 0),
		AuthRateLimit:     getEnvInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow:    getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
		SeedUsers:         getEnvBool("SEED_USERS", true),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@system.com"),
		SeedAdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin_sys"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "password123"),
		SeedDemoEmail:     getEnv("SEED_DEMO_EMAIL", "user@system.com"),
		SeedDemoUsername:  getEnv("SEED_DEMO_USERNAME", "demo_user"),
		SeedDemoPassword:  getEnv("SEED_DEMO_PASSWORD", "password123"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

// UsesDefaultSecret reports whether tokens are signed with the built-in development secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// Validate rejects configurations that would sign long-lived tokens with the
// development secret. Only the memory driver may run without JWT_SECRET.
func (c *Config) Validate() error {
	if c.UsesDefaultSecret() && c.StoreDriver != StoreDriverMemory {
		return ErrDefaultSecret
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

// getEnvDuration accepts Go duration strings ("1h", "250ms") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value = strings.TrimSpace(value)
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
