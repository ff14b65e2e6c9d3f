package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	Port        string
	LogLevel    string

	DBDriver   string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	SQLitePath string

	JWTSecret     string
	ProfileCookie string
	ProfileTTL    time.Duration
	CookieSecure  bool

	RabbitMQURL        string
	StorefrontExchange string
	EventQueue         string
	DeadLetterQueue    string
	MaxPriority        int
	NotificationTTL    time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration
	StoreCacheSize    int

	Keys StorageKeys
}

// StorageKeys names the persisted blobs kept per profile.
type StorageKeys struct {
	Cart     string
	Wishlist string
	Theme    string
	User     string
	Orders   string
	Products string
	Users    string
}

func DefaultKeys() StorageKeys {
	return StorageKeys{
		Cart:     "aagadgets_cart",
		Wishlist: "aagadgets_wishlist",
		Theme:    "aagadgets_theme",
		User:     "aagadgets_user",
		Orders:   "aagadgets_orders",
		Products: "aagadgets_products",
		Users:    "aagadgets_users",
	}
}

func LoadConfig() *Config {
	defaults := DefaultKeys()
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DBDriver:   getEnv("DB_DRIVER", "mysql"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnvFromFile("DB_PASSWORD_FILE", "DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "storefront"),
		SQLitePath: getEnv("SQLITE_PATH", "storefront.db"),

		JWTSecret:     getEnvFromFile("JWT_SECRET_FILE", "JWT_SECRET", "change-me-in-production"),
		ProfileCookie: getEnv("PROFILE_COOKIE", "aagadgets_profile"),
		ProfileTTL:    getEnvAsDuration("PROFILE_TTL", 365*24*time.Hour),
		CookieSecure:  getEnvAsBool("COOKIE_SECURE", false),

		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		StorefrontExchange: getEnv("STOREFRONT_EXCHANGE", "storefront_exchange"),
		EventQueue:         getEnv("EVENT_QUEUE", "storefront_events"),
		DeadLetterQueue:    getEnv("DEAD_LETTER_QUEUE", "storefront_dead_letter"),
		MaxPriority:        getEnvAsInt("RABBITMQ_MAX_PRIORITY", 10),
		NotificationTTL:    getEnvAsDuration("NOTIFICATION_TTL", 3*time.Second),

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 600),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		StoreCacheSize:    getEnvAsInt("STORE_CACHE_SIZE", 1024),

		Keys: StorageKeys{
			Cart:     getEnv("KEY_CART", defaults.Cart),
			Wishlist: getEnv("KEY_WISHLIST", defaults.Wishlist),
			Theme:    getEnv("KEY_THEME", defaults.Theme),
			User:     getEnv("KEY_USER", defaults.User),
			Orders:   getEnv("KEY_ORDERS", defaults.Orders),
			Products: getEnv("KEY_PRODUCTS", defaults.Products),
			Users:    getEnv("KEY_USERS", defaults.Users),
		},
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DSN builds the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite3" {
		return c.SQLitePath
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFromFile(fileKey, envKey, defaultValue string) string {
	if filePath := os.Getenv(fileKey); filePath != "" {
		if content, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return getEnv(envKey, defaultValue)
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
