package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is assembled once at startup and passed by reference. Fields are
// never mutated after Load.
type Config struct {
	Env  string
	Port string

	DBURL     string
	RedisAddr string

	BcryptCost int

	// Password policy.
	PasswordMinLength int
	PasswordMaxLength int
	RequireUppercase  bool
	RequireLowercase  bool
	RequireDigit      bool
	RequireSymbol     bool

	// Per-action rate limits.
	LoginLimit           int
	LoginWindow          time.Duration
	PasswordEmailLimit   int
	PasswordEmailWindow  time.Duration
	PasswordChangeLimit  int
	PasswordChangeWindow time.Duration
	LimiterSweepInterval time.Duration

	ResetTokenTTL time.Duration

	// Session cookie.
	SessionCookieName string
	SessionTTL        time.Duration
	CookieSecure      bool

	// Outbound mail.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	ResetURLBase string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBURL:     mustGetEnv("DB_URL"),
		RedisAddr: getEnv("REDIS_ADDR", ""),

		BcryptCost: getEnvAsInt("BCRYPT_COST", 12),

		PasswordMinLength: getEnvAsInt("PASSWORD_MIN_LENGTH", 10),
		PasswordMaxLength: getEnvAsInt("PASSWORD_MAX_LENGTH", 72),
		RequireUppercase:  getEnvAsBool("PASSWORD_REQUIRE_UPPERCASE", true),
		RequireLowercase:  getEnvAsBool("PASSWORD_REQUIRE_LOWERCASE", true),
		RequireDigit:      getEnvAsBool("PASSWORD_REQUIRE_DIGIT", true),
		RequireSymbol:     getEnvAsBool("PASSWORD_REQUIRE_SYMBOL", true),

		LoginLimit:           getEnvAsInt("LOGIN_LIMIT", 5),
		LoginWindow:          getEnvAsDuration("LOGIN_WINDOW", 5*time.Minute),
		PasswordEmailLimit:   getEnvAsInt("PASSWORD_EMAIL_LIMIT", 5),
		PasswordEmailWindow:  getEnvAsDuration("PASSWORD_EMAIL_WINDOW", 15*time.Minute),
		PasswordChangeLimit:  getEnvAsInt("PASSWORD_CHANGE_LIMIT", 5),
		PasswordChangeWindow: getEnvAsDuration("PASSWORD_CHANGE_WINDOW", 15*time.Minute),
		LimiterSweepInterval: getEnvAsDuration("LIMITER_SWEEP_INTERVAL", 5*time.Minute),

		ResetTokenTTL: getEnvAsDuration("RESET_TOKEN_TTL", time.Hour),

		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "session"),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure:      getEnvAsBool("SESSION_COOKIE_SECURE", false),

		SMTPHost:     getEnv("MAIL_HOST", ""),
		SMTPPort:     getEnvAsInt("MAIL_PORT", 587),
		SMTPUsername: getEnv("MAIL_USERNAME", ""),
		SMTPPassword: getEnv("MAIL_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),
		ResetURLBase: getEnv("RESET_URL_BASE", "http://localhost:8080"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultVal)
		return defaultVal
	}
	return val
}
