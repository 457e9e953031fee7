package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"invoice-dashboard/utils"

	"github.com/joho/godotenv"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
	CORSOrigins []string
	LogLevel    slog.Level

	DigestCron string
	ReseedCron string
	DigestTo   string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := Config{
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DB_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiry:        time.Duration(getint("JWT_EXPIRY_HOURS", 24)) * time.Hour,
		BcryptCost:       getint("BCRYPT_COST", utils.DefaultBcryptCost),
		CORSOrigins:      splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		LogLevel:         parseLevel(os.Getenv("LOG_LEVEL")),
		DigestCron:       os.Getenv("DIGEST_CRON"),
		ReseedCron:       os.Getenv("RESEED_CRON"),
		DigestTo:         os.Getenv("DIGEST_TO"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_FROM"),
	}

	logger := NewLogger(cfg.LogLevel)
	if envErr != nil {
		logger.Info("no .env file found, relying on system env")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = utils.GenerateJWTSecret()
		logger.Warn("JWT_SECRET not set; generated an ephemeral secret, sessions will not survive a restart")
	}
	return cfg
}

// DigestEnabled reports whether the SMS digest has everything it needs.
func (c Config) DigestEnabled() bool {
	return c.DigestCron != "" && c.DigestTo != "" && c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger returns a JSON logger on stdout.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
