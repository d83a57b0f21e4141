package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting the application reads. It is built
// once in main and passed by injection; no package reads the environment
// at request time.
type Config struct {
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Outbound mail (contact-form notifications).
	MailAPIKey string
	MailFrom   string
	MailTo     string

	// Login throttle: attempts allowed per client address per minute.
	LoginRatePerMinute int
}

// Load reads the current environment into a Config. Call godotenv.Load
// first if a .env file should participate.
func Load() *Config {
	env := environAsMap()

	return &Config{
		DatabaseURL:   GetString(env, "DATABASE_URL", ""),
		SessionSecret: GetString(env, "SECRET_KEY", ""),
		SessionTTL:    time.Duration(GetInt(env, "SESSION_TTL_HOURS", 24)) * time.Hour,

		Port:         GetString(env, "PORT", "8080"),
		ReadTimeout:  time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 30)) * time.Second,
		WriteTimeout: time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second,

		MailAPIKey: GetString(env, "MAIL_API_KEY", ""),
		MailFrom:   GetString(env, "MAIL_FROM", ""),
		MailTo:     GetString(env, "MAIL_TO", ""),

		LoginRatePerMinute: GetInt(env, "LOGIN_RATE_PER_MINUTE", 5),
	}
}

func environAsMap() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
