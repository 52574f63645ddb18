package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Calendar CalendarConfig
	Email    EmailConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Static   StaticConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type CalendarConfig struct {
	// CalendarID is the Google calendar that receives booking events.
	CalendarID string
	// CredentialsJSON takes precedence over CredentialsFile when set.
	CredentialsJSON string
	CredentialsFile string
	TokenFile       string
	// TimeZone is the fixed service time zone all submitted date/time
	// pairs are interpreted in.
	TimeZone      string
	EventDuration time.Duration
}

type EmailConfig struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	SMTPUseTLS    bool
	MailerSendKey string
	FromName      string
	// OwnerEmail receives booking notifications and contact form messages.
	OwnerEmail string
	DevMode    bool // print emails to logs instead of sending
}

type RedisConfig struct {
	URL string
}

type NATSConfig struct {
	URL string
}

type StaticConfig struct {
	// Dir is served at the site root when non-empty.
	Dir string
}

type ScheduleConfig struct {
	// File optionally overrides the built-in per-weekday slot table.
	File string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Calendar: CalendarConfig{
			CalendarID:      getEnv("CALENDAR_ID", "primary"),
			CredentialsJSON: getEnv("GOOGLE_CREDENTIALS", ""),
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
			TokenFile:       getEnv("GOOGLE_TOKEN_FILE", "token.json"),
			TimeZone:        getEnv("SERVICE_TIMEZONE", "America/New_York"),
			EventDuration:   getDuration("EVENT_DURATION", 2*time.Hour),
		},
		Email: EmailConfig{
			SMTPHost:      getEnv("SMTP_HOST", "localhost"),
			SMTPPort:      getInt("SMTP_PORT", 1025),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPFrom:      getEnv("SMTP_FROM", "noreply@pitstoppros.local"),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", false),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			FromName:      getEnv("MAIL_FROM_NAME", "Pitstop Pros"),
			OwnerEmail:    getEnv("OWNER_EMAIL", ""),
			DevMode:       getBool("EMAIL_DEV_MODE", true),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", ""),
		},
		Schedule: ScheduleConfig{
			File: getEnv("SCHEDULE_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
