package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"giftexchange/internal/core/domain/services"
)

// Roster storage backends.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort string
	LogLevel string

	RosterStorage string
	RosterDir     string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	MatchMaxAttempts int

	DrawSchedule   string
	DrawRoster     string
	DrawSendEmails bool
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// the .env file was loaded. Unset keys take their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		HTTPPort:      get("HTTP_PORT", "3000"),
		LogLevel:      get("LOG_LEVEL", "info"),
		RosterStorage: strings.ToLower(get("ROSTER_STORAGE", StorageFile)),
		RosterDir:     get("ROSTER_DIR", "groups-config"),
		DBHost:        get("DB_HOST", "localhost"),
		DBPort:        get("DB_PORT", "5432"),
		DBUser:        get("DB_USER", ""),
		DBPassword:    get("DB_PASSWORD", ""),
		DBName:        get("DB_NAME", "giftexchange"),
		DBSslMode:     get("DB_SSLMODE", "disable"),
		SMTPHost:      get("SMTP_HOST", ""),
		SMTPUsername:  get("SMTP_USERNAME", ""),
		SMTPPassword:  get("SMTP_PASSWORD", ""),
		MailFrom:      get("MAIL_FROM", ""),
		DrawSchedule:  get("DRAW_SCHEDULE", ""),
		DrawRoster:    get("DRAW_ROSTER", ""),
	}

	var err error
	if cfg.SMTPPort, err = strconv.Atoi(get("SMTP_PORT", "587")); err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT: %w", err)
	}
	if cfg.MatchMaxAttempts, err = strconv.Atoi(get("MATCH_MAX_ATTEMPTS", strconv.Itoa(services.DefaultMaxAttempts))); err != nil {
		return Config{}, fmt.Errorf("MATCH_MAX_ATTEMPTS: %w", err)
	}
	if cfg.DrawSendEmails, err = strconv.ParseBool(get("DRAW_SEND_EMAILS", "false")); err != nil {
		return Config{}, fmt.Errorf("DRAW_SEND_EMAILS: %w", err)
	}

	switch cfg.RosterStorage {
	case StorageFile, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("ROSTER_STORAGE: unknown backend %q", cfg.RosterStorage)
	}

	if cfg.DrawSchedule != "" && cfg.DrawRoster == "" {
		return Config{}, errors.New("DRAW_ROSTER is required when DRAW_SCHEDULE is set")
	}

	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
