package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	AuthSecret        string
	BcryptCost        int
	SessionTTL        time.Duration
	NotificationLimit int
	DisplayIDPrefix   string
	DisplayIDWidth    int
	OrderStatuses     []model.OrderStatus
	ToastDuration     time.Duration
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultAuthSecret        = "change-me-in-production"
	defaultSessionTTL        = 24 * time.Hour
	defaultNotificationLimit = 20
	defaultDisplayIDPrefix   = "FD"
	defaultDisplayIDWidth    = 6
	defaultToastDuration     = 4 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A .env
// file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		AuthSecret:        getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		BcryptCost:        getInt(lookup, "BCRYPT_COST", 0),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		NotificationLimit: getInt(lookup, "NOTIFICATION_LIMIT", defaultNotificationLimit),
		DisplayIDPrefix:   getString(lookup, "DISPLAY_ID_PREFIX", defaultDisplayIDPrefix),
		DisplayIDWidth:    getInt(lookup, "DISPLAY_ID_WIDTH", defaultDisplayIDWidth),
		ToastDuration:     getDuration(lookup, "TOAST_DURATION", defaultToastDuration),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	statuses := getString(lookup, "ORDER_STATUSES", "")

	fs := flag.NewFlagSet("freshdairy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.IntVar(&cfg.NotificationLimit, "notification-limit", cfg.NotificationLimit, "Maximum notifications returned per customer")
	fs.StringVar(&cfg.DisplayIDPrefix, "display-prefix", cfg.DisplayIDPrefix, "Prefix of admin-facing order display ids")
	fs.IntVar(&cfg.DisplayIDWidth, "display-width", cfg.DisplayIDWidth, "Zero-padded width of admin-facing order display ids")
	fs.StringVar(&statuses, "order-statuses", statuses, "Comma-separated order status label set")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	cfg.OrderStatuses = parseStatuses(statuses)

	if cfg.NotificationLimit <= 0 {
		cfg.NotificationLimit = defaultNotificationLimit
	}

	if cfg.DisplayIDPrefix == "" {
		cfg.DisplayIDPrefix = defaultDisplayIDPrefix
	}

	if cfg.DisplayIDWidth <= 0 {
		cfg.DisplayIDWidth = defaultDisplayIDWidth
	}

	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = defaultToastDuration
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func parseStatuses(raw string) []model.OrderStatus {
	if strings.TrimSpace(raw) == "" {
		return model.DefaultOrderStatuses()
	}
	var statuses []model.OrderStatus
	for _, label := range strings.Split(raw, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			statuses = append(statuses, model.OrderStatus(label))
		}
	}
	if len(statuses) == 0 {
		return model.DefaultOrderStatuses()
	}
	return statuses
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
