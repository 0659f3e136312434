package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	DatabaseURL string
	JWTSecret   string

	// Seeded administrator credentials
	AdminEmail    string
	AdminPassword string

	// Access window policy: when enabled, instruction detail pages are only
	// reachable between WindowStartHour (inclusive) and WindowEndHour
	// (exclusive), UTC, and only today's instruction can be completed.
	AccessWindowEnabled bool
	WindowStartHour     int
	WindowEndHour       int
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("daily-briefing", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Seeded admin email")
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Seeded admin password (prefer env)")

	// Access window policy
	fs.BoolVar(&cfg.AccessWindowEnabled, "access-window", false, "Restrict instruction access to a daily hour window")
	fs.IntVar(&cfg.WindowStartHour, "window-start", 9, "Access window start hour, UTC (inclusive)")
	fs.IntVar(&cfg.WindowEndHour, "window-end", 10, "Access window end hour, UTC (exclusive)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@example.com"
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	if !cfg.AccessWindowEnabled {
		if os.Getenv("ACCESS_WINDOW") == "true" || os.Getenv("ACCESS_WINDOW") == "1" {
			cfg.AccessWindowEnabled = true
		}
	}
	if s := os.Getenv("ACCESS_WINDOW_START"); s != "" && cfg.WindowStartHour == 9 {
		h, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, errors.New("invalid ACCESS_WINDOW_START env variable")
		}
		cfg.WindowStartHour = h
	}
	if s := os.Getenv("ACCESS_WINDOW_END"); s != "" && cfg.WindowEndHour == 10 {
		h, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, errors.New("invalid ACCESS_WINDOW_END env variable")
		}
		cfg.WindowEndHour = h
	}
	if cfg.WindowStartHour < 0 || cfg.WindowStartHour > 23 ||
		cfg.WindowEndHour < 1 || cfg.WindowEndHour > 24 ||
		cfg.WindowStartHour >= cfg.WindowEndHour {
		return Config{}, errors.New("access window hours must satisfy 0 <= start < end <= 24")
	}

	return cfg, nil
}
