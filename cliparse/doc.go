// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Secret for signing auth tokens (required)
  - AdminEmail: Seeded administrator email (default: admin@example.com)
  - AdminPassword: Seeded administrator password (required)
  - AccessWindowEnabled: Restrict instruction access to an hour window
  - WindowStartHour / WindowEndHour: Window bounds, UTC hours

# CLI Flags

	-p              Server port
	-d              Database URL
	--jwt-secret    JWT signing secret
	--admin-email   Seeded admin email
	--admin-password Seeded admin password
	--access-window Enable the daily access window
	--window-start  Window start hour (inclusive, default 9)
	--window-end    Window end hour (exclusive, default 10)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	JWT_SECRET          → --jwt-secret
	ADMIN_EMAIL         → --admin-email
	ADMIN_PASSWORD      → --admin-password
	ACCESS_WINDOW       → --access-window ("true" or "1")
	ACCESS_WINDOW_START → --window-start
	ACCESS_WINDOW_END   → --window-end

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or the window
bounds are not 0 <= start < end <= 24:

  - DATABASE_URL must be provided
  - JWT_SECRET must be provided
  - ADMIN_PASSWORD must be provided
*/
package cliparse
