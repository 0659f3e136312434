// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Daily Briefing API server.

Daily Briefing tracks mandatory-viewing compliance for a fixed catalog of
short safety instructions: one instruction is active per UTC calendar day
(deterministic rotation over the catalog), every enrolled participant must
watch and acknowledge it, and administrators see a live completion
dashboard across the roster.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 4000 -d "postgres://..." --jwt-secret ... --admin-password ...

A .env file in the working directory is loaded automatically if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): Secret for signing auth tokens
  - ADMIN_PASSWORD (--admin-password): Password for the seeded admin account

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - ADMIN_EMAIL (--admin-email): Seeded admin email (default: admin@example.com)
  - ACCESS_WINDOW (--access-window): Restrict instruction access to a
    daily UTC hour window (default: disabled)
  - ACCESS_WINDOW_START / ACCESS_WINDOW_END: Window bounds (default: 9-10)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers plus the rotation, ledger, and
    dashboard logic
  - router: Route definitions using Go 1.22+ routing, with per-route
    role gating
  - middleware: Identity extraction, role checks, CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Entry codes, password hashing, token issuance
  - db: Schema creation and seeding
  - cliparse: Configuration parsing

On startup the server creates the schema if needed and seeds the admin
account and the 12-entry instruction catalog idempotently.

See package documentation for each component.
*/
package main
