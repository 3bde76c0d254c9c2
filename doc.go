// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the EcoWatt API server.

EcoWatt backs a household sustainability app: user accounts with a
sustainability score, a scored survey question catalog, electricity and
water bill records, per-user challenges, survey answers and appliance
inventories.

# Starting the Server

With no configuration the server listens on port 5000 and stores data in a
local SQLite file named Server.db:

	go run .

Or with flags:

	go run . -p 8080 -d ecowatt.db
	go run . -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then environment variables, then defaults. A .env
file in the working directory is loaded first when present.

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - QUESTIONS_FILE (-questions): YAML file used to seed an empty question catalog

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, questions, bills, challenges, survey, appliances)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, validation, JSON helpers
  - store: SQL storage shared by all handlers
  - billparse: Bill summary extraction
  - models: Request/response types and the survey and appliance catalogs
  - auth: Path identifiers and password matching
  - db: Connection, schema creation and question seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
