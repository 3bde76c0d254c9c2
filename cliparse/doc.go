// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: Server.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - QuestionsFile: Optional YAML seed for the question catalog

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-questions  Question seed file

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	QUESTIONS_FILE → -questions

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing, so the same keys can live there.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or is out of range
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_TYPE is postgres and no DATABASE_URL is given
*/
package cliparse
