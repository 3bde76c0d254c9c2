// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/ecowatt/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	for _, stmt := range schemaStatements(dialect) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func schemaStatements(dialect Dialect) []string {
	serial := "INTEGER PRIMARY KEY AUTOINCREMENT"
	float := "REAL"
	if dialect == Postgres {
		serial = "SERIAL PRIMARY KEY"
		float = "DOUBLE PRECISION"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS "Users" (
    "UserID" TEXT PRIMARY KEY,
    "userName" TEXT NOT NULL,
    email TEXT NOT NULL,
    password TEXT NOT NULL,
    bio TEXT,
    "userScore" ` + float + `
)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON "Users"("userName")`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON "Users"(email)`,

		`CREATE TABLE IF NOT EXISTS "Questions" (
    id ` + serial + `,
    question TEXT NOT NULL,
    option1 TEXT,
    score1 INTEGER,
    option2 TEXT,
    score2 INTEGER,
    option3 TEXT,
    score3 INTEGER,
    option4 TEXT,
    score4 INTEGER
)`,

		`CREATE TABLE IF NOT EXISTS "ElectricityBills" (
    id ` + serial + `,
    "UserID" TEXT,
    ` + textColumns(models.ElectricityBillColumns) + `
)`,

		`CREATE TABLE IF NOT EXISTS "WaterBills" (
    id ` + serial + `,
    ` + textColumns(models.WaterBillColumns) + `
)`,

		`CREATE TABLE IF NOT EXISTS "UserChallenges" (
    id ` + serial + `,
    "UserID" TEXT NOT NULL,
    challenge TEXT NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_user_challenges_user ON "UserChallenges"("UserID")`,

		`CREATE TABLE IF NOT EXISTS "UserResponses" (
    id ` + serial + `,
    "UserID" TEXT NOT NULL,
    ` + textColumns(models.SurveyQuestions) + `
)`,

		`CREATE TABLE IF NOT EXISTS "Appliances" (
    id ` + serial + `,
    "UserID" TEXT NOT NULL,
    ` + intColumns(models.ApplianceFields) + `
)`,
	}
}

func textColumns(names []string) string {
	cols := make([]string, len(names))
	for i, n := range names {
		cols[i] = QuoteIdent(n) + " TEXT"
	}
	return strings.Join(cols, ",\n    ")
}

func intColumns(names []string) string {
	cols := make([]string, len(names))
	for i, n := range names {
		cols[i] = QuoteIdent(n) + " INTEGER NOT NULL DEFAULT 0"
	}
	return strings.Join(cols, ",\n    ")
}

// QuoteIdent double-quotes an identifier. Quoting keeps mixed-case names
// such as UserID intact under PostgreSQL, which folds bare identifiers to
// lower case, and lets literal question text be used as a column name.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
