// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedQuestion is one entry of a question seed file.
type SeedQuestion struct {
	Question string       `yaml:"question"`
	Options  []SeedOption `yaml:"options"`
}

type SeedOption struct {
	Text  string `yaml:"text"`
	Score *int   `yaml:"score"`
}

// ParseQuestions decodes a YAML list of questions with up to four options each.
func ParseQuestions(r io.Reader) ([]SeedQuestion, error) {
	var questions []SeedQuestion
	if err := yaml.NewDecoder(r).Decode(&questions); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}

	for i, q := range questions {
		if q.Question == "" {
			return nil, fmt.Errorf("question %d: text is required", i+1)
		}
		if len(q.Options) > 4 {
			return nil, fmt.Errorf("question %d: at most 4 options allowed, got %d", i+1, len(q.Options))
		}
	}

	return questions, nil
}

// SeedQuestionsFile loads questions from path into an empty Questions table.
// Returns the number of rows inserted; an already populated table is left alone.
func SeedQuestionsFile(ctx context.Context, db *sql.DB, dialect Dialect, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open question seed: %w", err)
	}
	defer f.Close()

	questions, err := ParseQuestions(f)
	if err != nil {
		return 0, err
	}

	return SeedQuestions(ctx, db, dialect, questions)
}

// SeedQuestions inserts questions when the Questions table is empty.
func SeedQuestions(ctx context.Context, db *sql.DB, dialect Dialect, questions []SeedQuestion) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "Questions"`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 || len(questions) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, Rebind(dialect, `
		INSERT INTO "Questions" (question, option1, score1, option2, score2, option3, score3, option4, score4)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range questions {
		args := []any{q.Question}
		for i := 0; i < 4; i++ {
			var text sql.NullString
			var score sql.NullInt64
			if i < len(q.Options) {
				text = sql.NullString{String: q.Options[i].Text, Valid: true}
				if q.Options[i].Score != nil {
					score = sql.NullInt64{Int64: int64(*q.Options[i].Score), Valid: true}
				}
			}
			args = append(args, text, score)
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to insert question %q: %w", q.Question, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return len(questions), nil
}
