// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/db"
	"github.com/danielhkuo/ecowatt/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownBill    = errors.New("unknown bill type")
	ErrNoChallenges   = errors.New("no challenges to insert")
	ErrColumnMismatch = errors.New("column and value counts differ")
)

// Store is the storage capability shared by all handlers.
type Store struct {
	db      *sql.DB
	dialect db.Dialect
	matcher auth.Matcher
}

func New(conn *sql.DB, dialect db.Dialect, matcher auth.Matcher) *Store {
	return &Store{db: conn, dialect: dialect, matcher: matcher}
}

func (s *Store) rebind(query string) string {
	return db.Rebind(s.dialect, query)
}

// GetUser returns the profile stored under userID.
func (s *Store) GetUser(ctx context.Context, userID string) (models.UserProfile, error) {
	var p models.UserProfile
	var score any
	var bio sql.NullString

	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT "userScore", "userName", email, password, bio
		FROM "Users"
		WHERE "UserID" = ?
	`), userID).Scan(&score, &p.UserName, &p.Email, &p.Password, &bio)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to query user: %w", err)
	}

	if b, ok := score.([]byte); ok {
		score = string(b)
	}
	p.UserScore = score
	p.Bio = bio.String

	return p, nil
}

// CreateUser inserts a new user. A duplicate UserID surfaces as the
// driver's constraint error.
func (s *Store) CreateUser(ctx context.Context, u models.User) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO "Users" ("UserID", "userName", email, password, bio)
		VALUES (?, ?, ?, ?, ?)
	`), u.UserID, u.UserName, u.Email, u.Password, u.Bio)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// Authenticate returns the UserID of a user whose name or email matches and
// whose password matches. Unknown users and wrong passwords both yield
// auth.ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, username, email, password string) (string, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT "UserID", password
		FROM "Users"
		WHERE "userName" = ? OR email = ?
	`), username, email)
	if err != nil {
		return "", fmt.Errorf("failed to query credentials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, stored string
		if err := rows.Scan(&userID, &stored); err != nil {
			return "", fmt.Errorf("failed to scan credentials: %w", err)
		}
		if s.matcher.Match(stored, password) {
			return userID, nil
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("failed to iterate credentials: %w", err)
	}

	return "", auth.ErrInvalidCredentials
}

// UpdateScore overwrites the user's score with whatever value was sent; the
// column's type decides how it is stored. A nil score clears it.
func (s *Store) UpdateScore(ctx context.Context, userID string, score any) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE "Users" SET "userScore" = ? WHERE "UserID" = ?
	`), score, userID)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// ListQuestions returns the catalog with each question's total score.
func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, option1, score1, option2, score2, option3, score3, option4, score4
		FROM "Questions"
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var texts [4]sql.NullString
		var scores [4]sql.NullInt64

		if err := rows.Scan(
			&q.ID, &q.Question,
			&texts[0], &scores[0],
			&texts[1], &scores[1],
			&texts[2], &scores[2],
			&texts[3], &scores[3],
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		q.Options = make([]models.QuestionOption, 4)
		for i := range q.Options {
			q.Options[i].Text = texts[i].String
			if scores[i].Valid {
				score := int(scores[i].Int64)
				q.Options[i].Score = &score
			}
		}
		q.TotalScore = TotalScore(q.Options)

		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// TotalScore sums option scores, counting missing scores as zero.
func TotalScore(options []models.QuestionOption) int {
	total := 0
	for _, o := range options {
		if o.Score != nil {
			total += *o.Score
		}
	}
	return total
}

// AppendChallenges inserts one row per challenge in a single transaction;
// either every row is written or none is.
func (s *Store) AppendChallenges(ctx context.Context, userID string, challenges []string) error {
	if len(challenges) == 0 {
		return ErrNoChallenges
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.rebind(`
		INSERT INTO "UserChallenges" ("UserID", challenge) VALUES (?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare challenge insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range challenges {
		if _, err := stmt.ExecContext(ctx, userID, c); err != nil {
			return fmt.Errorf("failed to insert challenge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit challenges: %w", err)
	}

	return nil
}

// ListChallenges returns every challenge row across all users.
func (s *Store) ListChallenges(ctx context.Context) ([]models.UserChallenge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, "UserID", challenge FROM "UserChallenges" ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	challenges := []models.UserChallenge{}
	for rows.Next() {
		var c models.UserChallenge
		if err := rows.Scan(&c.ID, &c.UserID, &c.Challenge); err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate challenges: %w", err)
	}

	return challenges, nil
}

// SaveResponses appends one survey row. Answers are keyed by the literal
// question text; questions without an answer are stored as NULL.
func (s *Store) SaveResponses(ctx context.Context, userID string, answers map[string]any) error {
	cols := []string{"UserID"}
	args := []any{userID}
	for _, q := range models.SurveyQuestions {
		cols = append(cols, q)
		args = append(args, answers[q])
	}

	if _, err := s.db.ExecContext(ctx, s.insertQuery("UserResponses", cols), args...); err != nil {
		return fmt.Errorf("failed to insert responses: %w", err)
	}
	return nil
}

// SaveAppliances appends one appliance inventory row and returns its id.
// Appliances missing from counts are stored as 0.
func (s *Store) SaveAppliances(ctx context.Context, userID string, counts map[string]any) (int64, error) {
	cols := []string{"UserID"}
	args := []any{userID}
	for _, f := range models.ApplianceFields {
		v, ok := counts[f]
		if !ok || v == nil {
			v = 0
		}
		cols = append(cols, f)
		args = append(args, v)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, s.insertQuery("Appliances", cols)+" RETURNING id", args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert appliances: %w", err)
	}
	return id, nil
}

// ListBills returns every row of the bill table for kind, columns passed
// through as stored.
func (s *Store) ListBills(ctx context.Context, kind string) ([]models.Row, error) {
	table, err := billTable(kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+db.QuoteIdent(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// InsertBill writes one bill row. userID is only recorded for electricity bills.
func (s *Store) InsertBill(ctx context.Context, kind, userID string, cols, values []string) error {
	table, err := billTable(kind)
	if err != nil {
		return err
	}
	if len(cols) != len(values) {
		return ErrColumnMismatch
	}

	var insertCols []string
	var args []any
	if kind == models.BillElectricity {
		var uid sql.NullString
		if userID != "" {
			uid = sql.NullString{String: userID, Valid: true}
		}
		insertCols = append(insertCols, "UserID")
		args = append(args, uid)
	}
	for i, c := range cols {
		insertCols = append(insertCols, c)
		args = append(args, values[i])
	}

	if _, err := s.db.ExecContext(ctx, s.insertQuery(table, insertCols), args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// insertQuery quotes every identifier so names keep their case in PostgreSQL.
func (s *Store) insertQuery(table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = db.QuoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return s.rebind("INSERT INTO " + db.QuoteIdent(table) + " (" + strings.Join(quoted, ", ") + ") VALUES (" + placeholders + ")")
}

func billTable(kind string) (string, error) {
	switch kind {
	case models.BillElectricity:
		return "ElectricityBills", nil
	case models.BillWater:
		return "WaterBills", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBill, kind)
}

func scanRows(rows *sql.Rows) ([]models.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := []models.Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(models.Row, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
			} else {
				row[c] = values[i]
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return result, nil
}
