// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/cliparse"
	"github.com/danielhkuo/ecowatt/db"
	"github.com/danielhkuo/ecowatt/models"
	"github.com/danielhkuo/ecowatt/store"
)

// SetupTestDB opens a fresh SQLite database file with the full schema.
// The file lives in t.TempDir and is removed with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(context.Background(), db.SQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "test.db",
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// NewTestStore wraps conn in a Store using plaintext password matching.
func NewTestStore(conn *sql.DB) *store.Store {
	return store.New(conn, db.SQLite, auth.Plaintext{})
}

// CreateTestUser inserts a user whose UserID is authToken.
func CreateTestUser(t *testing.T, conn *sql.DB, authToken, username, email, password string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO Users (UserID, userName, email, password, bio)
		VALUES (?, ?, ?, ?, ?)
	`, authToken, username, email, password, "test bio")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestQuestion inserts a question with up to four options and returns its id.
func CreateTestQuestion(t *testing.T, conn *sql.DB, question string, options ...models.QuestionOption) int64 {
	t.Helper()

	args := []any{question}
	for i := 0; i < 4; i++ {
		if i < len(options) {
			var score any
			if options[i].Score != nil {
				score = *options[i].Score
			}
			args = append(args, options[i].Text, score)
		} else {
			args = append(args, nil, nil)
		}
	}

	res, err := conn.Exec(`
		INSERT INTO Questions (question, option1, score1, option2, score2, option3, score3, option4, score4)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read question id: %v", err)
	}
	return id
}

// CreateTestBill inserts a bill row with the given name and amount.
func CreateTestBill(t *testing.T, conn *sql.DB, kind, name, amount string) {
	t.Helper()

	table := "ElectricityBills"
	if kind == models.BillWater {
		table = "WaterBills"
	}

	_, err := conn.Exec("INSERT INTO "+table+" (name, bill_amount) VALUES (?, ?)", name, amount)
	if err != nil {
		t.Fatalf("Failed to create test bill: %v", err)
	}
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
