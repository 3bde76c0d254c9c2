// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/db"
	"github.com/danielhkuo/ecowatt/models"
)

func newMockStore(t *testing.T, dialect db.Dialect) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return New(conn, dialect, auth.Plaintext{}), mock
}

func TestStore_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		rows := sqlmock.NewRows([]string{"userScore", "userName", "email", "password", "bio"}).
			AddRow(42.0, "ana", "ana@example.com", "pw", "hi")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT "userScore", "userName", email, password, bio`)).
			WithArgs("u1").
			WillReturnRows(rows)

		p, err := s.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 42.0, p.UserScore)
		assert.Equal(t, "ana", p.UserName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NullScore", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		rows := sqlmock.NewRows([]string{"userScore", "userName", "email", "password", "bio"}).
			AddRow(nil, "ana", "ana@example.com", "pw", nil)
		mock.ExpectQuery(`SELECT "userScore"`).WithArgs("u1").WillReturnRows(rows)

		p, err := s.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, p.UserScore)
		assert.Equal(t, "", p.Bio)
	})

	t.Run("NotFound", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectQuery(`SELECT "userScore"`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"userScore", "userName", "email", "password", "bio"}))

		_, err := s.GetUser(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectQuery(`SELECT "userScore"`).WillReturnError(errors.New("disk I/O error"))

		_, err := s.GetUser(ctx, "u1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "disk I/O error")
	})
}

func TestStore_CreateUser_ConstraintError(t *testing.T) {
	s, mock := newMockStore(t, db.SQLite)
	mock.ExpectExec(`INSERT INTO "Users"`).
		WithArgs("u1", "ana", "ana@example.com", "pw", "bio").
		WillReturnError(errors.New("UNIQUE constraint failed: Users.UserID"))

	err := s.CreateUser(context.Background(), models.User{
		UserID: "u1", UserName: "ana", Email: "ana@example.com", Password: "pw", Bio: "bio",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Authenticate(t *testing.T) {
	ctx := context.Background()
	cols := []string{"UserID", "password"}

	t.Run("MatchesSecondCandidate", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectQuery(`SELECT "UserID", password`).
			WithArgs("ana", "ana@example.com").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u1", "other").AddRow("u2", "pw"))

		id, err := s.Authenticate(ctx, "ana", "ana@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "u2", id)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectQuery(`SELECT "UserID", password`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("u1", "pw"))

		_, err := s.Authenticate(ctx, "ana", "", "nope")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("QueryError", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectQuery(`SELECT "UserID", password`).WillReturnError(errors.New("boom"))

		_, err := s.Authenticate(ctx, "ana", "", "pw")
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestStore_UpdateScore(t *testing.T) {
	ctx := context.Background()
	score := 10.0

	t.Run("Updated", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectExec(`UPDATE "Users" SET "userScore"`).
			WithArgs(sqlmock.AnyArg(), "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.UpdateScore(ctx, "u1", score))
	})

	t.Run("NoRowsAffected", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectExec(`UPDATE "Users" SET "userScore"`).
			WithArgs(sqlmock.AnyArg(), "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.UpdateScore(ctx, "ghost", score), ErrNotFound)
	})

	t.Run("PostgresPlaceholders", func(t *testing.T) {
		s, mock := newMockStore(t, db.Postgres)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "Users" SET "userScore" = $1 WHERE "UserID" = $2`)).
			WithArgs(sqlmock.AnyArg(), "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.UpdateScore(ctx, "u1", nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_AppendChallenges(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsAll", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectBegin()
		prep := mock.ExpectPrepare(`INSERT INTO "UserChallenges"`)
		prep.ExpectExec().WithArgs("u1", "Turn off lights").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("u1", "Unplug chargers").WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := s.AppendChallenges(ctx, "u1", []string{"Turn off lights", "Unplug chargers"})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnFailure", func(t *testing.T) {
		s, mock := newMockStore(t, db.SQLite)
		mock.ExpectBegin()
		prep := mock.ExpectPrepare(`INSERT INTO "UserChallenges"`)
		prep.ExpectExec().WithArgs("u1", "a").WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().WithArgs("u1", "b").WillReturnError(errors.New("database is locked"))
		mock.ExpectRollback()

		err := s.AppendChallenges(ctx, "u1", []string{"a", "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is locked")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		s, _ := newMockStore(t, db.SQLite)
		assert.ErrorIs(t, s.AppendChallenges(ctx, "u1", nil), ErrNoChallenges)
	})
}

func TestStore_SaveAppliances_DefaultsToZero(t *testing.T) {
	s, mock := newMockStore(t, db.SQLite)

	args := []driver.Value{"u1"}
	for _, f := range models.ApplianceFields {
		if f == "fan" {
			args = append(args, int64(3))
			continue
		}
		args = append(args, int64(0))
	}

	mock.ExpectQuery(`INSERT INTO "Appliances" .* RETURNING id`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := s.SaveAppliances(context.Background(), "u1", map[string]any{"fan": int64(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListBills(t *testing.T) {
	s, mock := newMockStore(t, db.SQLite)
	rows := sqlmock.NewRows([]string{"id", "name", "bill_amount"}).
		AddRow(int64(1), []byte("A. Sharma"), "1240")
	mock.ExpectQuery(`SELECT \* FROM "WaterBills"`).WillReturnRows(rows)

	bills, err := s.ListBills(context.Background(), models.BillWater)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "A. Sharma", bills[0]["name"])
	assert.Equal(t, "1240", bills[0]["bill_amount"])

	_, err = s.ListBills(context.Background(), "gas")
	assert.ErrorIs(t, err, ErrUnknownBill)
}

func TestStore_InsertBill(t *testing.T) {
	s, mock := newMockStore(t, db.Postgres)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ElectricityBills" ("UserID", "name", "bill_amount") VALUES ($1, $2, $3)`)).
		WithArgs("u1", "A", "10").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.InsertBill(context.Background(), models.BillElectricity, "u1", []string{"name", "bill_amount"}, []string{"A", "10"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	err = s.InsertBill(context.Background(), models.BillWater, "", []string{"name"}, nil)
	assert.ErrorIs(t, err, ErrColumnMismatch)
}

func TestTotalScore(t *testing.T) {
	two, three, one := 2, 3, 1
	options := []models.QuestionOption{{Score: &two}, {Score: &three}, {Score: nil}, {Score: &one}}

	assert.Equal(t, 6, TotalScore(options))
}

func TestStore_PostgresKeepsColumnCase(t *testing.T) {
	ctx := context.Background()

	t.Run("ListBills", func(t *testing.T) {
		s, mock := newMockStore(t, db.Postgres)
		rows := sqlmock.NewRows([]string{"id", "UserID", "peak_usage_hours"}).
			AddRow(int64(1), "u1", "Not provided")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ElectricityBills"`)).WillReturnRows(rows)

		bills, err := s.ListBills(ctx, models.BillElectricity)
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, "u1", bills[0]["UserID"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUser", func(t *testing.T) {
		s, mock := newMockStore(t, db.Postgres)
		mock.ExpectQuery(`FROM "Users"\s+WHERE "UserID" = \$1`).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows([]string{"userScore", "userName", "email", "password", "bio"}).
				AddRow(nil, "ana", "a@x", "pw", "hi"))

		_, err := s.GetUser(ctx, "u1")
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SaveResponses", func(t *testing.T) {
		s, mock := newMockStore(t, db.Postgres)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "UserResponses" ("UserID", "` + models.SurveyQuestions[0] + `", `)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.SaveResponses(ctx, "u1", map[string]any{}))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
