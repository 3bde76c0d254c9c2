// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/ecowatt/models"
)

// Storage capabilities each handler needs. *store.Store satisfies all of them.

type UserStore interface {
	GetUser(ctx context.Context, userID string) (models.UserProfile, error)
	CreateUser(ctx context.Context, u models.User) error
	Authenticate(ctx context.Context, username, email, password string) (string, error)
	UpdateScore(ctx context.Context, userID string, score any) error
}

type QuestionStore interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
}

type BillStore interface {
	ListBills(ctx context.Context, kind string) ([]models.Row, error)
	InsertBill(ctx context.Context, kind, userID string, cols, values []string) error
}

type ChallengeStore interface {
	AppendChallenges(ctx context.Context, userID string, challenges []string) error
	ListChallenges(ctx context.Context) ([]models.UserChallenge, error)
}

type SurveyStore interface {
	SaveResponses(ctx context.Context, userID string, answers map[string]any) error
}

type ApplianceStore interface {
	SaveAppliances(ctx context.Context, userID string, counts map[string]any) (int64, error)
}
