// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"

	"github.com/danielhkuo/ecowatt/models"
)

var errStorage = errors.New("storage unavailable")

// failingStore implements every storage capability and fails each call.
type failingStore struct{}

func (failingStore) GetUser(context.Context, string) (models.UserProfile, error) {
	return models.UserProfile{}, errStorage
}

func (failingStore) CreateUser(context.Context, models.User) error { return errStorage }

func (failingStore) Authenticate(context.Context, string, string, string) (string, error) {
	return "", errStorage
}

func (failingStore) UpdateScore(context.Context, string, any) error { return errStorage }

func (failingStore) ListQuestions(context.Context) ([]models.Question, error) {
	return nil, errStorage
}

func (failingStore) ListBills(context.Context, string) ([]models.Row, error) {
	return nil, errStorage
}

func (failingStore) InsertBill(context.Context, string, string, []string, []string) error {
	return errStorage
}

func (failingStore) AppendChallenges(context.Context, string, []string) error { return errStorage }

func (failingStore) ListChallenges(context.Context) ([]models.UserChallenge, error) {
	return nil, errStorage
}

func (failingStore) SaveResponses(context.Context, string, map[string]any) error { return errStorage }

func (failingStore) SaveAppliances(context.Context, string, map[string]any) (int64, error) {
	return 0, errStorage
}
