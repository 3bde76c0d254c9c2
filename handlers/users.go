// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/middleware"
	"github.com/danielhkuo/ecowatt/models"
	"github.com/danielhkuo/ecowatt/store"
)

type UserHandler struct {
	store UserStore
}

func NewUserHandler(s UserStore) *UserHandler {
	return &UserHandler{store: s}
}

// GetUser handles GET /api/user/{authToken}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.TokenFromPath(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.store.GetUser(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// Signup handles POST /api/signup
// The client picks its own authToken, which becomes the UserID.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := middleware.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.store.CreateUser(r.Context(), models.User{
		UserID:   req.AuthToken,
		UserName: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Bio:      req.Bio,
	})
	if err != nil {
		slog.Error("failed to insert user", "user_id", req.AuthToken, "error", err)
		middleware.StorageError(w, "Failed to register user", err)
		return
	}

	slog.Info("user registered", "user_id", req.AuthToken)

	middleware.JSONResponse(w, http.StatusOK, models.SignupResponse{
		Message: "User registered successfully",
		OathID:  req.AuthToken,
	})
}

// Login handles POST /api/login
// Either username or email may identify the user; the password must match.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := h.store.Authenticate(r.Context(), req.Username, req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to authenticate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message:   "Login successful",
		AuthToken: userID,
	})
}

// UpdateScore handles POST /api/update-score/{authToken}
// Overwrites the stored score with any value that is present, including 0
// and null; only a missing total_score is rejected.
func (h *UserHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.TokenFromPath(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.TotalScore) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "total_score is required")
		return
	}

	score, err := scoreValue(req.TotalScore)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err = h.store.UpdateScore(r.Context(), userID, score)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to update score", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("score updated", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.UpdateScoreResponse{
		Message:    "Score updated successfully",
		TotalScore: req.TotalScore,
	})
}

// scoreValue turns a raw total_score into a bindable value. Scalars bind as
// decoded; objects and arrays are stored as their JSON text.
func scoreValue(raw json.RawMessage) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	switch v.(type) {
	case map[string]any, []any:
		return string(raw), nil
	}
	return v, nil
}
