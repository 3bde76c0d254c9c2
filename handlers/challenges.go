// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ecowatt/middleware"
	"github.com/danielhkuo/ecowatt/models"
)

type ChallengeHandler struct {
	store ChallengeStore
}

func NewChallengeHandler(s ChallengeStore) *ChallengeHandler {
	return &ChallengeHandler{store: s}
}

// AppendChallenges handles POST /api/user/challenges
// All challenges are written together or not at all, and exactly one
// response is sent.
func (h *ChallengeHandler) AppendChallenges(w http.ResponseWriter, r *http.Request) {
	var req models.AppendChallengesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		// also covers challenges that are not an array of strings
		middleware.ErrorResponse(w, http.StatusBadRequest, "authToken and an array of challenges are required")
		return
	}

	if err := middleware.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.AppendChallenges(r.Context(), req.AuthToken, req.Challenges); err != nil {
		slog.Error("failed to insert challenges", "user_id", req.AuthToken, "count", len(req.Challenges), "error", err)
		middleware.StorageError(w, "Failed to add challenges", err)
		return
	}

	slog.Info("challenges added", "user_id", req.AuthToken, "count", len(req.Challenges))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Challenges added successfully",
	})
}

// ListChallenges handles GET /user-challenges
// Returns challenges of all users.
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.store.ListChallenges(r.Context())
	if err != nil {
		slog.Error("failed to query challenges", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChallengesResponse{
		Challenges: challenges,
	})
}
