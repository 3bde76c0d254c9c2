// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/middleware"
	"github.com/danielhkuo/ecowatt/models"
)

type SurveyHandler struct {
	store SurveyStore
}

func NewSurveyHandler(s SurveyStore) *SurveyHandler {
	return &SurveyHandler{store: s}
}

// SubmitResponses handles POST /api/submit-responses/{authToken}
// Each submission appends a row; earlier submissions are kept.
func (h *SurveyHandler) SubmitResponses(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.TokenFromPath(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	body, err := parseObject(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	answers := make(map[string]any, len(models.SurveyQuestions))
	for _, q := range models.SurveyQuestions {
		if v, ok := body[q]; ok {
			answers[q] = answerText(v)
		}
	}

	if err := h.store.SaveResponses(r.Context(), userID, answers); err != nil {
		slog.Error("failed to insert responses", "user_id", userID, "error", err)
		middleware.StorageError(w, "Failed to save responses", err)
		return
	}

	slog.Info("survey responses saved", "user_id", userID, "answered", len(answers))

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Responses saved successfully",
	})
}

// parseObject decodes a JSON object body; an empty body is an empty object.
func parseObject(r *http.Request) (map[string]any, error) {
	var body map[string]any
	if err := middleware.ParseJSONBody(r, &body); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// answerText stores survey answers as text; null stays NULL.
func answerText(v any) any {
	switch a := v.(type) {
	case nil:
		return nil
	case string:
		return a
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(a)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(b)
}
