// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/middleware"
	"github.com/danielhkuo/ecowatt/models"
)

type ApplianceHandler struct {
	store ApplianceStore
}

func NewApplianceHandler(s ApplianceStore) *ApplianceHandler {
	return &ApplianceHandler{store: s}
}

// SaveAppliances handles POST /save-appliances/{authToken}
// Missing or falsy counts are stored as 0. Values are not checked to be
// numeric; the database decides what it accepts.
func (h *ApplianceHandler) SaveAppliances(w http.ResponseWriter, r *http.Request) {
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

	counts := make(map[string]any, len(models.ApplianceFields))
	for _, f := range models.ApplianceFields {
		counts[f] = applianceCount(body[f])
	}

	id, err := h.store.SaveAppliances(r.Context(), userID, counts)
	if err != nil {
		slog.Error("failed to insert appliances", "user_id", userID, "error", err)
		middleware.StorageError(w, "Failed to save appliances", err)
		return
	}

	slog.Info("appliances saved", "user_id", userID, "row_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.SaveAppliancesResponse{
		Message: "Appliances saved successfully",
		UserID:  id,
	})
}

func applianceCount(v any) any {
	switch n := v.(type) {
	case nil:
		return int64(0)
	case bool:
		if n {
			return int64(1)
		}
		return int64(0)
	case float64:
		// outside the int64 range the float is kept rather than wrapped
		if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
			return int64(n)
		}
		return n
	case string:
		if n == "" {
			return int64(0)
		}
		return n
	}
	return v
}
