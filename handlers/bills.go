// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ecowatt/billparse"
	"github.com/danielhkuo/ecowatt/middleware"
	"github.com/danielhkuo/ecowatt/models"
)

type BillHandler struct {
	store BillStore
	now   func() time.Time
}

func NewBillHandler(s BillStore) *BillHandler {
	return &BillHandler{store: s, now: time.Now}
}

// ListElectricityBills handles GET /api/electricity-bills
func (h *BillHandler) ListElectricityBills(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.BillElectricity)
}

// ListWaterBills handles GET /api/water-bills
func (h *BillHandler) ListWaterBills(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, models.BillWater)
}

// Every row is returned to every caller; bills are not scoped per user.
func (h *BillHandler) list(w http.ResponseWriter, r *http.Request, kind string) {
	bills, err := h.store.ListBills(r.Context(), kind)
	if err != nil {
		slog.Error("failed to query bills", "bill_type", kind, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, bills)
}

// ImportBill handles POST /api/bills/{kind}
// Parses a "Field: Value" bill summary and stores it as one bill row.
func (h *BillHandler) ImportBill(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	if !billparse.ValidKind(kind) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bill type must be electricity or water")
		return
	}

	var req models.ImportBillRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := middleware.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := billparse.Parse(req.Summary, kind, h.now())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cols, values := billparse.Columns(kind, summary)
	if err := h.store.InsertBill(r.Context(), kind, req.UserID, cols, values); err != nil {
		slog.Error("failed to insert bill", "bill_type", kind, "error", err)
		middleware.StorageError(w, "Failed to save bill", err)
		return
	}

	slog.Info("bill imported", "bill_type", kind, "user_id", req.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.ImportBillResponse{
		Message:  "Bill details saved successfully",
		BillType: kind,
		Fields:   summary,
	})
}
