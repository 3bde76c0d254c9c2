// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/ecowatt/models"
	"github.com/danielhkuo/ecowatt/testutil"
)

func TestSaveAppliances(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewApplianceHandler(testutil.NewTestStore(db))

	body := `{"fan": 3, "refrigerator": 1, "television": null, "microwave": false, "laptop": "", "iron": true}`

	var ids []int64
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/save-appliances/tok-1", strings.NewReader(body))
		req.SetPathValue("authToken", "tok-1")
		w := httptest.NewRecorder()

		handler.SaveAppliances(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SaveAppliancesResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Message != "Appliances saved successfully" {
			t.Errorf("Unexpected message %q", resp.Message)
		}
		ids = append(ids, resp.UserID)
	}

	if ids[1] <= ids[0] {
		t.Errorf("Expected increasing row ids, got %v", ids)
	}

	var fan, fridge, tv, microwave, laptop, iron, kettle int
	err := db.QueryRow(`
		SELECT fan, refrigerator, television, microwave, laptop, iron, electric_kettle
		FROM Appliances WHERE id = ?
	`, ids[0]).Scan(&fan, &fridge, &tv, &microwave, &laptop, &iron, &kettle)
	if err != nil {
		t.Fatalf("Failed to read appliances: %v", err)
	}

	if fan != 3 || fridge != 1 || iron != 1 {
		t.Errorf("Unexpected counts: fan=%d refrigerator=%d iron=%d", fan, fridge, iron)
	}
	if tv != 0 || microwave != 0 || laptop != 0 || kettle != 0 {
		t.Errorf("Expected falsy and missing counts to be 0: tv=%d microwave=%d laptop=%d kettle=%d",
			tv, microwave, laptop, kettle)
	}
}

func TestSaveAppliancesErrors(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
	}{
		{"blank token", " ", `{}`, http.StatusBadRequest},
		{"malformed body", "tok", `[`, http.StatusBadRequest},
		{"storage failure", "tok", `{"fan": 1}`, http.StatusInternalServerError},
	}

	handler := NewApplianceHandler(failingStore{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/save-appliances/x", strings.NewReader(tt.body))
			req.SetPathValue("authToken", tt.token)
			w := httptest.NewRecorder()

			handler.SaveAppliances(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestApplianceCount(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{nil, int64(0)},
		{false, int64(0)},
		{true, int64(1)},
		{float64(0), int64(0)},
		{float64(4), int64(4)},
		{1.5, 1.5},
		{1e20, 1e20},
		{-1e20, -1e20},
		{float64(math.MaxInt64), float64(math.MaxInt64)},
		{float64(math.MinInt64), int64(math.MinInt64)},
		{"", int64(0)},
		{"two", "two"},
	}

	for _, tt := range tests {
		if got := applianceCount(tt.in); got != tt.want {
			t.Errorf("applianceCount(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
