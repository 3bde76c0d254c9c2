// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPlaintextMatch(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		supplied string
		want     bool
	}{
		{"exact match", "hunter2", "hunter2", true},
		{"wrong password", "hunter2", "hunter3", false},
		{"case sensitive", "Secret", "secret", false},
		{"prefix only", "hunter2", "hunter", false},
		{"empty supplied", "hunter2", "", false},
	}

	var m Matcher = Plaintext{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.stored, tt.supplied); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.stored, tt.supplied, got, tt.want)
			}
		})
	}
}

func TestTokenFromPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"token present", "/api/user/u1", "u1", nil},
		{"whitespace token", "/api/user/%20%20", "", ErrMissingToken},
		{"padded token kept verbatim", "/api/user/%20u1%20", " u1 ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var err error

			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/user/{authToken}", func(w http.ResponseWriter, r *http.Request) {
				got, err = TokenFromPath(r)
			})
			mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", tt.path, nil))

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("TokenFromPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TokenFromPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenFromPath_NoWildcard(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/user/", nil)
	if _, err := TokenFromPath(req); !errors.Is(err, ErrMissingToken) {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
}
