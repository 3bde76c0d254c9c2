// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"testing"

	"github.com/danielhkuo/ecowatt/models"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		input   interface{}
		wantErr string
	}{
		{
			name: "complete signup",
			input: models.SignupRequest{
				Username: "ana", Password: "pw", Email: "ana@example.com", AuthToken: "u1", Bio: "hi",
			},
		},
		{
			name:    "missing authToken reported by JSON name",
			input:   models.SignupRequest{Username: "ana", Password: "pw", Email: "e", Bio: "b"},
			wantErr: "authToken is required",
		},
		{
			name:    "nil challenges",
			input:   models.AppendChallengesRequest{AuthToken: "u1"},
			wantErr: "challenges is required",
		},
		{
			name:    "empty challenges",
			input:   models.AppendChallengesRequest{AuthToken: "u1", Challenges: []string{}},
			wantErr: "challenges must have at least 1 item(s)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("Expected error %q, got %v", tc.wantErr, err)
			}
		})
	}
}
