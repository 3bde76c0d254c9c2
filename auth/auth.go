// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingToken       = errors.New("authToken is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenPathParam is the route wildcard carrying the caller's authToken.
const TokenPathParam = "authToken"

// Matcher compares a stored credential with the one a client supplied.
type Matcher interface {
	Match(stored, supplied string) bool
}

// Plaintext matches passwords stored as given at signup.
// The comparison is constant time but the storage is not protected.
type Plaintext struct{}

func (Plaintext) Match(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// TokenFromPath extracts the authToken wildcard from the request path.
// The token is the user's primary key; it identifies the caller but does
// not prove anything about them. Blank tokens are rejected; others are
// returned verbatim so they match the key stored at signup.
func TokenFromPath(r *http.Request) (string, error) {
	token := r.PathValue(TokenPathParam)
	if strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
