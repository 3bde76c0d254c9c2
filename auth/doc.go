// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the (deliberately thin) identity helpers of the API.

# authToken

Clients identify themselves with an authToken that is simply the UserID they
chose at signup. It is returned by login and passed back in request paths:

	token, err := auth.TokenFromPath(r)

There is no issuance, expiry or revocation. Anyone who knows a UserID can
act as that user.

# Password Matching

Login compares passwords through a Matcher:

	var m auth.Matcher = auth.Plaintext{}
	ok := m.Match(storedPassword, suppliedPassword)

Passwords are stored as given at signup, so Plaintext is the only matcher.
A hashing matcher can be dropped in behind the same interface together with
a signup change.
*/
package auth
