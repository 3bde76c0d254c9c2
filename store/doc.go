// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the storage capability handed to every HTTP handler.

	s := store.New(conn, db.SQLite, auth.Plaintext{})

Each method is one statement against the schema created by package db,
except AppendChallenges which writes its rows inside one transaction.
Lookups that match nothing return ErrNotFound; Authenticate returns
auth.ErrInvalidCredentials. Every other failure is the driver error wrapped
with context.
*/
package store
