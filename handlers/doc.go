// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the EcoWatt API.

# Handler Types

Each handler is a struct holding the storage capability it needs:

  - UserHandler: Profiles, signup, login and score updates
  - QuestionHandler: Survey question catalog
  - BillHandler: Electricity and water bill listing and summary import
  - ChallengeHandler: Per-user challenge lists
  - SurveyHandler: Survey answer submission
  - ApplianceHandler: Appliance inventory snapshots

Handlers are created via constructor functions that accept a small store
interface, satisfied by *store.Store:

	userHandler := handlers.NewUserHandler(s)

# Identity

The authToken chosen at signup is the user's identifier. Routes that act on
a user carry it as the {authToken} path segment; it is not verified against
any session.

# Errors

Error bodies are {"error": "..."}. Storage failures on writes also carry
the underlying error text in "message".
*/
package handlers
