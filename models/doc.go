// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names follow the existing web client exactly, which is why the
casing is mixed (authToken, OathID, total_score, UserID).

# Request Types

  - SignupRequest: username, password, email, authToken, bio
  - LoginRequest: username, email, password
  - UpdateScoreRequest: total_score (raw, so 0 and null are accepted)
  - AppendChallengesRequest: authToken, challenges
  - ImportBillRequest: summary, user_id

Survey and appliance payloads are free-form objects keyed by the entries of
SurveyQuestions and ApplianceFields.

# Response Types

  - SignupResponse: message, OathID
  - LoginResponse: message, authToken
  - UpdateScoreResponse: message, total_score
  - ChallengesResponse: challenges
  - SaveAppliancesResponse: message, user_id
  - ImportBillResponse: message, bill_type, fields
  - ErrorResponse: error, message

# Domain Types

  - User, UserProfile: Users table rows
  - Question, QuestionOption: catalog entries with computed totalScore
  - UserChallenge: UserChallenges rows
  - Row: bill rows passed through by column name
*/
package models
