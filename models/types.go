package models

import "encoding/json"

// Bill kinds accepted by the import endpoint
const (
	BillElectricity = "electricity"
	BillWater       = "water"
)

// Request types

type SignupRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required"`
	AuthToken string `json:"authToken" validate:"required"`
	Bio       string `json:"bio" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TotalScore stays raw so an explicit zero or null can be told apart from
// a missing key.
type UpdateScoreRequest struct {
	TotalScore json.RawMessage `json:"total_score"`
}

type AppendChallengesRequest struct {
	AuthToken  string   `json:"authToken" validate:"required"`
	Challenges []string `json:"challenges" validate:"required,min=1"`
}

type ImportBillRequest struct {
	Summary string `json:"summary" validate:"required"`
	UserID  string `json:"user_id"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type SignupResponse struct {
	Message string `json:"message"`
	OathID  string `json:"OathID"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	AuthToken string `json:"authToken"`
}

// TotalScore echoes the submitted value as given.
type UpdateScoreResponse struct {
	Message    string          `json:"message"`
	TotalScore json.RawMessage `json:"total_score"`
}

type ChallengesResponse struct {
	Challenges []UserChallenge `json:"challenges"`
}

type SaveAppliancesResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type ImportBillResponse struct {
	Message  string            `json:"message"`
	BillType string            `json:"bill_type"`
	Fields   map[string]string `json:"fields"`
}

// Domain types

// User is a row of the Users table. UserID doubles as the client's
// authToken; it is self-asserted and carries no cryptographic weight.
type User struct {
	UserID   string
	UserName string
	Email    string
	Password string
	Bio      string
	Score    any
}

// UserProfile is the lookup view of a user. The password and score are
// echoed back as stored.
type UserProfile struct {
	UserScore any    `json:"userScore"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Bio       string `json:"bio"`
}

type QuestionOption struct {
	Text  string `json:"text"`
	Score *int   `json:"score"`
}

type Question struct {
	ID         int64            `json:"id"`
	Question   string           `json:"question"`
	Options    []QuestionOption `json:"options"`
	TotalScore int              `json:"totalScore"`
}

type UserChallenge struct {
	ID        int64  `json:"id"`
	UserID    string `json:"UserID"`
	Challenge string `json:"challenge"`
}

// Row is a table row passed through verbatim, keyed by column name.
type Row map[string]any

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
