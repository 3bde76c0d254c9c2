// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ecowatt/auth"
	"github.com/danielhkuo/ecowatt/cliparse"
	"github.com/danielhkuo/ecowatt/db"
	"github.com/danielhkuo/ecowatt/handlers"
	"github.com/danielhkuo/ecowatt/middleware"
	"github.com/danielhkuo/ecowatt/store"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	s := store.New(conn, db.Dialect(cfg.DatabaseType), auth.Plaintext{})
	metrics := middleware.NewMetrics()

	// Every API route is logged and instrumented
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, metrics.Instrument(middleware.WithLogging(h)))
	}

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s)
	questionHandler := handlers.NewQuestionHandler(s)
	billHandler := handlers.NewBillHandler(s)
	challengeHandler := handlers.NewChallengeHandler(s)
	surveyHandler := handlers.NewSurveyHandler(s)
	applianceHandler := handlers.NewApplianceHandler(s)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Users
	handle("GET /api/user/{authToken}", userHandler.GetUser)
	handle("POST /api/signup", userHandler.Signup)
	handle("POST /api/login", userHandler.Login)
	handle("POST /api/update-score/{authToken}", userHandler.UpdateScore)

	// Survey
	handle("GET /api/questions", questionHandler.ListQuestions)
	handle("POST /api/submit-responses/{authToken}", surveyHandler.SubmitResponses)

	// Bills
	handle("GET /api/electricity-bills", billHandler.ListElectricityBills)
	handle("GET /api/water-bills", billHandler.ListWaterBills)
	handle("POST /api/bills/{kind}", billHandler.ImportBill)

	// Challenges
	handle("POST /api/user/challenges", challengeHandler.AppendChallenges)
	handle("GET /user-challenges", challengeHandler.ListChallenges)

	// Appliances
	handle("POST /save-appliances/{authToken}", applianceHandler.SaveAppliances)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ecowatt API v1"))
	})

	return mux
}
