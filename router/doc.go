// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the EcoWatt API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Operational:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics
	GET /        - Version banner

Users:

	GET  /api/user/{authToken}         - Profile
	POST /api/signup                   - Register
	POST /api/login                    - Username or email login
	POST /api/update-score/{authToken} - Overwrite score

Survey:

	GET  /api/questions                    - Question catalog
	POST /api/submit-responses/{authToken} - Store answers

Bills:

	GET  /api/electricity-bills - All electricity bills
	GET  /api/water-bills       - All water bills
	POST /api/bills/{kind}      - Import a bill summary

Challenges and appliances:

	POST /api/user/challenges          - Append challenges
	GET  /user-challenges              - All challenges
	POST /save-appliances/{authToken}  - Store appliance counts

# Handler Initialization

The router builds one store.Store on the connection and hands it to every
handler. API routes are wrapped with request logging and Prometheus
instrumentation; CORS is applied around the whole mux by main.
*/
package router
