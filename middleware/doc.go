// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from X-Request-ID or a new
UUID and is echoed in the response header.

# Metrics

	m := middleware.NewMetrics()
	mux.HandleFunc("GET /api/questions", m.Instrument(handler))
	mux.Handle("GET /metrics", m.Handler())

Counts requests by route pattern and status, with a latency histogram and
an in-flight gauge.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.StorageError(w, "Failed to save responses", err)

Error bodies always carry an "error" key. StorageError adds the storage
error text under "message".

# Validation

	if err := middleware.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	}

Uses go-playground/validator struct tags; messages name the JSON field.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
