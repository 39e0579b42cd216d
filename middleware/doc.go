// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler with structured request logging via slog:

	mux.HandleFunc("GET /deals", middleware.WithLogging(handler.List))

Each request logs a start line (method, path, client IP) and a completion
line with the duration in milliseconds.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Deal not found")
	middleware.ParseJSONBody(r, &req)

ErrorResponse emits models.ErrorResponse with the standard status text as the
error field and the given message as detail.

# CORS

CORS wraps the whole mux. With an empty configured origin it reflects the
request origin; OPTIONS preflight requests are answered directly.

# Client IP

GetClientIP resolves the client address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr.
*/
package middleware
