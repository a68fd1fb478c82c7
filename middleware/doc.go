// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse writes a models.ErrorResponse with the standard status text
plus an optional message.

# Logging

WithLogging wraps a handler and logs request start/completion with
method, path, and duration via slog.

# CORS

The CORS middleware reflects the request origin and allows credentials,
so the session cookie works from a separately-served frontend.
*/
package middleware
