// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: wraps a handler with slog request/completion logging,
    tagging both lines with a generated request ID
  - CORS: permissive cross-origin handling for the dashboard frontend,
    including OPTIONS preflight

# Helpers

  - JSONResponse / ErrorResponse: consistent JSON output; errors use the
    models.ErrorResponse shape
  - ParseJSONBody: decode and close a JSON request body
  - GetClientIP: client address from X-Forwarded-For, X-Real-IP, or
    RemoteAddr
*/
package middleware
