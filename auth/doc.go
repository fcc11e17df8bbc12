// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the two credentials the Huddleboard API knows about.

# Admin Key

Destructive operations (deleting meetings, action items, ideas) require
the X-Admin-Key header. The key is an HMAC derived from ADMIN_KEY_SALT,
so it is never stored; validation re-derives and compares in constant
time:

	if err := auth.ValidateAdminKey(key, cfg.AdminKeySalt); err != nil { ... }

# Voter Token

Voting requires the X-Voter-Token header. Tokens are random 192-bit
values minted by POST /voters and held by the client; the server keeps
no voter registry. The token is the opaque voter identity the engine's
vote validation is keyed on.
*/
package auth
