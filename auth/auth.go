// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// adminKeyScope is the fixed HMAC message for the board admin key. The
// salt is the secret; the scope just binds the key to this service.
const adminKeyScope = "huddleboard-admin"

// GenerateAdminKey derives the board admin key from the configured salt.
// Deterministic, so the operator can re-derive it from the salt at any time.
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminKeyScope))
	sum := h.Sum(nil)
	return base64.RawURLEncoding.EncodeToString(sum)
}

// ValidateAdminKey checks the provided admin key against the configured salt.
func ValidateAdminKey(adminKey, salt string) error {
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateVoterToken mints the opaque voter identity used to track
// up/down votes. Minting happens here, never inside the engine's pure
// logic; the token is the caller's stand-in for an authenticated user.
func GenerateVoterToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
