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
	"strings"
)

var (
	ErrInvalidSignature = errors.New("invalid identity signature")
	ErrInvalidToken     = errors.New("invalid token format")
)

// GenerateIdentity creates a random identity for a new caller
func GenerateIdentity() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate identity: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// SignIdentity produces the bearer token for an identity: the identity
// itself, a dot, and an HMAC of the identity under salt.
// This is deterministic and verifiable
func SignIdentity(identity, salt string) string {
	return identity + "." + signature(identity, salt)
}

// VerifyIdentityToken checks a token produced by SignIdentity and returns
// the identity it carries
func VerifyIdentityToken(token, salt string) (string, error) {
	i := strings.LastIndexByte(token, '.')
	if i <= 0 || i == len(token)-1 {
		return "", ErrInvalidToken
	}

	identity, sig := token[:i], token[i+1:]
	expected := signature(identity, salt)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return identity, nil
}

func signature(identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identity))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
