// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateIdentity(t *testing.T) {
	id, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity() error = %v", err)
	}

	// 24 bytes base64 without padding = 32 chars
	if len(id) != 32 {
		t.Errorf("GenerateIdentity() length = %d, want 32", len(id))
	}

	if strings.ContainsAny(id, "+/=.") {
		t.Errorf("GenerateIdentity() = %q, want URL-safe characters only", id)
	}

	// Test randomness - two identities should be different
	id2, _ := GenerateIdentity()
	if id == id2 {
		t.Error("GenerateIdentity() produced duplicate identities (extremely unlikely)")
	}
}

func TestSignIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		salt     string
	}{
		{"standard", "alice", "secret-salt"},
		{"empty salt", "bob", ""},
		{"identity with dots", "carol.example.com", "salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := SignIdentity(tt.identity, tt.salt)

			if !strings.HasPrefix(token, tt.identity+".") {
				t.Errorf("SignIdentity() = %q, want prefix %q", token, tt.identity+".")
			}

			// Should be deterministic
			if token != SignIdentity(tt.identity, tt.salt) {
				t.Error("SignIdentity() is not deterministic")
			}

			// Different salts should produce different tokens
			if token == SignIdentity(tt.identity, tt.salt+"x") {
				t.Error("SignIdentity() ignored the salt")
			}

			got, err := VerifyIdentityToken(token, tt.salt)
			if err != nil {
				t.Fatalf("VerifyIdentityToken() error = %v", err)
			}
			if got != tt.identity {
				t.Errorf("VerifyIdentityToken() = %q, want %q", got, tt.identity)
			}
		})
	}
}

func TestVerifyIdentityToken(t *testing.T) {
	salt := "secret-salt"
	valid := SignIdentity("alice", salt)
	sig := valid[len("alice."):]

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid", valid, nil},
		{"empty", "", ErrInvalidToken},
		{"no separator", "alice", ErrInvalidToken},
		{"missing identity", "." + sig, ErrInvalidToken},
		{"missing signature", "alice.", ErrInvalidToken},
		{"wrong identity", "mallory." + sig, ErrInvalidSignature},
		{"wrong salt", SignIdentity("alice", "other-salt"), ErrInvalidSignature},
		{"truncated signature", valid[:len(valid)-1], ErrInvalidSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyIdentityToken(tt.token, salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("VerifyIdentityToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
