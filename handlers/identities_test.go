// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/approval-ledger/auth"
	"github.com/danielhkuo/approval-ledger/models"
	"github.com/danielhkuo/approval-ledger/testutil"
)

func TestIssueIdentity(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewIdentityHandler(cfg)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.Issue(w, testutil.MakeRequest("POST", "/identities", nil, nil))

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.IdentityResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Identity == "" {
			t.Fatal("Expected non-empty identity")
		}
		if seen[resp.Identity] {
			t.Errorf("Identity %s issued twice", resp.Identity)
		}
		seen[resp.Identity] = true

		got, err := auth.VerifyIdentityToken(resp.IdentityToken, cfg.IdentitySalt)
		if err != nil {
			t.Fatalf("Issued token does not verify: %v", err)
		}
		if got != resp.Identity {
			t.Errorf("Token names %s, expected %s", got, resp.Identity)
		}
	}
}

func TestIssueIdentity_OtherSalt(t *testing.T) {
	w := httptest.NewRecorder()
	NewIdentityHandler(testutil.GetTestConfig()).Issue(w, testutil.MakeRequest("POST", "/identities", nil, nil))

	var resp models.IdentityResponse
	testutil.AssertJSON(t, w, &resp)

	if _, err := auth.VerifyIdentityToken(resp.IdentityToken, "another-salt"); err == nil {
		t.Error("Expected token to be rejected under a different salt")
	}
}
