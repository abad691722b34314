// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/approval-ledger/ledger"
	"github.com/danielhkuo/approval-ledger/models"
	"github.com/danielhkuo/approval-ledger/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg, ledger.FixedClock(testutil.T0))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg, ledger.FixedClock(testutil.T0))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "approval-ledger API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	mux := NewRouter(db, testutil.GetTestConfig(), ledger.FixedClock(testutil.T0))

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg, ledger.FixedClock(testutil.T0))

	// Routes that need an identity answer 401, unknown proposals 404;
	// neither is the mux's own 404/405.
	testCases := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"POST", "/identities", http.StatusCreated},
		{"POST", "/proposals", http.StatusUnauthorized},
		{"GET", "/proposals", http.StatusOK},
		{"GET", "/proposals/missing", http.StatusNotFound},
		{"POST", "/proposals/missing/votes", http.StatusUnauthorized},
		{"GET", "/proposals/missing/votes/me", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.want)
		})
	}
}

func TestWrongMethod(t *testing.T) {
	db := testutil.SetupTestDB(t)

	mux := NewRouter(db, testutil.GetTestConfig(), ledger.FixedClock(testutil.T0))

	req := httptest.NewRequest("DELETE", "/proposals", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
}

func TestEndToEnd(t *testing.T) {
	db := testutil.SetupTestDB(t)

	mux := NewRouter(db, testutil.GetTestConfig(), ledger.FixedClock(testutil.T0))

	// Issue an identity
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/identities", nil, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var id models.IdentityResponse
	testutil.AssertJSON(t, w, &id)
	headers := map[string]string{"X-Identity-Token": id.IdentityToken}

	// Create a proposal
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/proposals", models.CreateProposalRequest{
		Title:                "Team offsite",
		CandidateIDs:         []string{"lisbon", "oslo"},
		ProposalOpenFrom:     testutil.T0,
		ProposalFinishedFrom: testutil.T0 + 3600,
	}, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var created models.ProposalResponse
	testutil.AssertJSON(t, w, &created)

	// Vote
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/proposals/"+created.Proposal.Key+"/votes",
		models.CastVoteRequest{CandidateIDs: []string{"oslo"}}, headers))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Read back
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/proposals/"+created.Proposal.Key, nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var got models.ProposalResponse
	testutil.AssertJSON(t, w, &got)

	if got.TotalVotes != 1 || got.VoterCount != 1 {
		t.Errorf("Expected 1 vote from 1 voter, got %d from %d", got.TotalVotes, got.VoterCount)
	}
	if got.Proposal.Candidates[1].VoteCount != 1 {
		t.Errorf("Expected oslo to have 1 vote, got %d", got.Proposal.Candidates[1].VoteCount)
	}
	if got.Proposal.Proposer != id.Identity {
		t.Errorf("Expected proposer %s, got %s", id.Identity, got.Proposal.Proposer)
	}
}
