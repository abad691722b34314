// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/approval-ledger/cliparse"
	"github.com/danielhkuo/approval-ledger/handlers"
	"github.com/danielhkuo/approval-ledger/ledger"
	"github.com/danielhkuo/approval-ledger/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, clock ledger.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	identityHandler := handlers.NewIdentityHandler(cfg)
	proposalHandler := handlers.NewProposalHandler(db, cfg, clock)
	voteHandler := handlers.NewVoteHandler(db, cfg, clock)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Identities
	mux.HandleFunc("POST /identities", middleware.WithLogging(identityHandler.Issue))

	// Proposals
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.CreateProposal))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("GET /proposals/{key}", middleware.WithLogging(proposalHandler.GetProposal))

	// Votes
	mux.HandleFunc("POST /proposals/{key}/votes", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("GET /proposals/{key}/votes/me", middleware.WithLogging(voteHandler.GetMyVote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("approval-ledger API v1"))
	})

	return mux
}
