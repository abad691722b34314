// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the approval ledger API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, ledger.SystemClock{})

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Identities:

	POST /identities - Issue identity and token

Proposals (writes require X-Identity-Token):

	POST /proposals       - Create proposal
	GET  /proposals       - List proposals
	GET  /proposals/{key} - Proposal, tallies and status

Votes (require X-Identity-Token):

	POST /proposals/{key}/votes    - Cast vote
	GET  /proposals/{key}/votes/me - Caller's vote receipt

# Handler Initialization

The router creates handler instances with dependency injection:

	identityHandler := handlers.NewIdentityHandler(cfg)
	proposalHandler := handlers.NewProposalHandler(db, cfg, clock)
	voteHandler := handlers.NewVoteHandler(db, cfg, clock)

All handlers share the same clock, so one injected FixedClock controls
every time-window decision in tests.
*/
package router
