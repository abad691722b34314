// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the approval ledger API.

# Handler Types

Each handler is a struct with store, config and clock dependencies:

  - IdentityHandler: Issues caller identities
  - ProposalHandler: Proposal creation and retrieval
  - VoteHandler: Vote casting and receipts

Handlers are created via constructor functions that accept *sql.DB, Config
and a ledger.Clock:

	proposalHandler := handlers.NewProposalHandler(db, cfg, ledger.SystemClock{})

Tests pass a ledger.FixedClock instead.

# Identities

	POST /identities → Issue (returns identity, identity_token)

Every write requires the X-Identity-Token header. The identity inside the
token becomes the proposer or the voter.

# Proposal Lifecycle

Proposals have no stored status. It is derived from the clock:

	pending → open → closed

	POST /proposals       → CreateProposal
	GET  /proposals       → ListProposals
	GET  /proposals/{key} → GetProposal (tallies, status, opens_in/closes_in)

The proposal key is derived from (title, proposer); creating the same title
twice from one identity is a 409.

# Voting Flow

	POST /proposals/{key}/votes    → CastVote
	GET  /proposals/{key}/votes/me → GetMyVote

One vote per identity per proposal: a second ballot is a 409 and the
tallies are untouched.

# Errors

Ledger rule violations return 400 with the rule's code in the body, except
proposal_closed which is a 409. Every rejection is counted in
metrics.Ledger.Rejections.
*/
package handlers
