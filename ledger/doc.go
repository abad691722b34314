// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger holds the state-transition rules for proposals and votes.

Nothing here touches storage, the network, or the wall clock directly. Time
and caller identity come in through the Clock and Identity interfaces so
callers (and tests) decide what "now" and "who" mean.

# Creating a Proposal

	p, err := ledger.CreateProposal(ledger.ProposalParams{
		Title:        "Lunch",
		CandidateIDs: []string{"tacos", "pho", "pizza"},
		OpenFrom:     now,
		FinishedFrom: now + 3600,
	}, ledger.SystemClock{}, ledger.StaticIdentity("alice"))

Checks run in a fixed order and the first failure is returned:

  - title at most 100 bytes
  - description at most 600 bytes
  - 2 to 12 candidates
  - each candidate ID at most 50 bytes
  - candidate IDs unique
  - open < finished, both not in the past

# Casting a Vote

	vote, err := ledger.CastVote(&p, []string{"tacos", "pho"}, clock, voter)

CastVote increments the tally of every approved candidate, or returns an
error and leaves the proposal exactly as it was. It does not check for an
earlier vote by the same voter: the store inserts votes under VoteKey and
refuses a second insert.

# Status

A proposal has no stored status. StatusAt derives it from the window:

	pending  now < OpenFrom
	open     OpenFrom <= now < FinishedFrom
	closed   now >= FinishedFrom

# Errors

All validation failures are *Error values from a closed set (see Errors).
Each carries a stable Code suitable for API responses.
*/
package ledger
