// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateProposalRequest: title, description, candidate_ids,
    proposal_open_from, proposal_finished_from (seconds since epoch)
  - CastVoteRequest: candidate_ids

# Response Types

Types for JSON responses:

  - IdentityResponse: identity, identity_token
  - ProposalResponse: proposal, status, opens_in, closes_in, voter_count, total_votes
  - ProposalListResponse: proposals
  - VoteResponse: vote, proposal
  - ErrorResponse: error, code, message

Domain records (Proposal, Candidate, Vote) come from package ledger and are
embedded as-is.

# Error Codes

When a request breaks a ledger rule, ErrorResponse.Code carries the rule's
stable code, for example:

	title_too_long
	duplicate_candidates
	invalid_proposal_time
	no_votes_provided
	invalid_candidate_id
	proposal_closed

Storage outcomes use already_exists and not_found.
*/
package models
