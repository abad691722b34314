// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/approval-ledger/ledger"

// Request types

type CreateProposalRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	CandidateIDs         []string `json:"candidate_ids"`
	ProposalOpenFrom     int64    `json:"proposal_open_from"`
	ProposalFinishedFrom int64    `json:"proposal_finished_from"`
}

type CastVoteRequest struct {
	CandidateIDs []string `json:"candidate_ids"`
}

// Response types

type IdentityResponse struct {
	Identity      string `json:"identity"`
	IdentityToken string `json:"identity_token"`
}

// ProposalResponse is a proposal as seen at the server's current time
type ProposalResponse struct {
	Proposal   ledger.Proposal `json:"proposal"`
	Status     ledger.Status   `json:"status"`
	OpensIn    string          `json:"opens_in,omitempty"`  // humanized, pending only
	ClosesIn   string          `json:"closes_in,omitempty"` // humanized, pending or open
	VoterCount int             `json:"voter_count"`
	TotalVotes uint64          `json:"total_votes"`
}

type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

type VoteResponse struct {
	Vote     ledger.Vote     `json:"vote"`
	Proposal ledger.Proposal `json:"proposal"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
