// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// Size limits, all in bytes except the candidate counts
const (
	MinCandidates        = 2
	MaxCandidates        = 12
	MaxTitleLength       = 100
	MaxDescriptionLength = 600
	MaxCandidateIDLength = 50
)

// Candidate is one option on a proposal's slate. Two candidates are the
// same candidate when their IDs match.
type Candidate struct {
	ID        string `json:"id"`
	VoteCount uint64 `json:"vote_count"`
}

// Proposal is created once and afterwards only its candidate tallies change.
type Proposal struct {
	Key          string      `json:"key"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Candidates   []Candidate `json:"candidates"`
	OpenFrom     int64       `json:"proposal_open_from"`
	FinishedFrom int64       `json:"proposal_finished_from"`
	Proposer     string      `json:"proposer"`
	Revision     uint64      `json:"revision"`
}

// ProposalParams carries the caller-supplied fields of a new proposal
type ProposalParams struct {
	Title        string
	Description  string
	CandidateIDs []string
	OpenFrom     int64
	FinishedFrom int64
}

// Vote is a voter's immutable receipt. Candidates hold the approved IDs
// with zeroed counts, ordered by ID.
type Vote struct {
	Key        string      `json:"key"`
	Proposal   string      `json:"proposal"`
	Voter      string      `json:"voter"`
	Candidates []Candidate `json:"candidates"`
	CastAt     int64       `json:"cast_at"`
}

// TotalVotes sums every candidate's tally
func (p *Proposal) TotalVotes() uint64 {
	var total uint64
	for _, c := range p.Candidates {
		total += c.VoteCount
	}
	return total
}

// Clone returns a copy that shares no candidate storage with p
func (p Proposal) Clone() Proposal {
	p.Candidates = append([]Candidate(nil), p.Candidates...)
	return p
}
