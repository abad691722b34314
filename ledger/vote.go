// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"slices"
	"strings"
)

// CastVote records one approval for each of candidateIDs on proposal and
// returns the voter's receipt.
//
// Every check, including the lookup of each ID on the slate, runs before the
// first tally is touched: a rejected ballot leaves proposal unchanged.
// Whether voter has already voted is the store's concern, not checked here.
func CastVote(proposal *Proposal, candidateIDs []string, clock Clock, voter Identity) (Vote, error) {
	now := clock.Now()
	if proposal.StatusAt(now) != StatusOpen {
		return Vote{}, ErrProposalClosed
	}

	if len(candidateIDs) == 0 {
		return Vote{}, ErrNoVotesProvided
	}

	if len(candidateIDs) > len(proposal.Candidates) {
		return Vote{}, ErrTooManyApprovals
	}

	unique := make(map[string]struct{}, len(candidateIDs))
	for _, id := range candidateIDs {
		unique[id] = struct{}{}
	}
	if len(unique) != len(candidateIDs) {
		return Vote{}, ErrDuplicateCandidates
	}

	// Resolve every ID to a slate index first
	indexes := make([]int, 0, len(unique))
	for id := range unique {
		i := slices.IndexFunc(proposal.Candidates, func(c Candidate) bool { return c.ID == id })
		if i < 0 {
			return Vote{}, ErrInvalidCandidateID
		}
		indexes = append(indexes, i)
	}

	for _, i := range indexes {
		proposal.Candidates[i].VoteCount++
	}

	approved := make([]Candidate, 0, len(unique))
	for id := range unique {
		approved = append(approved, Candidate{ID: id})
	}
	slices.SortFunc(approved, func(a, b Candidate) int { return strings.Compare(a.ID, b.ID) })

	name := voter.Current()
	return Vote{
		Key:        VoteKey(name, proposal.Key),
		Proposal:   proposal.Key,
		Voter:      name,
		Candidates: approved,
		CastAt:     now,
	}, nil
}
