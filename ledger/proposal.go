// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

// CreateProposal validates params and builds the proposal record to persist.
// It reads no prior state; a duplicate (title, proposer) pair is caught by
// the store when the record is inserted.
func CreateProposal(params ProposalParams, clock Clock, proposer Identity) (Proposal, error) {
	if len(params.Title) > MaxTitleLength {
		return Proposal{}, ErrTitleTooLong
	}

	if len(params.Description) > MaxDescriptionLength {
		return Proposal{}, ErrDescriptionTooLong
	}

	if len(params.CandidateIDs) < MinCandidates {
		return Proposal{}, ErrNotEnoughCandidates
	} else if len(params.CandidateIDs) > MaxCandidates {
		return Proposal{}, ErrTooManyCandidates
	}

	for _, id := range params.CandidateIDs {
		if len(id) > MaxCandidateIDLength {
			return Proposal{}, ErrCandidateIDTooLong
		}
	}

	unique := make(map[string]struct{}, len(params.CandidateIDs))
	for _, id := range params.CandidateIDs {
		unique[id] = struct{}{}
	}
	if len(unique) != len(params.CandidateIDs) {
		return Proposal{}, ErrDuplicateCandidates
	}

	now := clock.Now()
	if params.OpenFrom >= params.FinishedFrom ||
		params.OpenFrom < now ||
		params.FinishedFrom < now {
		return Proposal{}, ErrInvalidProposalTime
	}

	candidates := make([]Candidate, len(params.CandidateIDs))
	for i, id := range params.CandidateIDs {
		candidates[i] = Candidate{ID: id}
	}

	owner := proposer.Current()
	return Proposal{
		Key:          ProposalKey(params.Title, owner),
		Title:        params.Title,
		Description:  params.Description,
		Candidates:   candidates,
		OpenFrom:     params.OpenFrom,
		FinishedFrom: params.FinishedFrom,
		Proposer:     owner,
		Revision:     1,
	}, nil
}
