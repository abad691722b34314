// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "errors"

// Error is a rejected precondition. The set of values below is closed;
// callers compare with errors.Is or switch on Code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrTitleTooLong        = &Error{Code: "title_too_long", Message: "cannot create proposal, title too long"}
	ErrDescriptionTooLong  = &Error{Code: "description_too_long", Message: "cannot create proposal, description too long"}
	ErrTooManyCandidates   = &Error{Code: "too_many_candidates", Message: "cannot create proposal, too many candidates specified"}
	ErrNotEnoughCandidates = &Error{Code: "not_enough_candidates", Message: "cannot create proposal, not enough candidates specified"}
	ErrCandidateIDTooLong  = &Error{Code: "candidate_id_too_long", Message: "cannot create proposal, candidate ID too long"}
	ErrDuplicateCandidates = &Error{Code: "duplicate_candidates", Message: "duplicate candidates specified"}
	ErrInvalidProposalTime = &Error{Code: "invalid_proposal_time", Message: "cannot create proposal, invalid proposal time"}
	ErrNoVotesProvided     = &Error{Code: "no_votes_provided", Message: "cannot cast vote, no candidate votes specified"}
	ErrTooManyApprovals    = &Error{Code: "too_many_approvals", Message: "cannot cast vote, too many candidate votes specified"}
	ErrInvalidCandidateID  = &Error{Code: "invalid_candidate_id", Message: "cannot cast vote, invalid candidate ID specified"}
	ErrProposalClosed      = &Error{Code: "proposal_closed", Message: "cannot cast vote, proposal is not open"}
)

// Errors lists every validation error the ledger can return
var Errors = []*Error{
	ErrTitleTooLong,
	ErrDescriptionTooLong,
	ErrTooManyCandidates,
	ErrNotEnoughCandidates,
	ErrCandidateIDTooLong,
	ErrDuplicateCandidates,
	ErrInvalidProposalTime,
	ErrNoVotesProvided,
	ErrTooManyApprovals,
	ErrInvalidCandidateID,
	ErrProposalClosed,
}

// AsError reports whether err is one of the ledger's validation errors
func AsError(err error) (*Error, bool) {
	var le *Error
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
