// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/approval-ledger/auth"
	"github.com/danielhkuo/approval-ledger/ledger"
	"github.com/danielhkuo/approval-ledger/metrics"
	"github.com/danielhkuo/approval-ledger/middleware"
	"github.com/danielhkuo/approval-ledger/models"
	"github.com/danielhkuo/approval-ledger/store"
)

// IdentityHeader carries the caller's signed identity token
const IdentityHeader = "X-Identity-Token"

// identityFromRequest verifies the identity token on r.
// On failure it writes the 401 and returns false.
func identityFromRequest(w http.ResponseWriter, r *http.Request, salt string) (ledger.Identity, bool) {
	token := r.Header.Get(IdentityHeader)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, IdentityHeader+" header required")
		return nil, false
	}

	identity, err := auth.VerifyIdentityToken(token, salt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid identity token")
		return nil, false
	}

	return ledger.StaticIdentity(identity), true
}

// writeBodyError answers a request whose JSON body could not be decoded
func writeBodyError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
}

// writeError maps ledger and store errors onto HTTP responses
func writeError(w http.ResponseWriter, operation string, err error) {
	if le, ok := ledger.AsError(err); ok {
		metrics.Ledger.Rejected(operation, le.Code)

		status := http.StatusBadRequest
		if le == ledger.ErrProposalClosed {
			status = http.StatusConflict
		}
		middleware.ErrorCodeResponse(w, status, le.Code, le.Message)
		return
	}

	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		metrics.Ledger.Rejected(operation, "already_exists")
		message := "Proposal already exists"
		if operation == metrics.OperationCastVote {
			message = "Vote already cast"
		}
		middleware.ErrorCodeResponse(w, http.StatusConflict, "already_exists", message)
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "not_found", "Proposal not found")
	case errors.Is(err, store.ErrConflict):
		slog.Warn("gave up on contended proposal", "operation", operation)
		middleware.ErrorCodeResponse(w, http.StatusConflict, "conflict", "Proposal is busy, try again")
	default:
		slog.Error("ledger operation failed", "operation", operation, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// describeProposal decorates p with its status at now
func describeProposal(p ledger.Proposal, now int64, voterCount int) models.ProposalResponse {
	resp := models.ProposalResponse{
		Proposal:   p,
		Status:     p.StatusAt(now),
		VoterCount: voterCount,
		TotalVotes: p.TotalVotes(),
	}

	at := time.Unix(now, 0)
	switch resp.Status {
	case ledger.StatusPending:
		resp.OpensIn = humanize.RelTime(time.Unix(p.OpenFrom, 0), at, "ago", "from now")
		resp.ClosesIn = humanize.RelTime(time.Unix(p.FinishedFrom, 0), at, "ago", "from now")
	case ledger.StatusOpen:
		resp.ClosesIn = humanize.RelTime(time.Unix(p.FinishedFrom, 0), at, "ago", "from now")
	}

	return resp
}
