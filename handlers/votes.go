// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/approval-ledger/cliparse"
	"github.com/danielhkuo/approval-ledger/ledger"
	"github.com/danielhkuo/approval-ledger/metrics"
	"github.com/danielhkuo/approval-ledger/middleware"
	"github.com/danielhkuo/approval-ledger/models"
	"github.com/danielhkuo/approval-ledger/store"
)

type VoteHandler struct {
	store *store.Store
	cfg   cliparse.Config
	clock ledger.Clock
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config, clock ledger.Clock) *VoteHandler {
	return &VoteHandler{store: store.New(db), cfg: cfg, clock: clock}
}

// CastVote handles POST /proposals/{key}/votes
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal key is required")
		return
	}

	voter, ok := identityFromRequest(w, r, h.cfg.IdentitySalt)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	vote, p, err := h.store.CastVote(r.Context(), key, req.CandidateIDs, h.clock, voter)
	if err != nil {
		writeError(w, metrics.OperationCastVote, err)
		return
	}

	metrics.Ledger.Voted(len(vote.Candidates))
	slog.Info("vote cast",
		"proposal", p.Key,
		"vote", vote.Key,
		"approvals", len(vote.Candidates),
		"revision", p.Revision,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Vote:     vote,
		Proposal: p,
	})
}

// GetMyVote handles GET /proposals/{key}/votes/me
func (h *VoteHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal key is required")
		return
	}

	voter, ok := identityFromRequest(w, r, h.cfg.IdentitySalt)
	if !ok {
		return
	}

	vote, err := h.store.GetVote(r.Context(), key, voter.Current())
	if err == store.ErrNotFound {
		middleware.ErrorCodeResponse(w, http.StatusNotFound, "not_found", "No vote found for this proposal")
		return
	}
	if err != nil {
		writeError(w, "get_vote", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}
