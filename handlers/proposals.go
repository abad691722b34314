// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/approval-ledger/cliparse"
	"github.com/danielhkuo/approval-ledger/ledger"
	"github.com/danielhkuo/approval-ledger/metrics"
	"github.com/danielhkuo/approval-ledger/middleware"
	"github.com/danielhkuo/approval-ledger/models"
	"github.com/danielhkuo/approval-ledger/store"
)

type ProposalHandler struct {
	store *store.Store
	cfg   cliparse.Config
	clock ledger.Clock
}

func NewProposalHandler(db *sql.DB, cfg cliparse.Config, clock ledger.Clock) *ProposalHandler {
	return &ProposalHandler{store: store.New(db), cfg: cfg, clock: clock}
}

// CreateProposal handles POST /proposals
func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	proposer, ok := identityFromRequest(w, r, h.cfg.IdentitySalt)
	if !ok {
		return
	}

	var req models.CreateProposalRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	now := h.clock.Now()
	p, err := h.store.CreateProposal(r.Context(), ledger.ProposalParams{
		Title:        req.Title,
		Description:  req.Description,
		CandidateIDs: req.CandidateIDs,
		OpenFrom:     req.ProposalOpenFrom,
		FinishedFrom: req.ProposalFinishedFrom,
	}, ledger.FixedClock(now), proposer)
	if err != nil {
		writeError(w, metrics.OperationCreateProposal, err)
		return
	}

	metrics.Ledger.ProposalsCreated.Add(1)
	slog.Info("proposal created",
		"proposal", p.Key,
		"proposer", p.Proposer,
		"candidates", len(p.Candidates),
		"closes", humanize.RelTime(time.Unix(p.FinishedFrom, 0), time.Unix(now, 0), "ago", "from now"),
	)

	middleware.JSONResponse(w, http.StatusCreated, describeProposal(p, now, 0))
}

// GetProposal handles GET /proposals/{key}
// Tallies are public while voting is open
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal key is required")
		return
	}

	p, err := h.store.GetProposal(r.Context(), key)
	if err != nil {
		writeError(w, "get_proposal", err)
		return
	}

	voters, err := h.store.CountVotes(r.Context(), key)
	if err != nil {
		writeError(w, "get_proposal", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, describeProposal(p, h.clock.Now(), voters))
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	listings, err := h.store.ListProposals(r.Context())
	if err != nil {
		writeError(w, "list_proposals", err)
		return
	}

	now := h.clock.Now()
	resp := models.ProposalListResponse{Proposals: make([]models.ProposalResponse, 0, len(listings))}
	for _, l := range listings {
		resp.Proposals = append(resp.Proposals, describeProposal(l.Proposal, now, l.Voters))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
