// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/approval-ledger/auth"
	"github.com/danielhkuo/approval-ledger/cliparse"
	"github.com/danielhkuo/approval-ledger/middleware"
	"github.com/danielhkuo/approval-ledger/models"
)

type IdentityHandler struct {
	cfg cliparse.Config
}

func NewIdentityHandler(cfg cliparse.Config) *IdentityHandler {
	return &IdentityHandler{cfg: cfg}
}

// Issue handles POST /identities
// Returns a fresh identity and the token that proves it
func (h *IdentityHandler) Issue(w http.ResponseWriter, r *http.Request) {
	identity, err := auth.GenerateIdentity()
	if err != nil {
		slog.Error("failed to generate identity", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue identity")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.IdentityResponse{
		Identity:      identity,
		IdentityToken: auth.SignIdentity(identity, h.cfg.IdentitySalt),
	})
}
