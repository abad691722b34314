// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to types both SQLite and PostgreSQL accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table. Only tests call it.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS approval;
		DROP TABLE IF EXISTS vote;
		DROP TABLE IF EXISTS candidate;
		DROP TABLE IF EXISTS proposal;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}

	return nil
}

const schema = `
-- Proposals
CREATE TABLE IF NOT EXISTS proposal (
    proposal_key TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    proposer TEXT NOT NULL,
    open_from BIGINT NOT NULL,
    finished_from BIGINT NOT NULL,
    revision BIGINT NOT NULL,
    created_at BIGINT NOT NULL,
    CHECK (open_from < finished_from),
    UNIQUE (title, proposer)
);

CREATE INDEX IF NOT EXISTS idx_proposal_created_at ON proposal(created_at);

-- Candidates, in slate order
CREATE TABLE IF NOT EXISTS candidate (
    proposal_key TEXT NOT NULL REFERENCES proposal(proposal_key) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    candidate_id TEXT NOT NULL,
    vote_count BIGINT NOT NULL DEFAULT 0 CHECK (vote_count >= 0),
    PRIMARY KEY (proposal_key, position),
    UNIQUE (proposal_key, candidate_id)
);

-- Votes: one per voter per proposal
CREATE TABLE IF NOT EXISTS vote (
    vote_key TEXT PRIMARY KEY,
    proposal_key TEXT NOT NULL REFERENCES proposal(proposal_key) ON DELETE CASCADE,
    voter TEXT NOT NULL,
    cast_at BIGINT NOT NULL,
    UNIQUE (proposal_key, voter)
);

CREATE INDEX IF NOT EXISTS idx_vote_proposal_key ON vote(proposal_key);

-- Approvals listed on each vote receipt
CREATE TABLE IF NOT EXISTS approval (
    vote_key TEXT NOT NULL REFERENCES vote(vote_key) ON DELETE CASCADE,
    candidate_id TEXT NOT NULL,
    PRIMARY KEY (vote_key, candidate_id)
);
`
