// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/approval-ledger/ledger"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("concurrent update")
)

// maxVoteAttempts bounds how often a vote is replayed after losing a race
// on the proposal revision
const maxVoteAttempts = 5

// Store persists proposals and votes. Every write runs the ledger rules on
// a snapshot inside a single transaction, so a rejected call writes nothing.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateProposal validates params and inserts the proposal once.
// A second proposal with the same title from the same proposer fails with
// ErrAlreadyExists.
func (s *Store) CreateProposal(ctx context.Context, params ledger.ProposalParams, clock ledger.Clock, proposer ledger.Identity) (ledger.Proposal, error) {
	now := clock.Now()

	p, err := ledger.CreateProposal(params, ledger.FixedClock(now), proposer)
	if err != nil {
		return ledger.Proposal{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ledger.Proposal{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO proposal (proposal_key, title, description, proposer, open_from, finished_from, revision, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.Key, p.Title, p.Description, p.Proposer, p.OpenFrom, p.FinishedFrom, int64(p.Revision), now)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.Proposal{}, ErrAlreadyExists
		}
		return ledger.Proposal{}, fmt.Errorf("failed to insert proposal: %w", err)
	}

	for i, c := range p.Candidates {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO candidate (proposal_key, position, candidate_id, vote_count)
			VALUES ($1, $2, $3, $4)
		`, p.Key, i, c.ID, int64(c.VoteCount))
		if err != nil {
			return ledger.Proposal{}, fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ledger.Proposal{}, fmt.Errorf("failed to commit proposal: %w", err)
	}

	return p, nil
}

// GetProposal loads a proposal with its current tallies
func (s *Store) GetProposal(ctx context.Context, key string) (ledger.Proposal, error) {
	return loadProposal(ctx, s.db, key)
}

// Listing is a proposal together with how many voters have voted on it
type Listing struct {
	Proposal ledger.Proposal
	Voters   int
}

// ListProposals returns every proposal, newest first, with its voter count.
// It runs a fixed number of queries however many proposals exist.
func (s *Store) ListProposals(ctx context.Context) ([]Listing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT proposal_key, title, description, proposer, open_from, finished_from, revision
		FROM proposal
		ORDER BY created_at DESC, proposal_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	listings := []Listing{}
	index := make(map[string]int)
	for rows.Next() {
		var p ledger.Proposal
		if err := rows.Scan(&p.Key, &p.Title, &p.Description, &p.Proposer, &p.OpenFrom, &p.FinishedFrom, &p.Revision); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		p.Candidates = []ledger.Candidate{}
		index[p.Key] = len(listings)
		listings = append(listings, Listing{Proposal: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read proposals: %w", err)
	}

	crows, err := s.db.QueryContext(ctx, `
		SELECT proposal_key, candidate_id, vote_count
		FROM candidate
		ORDER BY proposal_key, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var key string
		var c ledger.Candidate
		if err := crows.Scan(&key, &c.ID, &c.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		i, ok := index[key]
		if !ok {
			// proposal inserted between the two queries
			continue
		}
		listings[i].Proposal.Candidates = append(listings[i].Proposal.Candidates, c)
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	vrows, err := s.db.QueryContext(ctx, `
		SELECT proposal_key, COUNT(*)
		FROM vote
		GROUP BY proposal_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		var key string
		var n int
		if err := vrows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		if i, ok := index[key]; ok {
			listings[i].Voters = n
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vote counts: %w", err)
	}

	return listings, nil
}

// CastVote records voter's approvals on the proposal identified by
// proposalKey. It returns the stored receipt and the proposal as committed.
//
// The clock is read once; a replay after ErrConflict reuses that instant.
func (s *Store) CastVote(ctx context.Context, proposalKey string, candidateIDs []string, clock ledger.Clock, voter ledger.Identity) (ledger.Vote, ledger.Proposal, error) {
	now := ledger.FixedClock(clock.Now())

	for attempt := 1; ; attempt++ {
		v, p, err := s.castVote(ctx, proposalKey, candidateIDs, now, voter)
		if isBusy(err) {
			err = ErrConflict
		}
		if errors.Is(err, ErrConflict) && attempt < maxVoteAttempts {
			slog.Warn("vote contended, retrying",
				"proposal", proposalKey,
				"attempt", attempt,
			)
			continue
		}
		return v, p, err
	}
}

func (s *Store) castVote(ctx context.Context, proposalKey string, candidateIDs []string, clock ledger.Clock, voter ledger.Identity) (ledger.Vote, ledger.Proposal, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	p, err := loadProposal(ctx, tx, proposalKey)
	if err != nil {
		return ledger.Vote{}, ledger.Proposal{}, err
	}
	snapshot := p.Clone()

	v, err := ledger.CastVote(&p, candidateIDs, clock, voter)
	if err != nil {
		return ledger.Vote{}, ledger.Proposal{}, err
	}

	// Claim the proposal row first so competing writers queue behind us
	res, err := tx.ExecContext(ctx, `
		UPDATE proposal SET revision = revision + 1
		WHERE proposal_key = $1 AND revision = $2
	`, p.Key, int64(p.Revision))
	if err != nil {
		return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to bump revision: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to bump revision: %w", err)
	}
	if n == 0 {
		return ledger.Vote{}, ledger.Proposal{}, ErrConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (vote_key, proposal_key, voter, cast_at)
		VALUES ($1, $2, $3, $4)
	`, v.Key, v.Proposal, v.Voter, v.CastAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ledger.Vote{}, ledger.Proposal{}, ErrAlreadyExists
		}
		return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	for _, c := range v.Candidates {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO approval (vote_key, candidate_id)
			VALUES ($1, $2)
		`, v.Key, c.ID)
		if err != nil {
			return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to insert approval: %w", err)
		}
	}

	for i, c := range p.Candidates {
		if c.VoteCount == snapshot.Candidates[i].VoteCount {
			continue
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE candidate SET vote_count = $1
			WHERE proposal_key = $2 AND position = $3
		`, int64(c.VoteCount), p.Key, i)
		if err != nil {
			return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to update tally: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ledger.Vote{}, ledger.Proposal{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	p.Revision++
	return v, p, nil
}

// GetVote loads voter's receipt for a proposal
func (s *Store) GetVote(ctx context.Context, proposalKey, voter string) (ledger.Vote, error) {
	v := ledger.Vote{Candidates: []ledger.Candidate{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT vote_key, proposal_key, voter, cast_at
		FROM vote
		WHERE proposal_key = $1 AND voter = $2
	`, proposalKey, voter).Scan(&v.Key, &v.Proposal, &v.Voter, &v.CastAt)
	if err == sql.ErrNoRows {
		return ledger.Vote{}, ErrNotFound
	}
	if err != nil {
		return ledger.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT candidate_id FROM approval
		WHERE vote_key = $1
		ORDER BY candidate_id
	`, v.Key)
	if err != nil {
		return ledger.Vote{}, fmt.Errorf("failed to query approvals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c ledger.Candidate
		if err := rows.Scan(&c.ID); err != nil {
			return ledger.Vote{}, fmt.Errorf("failed to scan approval: %w", err)
		}
		v.Candidates = append(v.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return ledger.Vote{}, fmt.Errorf("failed to read approvals: %w", err)
	}

	return v, nil
}

// CountVotes returns how many voters have voted on a proposal
func (s *Store) CountVotes(ctx context.Context, proposalKey string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM vote WHERE proposal_key = $1
	`, proposalKey).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

func loadProposal(ctx context.Context, q querier, key string) (ledger.Proposal, error) {
	var p ledger.Proposal
	err := q.QueryRowContext(ctx, `
		SELECT proposal_key, title, description, proposer, open_from, finished_from, revision
		FROM proposal
		WHERE proposal_key = $1
	`, key).Scan(&p.Key, &p.Title, &p.Description, &p.Proposer, &p.OpenFrom, &p.FinishedFrom, &p.Revision)
	if err == sql.ErrNoRows {
		return ledger.Proposal{}, ErrNotFound
	}
	if err != nil {
		return ledger.Proposal{}, fmt.Errorf("failed to query proposal: %w", err)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT candidate_id, vote_count
		FROM candidate
		WHERE proposal_key = $1
		ORDER BY position
	`, key)
	if err != nil {
		return ledger.Proposal{}, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	p.Candidates = []ledger.Candidate{}
	for rows.Next() {
		var c ledger.Candidate
		if err := rows.Scan(&c.ID, &c.VoteCount); err != nil {
			return ledger.Proposal{}, fmt.Errorf("failed to scan candidate: %w", err)
		}
		p.Candidates = append(p.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return ledger.Proposal{}, fmt.Errorf("failed to read candidates: %w", err)
	}

	return p, nil
}

// isBusy reports whether SQLite refused the lock to a competing writer.
// The whole transaction has been rolled back, so it is safe to replay.
func isBusy(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_BUSY
	}
	return false
}

// isUniqueViolation recognises duplicate-key errors from either driver
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}

	return false
}
