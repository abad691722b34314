// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on SQLite and PostgreSQL; timestamps are stored as
seconds since the epoch in BIGINT columns.

# Tables

The schema includes:

  - proposal: Title, description, proposer, voting window, revision
  - candidate: Slate entries with their running tallies
  - vote: One receipt per voter per proposal
  - approval: Candidate IDs listed on each receipt

# Relationships

	proposal 1──* candidate
	proposal 1──* vote
	vote 1──* approval

All foreign keys use ON DELETE CASCADE.

# Uniqueness

The insert-once rules of the ledger live here:

  - proposal.proposal_key (primary key) and (title, proposer)
  - vote.vote_key (primary key) and (proposal_key, voter)
  - candidate.(proposal_key, candidate_id)
*/
package db
