// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the approval ledger API server.

The approval ledger records proposals, each with a fixed slate of 2 to 12
candidates and a voting window, and lets every identity cast one approval
ballot per proposal: a voter approves any subset of the slate and each
approved candidate's tally goes up by one. Tallies are public; the ledger
does not pick a winner.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=ledger.db IDENTITY_SALT=... go run .

Or with flags, against PostgreSQL:

	go run . -p 3318 -t postgres -d "postgres://..." -identity-salt ...

A .env file in the working directory is loaded first; real environment
variables win over it.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path/DSN or PostgreSQL connection string
  - IDENTITY_SALT (-identity-salt): Secret for identity token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - LOG_FORMAT (-log-format): auto, text or json (default: auto, text on a terminal)
  - -env-file: dotenv file to load (default: .env)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: Proposal and vote rules, status, key derivation (no I/O)
  - store: Transactional persistence of proposals, tallies and votes
  - handlers: HTTP request handlers (identities, proposals, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus counters behind go-kit facades
  - models: Request/response types
  - auth: Identity issuance and token verification
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
