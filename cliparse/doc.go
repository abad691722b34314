// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - IdentitySalt: Secret for identity token HMAC (required)
  - LogFormat: "text", "json" or "auto" (default; text on a terminal)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--identity-salt  Identity token salt
	--log-format     Log format
	--env-file       Dotenv file (default: .env, "" disables)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	IDENTITY_SALT → --identity-salt
	LOG_FORMAT    → --log-format

CLI flags take precedence over environment variables. Before the fallback
runs, the dotenv file is loaded with godotenv; it only fills variables that
are not already set, and a missing file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - IDENTITY_SALT is missing
  - PORT is not a number
  - DATABASE_TYPE or LOG_FORMAT has an unknown value

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg, ledger.SystemClock{})
*/
package cliparse
