// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"net/url"
	"strings"
	"testing"
)

func dsnParams(t *testing.T, dsn string) url.Values {
	t.Helper()

	i := strings.IndexByte(dsn, '?')
	if i < 0 {
		t.Fatalf("Expected query parameters in %q", dsn)
	}
	params, err := url.ParseQuery(dsn[i+1:])
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", dsn, err)
	}
	return params
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name   string
		dsn    string
		prefix string
	}{
		{"plain path", "ledger.db", "ledger.db?"},
		{"file URI", "file:ledger.db", "file:ledger.db?"},
		{"existing query", "file:ledger.db?mode=rwc", "file:ledger.db?mode=rwc&"},
		{"trailing question mark", "ledger.db?", "ledger.db?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SQLiteDSN(tt.dsn)

			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("Expected %q to start with %q", got, tt.prefix)
			}

			params := dsnParams(t, got)
			if params.Get("_txlock") != "immediate" {
				t.Errorf("Expected _txlock=immediate in %q", got)
			}
			pragmas := strings.Join(params["_pragma"], ",")
			if !strings.Contains(pragmas, "busy_timeout(10000)") {
				t.Errorf("Expected busy_timeout pragma in %q", got)
			}
			if !strings.Contains(pragmas, "foreign_keys(1)") {
				t.Errorf("Expected foreign_keys pragma in %q", got)
			}
		})
	}
}

func TestSQLiteDSN_KeepsExplicitSettings(t *testing.T) {
	dsn := "file:ledger.db?_txlock=exclusive&_pragma=busy_timeout(500)&_pragma=foreign_keys(1)"

	if got := SQLiteDSN(dsn); got != dsn {
		t.Errorf("Expected DSN unchanged, got %q", got)
	}

	got := SQLiteDSN("ledger.db?_pragma=busy_timeout(500)")
	params := dsnParams(t, got)
	if n := len(params["_pragma"]); n != 2 {
		t.Errorf("Expected 2 pragmas in %q, got %d", got, n)
	}
	if strings.Contains(got, "busy_timeout(10000)") {
		t.Errorf("Expected the caller's busy_timeout to win in %q", got)
	}
}
