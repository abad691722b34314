// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"net/url"
	"strconv"
	"strings"
)

// BusyTimeoutMillis is how long a SQLite connection waits for a competing
// writer before giving up with SQLITE_BUSY
const BusyTimeoutMillis = 10000

// SQLiteDSN returns dsn with the connection settings the store relies on:
// writers take the database lock at BEGIN, wait for each other instead of
// failing, and foreign keys are enforced. Settings already present in dsn
// are left alone.
func SQLiteDSN(dsn string) string {
	query := ""
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		query = dsn[i+1:]
	}
	params, err := url.ParseQuery(query)
	if err != nil {
		params = url.Values{}
	}

	var extra []string
	if params.Get("_txlock") == "" {
		extra = append(extra, "_txlock=immediate")
	}
	if !hasPragma(params, "busy_timeout") {
		extra = append(extra, "_pragma=busy_timeout("+strconv.Itoa(BusyTimeoutMillis)+")")
	}
	if !hasPragma(params, "foreign_keys") {
		extra = append(extra, "_pragma=foreign_keys(1)")
	}
	if len(extra) == 0 {
		return dsn
	}

	sep := "?"
	switch {
	case strings.HasSuffix(dsn, "?"), strings.HasSuffix(dsn, "&"):
		sep = ""
	case strings.Contains(dsn, "?"):
		sep = "&"
	}
	return dsn + sep + strings.Join(extra, "&")
}

func hasPragma(params url.Values, name string) bool {
	for _, p := range params["_pragma"] {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(p)), name) {
			return true
		}
	}
	return false
}
