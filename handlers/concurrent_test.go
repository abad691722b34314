// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/approval-ledger/ledger"
	"github.com/danielhkuo/approval-ledger/testutil"
)

// TestConcurrentVotes verifies that simultaneous ballots from different
// voters all land and no increment is lost
func TestConcurrentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p := setupLunch(t, db)
	handler := NewVoteHandler(db, testutil.GetTestConfig(), ledger.FixedClock(testutil.T0+10))

	numVoters := 10

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			// Everyone approves A; every other voter also approves B
			ids := []string{"A"}
			if voterIdx%2 == 0 {
				ids = append(ids, "B")
			}

			w := castVote(handler, p.Key, "voter"+string(rune('A'+voterIdx)), ids)
			if w.Code == http.StatusCreated {
				successCount.Add(1)
			} else {
				t.Errorf("Voter %d: expected 201, got %d: %s", voterIdx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	assertTallies(t, db, p.Key, uint64(numVoters), uint64(numVoters/2), 0)

	var revision uint64
	if err := db.QueryRow(`SELECT revision FROM proposal WHERE proposal_key = $1`, p.Key).Scan(&revision); err != nil {
		t.Fatalf("Failed to read revision: %v", err)
	}
	if revision != uint64(numVoters)+1 {
		t.Errorf("Expected revision %d, got %d", numVoters+1, revision)
	}
}

// TestConcurrentDuplicateVotes verifies that one voter racing themselves
// gets exactly one vote recorded
func TestConcurrentDuplicateVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	p := setupLunch(t, db)
	handler := NewVoteHandler(db, testutil.GetTestConfig(), ledger.FixedClock(testutil.T0+10))

	numAttempts := 5

	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := castVote(handler, p.Key, "bob", []string{"A", "C"})
			switch w.Code {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if int(conflictCount.Load()) != numAttempts-1 {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}

	assertTallies(t, db, p.Key, 1, 0, 1)

	var votes int
	if err := db.QueryRow(`SELECT COUNT(*) FROM vote WHERE proposal_key = $1`, p.Key).Scan(&votes); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if votes != 1 {
		t.Errorf("Expected 1 vote row, got %d", votes)
	}
}
