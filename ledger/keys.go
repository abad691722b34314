// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"crypto/sha256"

	"github.com/google/uuid"
)

const (
	proposalSeed = "PROPOSAL_SEED"
	voteSeed     = "VOTE_SEED"
)

// keySpace namespaces every key this package derives
var keySpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:approval-ledger"))

// ProposalKey derives the storage key of a proposal from its title and
// proposer. The title is hashed first so long titles do not widen the seed.
func ProposalKey(title, proposer string) string {
	titleHash := sha256.Sum256([]byte(title))

	seed := make([]byte, 0, len(proposalSeed)+len(titleHash)+len(proposer))
	seed = append(seed, proposalSeed...)
	seed = append(seed, titleHash[:]...)
	seed = append(seed, proposer...)

	return uuid.NewSHA1(keySpace, seed).String()
}

// VoteKey derives the storage key of a voter's ballot on a proposal.
// At most one vote may exist per key.
func VoteKey(voter, proposalKey string) string {
	seed := make([]byte, 0, len(voteSeed)+len(voter)+1+len(proposalKey))
	seed = append(seed, voteSeed...)
	seed = append(seed, voter...)
	seed = append(seed, 0)
	seed = append(seed, proposalKey...)

	return uuid.NewSHA1(keySpace, seed).String()
}
