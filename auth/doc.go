// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller identities and the tokens that prove them.

# Identities

An identity is a random 24-byte (192-bit) value, URL-safe base64 encoded:

	identity, err := auth.GenerateIdentity()

Identities are opaque to the ledger. They become the proposer of a
proposal and the voter of a vote.

# Identity Tokens

Tokens bind an identity to the server's salt with HMAC-SHA256:

	token := auth.SignIdentity(identity, salt)
	identity, err := auth.VerifyIdentityToken(token, salt)

A token has the form "<identity>.<signature>". Since signing is
deterministic, the same identity and salt always produce the same token,
so nothing needs to be stored to verify one.

Errors:

  - ErrInvalidToken: token is not "<identity>.<signature>"
  - ErrInvalidSignature: signature does not match the identity
*/
package auth
