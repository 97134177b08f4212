// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commitment generates and hashes the random numbers used in the
register and reveal steps.

# Random Numbers

A participant registers with a commitment to a secret random number and
reveals the number after the pseudonym event:

	number, err := commitment.GenerateNumber() // 64 hex characters
	hash, err := commitment.Commit(number)     // sent with register

Numbers are 32 random bytes from crypto/rand, hex encoded. Losing the
number means the proof-of-unique-human cannot be claimed.

# Hashing

The commitment is Keccak-256 (the pre-standard variant used by Ethereum)
of the raw 32 bytes, not of the hex text:

	commitment.Hash(n) == crypto.Keccak256Hash(n[:])

# Validation

ValidNumber accepts exactly 64 hex digits with an optional 0x prefix, in
either case. ParseNumber rejects anything else with ErrInvalidNumber.
*/
package commitment
