// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON types served by the account endpoint.

# Envelope

GET /node/account/{address} returns an AccountResponse:

	{
	  "schedule":  {"currentSchedule": {...}, "nextSchedule": {...}},
	  "contracts": {"bitpeople": {"previousData": ..., "currentData": ..., "nextData": ...}}
	}

# Epoch Types

  - Schedule: schedule, toSeconds, quarter, hour, pseudonymEvent
  - GlobalState: seed, registryLength, shuffled, courts, population, permits
  - AccountState: nym, shuffler, pair, court, proofOfUniqueHuman, commit, tokens
  - Tokens: proofOfUniqueHuman, register, optIn, borderVote (current epoch only)
  - NextData: population and proofOfUniqueHuman of the next epoch

# Encoding

Integers are JSON numbers (seed is a 256-bit *big.Int, still a number).
Addresses are 0x-prefixed, 40 lowercase hex digits; commits are 0x-prefixed,
64 lowercase hex digits. Unassigned values use ZeroAddress and ZeroCommit.

# Error response

	{"error": "Bad Request", "message": "invalid address"}
*/
package models
