// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Quarter constants. An epoch is split into four quarters; registration and
// opt-in are open in the first half, the pseudonym event follows quarter 3.
const (
	QuarterFirst  = 0
	QuarterSecond = 1
	QuarterThird  = 2
	QuarterLast   = 3
)

// Sentinels returned by the contract before a value is assigned.
var (
	ZeroAddress = common.Address{}
	ZeroCommit  = common.Hash{}
)

// Schedule types

type Schedule struct {
	Schedule       uint64 `json:"schedule"`
	ToSeconds      uint64 `json:"toSeconds"`
	Quarter        uint64 `json:"quarter"`
	Hour           uint64 `json:"hour"`
	PseudonymEvent uint64 `json:"pseudonymEvent"`
}

type ScheduleInfo struct {
	CurrentSchedule Schedule `json:"currentSchedule"`
	NextSchedule    Schedule `json:"nextSchedule"`
}

// Contract state types

type GlobalState struct {
	Seed           *big.Int `json:"seed"`
	RegistryLength uint64   `json:"registryLength"`
	Shuffled       uint64   `json:"shuffled"`
	Courts         uint64   `json:"courts"`
	Population     uint64   `json:"population"`
	Permits        uint64   `json:"permits"`
}

type Nym struct {
	ID       uint64 `json:"id"`
	Verified bool   `json:"verified"`
}

type Pair struct {
	Partner  common.Address `json:"partner"`
	Verified [2]bool        `json:"verified"`
	Disputed bool           `json:"disputed"`
}

type Court struct {
	ID       uint64            `json:"id"`
	Judges   [2]common.Address `json:"judges"`
	Verified [2]bool           `json:"verified"`
}

// Tokens holds balances for each token kind, only set on the current epoch.
type Tokens struct {
	ProofOfUniqueHuman uint64 `json:"proofOfUniqueHuman"`
	Register           uint64 `json:"register"`
	OptIn              uint64 `json:"optIn"`
	BorderVote         uint64 `json:"borderVote"`
}

type AccountState struct {
	Nym                Nym         `json:"nym"`
	Shuffler           bool        `json:"shuffler"`
	Pair               Pair        `json:"pair"`
	Court              Court       `json:"court"`
	ProofOfUniqueHuman bool        `json:"proofOfUniqueHuman"`
	Commit             common.Hash `json:"commit"`
	Tokens             *Tokens     `json:"tokens,omitempty"`
}

type EpochData struct {
	Global  GlobalState  `json:"global"`
	Account AccountState `json:"account"`
}

type NextGlobal struct {
	Population uint64 `json:"population"`
}

type NextAccount struct {
	ProofOfUniqueHuman bool `json:"proofOfUniqueHuman"`
}

type NextData struct {
	Global  NextGlobal  `json:"global"`
	Account NextAccount `json:"account"`
}

// Snapshot is the three-epoch view of one account.
type Snapshot struct {
	PreviousData EpochData `json:"previousData"`
	CurrentData  EpochData `json:"currentData"`
	NextData     NextData  `json:"nextData"`
}

// Response types

type Contracts struct {
	Bitpeople Snapshot `json:"bitpeople"`
}

type AccountResponse struct {
	Schedule  ScheduleInfo `json:"schedule"`
	Contracts Contracts    `json:"contracts"`
}

// EmptyEpoch returns the all-zero epoch used for "previous" data at epoch 0.
func EmptyEpoch() EpochData {
	return EpochData{
		Global: GlobalState{Seed: new(big.Int)},
	}
}

// CurrentTokens returns the token balances of the current epoch, or zero
// balances when the response carries none.
func (r *AccountResponse) CurrentTokens() Tokens {
	if t := r.Contracts.Bitpeople.CurrentData.Account.Tokens; t != nil {
		return *t
	}
	return Tokens{}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
