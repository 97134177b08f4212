// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package phase

import (
	"github.com/danielhkuo/bitpeople-node/models"
)

func current(r *models.AccountResponse) *models.EpochData {
	return &r.Contracts.Bitpeople.CurrentData
}

func previous(r *models.AccountResponse) *models.EpochData {
	return &r.Contracts.Bitpeople.PreviousData
}

// IsCommitSet reports whether the account has registered a commitment in the
// current epoch.
func IsCommitSet(r *models.AccountResponse) bool {
	return current(r).Account.Commit != models.ZeroCommit
}

func IsRegistered(r *models.AccountResponse) bool {
	return IsCommitSet(r)
}

// IsOptIn reports whether the account opted in, which assigns it a court.
func IsOptIn(r *models.AccountResponse) bool {
	return current(r).Account.Court.ID > 0
}

// InPseudonymEvent reports whether the account took part in the last event.
func InPseudonymEvent(r *models.AccountResponse) bool {
	return previous(r).Account.Nym.ID != 0
}

// HasVerified reports whether the account has verified the other person in
// its pair. The flag is indexed by nym id parity.
func HasVerified(r *models.AccountResponse) bool {
	prev := previous(r).Account
	return prev.Pair.Verified[prev.Nym.ID%2]
}

// PairVerified reports whether both people in the pair verified each other.
func PairVerified(r *models.AccountResponse) bool {
	v := previous(r).Account.Pair.Verified
	return v[0] && v[1]
}

// IsVerified reports whether the previous nym collected its tokens.
func IsVerified(r *models.AccountResponse) bool {
	return previous(r).Account.Nym.Verified
}

func IsPaired(r *models.AccountResponse) bool {
	return current(r).Account.Pair.Partner != models.ZeroAddress
}

// OptInJudgeCount returns how many courts (0, 1 or 2) the account's pair
// judges. Courts rotate over the registered pairs, which may be a half
// integer, so the comparison is done on doubled values.
func OptInJudgeCount(r *models.AccountResponse) int {
	cur := current(r)
	doubledPairs := cur.Global.RegistryLength
	doubledCourts := 2 * cur.Global.Courts
	doubledPairID := 2 * ((cur.Account.Nym.ID + 1) / 2)

	count := 0
	if doubledCourts > doubledPairs {
		count++
	}
	// pairID <= courts - pairs*count
	if doubledPairID+doubledPairs*uint64(count) <= doubledCourts {
		count++
	}
	return count
}

// CourtPairMemberShuffled reports whether at least one judge of the account's
// court has been resolved.
func CourtPairMemberShuffled(r *models.AccountResponse) bool {
	judges := current(r).Account.Court.Judges
	return judges[0] != models.ZeroAddress || judges[1] != models.ZeroAddress
}

// HasRegisterTokens reports whether the account holds register tokens in the
// current epoch.
func HasRegisterTokens(r *models.AccountResponse) bool {
	return r.CurrentTokens().Register > 0
}

func registrationOpen(r *models.AccountResponse) bool {
	return r.Schedule.CurrentSchedule.Quarter < models.QuarterThird
}
