// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package account

// PairID returns the pair a nym belongs to. Nym ids start at 1, so nym 0
// (unregistered) maps to pair 0.
func PairID(nymID uint64) uint64 {
	return (nymID + 1) / 2
}

// PartnerNymID returns the nym id whose registry entry is reported as the
// pair partner, or 0 when the nym is in no pair.
func PartnerNymID(nymID uint64) uint64 {
	pairID := PairID(nymID)
	if pairID == 0 {
		return 0
	}
	return pairID*2 - 1 + ((nymID % 2) ^ 1)
}

// CourtPairID maps a court onto the pair that judges it. Courts wrap around
// the registered pairs; 0 means no judging pair can be derived.
func CourtPairID(courtID, registeredPairs uint64) uint64 {
	if courtID == 0 || registeredPairs == 0 {
		return 0
	}
	return 1 + (courtID-1)%registeredPairs
}

// JudgeNymIDs returns the two nym ids of a judging pair.
func JudgeNymIDs(courtPairID uint64) (first, second uint64) {
	if courtPairID == 0 {
		return 0, 0
	}
	return courtPairID*2 - 1, courtPairID * 2
}
