// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commitment

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"
)

// NumberLength is the number of hex digits in a random number.
const NumberLength = 64

var ErrInvalidNumber = errors.New("invalid random number: want 64 hex digits")

var numberPattern = regexp.MustCompile(`^(0x)?[0-9A-Fa-f]{64}$`)

// GenerateNumber creates a random 32-byte number as 64 lowercase hex digits,
// without a 0x prefix.
func GenerateNumber() (string, error) {
	b := make([]byte, NumberLength/2)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidNumber reports whether s is 64 hex digits with an optional 0x prefix.
func ValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// ParseNumber decodes a number accepted by ValidNumber.
func ParseNumber(s string) ([32]byte, error) {
	var out [32]byte
	if !ValidNumber(s) {
		return out, ErrInvalidNumber
	}
	b, err := hexutil.Decode("0x" + strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	copy(out[:], b)
	return out, nil
}

// Hash returns keccak256 of the 32 raw bytes of number. This is the value
// register stores and revealHash later checks against.
func Hash(number [32]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(number[:])
	var out common.Hash
	h.Sum(out[:0])
	return out
}

// Commit parses number and returns its commitment hash.
func Commit(number string) (common.Hash, error) {
	n, err := ParseNumber(number)
	if err != nil {
		return common.Hash{}, err
	}
	return Hash(n), nil
}
