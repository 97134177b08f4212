// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commitment

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestGenerateNumber(t *testing.T) {
	number, err := GenerateNumber()
	if err != nil {
		t.Fatalf("GenerateNumber() error = %v", err)
	}
	if len(number) != NumberLength {
		t.Errorf("GenerateNumber() length = %d, want %d", len(number), NumberLength)
	}
	// Verify it's valid lowercase hex
	for _, c := range number {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("GenerateNumber() contains invalid hex char: %c", c)
		}
	}
	if !ValidNumber(number) {
		t.Errorf("ValidNumber(%q) = false", number)
	}

	// Test randomness - should not produce duplicates
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n, err := GenerateNumber()
		if err != nil {
			t.Fatalf("GenerateNumber() error on iteration %d: %v", i, err)
		}
		if seen[n] {
			t.Errorf("GenerateNumber() produced duplicate number: %s", n)
		}
		seen[n] = true
	}
}

func TestValidNumber(t *testing.T) {
	hex64 := strings.Repeat("ab", 32)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase", hex64, true},
		{"uppercase", strings.ToUpper(hex64), true},
		{"with prefix", "0x" + hex64, true},
		{"63 digits", hex64[:63], false},
		{"65 digits", hex64 + "a", false},
		{"non hex", "zz" + hex64[2:], false},
		{"prefix only", "0x", false},
		{"empty", "", false},
		{"upper prefix", "0X" + hex64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidNumber(tt.input); got != tt.want {
				t.Errorf("ValidNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("0x" + strings.Repeat("0", 62) + "ff")
	if err != nil {
		t.Fatalf("ParseNumber() error = %v", err)
	}
	if n[31] != 0xff || n[0] != 0 {
		t.Errorf("ParseNumber() = %x", n)
	}

	if _, err := ParseNumber("1234"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("ParseNumber(short) error = %v, want ErrInvalidNumber", err)
	}
}

func TestCommit(t *testing.T) {
	number, _ := GenerateNumber()

	hash, err := Commit(number)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	raw, _ := ParseNumber(number)
	if want := crypto.Keccak256Hash(raw[:]); hash != want {
		t.Errorf("Commit() = %s, want %s", hash.Hex(), want.Hex())
	}

	// Same number with or without prefix
	prefixed, _ := Commit("0x" + number)
	if prefixed != hash {
		t.Error("Commit() depends on the 0x prefix")
	}

	// Should be deterministic
	again, _ := Commit(number)
	if again != hash {
		t.Error("Commit() is not deterministic")
	}

	if _, err := Commit("not a number"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("Commit(invalid) error = %v, want ErrInvalidNumber", err)
	}
}

func TestHash_KnownValue(t *testing.T) {
	// keccak256 of 32 zero bytes
	const want = "0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563"
	if got := Hash([32]byte{}).Hex(); got != want {
		t.Errorf("Hash(zero) = %s, want %s", got, want)
	}
}
