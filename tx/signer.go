// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tx

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrNoSigner = errors.New("no private key or keystore configured")

// NewKeyedSigner builds a signer from a hex private key, with or without 0x.
func NewKeyedSigner(hexKey string, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return bind.NewKeyedTransactorWithChainID(key, chainID)
}

// NewKeystoreSigner decrypts an encrypted JSON key file.
func NewKeystoreSigner(keyJSON []byte, passphrase string, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := keystore.DecryptKey(keyJSON, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore: %w", err)
	}
	return bind.NewKeyedTransactorWithChainID(key.PrivateKey, chainID)
}

// LoadSigner picks the private key if set, else the keystore file at path.
func LoadSigner(hexKey, path, passphrase string, chainID *big.Int) (*bind.TransactOpts, error) {
	if hexKey != "" {
		return NewKeyedSigner(hexKey, chainID)
	}
	if path == "" {
		return nil, ErrNoSigner
	}
	keyJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}
	return NewKeystoreSigner(keyJSON, passphrase, chainID)
}
