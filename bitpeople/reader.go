// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bitpeople

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/bitpeople-node/models"
)

var ErrOverflow = errors.New("contract value does not fit in uint64")

// PairInfo is the stored part of a pair; the partner address is derived.
type PairInfo struct {
	Verified [2]bool
	Disputed bool
}

// CourtInfo is the stored part of a court; the judges are derived.
type CourtInfo struct {
	ID       uint64
	Verified [2]bool
}

// Reader adapts BitpeopleCaller to context-aware calls with uint64 results.
type Reader struct {
	caller *BitpeopleCaller
}

func NewReader(caller *BitpeopleCaller) *Reader {
	return &Reader{caller: caller}
}

func opts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

func epoch(t uint64) *big.Int {
	return new(big.Int).SetUint64(t)
}

func toUint64(method string, v *big.Int, err error) (uint64, error) {
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	if v == nil {
		return 0, nil
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%s: %w", method, ErrOverflow)
	}
	return v.Uint64(), nil
}

func (r *Reader) Schedule(ctx context.Context) (uint64, error) {
	v, err := r.caller.Schedule(opts(ctx))
	return toUint64("schedule", v, err)
}

func (r *Reader) ToSeconds(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.ToSeconds(opts(ctx), epoch(t))
	return toUint64("toSeconds", v, err)
}

func (r *Reader) Quarter(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.Quarter(opts(ctx), epoch(t))
	return toUint64("quarter", v, err)
}

func (r *Reader) Hour(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.Hour(opts(ctx), epoch(t))
	return toUint64("hour", v, err)
}

func (r *Reader) PseudonymEvent(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.PseudonymEvent(opts(ctx), epoch(t))
	return toUint64("pseudonymEvent", v, err)
}

// Seed keeps the full 256-bit value.
func (r *Reader) Seed(ctx context.Context, t uint64) (*big.Int, error) {
	v, err := r.caller.Seed(opts(ctx), epoch(t))
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if v == nil {
		v = new(big.Int)
	}
	return v, nil
}

func (r *Reader) RegistryLength(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.RegistryLength(opts(ctx), epoch(t))
	return toUint64("registryLength", v, err)
}

func (r *Reader) Shuffled(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.Shuffled(opts(ctx), epoch(t))
	return toUint64("shuffled", v, err)
}

func (r *Reader) Courts(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.Courts(opts(ctx), epoch(t))
	return toUint64("courts", v, err)
}

func (r *Reader) Population(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.Population(opts(ctx), epoch(t))
	return toUint64("population", v, err)
}

func (r *Reader) Permits(ctx context.Context, t uint64) (uint64, error) {
	v, err := r.caller.Permits(opts(ctx), epoch(t))
	return toUint64("permits", v, err)
}

func (r *Reader) Nym(ctx context.Context, t uint64, account common.Address) (models.Nym, error) {
	v, err := r.caller.Nym(opts(ctx), epoch(t), account)
	if err != nil {
		return models.Nym{}, fmt.Errorf("nym: %w", err)
	}
	id, err := toUint64("nym", v.Id, nil)
	if err != nil {
		return models.Nym{}, err
	}
	return models.Nym{ID: id, Verified: v.Verified}, nil
}

func (r *Reader) Shuffler(ctx context.Context, t uint64, account common.Address) (bool, error) {
	v, err := r.caller.Shuffler(opts(ctx), epoch(t), account)
	if err != nil {
		return false, fmt.Errorf("shuffler: %w", err)
	}
	return v, nil
}

func (r *Reader) ProofOfUniqueHuman(ctx context.Context, t uint64, account common.Address) (bool, error) {
	v, err := r.caller.ProofOfUniqueHuman(opts(ctx), epoch(t), account)
	if err != nil {
		return false, fmt.Errorf("proofOfUniqueHuman: %w", err)
	}
	return v, nil
}

func (r *Reader) Commit(ctx context.Context, t uint64, account common.Address) (common.Hash, error) {
	v, err := r.caller.Commit(opts(ctx), epoch(t), account)
	if err != nil {
		return common.Hash{}, fmt.Errorf("commit: %w", err)
	}
	return common.Hash(v), nil
}

func (r *Reader) Pair(ctx context.Context, t, id uint64) (PairInfo, error) {
	v, err := r.caller.Pair(opts(ctx), epoch(t), epoch(id))
	if err != nil {
		return PairInfo{}, fmt.Errorf("pair: %w", err)
	}
	return PairInfo{Verified: v.Verified, Disputed: v.Disputed}, nil
}

func (r *Reader) Registry(ctx context.Context, t, index uint64) (common.Address, error) {
	v, err := r.caller.Registry(opts(ctx), epoch(t), epoch(index))
	if err != nil {
		return common.Address{}, fmt.Errorf("registry: %w", err)
	}
	return v, nil
}

func (r *Reader) Court(ctx context.Context, t uint64, account common.Address) (CourtInfo, error) {
	v, err := r.caller.Court(opts(ctx), epoch(t), account)
	if err != nil {
		return CourtInfo{}, fmt.Errorf("court: %w", err)
	}
	id, err := toUint64("court", v.Id, nil)
	if err != nil {
		return CourtInfo{}, err
	}
	return CourtInfo{ID: id, Verified: v.Verified}, nil
}

func (r *Reader) BalanceOf(ctx context.Context, t uint64, token Token, account common.Address) (uint64, error) {
	v, err := r.caller.BalanceOf(opts(ctx), epoch(t), uint8(token), account)
	return toUint64("balanceOf", v, err)
}
