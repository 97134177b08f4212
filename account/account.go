// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package account

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rotisserie/eris"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/models"
)

var ErrInvalidAddress = errors.New("invalid address")

var tracer = otel.Tracer("github.com/danielhkuo/bitpeople-node/account")

// Contract is the read surface of the BitPeople contract.
// *bitpeople.Reader satisfies it.
type Contract interface {
	Schedule(ctx context.Context) (uint64, error)
	ToSeconds(ctx context.Context, t uint64) (uint64, error)
	Quarter(ctx context.Context, t uint64) (uint64, error)
	Hour(ctx context.Context, t uint64) (uint64, error)
	PseudonymEvent(ctx context.Context, t uint64) (uint64, error)

	Seed(ctx context.Context, t uint64) (*big.Int, error)
	RegistryLength(ctx context.Context, t uint64) (uint64, error)
	Shuffled(ctx context.Context, t uint64) (uint64, error)
	Courts(ctx context.Context, t uint64) (uint64, error)
	Population(ctx context.Context, t uint64) (uint64, error)
	Permits(ctx context.Context, t uint64) (uint64, error)

	Nym(ctx context.Context, t uint64, account common.Address) (models.Nym, error)
	Shuffler(ctx context.Context, t uint64, account common.Address) (bool, error)
	ProofOfUniqueHuman(ctx context.Context, t uint64, account common.Address) (bool, error)
	Commit(ctx context.Context, t uint64, account common.Address) (common.Hash, error)
	Pair(ctx context.Context, t, id uint64) (bitpeople.PairInfo, error)
	Registry(ctx context.Context, t, index uint64) (common.Address, error)
	Court(ctx context.Context, t uint64, account common.Address) (bitpeople.CourtInfo, error)
	BalanceOf(ctx context.Context, t uint64, token bitpeople.Token, account common.Address) (uint64, error)
}

// Account loads the state of one address. It holds no state shared with
// other requests; build a new one per lookup.
type Account struct {
	contract Contract
	address  common.Address
	schedule *models.ScheduleInfo
}

// ParseAddress accepts 40 hex digits with or without a 0x prefix.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, ErrInvalidAddress
	}
	return common.HexToAddress(s), nil
}

func New(contract Contract, address string) (*Account, error) {
	addr, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	return &Account{contract: contract, address: addr}, nil
}

func (a *Account) Address() common.Address {
	return a.address
}

// LoadSchedule reads the current schedule and the timing of it and the next.
func (a *Account) LoadSchedule(ctx context.Context) (models.ScheduleInfo, error) {
	ctx, span := tracer.Start(ctx, "account.LoadSchedule")
	defer span.End()

	s, err := a.contract.Schedule(ctx)
	if err != nil {
		return models.ScheduleInfo{}, fail(span, err, "failed to load schedule")
	}

	info := models.ScheduleInfo{
		CurrentSchedule: models.Schedule{Schedule: s},
		NextSchedule:    models.Schedule{Schedule: s + 1},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, sched := range []*models.Schedule{&info.CurrentSchedule, &info.NextSchedule} {
		g.Go(func() (err error) {
			sched.ToSeconds, err = a.contract.ToSeconds(gctx, sched.Schedule)
			return err
		})
		g.Go(func() (err error) {
			sched.Quarter, err = a.contract.Quarter(gctx, sched.Schedule)
			return err
		})
		g.Go(func() (err error) {
			sched.Hour, err = a.contract.Hour(gctx, sched.Schedule)
			return err
		})
		g.Go(func() (err error) {
			sched.PseudonymEvent, err = a.contract.PseudonymEvent(gctx, sched.Schedule)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return models.ScheduleInfo{}, fail(span, err, "failed to load schedule")
	}

	span.SetAttributes(attribute.Int64("schedule", int64(s)))
	a.schedule = &info
	return info, nil
}

// Parameters returns the full response for the account, loading the
// schedule first if needed.
func (a *Account) Parameters(ctx context.Context) (*models.AccountResponse, error) {
	ctx, span := tracer.Start(ctx, "account.Parameters",
		trace.WithAttributes(attribute.String("address", a.address.Hex())))
	defer span.End()

	if a.schedule == nil {
		if _, err := a.LoadSchedule(ctx); err != nil {
			return nil, eris.Wrap(err, "failed to initialize schedule and contracts")
		}
	}

	l := &loader{contract: a.contract, address: a.address, schedule: *a.schedule}
	snapshot, err := l.loadSnapshot(ctx)
	if err != nil {
		return nil, fail(span, err, "failed to get account data")
	}

	return &models.AccountResponse{
		Schedule:  *a.schedule,
		Contracts: models.Contracts{Bitpeople: *snapshot},
	}, nil
}

func fail(span trace.Span, err error, msg string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	return eris.Wrap(err, msg)
}
