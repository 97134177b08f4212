// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package account

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/models"
)

type loader struct {
	contract Contract
	address  common.Address
	schedule models.ScheduleInfo
}

func epochAttr(t uint64) trace.SpanStartOption {
	return trace.WithAttributes(attribute.Int64("epoch", int64(t)))
}

func (l *loader) loadGlobal(ctx context.Context, t uint64) (models.GlobalState, error) {
	ctx, span := tracer.Start(ctx, "account.loadGlobal", epochAttr(t))
	defer span.End()

	var global models.GlobalState
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		global.Seed, err = l.contract.Seed(gctx, t)
		return err
	})
	g.Go(func() (err error) {
		global.RegistryLength, err = l.contract.RegistryLength(gctx, t)
		return err
	})
	g.Go(func() (err error) {
		global.Shuffled, err = l.contract.Shuffled(gctx, t)
		return err
	})
	g.Go(func() (err error) {
		global.Courts, err = l.contract.Courts(gctx, t)
		return err
	})
	g.Go(func() (err error) {
		global.Population, err = l.contract.Population(gctx, t)
		return err
	})
	g.Go(func() (err error) {
		global.Permits, err = l.contract.Permits(gctx, t)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.GlobalState{}, fail(span, err, "failed to load global data")
	}
	return global, nil
}

// loadAccount reads the account at epoch t. Partner and judge addresses are
// only resolved once global.Shuffled has reached their nym ids; judges also
// require registration to have ended.
func (l *loader) loadAccount(ctx context.Context, t uint64, global models.GlobalState, registrationEnded bool) (models.AccountState, error) {
	ctx, span := tracer.Start(ctx, "account.loadAccount", epochAttr(t))
	defer span.End()

	var (
		acc   models.AccountState
		court bitpeople.CourtInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		acc.Nym, err = l.contract.Nym(gctx, t, l.address)
		return err
	})
	g.Go(func() (err error) {
		acc.Shuffler, err = l.contract.Shuffler(gctx, t, l.address)
		return err
	})
	g.Go(func() (err error) {
		acc.ProofOfUniqueHuman, err = l.contract.ProofOfUniqueHuman(gctx, t, l.address)
		return err
	})
	g.Go(func() (err error) {
		acc.Commit, err = l.contract.Commit(gctx, t, l.address)
		return err
	})
	g.Go(func() (err error) {
		court, err = l.contract.Court(gctx, t, l.address)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.AccountState{}, fail(span, err, "failed to load account data")
	}

	acc.Court = models.Court{ID: court.ID, Verified: court.Verified}

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := l.contract.Pair(gctx, t, PairID(acc.Nym.ID))
		if err != nil {
			return err
		}
		acc.Pair.Verified = info.Verified
		acc.Pair.Disputed = info.Disputed
		return nil
	})
	if partner := PartnerNymID(acc.Nym.ID); partner != 0 && global.Shuffled >= partner {
		g.Go(func() (err error) {
			acc.Pair.Partner, err = l.contract.Registry(gctx, t, partner-1)
			return err
		})
	}
	registeredPairs := global.RegistryLength / 2
	if court.ID > 0 && registeredPairs > 0 && registrationEnded {
		first, second := JudgeNymIDs(CourtPairID(court.ID, registeredPairs))
		for i, nym := range [2]uint64{first, second} {
			if global.Shuffled < nym {
				continue
			}
			g.Go(func() (err error) {
				acc.Court.Judges[i], err = l.contract.Registry(gctx, t, nym-1)
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return models.AccountState{}, fail(span, err, "failed to load account data")
	}

	return acc, nil
}

// loadPrevious reads the previous epoch's global state at s-1 but the
// account at s; the contract keeps a nym's event data under the epoch that
// follows its registration.
func (l *loader) loadPrevious(ctx context.Context, s uint64) (models.EpochData, error) {
	ctx, span := tracer.Start(ctx, "account.loadPrevious", epochAttr(s))
	defer span.End()

	if s == 0 {
		return models.EmptyEpoch(), nil
	}

	global, err := l.loadGlobal(ctx, s-1)
	if err != nil {
		return models.EpochData{}, fail(span, err, "failed to load previous data")
	}
	acc, err := l.loadAccount(ctx, s, global, true)
	if err != nil {
		return models.EpochData{}, fail(span, err, "failed to load previous data")
	}
	return models.EpochData{Global: global, Account: acc}, nil
}

func (l *loader) loadCurrent(ctx context.Context, s uint64) (models.EpochData, error) {
	ctx, span := tracer.Start(ctx, "account.loadCurrent", epochAttr(s))
	defer span.End()

	global, err := l.loadGlobal(ctx, s)
	if err != nil {
		return models.EpochData{}, fail(span, err, "failed to load current data")
	}

	registrationEnded := l.schedule.CurrentSchedule.Quarter > models.QuarterSecond

	var (
		acc    models.AccountState
		tokens models.Tokens
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		acc, err = l.loadAccount(gctx, s, global, registrationEnded)
		return err
	})
	balances := []struct {
		token bitpeople.Token
		dst   *uint64
	}{
		{bitpeople.TokenProofOfUniqueHuman, &tokens.ProofOfUniqueHuman},
		{bitpeople.TokenRegister, &tokens.Register},
		{bitpeople.TokenOptIn, &tokens.OptIn},
		{bitpeople.TokenBorderVote, &tokens.BorderVote},
	}
	for _, b := range balances {
		g.Go(func() (err error) {
			*b.dst, err = l.contract.BalanceOf(gctx, s, b.token, l.address)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return models.EpochData{}, fail(span, err, "failed to load current data")
	}

	acc.Tokens = &tokens
	return models.EpochData{Global: global, Account: acc}, nil
}

// loadNext only reads what the renderer needs from the next epoch.
func (l *loader) loadNext(ctx context.Context, s uint64) (models.NextData, error) {
	ctx, span := tracer.Start(ctx, "account.loadNext", epochAttr(s+1))
	defer span.End()

	var next models.NextData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next.Account.ProofOfUniqueHuman, err = l.contract.ProofOfUniqueHuman(gctx, s+1, l.address)
		return err
	})
	g.Go(func() (err error) {
		next.Global.Population, err = l.contract.Population(gctx, s+1)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.NextData{}, fail(span, err, "failed to load next data")
	}
	return next, nil
}

func (l *loader) loadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	s := l.schedule.CurrentSchedule.Schedule

	var snapshot models.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.PreviousData, err = l.loadPrevious(gctx, s)
		return err
	})
	g.Go(func() (err error) {
		snapshot.CurrentData, err = l.loadCurrent(gctx, s)
		return err
	})
	g.Go(func() (err error) {
		snapshot.NextData, err = l.loadNext(gctx, s)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fail(trace.SpanFromContext(ctx), err, "failed to load parameters")
	}
	return &snapshot, nil
}
