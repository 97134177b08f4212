// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package phase

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/bitpeople-node/models"
)

// Kind names a top-level phase.
type Kind int

const (
	KindDone Kind = iota
	KindClaim
	KindPseudonymEvent
	KindRegistered
	KindOptedIn
	KindIdle
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindClaim:
		return "claim"
	case KindPseudonymEvent:
		return "pseudonym-event"
	case KindRegistered:
		return "registered"
	case KindOptedIn:
		return "opted-in"
	case KindIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Phase is one of Done, Claim, PseudonymEvent, Registered, OptedIn or Idle.
// The set is closed; switch on the concrete type.
type Phase interface {
	Kind() Kind
	sealed()
}

// Done: the account holds a proof-of-unique-human.
type Done struct{}

// Claim: the account holds a proof-of-unique-human token it can redeem.
type Claim struct{}

type EventStep int

const (
	StepWait EventStep = iota
	StepVerify
	StepJudge
	StepReveal
	StepCollectTokens
)

// PseudonymEvent: the account took part in the last pseudonym event.
type PseudonymEvent struct {
	Step EventStep
}

type RegisteredStep int

const (
	RegisteredWaiting RegisteredStep = iota
	RegisteredShuffle
	RegisteredContact
	RegisteredAwaitPairing
	RegisteredInvite
)

// Registered: the account committed a random number for the upcoming event.
// Partner and CourtsToJudge are set for RegisteredContact.
type Registered struct {
	Step          RegisteredStep
	Partner       common.Address
	CourtsToJudge int
}

type OptedInStep int

const (
	OptedInWaiting OptedInStep = iota
	OptedInContactCourt
)

// OptedIn: the account was assigned a court for the upcoming event. Judges
// holds the resolved judges for OptedInContactCourt.
type OptedIn struct {
	Step   OptedInStep
	Judges []common.Address
}

type IdleStep int

const (
	IdleNeedToken IdleStep = iota
	IdleRegister
	IdleRegisterClosed
	IdleOptIn
	IdleOptInClosed
)

// Idle: the account is not engaged in any event.
type Idle struct {
	Step IdleStep
}

func (Done) Kind() Kind           { return KindDone }
func (Claim) Kind() Kind          { return KindClaim }
func (PseudonymEvent) Kind() Kind { return KindPseudonymEvent }
func (Registered) Kind() Kind     { return KindRegistered }
func (OptedIn) Kind() Kind        { return KindOptedIn }
func (Idle) Kind() Kind           { return KindIdle }

func (Done) sealed()           {}
func (Claim) sealed()          {}
func (PseudonymEvent) sealed() {}
func (Registered) sealed()     {}
func (OptedIn) sealed()        {}
func (Idle) sealed()           {}

// Classify derives the account's phase. The checks are ordered; the first
// one that holds wins.
func Classify(r *models.AccountResponse) Phase {
	acc := current(r).Account
	quarter := r.Schedule.CurrentSchedule.Quarter

	switch {
	case acc.ProofOfUniqueHuman:
		return Done{}
	case r.CurrentTokens().ProofOfUniqueHuman > 0:
		return Claim{}
	case InPseudonymEvent(r):
		return PseudonymEvent{Step: eventStep(r)}
	case IsRegistered(r):
		return registered(r)
	case IsOptIn(r):
		p := OptedIn{Step: OptedInWaiting}
		if quarter == models.QuarterLast && CourtPairMemberShuffled(r) {
			p.Step = OptedInContactCourt
			for _, j := range acc.Court.Judges {
				if j != models.ZeroAddress {
					p.Judges = append(p.Judges, j)
				}
			}
		}
		return p
	}

	tokens := r.CurrentTokens()
	switch {
	case tokens.Register > 0 && registrationOpen(r):
		return Idle{Step: IdleRegister}
	case tokens.Register > 0:
		return Idle{Step: IdleRegisterClosed}
	case tokens.OptIn > 0 && registrationOpen(r):
		return Idle{Step: IdleOptIn}
	case tokens.OptIn > 0:
		return Idle{Step: IdleOptInClosed}
	default:
		return Idle{Step: IdleNeedToken}
	}
}

func eventStep(r *models.AccountResponse) EventStep {
	quarter := r.Schedule.CurrentSchedule.Quarter

	switch {
	case !HasVerified(r):
		return StepVerify
	case IsVerified(r):
		if quarter < models.QuarterThird {
			return StepJudge
		}
		if quarter == models.QuarterThird && IsCommitSet(r) {
			return StepReveal
		}
		return StepWait
	case PairVerified(r):
		return StepCollectTokens
	default:
		return StepWait
	}
}

func registered(r *models.AccountResponse) Registered {
	acc := current(r).Account
	quarter := r.Schedule.CurrentSchedule.Quarter

	switch {
	case quarter == models.QuarterLast && !acc.Shuffler:
		return Registered{Step: RegisteredShuffle}
	case quarter == models.QuarterLast && IsPaired(r):
		return Registered{
			Step:          RegisteredContact,
			Partner:       acc.Pair.Partner,
			CourtsToJudge: OptInJudgeCount(r),
		}
	case quarter == models.QuarterLast:
		return Registered{Step: RegisteredAwaitPairing}
	case registrationOpen(r) && r.CurrentTokens().OptIn > 0:
		return Registered{Step: RegisteredInvite}
	default:
		return Registered{Step: RegisteredWaiting}
	}
}
