// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package phase

import (
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/bitpeople-node/models"
)

var (
	partner = common.HexToAddress("0x2222222222222222222222222222222222222222")
	judge   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	commit  = common.HexToHash("0xabcdef")
)

// snapshot builds a response at the given quarter; edit fields after.
func snapshot(quarter uint64) *models.AccountResponse {
	r := &models.AccountResponse{}
	r.Schedule.CurrentSchedule.Quarter = quarter
	r.Contracts.Bitpeople.PreviousData = models.EmptyEpoch()
	r.Contracts.Bitpeople.CurrentData = models.EmptyEpoch()
	r.Contracts.Bitpeople.CurrentData.Account.Tokens = &models.Tokens{}
	return r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *models.AccountResponse)
		q     uint64
		want  Phase
	}{
		{
			name: "need token",
			q:    0,
			want: Idle{Step: IdleNeedToken},
		},
		{
			name: "register open",
			q:    1,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.Register = 1
			},
			want: Idle{Step: IdleRegister},
		},
		{
			name: "register closed",
			q:    2,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.Register = 1
			},
			want: Idle{Step: IdleRegisterClosed},
		},
		{
			name: "register token wins over opt-in token",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.Register = 1
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.OptIn = 1
			},
			want: Idle{Step: IdleRegister},
		},
		{
			name: "opt-in open",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.OptIn = 2
			},
			want: Idle{Step: IdleOptIn},
		},
		{
			name: "opt-in closed",
			q:    3,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.OptIn = 2
			},
			want: Idle{Step: IdleOptInClosed},
		},
		{
			name: "done wins over everything",
			q:    3,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.ProofOfUniqueHuman = true
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.ProofOfUniqueHuman = 1
				r.Contracts.Bitpeople.PreviousData.Account.Nym.ID = 3
				r.Contracts.Bitpeople.CurrentData.Account.Commit = commit
			},
			want: Done{},
		},
		{
			name: "claim",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.ProofOfUniqueHuman = 1
				r.Contracts.Bitpeople.PreviousData.Account.Nym.ID = 3
			},
			want: Claim{},
		},
		{
			name: "missing tokens read as zero",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Tokens = nil
			},
			want: Idle{Step: IdleNeedToken},
		},
		{
			name: "event verify odd nym",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym.ID = 3
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{true, false}
			},
			want: PseudonymEvent{Step: StepVerify},
		},
		{
			name: "event verify even nym",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym.ID = 4
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{false, true}
			},
			want: PseudonymEvent{Step: StepVerify},
		},
		{
			name: "event collect tokens",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym.ID = 4
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{true, true}
			},
			want: PseudonymEvent{Step: StepCollectTokens},
		},
		{
			name: "event waiting for partner",
			q:    0,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym.ID = 4
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{true, false}
			},
			want: PseudonymEvent{Step: StepWait},
		},
		{
			name: "event judge",
			q:    1,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym = models.Nym{ID: 4, Verified: true}
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{true, true}
			},
			want: PseudonymEvent{Step: StepJudge},
		},
		{
			name: "event reveal",
			q:    2,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym = models.Nym{ID: 4, Verified: true}
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{true, true}
				r.Contracts.Bitpeople.CurrentData.Account.Commit = commit
			},
			want: PseudonymEvent{Step: StepReveal},
		},
		{
			name: "event verified without commit",
			q:    2,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.PreviousData.Account.Nym = models.Nym{ID: 4, Verified: true}
				r.Contracts.Bitpeople.PreviousData.Account.Pair.Verified = [2]bool{true, true}
			},
			want: PseudonymEvent{Step: StepWait},
		},
		{
			name: "registered shuffle",
			q:    3,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Commit = commit
			},
			want: Registered{Step: RegisteredShuffle},
		},
		{
			name: "registered contact",
			q:    3,
			setup: func(r *models.AccountResponse) {
				acc := &r.Contracts.Bitpeople.CurrentData.Account
				acc.Commit = commit
				acc.Shuffler = true
				acc.Pair.Partner = partner
				acc.Nym.ID = 1
				r.Contracts.Bitpeople.CurrentData.Global.RegistryLength = 4
				r.Contracts.Bitpeople.CurrentData.Global.Courts = 1
			},
			want: Registered{Step: RegisteredContact, Partner: partner, CourtsToJudge: 1},
		},
		{
			name: "registered awaiting pairing",
			q:    3,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Commit = commit
				r.Contracts.Bitpeople.CurrentData.Account.Shuffler = true
			},
			want: Registered{Step: RegisteredAwaitPairing},
		},
		{
			name: "registered invite",
			q:    1,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Commit = commit
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.OptIn = 1
			},
			want: Registered{Step: RegisteredInvite},
		},
		{
			name: "registered waiting",
			q:    2,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Commit = commit
				r.Contracts.Bitpeople.CurrentData.Account.Tokens.OptIn = 1
			},
			want: Registered{Step: RegisteredWaiting},
		},
		{
			name: "opted in waiting",
			q:    3,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Court.ID = 2
			},
			want: OptedIn{Step: OptedInWaiting},
		},
		{
			name: "opted in contact court",
			q:    3,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Court.ID = 2
				r.Contracts.Bitpeople.CurrentData.Account.Court.Judges[1] = judge
			},
			want: OptedIn{Step: OptedInContactCourt, Judges: []common.Address{judge}},
		},
		{
			name: "opted in before shuffle quarter",
			q:    2,
			setup: func(r *models.AccountResponse) {
				r.Contracts.Bitpeople.CurrentData.Account.Court.ID = 2
				r.Contracts.Bitpeople.CurrentData.Account.Court.Judges[0] = judge
			},
			want: OptedIn{Step: OptedInWaiting},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := snapshot(tt.q)
			if tt.setup != nil {
				tt.setup(r)
			}
			got := Classify(r)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() = %#v, want %#v", got, tt.want)
			}
			if got.Kind() != tt.want.Kind() {
				t.Errorf("Kind() = %s, want %s", got.Kind(), tt.want.Kind())
			}
		})
	}
}

func TestOptInJudgeCount(t *testing.T) {
	tests := []struct {
		name           string
		registryLength uint64
		courts         uint64
		nymID          uint64
		want           int
	}{
		{"no registrations no courts", 0, 0, 0, 1},
		{"no registrations with courts", 0, 3, 1, 2},
		{"fewer courts than pairs, first pair", 10, 2, 1, 1},
		{"fewer courts than pairs, later pair", 10, 2, 5, 0},
		{"more courts than pairs, second rotation", 4, 3, 2, 2},
		{"more courts than pairs, outside second rotation", 4, 3, 3, 1},
		// 5 registered is 2.5 pairs: 3 courts exceed it and leave half a court
		{"half pair", 5, 3, 1, 1},
		{"equal courts and pairs", 4, 2, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := snapshot(3)
			r.Contracts.Bitpeople.CurrentData.Global.RegistryLength = tt.registryLength
			r.Contracts.Bitpeople.CurrentData.Global.Courts = tt.courts
			r.Contracts.Bitpeople.CurrentData.Account.Nym.ID = tt.nymID
			if got := OptInJudgeCount(r); got != tt.want {
				t.Errorf("OptInJudgeCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHasRegisterTokens(t *testing.T) {
	r := snapshot(0)
	if HasRegisterTokens(r) {
		t.Error("HasRegisterTokens() = true for zero balances")
	}
	r.Contracts.Bitpeople.CurrentData.Account.Tokens.BorderVote = 1
	r.Contracts.Bitpeople.CurrentData.Account.Tokens.OptIn = 1
	if HasRegisterTokens(r) {
		t.Error("HasRegisterTokens() = true with only opt-in and border vote tokens")
	}
	r.Contracts.Bitpeople.CurrentData.Account.Tokens.Register = 2
	if !HasRegisterTokens(r) {
		t.Error("HasRegisterTokens() = false with register tokens")
	}
	r.Contracts.Bitpeople.CurrentData.Account.Tokens = nil
	if HasRegisterTokens(r) {
		t.Error("HasRegisterTokens() = true without tokens")
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindDone:           "done",
		KindClaim:          "claim",
		KindPseudonymEvent: "pseudonym-event",
		KindRegistered:     "registered",
		KindOptedIn:        "opted-in",
		KindIdle:           "idle",
		Kind(42):           "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
