// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goccy/go-json"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/cliparse"
	"github.com/danielhkuo/bitpeople-node/models"
)

// ErrUpstream is returned by FakeContract for methods listed in FailOn.
var ErrUpstream = errors.New("upstream unavailable")

// TestAddress is the account most tests look up.
var TestAddress = common.HexToAddress("0x00000000000000000000000000000000000000aa")

// FakeAccount is the per-address state held by FakeContract.
type FakeAccount struct {
	Nym                models.Nym
	Shuffler           bool
	ProofOfUniqueHuman bool
	Commit             common.Hash
	Court              bitpeople.CourtInfo
	Tokens             models.Tokens
}

// FakeContract is an in-memory stand-in for the contract read surface.
// Maps are keyed by epoch; missing entries read as zero values.
type FakeContract struct {
	Current    uint64
	Schedules  map[uint64]models.Schedule
	Globals    map[uint64]models.GlobalState
	Accounts   map[uint64]map[common.Address]FakeAccount
	Pairs      map[uint64]map[uint64]bitpeople.PairInfo
	Registries map[uint64][]common.Address

	// FailOn makes the named methods return ErrUpstream.
	FailOn map[string]bool

	mu    sync.Mutex
	calls []string
}

// NewFakeContract returns an empty contract at the given epoch.
func NewFakeContract(current uint64) *FakeContract {
	return &FakeContract{
		Current:    current,
		Schedules:  make(map[uint64]models.Schedule),
		Globals:    make(map[uint64]models.GlobalState),
		Accounts:   make(map[uint64]map[common.Address]FakeAccount),
		Pairs:      make(map[uint64]map[uint64]bitpeople.PairInfo),
		Registries: make(map[uint64][]common.Address),
		FailOn:     make(map[string]bool),
	}
}

// SetAccount stores the state of addr at epoch t.
func (f *FakeContract) SetAccount(t uint64, addr common.Address, acc FakeAccount) {
	if f.Accounts[t] == nil {
		f.Accounts[t] = make(map[common.Address]FakeAccount)
	}
	f.Accounts[t][addr] = acc
}

// SetPair stores pair id at epoch t.
func (f *FakeContract) SetPair(t, id uint64, p bitpeople.PairInfo) {
	if f.Pairs[t] == nil {
		f.Pairs[t] = make(map[uint64]bitpeople.PairInfo)
	}
	f.Pairs[t][id] = p
}

// Calls returns the recorded calls, formatted as "method(args)".
func (f *FakeContract) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether a call with exactly this signature was made.
func (f *FakeContract) Called(call string) bool {
	for _, c := range f.Calls() {
		if c == call {
			return true
		}
	}
	return false
}

// CallCount counts calls to a method, regardless of arguments.
func (f *FakeContract) CallCount(method string) int {
	n := 0
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, method+"(") {
			n++
		}
	}
	return n
}

func (f *FakeContract) record(method string, args ...any) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	f.mu.Lock()
	f.calls = append(f.calls, method+"("+strings.Join(parts, ",")+")")
	f.mu.Unlock()
	if f.FailOn[method] {
		return fmt.Errorf("%s: %w", method, ErrUpstream)
	}
	return nil
}

func (f *FakeContract) account(t uint64, addr common.Address) FakeAccount {
	return f.Accounts[t][addr]
}

func (f *FakeContract) Schedule(ctx context.Context) (uint64, error) {
	if err := f.record("schedule"); err != nil {
		return 0, err
	}
	return f.Current, nil
}

func (f *FakeContract) ToSeconds(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("toSeconds", t); err != nil {
		return 0, err
	}
	return f.Schedules[t].ToSeconds, nil
}

func (f *FakeContract) Quarter(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("quarter", t); err != nil {
		return 0, err
	}
	return f.Schedules[t].Quarter, nil
}

func (f *FakeContract) Hour(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("hour", t); err != nil {
		return 0, err
	}
	return f.Schedules[t].Hour, nil
}

func (f *FakeContract) PseudonymEvent(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("pseudonymEvent", t); err != nil {
		return 0, err
	}
	return f.Schedules[t].PseudonymEvent, nil
}

func (f *FakeContract) Seed(ctx context.Context, t uint64) (*big.Int, error) {
	if err := f.record("seed", t); err != nil {
		return nil, err
	}
	if s := f.Globals[t].Seed; s != nil {
		return new(big.Int).Set(s), nil
	}
	return new(big.Int), nil
}

func (f *FakeContract) RegistryLength(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("registryLength", t); err != nil {
		return 0, err
	}
	return f.Globals[t].RegistryLength, nil
}

func (f *FakeContract) Shuffled(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("shuffled", t); err != nil {
		return 0, err
	}
	return f.Globals[t].Shuffled, nil
}

func (f *FakeContract) Courts(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("courts", t); err != nil {
		return 0, err
	}
	return f.Globals[t].Courts, nil
}

func (f *FakeContract) Population(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("population", t); err != nil {
		return 0, err
	}
	return f.Globals[t].Population, nil
}

func (f *FakeContract) Permits(ctx context.Context, t uint64) (uint64, error) {
	if err := f.record("permits", t); err != nil {
		return 0, err
	}
	return f.Globals[t].Permits, nil
}

func (f *FakeContract) Nym(ctx context.Context, t uint64, addr common.Address) (models.Nym, error) {
	if err := f.record("nym", t, addr.Hex()); err != nil {
		return models.Nym{}, err
	}
	return f.account(t, addr).Nym, nil
}

func (f *FakeContract) Shuffler(ctx context.Context, t uint64, addr common.Address) (bool, error) {
	if err := f.record("shuffler", t, addr.Hex()); err != nil {
		return false, err
	}
	return f.account(t, addr).Shuffler, nil
}

func (f *FakeContract) ProofOfUniqueHuman(ctx context.Context, t uint64, addr common.Address) (bool, error) {
	if err := f.record("proofOfUniqueHuman", t, addr.Hex()); err != nil {
		return false, err
	}
	return f.account(t, addr).ProofOfUniqueHuman, nil
}

func (f *FakeContract) Commit(ctx context.Context, t uint64, addr common.Address) (common.Hash, error) {
	if err := f.record("commit", t, addr.Hex()); err != nil {
		return common.Hash{}, err
	}
	return f.account(t, addr).Commit, nil
}

func (f *FakeContract) Pair(ctx context.Context, t, id uint64) (bitpeople.PairInfo, error) {
	if err := f.record("pair", t, id); err != nil {
		return bitpeople.PairInfo{}, err
	}
	return f.Pairs[t][id], nil
}

func (f *FakeContract) Registry(ctx context.Context, t, index uint64) (common.Address, error) {
	if err := f.record("registry", t, index); err != nil {
		return common.Address{}, err
	}
	if reg := f.Registries[t]; index < uint64(len(reg)) {
		return reg[index], nil
	}
	return common.Address{}, nil
}

func (f *FakeContract) Court(ctx context.Context, t uint64, addr common.Address) (bitpeople.CourtInfo, error) {
	if err := f.record("court", t, addr.Hex()); err != nil {
		return bitpeople.CourtInfo{}, err
	}
	return f.account(t, addr).Court, nil
}

func (f *FakeContract) BalanceOf(ctx context.Context, t uint64, token bitpeople.Token, addr common.Address) (uint64, error) {
	if err := f.record("balanceOf", t, uint8(token), addr.Hex()); err != nil {
		return 0, err
	}
	tokens := f.account(t, addr).Tokens
	switch token {
	case bitpeople.TokenProofOfUniqueHuman:
		return tokens.ProofOfUniqueHuman, nil
	case bitpeople.TokenRegister:
		return tokens.Register, nil
	case bitpeople.TokenOptIn:
		return tokens.OptIn, nil
	case bitpeople.TokenBorderVote:
		return tokens.BorderVote, nil
	}
	return 0, nil
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		NodeURL:         "http://localhost:8546",
		ContractAddress: bitpeople.DefaultAddress,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
