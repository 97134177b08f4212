// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/bitpeople-node/commitment"
	"github.com/danielhkuo/bitpeople-node/phase"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidNumber  = errors.New("invalid random number")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrMissingInput   = errors.New("missing input")
)

var addressPattern = regexp.MustCompile(`^(0x)?[0-9A-Fa-f]{40}$`)

// ValidAddress reports whether s is 40 hex digits with an optional 0x prefix.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// Section names.
const (
	SectionDefault  = "Default"
	SectionRegister = "Register"
	SectionTransfer = "Transfer"
)

// Input field names.
const (
	FieldCourt  = "court"
	FieldNumber = "number"
	FieldTo     = "to"
	FieldAmount = "amount"
)

// ChatURL is where participants contact their pair and court.
const ChatURL = "https://chat.blockscan.com/"

type InputKind int

const (
	InputAddress InputKind = iota
	InputNumber
	InputAmount
)

// Input is a text field of an action.
type Input struct {
	Name        string
	Kind        InputKind
	Placeholder string
	Value       string
	ReadOnly    bool
	// Max bounds InputAmount.
	Max uint64
}

// Validate checks a value entered into the field. Surrounding whitespace is
// ignored.
func (in Input) Validate(value string) error {
	value = strings.TrimSpace(value)
	switch in.Kind {
	case InputAddress:
		if !ValidAddress(value) {
			return fmt.Errorf("%s: %w", in.Name, ErrInvalidAddress)
		}
	case InputNumber:
		if !commitment.ValidNumber(value) {
			return fmt.Errorf("%s: %w", in.Name, ErrInvalidNumber)
		}
	case InputAmount:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil || n > in.Max {
			return fmt.Errorf("%s: %w: want 0 to %d", in.Name, ErrInvalidAmount, in.Max)
		}
	}
	return nil
}

type ActionKind int

const (
	ActionRegister ActionKind = iota
	ActionOptIn
	ActionShuffle
	ActionVerify
	ActionJudge
	ActionCollectTokens
	ActionReveal
	ActionClaim
	ActionInvite
	ActionTransfer
)

func (k ActionKind) String() string {
	switch k {
	case ActionRegister:
		return "register"
	case ActionOptIn:
		return "opt-in"
	case ActionShuffle:
		return "shuffle"
	case ActionVerify:
		return "verify"
	case ActionJudge:
		return "judge"
	case ActionCollectTokens:
		return "collect"
	case ActionReveal:
		return "reveal"
	case ActionClaim:
		return "claim"
	case ActionInvite:
		return "invite"
	case ActionTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Action is a transaction the viewer can send.
type Action struct {
	Kind   ActionKind
	Label  string
	Inputs []Input
}

// Validate checks every input of the action against values, keyed by
// Input.Name. Read-only inputs use their preset value.
func (a Action) Validate(values map[string]string) error {
	for _, in := range a.Inputs {
		v, ok := values[in.Name]
		if in.ReadOnly {
			v, ok = in.Value, true
		}
		if !ok {
			return fmt.Errorf("%s: %w", in.Name, ErrMissingInput)
		}
		if err := in.Validate(v); err != nil {
			return err
		}
	}
	return nil
}

// Enabled reports whether all inputs validate.
func (a Action) Enabled(values map[string]string) bool {
	return a.Validate(values) == nil
}

type Link struct {
	Text string
	URL  string
}

// Section is one selectable part of a page.
type Section struct {
	Name       string
	Heading    string
	Paragraphs []string
	Links      []Link
	Actions    []Action
}

// Page is the rendered state of one account.
type Page struct {
	Address  common.Address
	SignedIn bool
	Phase    phase.Phase
	Sections []Section
}

// Section returns the section with the given name.
func (p *Page) Section(name string) (*Section, bool) {
	for i := range p.Sections {
		if p.Sections[i].Name == name {
			return &p.Sections[i], true
		}
	}
	return nil, false
}

// Actions returns the actions of every section, in page order.
func (p *Page) Actions() []Action {
	var out []Action
	for _, s := range p.Sections {
		out = append(out, s.Actions...)
	}
	return out
}

// Action finds the first action of the given kind.
func (p *Page) Action(kind ActionKind) (Action, bool) {
	for _, a := range p.Actions() {
		if a.Kind == kind {
			return a, true
		}
	}
	return Action{}, false
}
