// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/danielhkuo/bitpeople-node/commitment"
	"github.com/danielhkuo/bitpeople-node/models"
	"github.com/danielhkuo/bitpeople-node/phase"
)

// Viewer is who looks at the page. A signed-in viewer holds a signer for
// Address and is offered actions; anyone else gets a read-only page.
type Viewer struct {
	Address  common.Address
	SignedIn bool
}

// subject picks "You<you>" or "<address><other>".
func (v Viewer) subject(you, other string) string {
	if v.SignedIn {
		return "You" + you
	}
	return v.Address.Hex() + other
}

// Renderer turns snapshots into pages.
type Renderer struct {
	Now       func() time.Time
	Location  *time.Location
	NewNumber func() (string, error)
}

func NewRenderer() *Renderer {
	return &Renderer{
		Now:       time.Now,
		Location:  time.Local,
		NewNumber: commitment.GenerateNumber,
	}
}

const twoWeeks = 14 * 24 * time.Hour

// when formats a unix time as a date followed by a relative duration.
func (r *Renderer) when(unix uint64) string {
	t := time.Unix(int64(unix), 0).In(r.Location)
	return fmt.Sprintf("%s (%s)",
		t.Format("Monday, January 2, 2006, 03:04:05 PM MST"),
		humanize.RelTime(t, r.Now(), "ago", "from now"))
}

func (r *Renderer) pseudonymEvent(resp *models.AccountResponse) string {
	return r.when(resp.Schedule.NextSchedule.PseudonymEvent)
}

func (r *Renderer) nextPeriod(resp *models.AccountResponse) string {
	return r.when(resp.Schedule.NextSchedule.ToSeconds)
}

func (r *Renderer) halftime(resp *models.AccountResponse) string {
	return r.when(resp.Schedule.CurrentSchedule.ToSeconds + uint64(twoWeeks/time.Second))
}

// ChatLink returns the chat URL for an address.
func ChatLink(addr common.Address) Link {
	u, _ := url.Parse(ChatURL)
	u = u.JoinPath("index")
	u.RawQuery = url.Values{"a": {hexutil.Encode(addr[:])}}.Encode()
	return Link{Text: u.String(), URL: u.String()}
}

// Render classifies resp and builds the page for viewer.
func (r *Renderer) Render(resp *models.AccountResponse, viewer Viewer) (*Page, error) {
	p := phase.Classify(resp)
	page := &Page{Address: viewer.Address, SignedIn: viewer.SignedIn, Phase: p}

	var (
		section Section
		err     error
	)
	switch p := p.(type) {
	case phase.Done:
		section = Section{Name: SectionDefault, Heading: viewer.subject(" have", " has") + " a proof-of-unique-human"}
	case phase.Claim:
		section = r.claim(viewer)
	case phase.PseudonymEvent:
		section = r.pseudonymEventSection(p, viewer)
	case phase.Registered:
		section = r.registered(p, resp, viewer)
	case phase.OptedIn:
		section = r.optedIn(p, resp, viewer)
	case phase.Idle:
		section, err = r.idle(p, resp, viewer)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unhandled phase %T", p)
	}
	page.Sections = append(page.Sections, section)

	if viewer.SignedIn && phase.HasRegisterTokens(resp) {
		page.Sections = append(page.Sections, transfer(resp.CurrentTokens()))
	}
	return page, nil
}

func (r *Renderer) claim(viewer Viewer) Section {
	s := Section{Name: SectionDefault}
	if !viewer.SignedIn {
		s.Heading = viewer.subject("", "") + " is verified and can claim its proof-of-unique-human"
		s.Paragraphs = []string{"Log in with a wallet to claim the proof-of-unique-human"}
		return s
	}
	s.Heading = "You are verified and can claim your proof-of-unique-human"
	s.Paragraphs = []string{"Claim your proof-of-unique-human"}
	s.Actions = []Action{{Kind: ActionClaim, Label: "Claim PoUH"}}
	return s
}

func (r *Renderer) pseudonymEventSection(p phase.PseudonymEvent, viewer Viewer) Section {
	s := Section{
		Name:    SectionDefault,
		Heading: viewer.subject(" have", " has") + " participated in the pseudonym event",
	}

	switch p.Step {
	case phase.StepVerify:
		if viewer.SignedIn {
			s.Paragraphs = []string{"Verify the other person in your pair"}
			s.Actions = []Action{{Kind: ActionVerify, Label: "Verify"}}
		} else {
			s.Paragraphs = []string{"Log in with a wallet to verify the other person in the pair"}
		}
	case phase.StepJudge:
		if viewer.SignedIn {
			s.Paragraphs = []string{
				"You are verified and have collected your tokens",
				`If you were assigned to judge a "court", input their address and press judge`,
			}
			s.Actions = []Action{{
				Kind:  ActionJudge,
				Label: "Judge",
				Inputs: []Input{{
					Name:        FieldCourt,
					Kind:        InputAddress,
					Placeholder: `Enter "court" address here`,
				}},
			}}
		} else {
			s.Paragraphs = []string{
				"The account is verified and has collected its tokens",
				`To judge any "courts" it was assigned to judge, log in with a wallet`,
			}
		}
	case phase.StepReveal:
		if viewer.SignedIn {
			s.Paragraphs = []string{"Your pair is verified. Reveal your random number so that you can claim your proof-of-unique-human after that"}
			s.Actions = []Action{{
				Kind:  ActionReveal,
				Label: "Submit",
				Inputs: []Input{{
					Name:        FieldNumber,
					Kind:        InputNumber,
					Placeholder: "Enter your random number here",
				}},
			}}
		} else {
			s.Paragraphs = []string{"Log in with a wallet to reveal the account's random number and claim its proof-of-unique-human"}
		}
	case phase.StepCollectTokens:
		if viewer.SignedIn {
			s.Paragraphs = []string{"Your pair is verified. Collect your tokens"}
			s.Actions = []Action{{Kind: ActionCollectTokens, Label: "Collect tokens"}}
		} else {
			s.Paragraphs = []string{"The pair the account is in is verified. Log in with a wallet to collect the tokens"}
		}
	}
	return s
}

func shuffleAction() Action {
	return Action{Kind: ActionShuffle, Label: "Shuffle"}
}

func (r *Renderer) registered(p phase.Registered, resp *models.AccountResponse, viewer Viewer) Section {
	s := Section{
		Name:    SectionDefault,
		Heading: viewer.subject(" are", " is") + " registered for the upcoming event on " + r.pseudonymEvent(resp),
	}

	switch p.Step {
	case phase.RegisteredShuffle:
		s.Paragraphs = []string{"It is time to shuffle. After you have shuffled, you can contact the person in your pair to agree on a video channel."}
		if viewer.SignedIn {
			s.Actions = []Action{shuffleAction()}
		}
	case phase.RegisteredContact:
		if !viewer.SignedIn {
			s.Paragraphs = []string{"Log in with a wallet to contact the person in the pair"}
			break
		}
		link := ChatLink(p.Partner)
		s.Paragraphs = []string{"Contact the person in your pair to agree on a video channel: " + link.URL}
		s.Links = []Link{link}
		if p.CourtsToJudge > 0 {
			courts := `a "court"`
			if p.CourtsToJudge == 2 {
				courts = `two "courts"`
			}
			s.Paragraphs = append(s.Paragraphs,
				fmt.Sprintf("You have been assigned to judge %s. They can contact you on %s too.", courts, ChatURL))
		}
	case phase.RegisteredAwaitPairing:
		if viewer.SignedIn {
			s.Paragraphs = []string{"You are not paired yet. Wait until shuffling is complete. You can shuffle again to speed things up."}
			s.Actions = []Action{shuffleAction()}
		}
	case phase.RegisteredInvite:
		if viewer.SignedIn {
			s.Paragraphs = []string{"You have an extra opt-in token. You can use it to invite another person:"}
			s.Actions = []Action{{
				Kind:  ActionInvite,
				Label: "Transfer",
				Inputs: []Input{{
					Name:        FieldTo,
					Kind:        InputAddress,
					Placeholder: "Account to invite",
				}},
			}}
		}
	}
	return s
}

func (r *Renderer) optedIn(p phase.OptedIn, resp *models.AccountResponse, viewer Viewer) Section {
	s := Section{
		Name:    SectionDefault,
		Heading: viewer.subject(" have", " has") + " opted-in for the upcoming event on " + r.pseudonymEvent(resp),
	}
	if p.Step != phase.OptedInContactCourt {
		return s
	}
	if !viewer.SignedIn {
		s.Paragraphs = []string{`Log in with a wallet to contact the "court" the account is assigned to`}
		return s
	}
	s.Paragraphs = []string{`Contact your "court" to agree on a video channel:`}
	for _, judge := range p.Judges {
		s.Links = append(s.Links, ChatLink(judge))
	}
	return s
}

func (r *Renderer) idle(p phase.Idle, resp *models.AccountResponse, viewer Viewer) (Section, error) {
	switch p.Step {
	case phase.IdleRegister:
		s := Section{Name: SectionRegister, Heading: viewer.subject("", "") + " can register for the event"}
		if !viewer.SignedIn {
			s.Paragraphs = []string{
				"Registration closes " + r.halftime(resp),
				"Log in with a wallet to register",
			}
			return s, nil
		}
		number, err := r.NewNumber()
		if err != nil {
			return Section{}, err
		}
		s.Paragraphs = []string{
			"To register, you need to contribute a random number to the random number generator.",
			"This site has generated one for you: " + number,
			"Write it down, you will need it to claim your proof-of-unique-human later.",
		}
		s.Actions = []Action{{
			Kind:  ActionRegister,
			Label: "Register",
			Inputs: []Input{{
				Name:     FieldNumber,
				Kind:     InputNumber,
				Value:    number,
				ReadOnly: true,
			}},
		}}
		return s, nil
	case phase.IdleRegisterClosed:
		return Section{
			Name:    SectionRegister,
			Heading: "The next registration period opens on: " + r.nextPeriod(resp),
		}, nil
	case phase.IdleOptIn:
		s := Section{Name: SectionDefault, Heading: viewer.subject(" have", " has") + " an opt-in token and can opt-in to the network"}
		if viewer.SignedIn {
			s.Actions = []Action{{Kind: ActionOptIn, Label: "Opt-in"}}
		} else {
			s.Paragraphs = []string{
				"The opt-in period closes " + r.halftime(resp),
				"Log in with a wallet to opt-in",
			}
		}
		return s, nil
	case phase.IdleOptInClosed:
		return Section{
			Name:    SectionDefault,
			Heading: "The next opt-in period opens on: " + r.nextPeriod(resp),
		}, nil
	default:
		return Section{
			Name:    SectionDefault,
			Heading: viewer.subject(" need", " needs") + " a register token or an opt-in token to participate in the event",
		}, nil
	}
}

func transfer(tokens models.Tokens) Section {
	noun := "tokens"
	if tokens.Register == 1 {
		noun = "token"
	}
	return Section{
		Name:       SectionTransfer,
		Heading:    fmt.Sprintf("You have %d register %s.", tokens.Register, noun),
		Paragraphs: []string{"Transfer tokens to another account:"},
		Actions: []Action{{
			Kind:  ActionTransfer,
			Label: "Transfer",
			Inputs: []Input{
				{Name: FieldTo, Kind: InputAddress, Placeholder: "Recipient address"},
				{Name: FieldAmount, Kind: InputAmount, Placeholder: "0", Max: tokens.Register},
			},
		}},
	}
}
