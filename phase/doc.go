// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package phase classifies an account snapshot into the step of the protocol
the account is in.

Classify checks, in order: proof-of-unique-human held (Done), claimable
token (Claim), participation in the last pseudonym event (PseudonymEvent),
registration (Registered), opt-in (OptedIn), and otherwise Idle. Each phase
carries a sub-step derived from the current quarter of the schedule:

	switch p := phase.Classify(resp).(type) {
	case phase.PseudonymEvent:
		if p.Step == phase.StepVerify { ... }
	case phase.Idle:
		...
	}

The predicates used by Classify are exported for callers that need a single
check, such as HasRegisterTokens for deciding whether to offer transfers.
*/
package phase
