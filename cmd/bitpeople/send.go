// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/commitment"
	"github.com/danielhkuo/bitpeople-node/models"
	"github.com/danielhkuo/bitpeople-node/tx"
	"github.com/danielhkuo/bitpeople-node/view"
)

// send opens a session and prints the lifecycle of the transaction op
// starts. Input must already be validated.
func send(cmd *cobra.Command, o *options, op func(ctx context.Context, s *tx.Session) <-chan tx.Event) error {
	ctx := cmd.Context()
	session, closeSession, err := o.dial(ctx, o)
	if err != nil {
		return err
	}
	defer closeSession()

	out := cmd.OutOrStdout()
	for e := range op(ctx, session) {
		switch e := e.(type) {
		case tx.Submitted:
			fmt.Fprintf(out, "Submitted %s, waiting for confirmation...\n", e.Hash.Hex())
		case tx.Confirmed:
			fmt.Fprintln(out, e.Message)
		case tx.Failed:
			return fmt.Errorf("%s: %w", e.Reason, e.Err)
		}
	}
	return nil
}

func validate(kind view.InputKind, name, value string) error {
	return view.Input{Name: name, Kind: kind}.Validate(value)
}

func newSimpleCmd(o *options, use, short string, op func(*tx.Session, context.Context) <-chan tx.Event) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd, o, func(ctx context.Context, s *tx.Session) <-chan tx.Event {
				return op(s, ctx)
			})
		},
	}
}

func newRegisterCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "register [number]",
		Short: "Register for the next event with a register token",
		Long: `Registers with a random number of 64 hex digits. Without an argument a new
number is generated. Only its keccak256 hash is sent; keep the number, you
need it to reveal after the event.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var number string
			if len(args) > 0 {
				number = strings.TrimSpace(args[0])
			} else {
				n, err := commitment.GenerateNumber()
				if err != nil {
					return err
				}
				number = n
			}
			if err := validate(view.InputNumber, view.FieldNumber, number); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Your random number: %s\n", number)
			return send(cmd, o, func(ctx context.Context, s *tx.Session) <-chan tx.Event {
				return s.Register(ctx, number)
			})
		},
	}
}

func newJudgeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "judge <court>",
		Short: `Verify the "court" you were assigned to judge`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(view.InputAddress, view.FieldCourt, args[0]); err != nil {
				return err
			}
			court := common.HexToAddress(strings.TrimSpace(args[0]))
			return send(cmd, o, func(ctx context.Context, s *tx.Session) <-chan tx.Event {
				return s.Judge(ctx, court)
			})
		},
	}
}

func newRevealCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <number>",
		Short: "Reveal the random number you registered with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := strings.TrimSpace(args[0])
			if err := validate(view.InputNumber, view.FieldNumber, number); err != nil {
				return err
			}
			return send(cmd, o, func(ctx context.Context, s *tx.Session) <-chan tx.Event {
				return s.RevealHash(ctx, number)
			})
		},
	}
}

func newInviteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "invite <to>",
		Short: "Give another account one of your opt-in tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(view.InputAddress, view.FieldTo, args[0]); err != nil {
				return err
			}
			to := common.HexToAddress(strings.TrimSpace(args[0]))
			return send(cmd, o, func(ctx context.Context, s *tx.Session) <-chan tx.Event {
				return s.Invite(ctx, to)
			})
		},
	}
}

// parseToken accepts a token kind by name or number.
func parseToken(s string) (bitpeople.Token, error) {
	for t := bitpeople.TokenProofOfUniqueHuman; t <= bitpeople.TokenBorderVote; t++ {
		if s == t.String() || s == strconv.Itoa(int(t)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown token %q", s)
}

func balance(tokens models.Tokens, t bitpeople.Token) uint64 {
	switch t {
	case bitpeople.TokenProofOfUniqueHuman:
		return tokens.ProofOfUniqueHuman
	case bitpeople.TokenRegister:
		return tokens.Register
	case bitpeople.TokenOptIn:
		return tokens.OptIn
	default:
		return tokens.BorderVote
	}
}

func newTransferCmd(o *options) *cobra.Command {
	var tokenName string
	cmd := &cobra.Command{
		Use:   "transfer <to> <amount>",
		Short: "Transfer tokens to another account",
		Long: `Transfers tokens of the current period. The amount may not exceed your
balance, which is read from the node API first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := parseToken(tokenName)
			if err != nil {
				return err
			}
			if err := validate(view.InputAddress, view.FieldTo, args[0]); err != nil {
				return err
			}

			from, err := o.signerAddress()
			if err != nil {
				return err
			}
			resp, err := o.client().Fetch(cmd.Context(), from.Hex())
			if err != nil {
				return err
			}
			amount := view.Input{Name: view.FieldAmount, Kind: view.InputAmount, Max: balance(resp.CurrentTokens(), token)}
			if err := amount.Validate(args[1]); err != nil {
				return err
			}

			to := common.HexToAddress(strings.TrimSpace(args[0]))
			value, _ := strconv.ParseUint(strings.TrimSpace(args[1]), 10, 64)
			return send(cmd, o, func(ctx context.Context, s *tx.Session) <-chan tx.Event {
				return s.Transfer(ctx, to, value, token)
			})
		},
	}
	cmd.Flags().StringVar(&tokenName, "token", bitpeople.TokenRegister.String(), `Token kind: "register", "opt-in", "border vote" or "proof-of-unique-human"`)
	return cmd
}
