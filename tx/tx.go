// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rotisserie/eris"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/commitment"
)

var ErrReverted = errors.New("transaction reverted")

// Transactor is the write surface of the contract.
// *bitpeople.BitpeopleTransactor satisfies it.
type Transactor interface {
	Register(opts *bind.TransactOpts, commit [32]byte) (*types.Transaction, error)
	OptIn(opts *bind.TransactOpts) (*types.Transaction, error)
	Shuffle(opts *bind.TransactOpts) (*types.Transaction, error)
	Verify(opts *bind.TransactOpts) (*types.Transaction, error)
	Judge(opts *bind.TransactOpts, court common.Address) (*types.Transaction, error)
	NymVerified(opts *bind.TransactOpts) (*types.Transaction, error)
	RevealHash(opts *bind.TransactOpts, preimage [32]byte) (*types.Transaction, error)
	ClaimProofOfUniqueHuman(opts *bind.TransactOpts) (*types.Transaction, error)
	Transfer(opts *bind.TransactOpts, to common.Address, value *big.Int, token uint8) (*types.Transaction, error)
}

// Backend waits for receipts and prices gas. *ethclient.Client satisfies it.
type Backend interface {
	bind.DeployBackend
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// Event is one of Submitted, Confirmed or Failed.
type Event interface {
	event()
}

// Submitted is sent once the node accepted the transaction.
type Submitted struct {
	Hash common.Hash
}

// Confirmed ends a successful lifecycle.
type Confirmed struct {
	Receipt *types.Receipt
	Message string
}

// Failed ends a lifecycle that was rejected, reverted or abandoned. Reason is
// safe to show; Err carries the details.
type Failed struct {
	Reason string
	Err    error
}

func (Submitted) event() {}
func (Confirmed) event() {}
func (Failed) event()    {}

// Session sends transactions from one signer.
type Session struct {
	contract Transactor
	backend  Backend
	signer   *bind.TransactOpts
}

func NewSession(contract Transactor, backend Backend, signer *bind.TransactOpts) *Session {
	return &Session{contract: contract, backend: backend, signer: signer}
}

// From returns the signer's address.
func (s *Session) From() common.Address {
	return s.signer.From
}

type operation struct {
	name    string
	success string
	failure string
	submit  func(opts *bind.TransactOpts) (*types.Transaction, error)
}

func failed(ch chan<- Event, op operation, err error) {
	slog.Error("transaction failed", "op", op.name, "error", err)
	ch <- Failed{Reason: op.failure, Err: err}
}

// send runs op in the background. The returned channel yields Submitted then
// Confirmed, or a single Failed, and is closed afterwards.
func (s *Session) send(ctx context.Context, op operation) <-chan Event {
	ch := make(chan Event, 2)
	go func() {
		defer close(ch)

		gasPrice, err := s.backend.SuggestGasPrice(ctx)
		if err != nil {
			failed(ch, op, eris.Wrap(err, "failed to get gas price"))
			return
		}
		opts := *s.signer
		opts.Context = ctx
		opts.GasPrice = gasPrice

		tx, err := op.submit(&opts)
		if err != nil {
			failed(ch, op, eris.Wrapf(err, "failed to submit %s", op.name))
			return
		}
		slog.Info("transaction submitted", "op", op.name, "hash", tx.Hash().Hex())
		ch <- Submitted{Hash: tx.Hash()}

		receipt, err := bind.WaitMined(ctx, s.backend, tx)
		if err != nil {
			failed(ch, op, eris.Wrapf(err, "failed to wait for %s", op.name))
			return
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			failed(ch, op, eris.Wrapf(ErrReverted, "%s in block %s", op.name, receipt.BlockNumber))
			return
		}
		slog.Info("transaction confirmed", "op", op.name, "hash", tx.Hash().Hex(), "block", receipt.BlockNumber)
		ch <- Confirmed{Receipt: receipt, Message: op.success}
	}()
	return ch
}

// reject returns a channel holding a single Failed, for input that never
// reaches the signer.
func reject(op operation, err error) <-chan Event {
	ch := make(chan Event, 1)
	failed(ch, op, err)
	close(ch)
	return ch
}

// Register commits to number, given as 64 hex digits, for the upcoming
// event. The contract stores keccak256 of its bytes.
func (s *Session) Register(ctx context.Context, number string) <-chan Event {
	op := operation{
		name: "register",
		success: fmt.Sprintf("You are registered for the upcoming pseudonym event. "+
			"Remember to write down your random number %s, you will need it to claim your proof of unique human later.", number),
		failure: "Error registering",
	}
	hash, err := commitment.Commit(number)
	if err != nil {
		return reject(op, err)
	}
	op.submit = func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.Register(opts, hash)
	}
	return s.send(ctx, op)
}

func (s *Session) OptIn(ctx context.Context) <-chan Event {
	return s.send(ctx, operation{
		name:    "optIn",
		success: "You have opted-in to BitPeople for the upcoming pseudonym event.",
		failure: "Error opting in",
		submit:  s.contract.OptIn,
	})
}

func (s *Session) Shuffle(ctx context.Context) <-chan Event {
	return s.send(ctx, operation{
		name:    "shuffle",
		success: "Shuffled one person in the population",
		failure: "Error shuffling",
		submit:  s.contract.Shuffle,
	})
}

func (s *Session) Verify(ctx context.Context) <-chan Event {
	return s.send(ctx, operation{
		name:    "verify",
		success: "Verified the other person in your pair",
		failure: "Error verifying",
		submit:  s.contract.Verify,
	})
}

// Judge verifies the court at the given address.
func (s *Session) Judge(ctx context.Context, court common.Address) <-chan Event {
	return s.send(ctx, operation{
		name:    "judge",
		success: fmt.Sprintf(`You have verified the "court" for %s`, court.Hex()),
		failure: "Error judging court",
		submit: func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return s.contract.Judge(opts, court)
		},
	})
}

// NymVerified collects the tokens of a verified pair.
func (s *Session) NymVerified(ctx context.Context) <-chan Event {
	return s.send(ctx, operation{
		name:    "nymVerified",
		success: "Collected one nym token and one border token",
		failure: "Error collecting tokens",
		submit:  s.contract.NymVerified,
	})
}

// RevealHash reveals the number committed at registration.
func (s *Session) RevealHash(ctx context.Context, number string) <-chan Event {
	op := operation{
		name:    "revealHash",
		success: "Revealed your random number. You can now claim your proof-of-unique-human",
		failure: "Error revealing random number",
	}
	preimage, err := commitment.ParseNumber(number)
	if err != nil {
		return reject(op, err)
	}
	op.submit = func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return s.contract.RevealHash(opts, preimage)
	}
	return s.send(ctx, op)
}

func (s *Session) ClaimProofOfUniqueHuman(ctx context.Context) <-chan Event {
	return s.send(ctx, operation{
		name:    "claimProofOfUniqueHuman",
		success: "Claimed your proof-of-unique-human",
		failure: "Error claiming proof-of-unique-human",
		submit:  s.contract.ClaimProofOfUniqueHuman,
	})
}

// Transfer sends value tokens of the given kind to another account.
func (s *Session) Transfer(ctx context.Context, to common.Address, value uint64, token bitpeople.Token) <-chan Event {
	noun := "tokens"
	if value == 1 {
		noun = "token"
	}
	return s.send(ctx, operation{
		name:    "transfer",
		success: fmt.Sprintf("Transferred %d %s %s to %s", value, token, noun, to.Hex()),
		failure: "Error transferring tokens",
		submit: func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return s.contract.Transfer(opts, to, new(big.Int).SetUint64(value), uint8(token))
		},
	})
}

// Invite gives another account one opt-in token.
func (s *Session) Invite(ctx context.Context, to common.Address) <-chan Event {
	return s.Transfer(ctx, to, 1, bitpeople.TokenOptIn)
}

// Wait drains ch and returns the final event.
func Wait(ch <-chan Event) Event {
	var last Event
	for e := range ch {
		last = e
	}
	return last
}
