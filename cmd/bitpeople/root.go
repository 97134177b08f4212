// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/cliparse"
	"github.com/danielhkuo/bitpeople-node/client"
	"github.com/danielhkuo/bitpeople-node/telemetry"
	"github.com/danielhkuo/bitpeople-node/tx"
)

type options struct {
	api        string
	node       string
	contract   string
	privateKey string
	keystore   string
	passphrase string
	logLevel   string

	// dial opens a signing session and returns a func that releases its
	// connection; replaced in tests.
	dial func(ctx context.Context, o *options) (*tx.Session, func(), error)
}

func defaultOptions() *options {
	return &options{dial: dialSession}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "bitpeople",
		Short: "Take part in the BitPeople pseudonym event",
		Long: `bitpeople reads an account's state from a BitPeople node and tells you what to
do next. With a private key or keystore it also signs and sends the
transactions for each step.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(telemetry.NewLogger(cmd.ErrOrStderr(), o.logLevel, "text"))
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	flags := root.PersistentFlags()
	flags.StringVar(&o.api, "api", envOr("BITPEOPLE_API", "http://localhost:3000"), "BitPeople node API URL [BITPEOPLE_API]")
	flags.StringVar(&o.node, "node", envOr("NODE_URL", cliparse.DefaultNodeURL), "Ethereum JSON-RPC URL for transactions [NODE_URL]")
	flags.StringVar(&o.contract, "contract", envOr("CONTRACT_ADDRESS", bitpeople.DefaultAddress.Hex()), "BitPeople contract address [CONTRACT_ADDRESS]")
	flags.StringVar(&o.privateKey, "private-key", os.Getenv("BITPEOPLE_PRIVATE_KEY"), "Hex private key [BITPEOPLE_PRIVATE_KEY]")
	flags.StringVar(&o.keystore, "keystore", os.Getenv("BITPEOPLE_KEYSTORE"), "Encrypted key file [BITPEOPLE_KEYSTORE]")
	flags.StringVar(&o.passphrase, "passphrase", os.Getenv("BITPEOPLE_PASSPHRASE"), "Keystore passphrase [BITPEOPLE_PASSPHRASE]")
	flags.StringVar(&o.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "debug, info, warn or error [LOG_LEVEL]")

	root.AddCommand(
		newStatusCmd(o),
		newWatchCmd(o),
		newRegisterCmd(o),
		newSimpleCmd(o, "opt-in", "Opt in with an opt-in token", (*tx.Session).OptIn),
		newSimpleCmd(o, "shuffle", "Shuffle one person in the registry", (*tx.Session).Shuffle),
		newSimpleCmd(o, "verify", "Verify the other person in your pair", (*tx.Session).Verify),
		newSimpleCmd(o, "collect", "Collect the tokens of a verified pair", (*tx.Session).NymVerified),
		newSimpleCmd(o, "claim", "Claim your proof-of-unique-human", (*tx.Session).ClaimProofOfUniqueHuman),
		newJudgeCmd(o),
		newRevealCmd(o),
		newTransferCmd(o),
		newInviteCmd(o),
	)
	return root
}

func (o *options) client() *client.Client {
	return client.New(o.api)
}

// signedIn reports whether a key source is configured.
func (o *options) signedIn() bool {
	return o.privateKey != "" || o.keystore != ""
}

// signerAddress returns the configured signer's address without contacting
// the node.
func (o *options) signerAddress() (common.Address, error) {
	opts, err := tx.LoadSigner(o.privateKey, o.keystore, o.passphrase, big.NewInt(1))
	if err != nil {
		return common.Address{}, err
	}
	return opts.From, nil
}

// subject resolves the address a read command is about: the argument if
// given, otherwise the signer.
func (o *options) subject(args []string) (string, bool, error) {
	if len(args) > 0 {
		signed := false
		if o.signedIn() {
			if from, err := o.signerAddress(); err == nil {
				signed = common.HexToAddress(args[0]) == from
			}
		}
		return args[0], signed, nil
	}
	if !o.signedIn() {
		return "", false, errors.New("an address argument or a signer is required")
	}
	from, err := o.signerAddress()
	if err != nil {
		return "", false, err
	}
	return from.Hex(), true, nil
}

func dialSession(ctx context.Context, o *options) (*tx.Session, func(), error) {
	if !common.IsHexAddress(o.contract) {
		return nil, nil, fmt.Errorf("invalid contract address %q", o.contract)
	}
	rpc, err := ethclient.DialContext(ctx, o.node)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to node: %w", err)
	}
	chainID, err := rpc.ChainID(ctx)
	if err != nil {
		rpc.Close()
		return nil, nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	signer, err := tx.LoadSigner(o.privateKey, o.keystore, o.passphrase, chainID)
	if err != nil {
		rpc.Close()
		return nil, nil, err
	}
	contract, err := bitpeople.NewBitpeopleTransactor(common.HexToAddress(o.contract), rpc)
	if err != nil {
		rpc.Close()
		return nil, nil, fmt.Errorf("failed to bind contract: %w", err)
	}
	return tx.NewSession(contract, rpc, signer), rpc.Close, nil
}
