// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tx sends the contract's write operations from a local signer.

# Lifecycle

Every operation returns a channel that yields Submitted with the
transaction hash once the node accepts it, then either Confirmed with the
receipt and a message for the user, or Failed. A transaction that is mined
but reverted is Failed. Input that cannot be encoded (a malformed random
number) fails before anything is signed.

	for ev := range session.Register(ctx, number) {
		switch ev := ev.(type) {
		case tx.Submitted:
			fmt.Println("sent", ev.Hash)
		case tx.Confirmed:
			fmt.Println(ev.Message)
		case tx.Failed:
			fmt.Println(ev.Reason)
		}
	}

Failures are logged with the underlying error; Failed.Reason is a short
generic message. Nothing is retried.

# Signers

NewKeyedSigner takes a hex private key and NewKeystoreSigner an encrypted
keystore file. Gas price is the node's suggestion at send time.
*/
package tx
