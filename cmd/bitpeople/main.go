// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command bitpeople shows what an account should do next in the BitPeople
// pseudonym event and sends the matching transactions.
//
//	bitpeople status 0x…
//	BITPEOPLE_PRIVATE_KEY=… bitpeople register
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/bitpeople-node/cliparse"
)

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultOptions()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
