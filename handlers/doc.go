// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the node.

# Handler Types

Each handler is a struct with its dependencies and config:

  - AccountHandler: JSON snapshot of an account
  - PageHandler: Read-only HTML status page and raw snapshot view

Handlers are created via constructor functions:

	source := handlers.NewRPCSource(rpc, cfg.ContractAddress)
	accountHandler := handlers.NewAccountHandler(source, cfg)
	pageHandler := handlers.NewPageHandler(accountHandler, view.NewRenderer())

# Contract Source

A ContractSource builds the contract reader for one request. NewRPCSource
binds a new reader to a shared RPC connection on every call; tests pass a
closure returning a fake.

# Account Lookup

	GET /node/account/{address} → GetAccount

The address is 40 hex digits with an optional 0x prefix. Responses:

	200  snapshot envelope (schedule + contracts.bitpeople)
	400  {"error":"Bad Request","message":"invalid address"}
	502  {"error":"Bad Gateway","message":"Error getting account data."}

Upstream failures are logged with the request id; the client only sees the
generic message. When Config.NodeTimeout is set, all reads of one request
share that deadline.

# Pages

	GET /?address=     → Index (templates/page.html)
	GET /scan?address= → Scan

Index renders the account phase for an anonymous viewer, so no actions are
offered.
*/
package handlers
