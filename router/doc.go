// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the node.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	source := handlers.NewRPCSource(rpc, cfg.ContractAddress)
	mux := router.NewRouter(source, cfg)

# Endpoints

Health:

	GET /health

Account data (JSON):

	GET /node/account/{address} - Three-epoch snapshot of an account

Browser views:

	GET /?address=    - Read-only status page
	GET /scan?address= - Snapshot as indented JSON

All routes are read-only; other methods get 405. Everything except the
health check passes through middleware.WithLogging.
*/
package router
