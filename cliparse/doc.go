// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the node server.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - NodeURL: Ethereum JSON-RPC endpoint (default: http://localhost:8546)
  - ContractAddress: BitPeople contract (default: 0x…10)
  - NodeTimeout: Upper bound on the contract reads of one request (default: none)
  - OTLPEndpoint: OTLP/HTTP trace collector; tracing is off when empty
  - LogLevel, LogFormat: slog level and handler (default: info, text)

# CLI Flags

	-p            Server port
	-n            Node URL
	-c            Contract address
	-timeout      Node timeout (Go duration)
	-otlp         Trace endpoint
	-log-level    debug | info | warn | error
	-log-format   text | json

# Environment Variables

Flags fall back to environment variables:

	PORT                         → -p
	NODE_URL                     → -n
	CONTRACT_ADDRESS             → -c
	NODE_TIMEOUT                 → -timeout
	OTEL_EXPORTER_OTLP_ENDPOINT  → -otlp
	LOG_LEVEL                    → -log-level
	LOG_FORMAT                   → -log-format

CLI flags take precedence over environment variables. LoadEnv fills the
environment from a .env file first without overriding variables that are
already set.

# Validation

ParseFlags returns an error for a non-numeric PORT, a contract address that
is not 40 hex digits, an unparsable or negative timeout, and unknown log
levels or formats.

# Example

	// In main.go
	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	rpc, err := ethclient.DialContext(ctx, cfg.NodeURL)
	// ...
	mux := router.NewRouter(handlers.NewRPCSource(rpc, cfg.ContractAddress), cfg)
*/
package cliparse
