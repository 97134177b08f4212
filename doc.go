// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the BitPeople node server.

BitPeople is a proof-of-unique-human protocol: participants meet a random
partner in a monthly pseudonym event, verify each other and earn a
proof-of-unique-human token. The node reads the BitPeople contract over
JSON-RPC and serves a three-epoch snapshot of any account, which wallets and
the bitpeople CLI turn into "what to do next".

# Starting the Server

	NODE_URL=http://localhost:8546 go run .

Or with flags:

	go run . -p 3000 -n http://localhost:8546 -c 0x0000000000000000000000000000000000000010

A .env file in the working directory is read first.

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3000)
  - NODE_URL (-n): JSON-RPC endpoint (default: http://localhost:8546)
  - CONTRACT_ADDRESS (-c): Contract address (default: 0x…10)
  - NODE_TIMEOUT (-timeout): Deadline for the reads of one request
  - OTEL_EXPORTER_OTLP_ENDPOINT (-otlp): Enables tracing
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - bitpeople: Contract binding and typed reader
  - account: Snapshot composition (parallel reads per epoch)
  - phase: Classification of a snapshot into the participant's phase
  - view: Page model with texts, links and validated actions
  - commitment: Random numbers and their keccak256 commitments
  - tx: Signed transactions and their lifecycle events
  - client: HTTP client and single-flight poller for the endpoint
  - handlers, router, middleware: HTTP surface
  - telemetry: Logger and tracing setup
  - cliparse: Configuration parsing
  - cmd/bitpeople: Command-line participant client

See package documentation for each component.
*/
package main
