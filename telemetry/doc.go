// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package telemetry sets up the process logger and OpenTelemetry tracing.
// Tracing exports over OTLP/HTTP and is a no-op without an endpoint.
package telemetry
