// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func restoreProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestSetup_Disabled(t *testing.T) {
	restoreProvider(t)

	shutdown, err := Setup(context.Background(), ServiceName, "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if _, ok := otel.GetTracerProvider().(noop.TracerProvider); !ok {
		t.Errorf("Expected noop provider, got %T", otel.GetTracerProvider())
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestSetup_Enabled(t *testing.T) {
	restoreProvider(t)

	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318/v1/traces"} {
		t.Run(endpoint, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), ServiceName, endpoint)
			if err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
				t.Errorf("Expected SDK provider, got %T", otel.GetTracerProvider())
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			// No collector is listening; only make sure shutdown returns.
			_ = shutdown(ctx)
			_ = shutdown(ctx)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		debugSeen bool
		json      bool
	}{
		{"text info", "info", "text", false, false},
		{"json debug", "debug", "json", true, true},
		{"unknown level", "loud", "text", false, false},
		{"upper case", "DEBUG", "text", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.level, tt.format)

			logger.Debug("debug line")
			logger.Info("request started", "method", "GET")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.debugSeen {
				t.Errorf("debug line logged = %v, want %v", got, tt.debugSeen)
			}

			lines := strings.Split(strings.TrimSpace(out), "\n")
			last := lines[len(lines)-1]
			var m map[string]any
			isJSON := json.Unmarshal([]byte(last), &m) == nil
			if isJSON != tt.json {
				t.Errorf("JSON output = %v, want %v: %s", isJSON, tt.json, last)
			}
			if !strings.Contains(last, "GET") {
				t.Errorf("Expected attributes in output, got %s", last)
			}
		})
	}
}
