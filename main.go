// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/danielhkuo/bitpeople-node/cliparse"
	"github.com/danielhkuo/bitpeople-node/handlers"
	"github.com/danielhkuo/bitpeople-node/middleware"
	"github.com/danielhkuo/bitpeople-node/router"
	"github.com/danielhkuo/bitpeople-node/telemetry"
)

func main() {
	var err error

	if err = cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(telemetry.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	// Connect to the node; the client is a pool shared by all requests
	rpc, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		slog.Error("node connection failed", "error", err, "url", cfg.NodeURL)
		os.Exit(1)
	}
	defer rpc.Close()

	// The node may come up after us; requests fail with 502 until it does
	if chainID, err := rpc.ChainID(ctx); err != nil {
		slog.Warn("node not reachable yet", "error", err, "url", cfg.NodeURL)
	} else {
		slog.Info("Connected to node", "url", cfg.NodeURL, "chain_id", chainID)
	}

	// Create router
	mux := router.NewRouter(handlers.NewRPCSource(rpc, cfg.ContractAddress), cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "contract", cfg.ContractAddress.Hex())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
