// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bitpeople-node/cliparse"
	"github.com/danielhkuo/bitpeople-node/handlers"
	"github.com/danielhkuo/bitpeople-node/middleware"
	"github.com/danielhkuo/bitpeople-node/view"
)

func NewRouter(source handlers.ContractSource, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(source, cfg)
	pageHandler := handlers.NewPageHandler(accountHandler, view.NewRenderer())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account snapshot
	mux.HandleFunc("GET /node/account/{address}", middleware.WithLogging(accountHandler.GetAccount))

	// Browser views
	mux.HandleFunc("GET /scan", middleware.WithLogging(pageHandler.Scan))
	mux.HandleFunc("GET /", middleware.WithLogging(pageHandler.Index))

	return mux
}
