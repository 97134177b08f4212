// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/bitpeople-node/account"
	"github.com/danielhkuo/bitpeople-node/bitpeople"
	"github.com/danielhkuo/bitpeople-node/cliparse"
	"github.com/danielhkuo/bitpeople-node/middleware"
	"github.com/danielhkuo/bitpeople-node/models"
)

const (
	msgInvalidAddress = "invalid address"
	msgUpstream       = "Error getting account data."
)

// ContractSource returns the contract reader for one request.
type ContractSource func() (account.Contract, error)

// NewRPCSource binds a fresh reader to the contract at address on every
// call. The backend, usually an *ethclient.Client, is shared.
func NewRPCSource(backend bind.ContractCaller, address common.Address) ContractSource {
	return func() (account.Contract, error) {
		caller, err := bitpeople.NewBitpeopleCaller(address, backend)
		if err != nil {
			return nil, err
		}
		return bitpeople.NewReader(caller), nil
	}
}

type AccountHandler struct {
	source ContractSource
	cfg    cliparse.Config
}

func NewAccountHandler(source ContractSource, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{source: source, cfg: cfg}
}

// lookup loads the snapshot for a raw address and maps failures to an
// HTTP status and client-facing message.
func (h *AccountHandler) lookup(ctx context.Context, raw string) (*models.AccountResponse, int, string) {
	if _, err := account.ParseAddress(raw); err != nil {
		return nil, http.StatusBadRequest, msgInvalidAddress
	}

	contract, err := h.source()
	if err != nil {
		slog.Error("failed to bind contract", "error", err, "request_id", middleware.RequestID(ctx))
		return nil, http.StatusBadGateway, msgUpstream
	}

	acc, err := account.New(contract, raw)
	if err != nil {
		return nil, http.StatusBadRequest, msgInvalidAddress
	}

	if h.cfg.NodeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.NodeTimeout)
		defer cancel()
	}

	resp, err := acc.Parameters(ctx)
	if err != nil {
		slog.Error("failed to get account data",
			"error", err,
			"address", acc.Address().Hex(),
			"request_id", middleware.RequestID(ctx),
		)
		return nil, http.StatusBadGateway, msgUpstream
	}
	return resp, http.StatusOK, ""
}

// GetAccount handles GET /node/account/{address}
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	resp, status, msg := h.lookup(r.Context(), r.PathValue("address"))
	if resp == nil {
		middleware.ErrorResponse(w, status, msg)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
