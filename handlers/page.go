// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/bitpeople-node/account"
	"github.com/danielhkuo/bitpeople-node/middleware"
	"github.com/danielhkuo/bitpeople-node/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	Query string
	Error string
	Page  *view.Page
}

// PageHandler serves the read-only browser views of an account.
type PageHandler struct {
	accounts *AccountHandler
	renderer *view.Renderer
}

func NewPageHandler(accounts *AccountHandler, renderer *view.Renderer) *PageHandler {
	return &PageHandler{accounts: accounts, renderer: renderer}
}

// Index handles GET /?address=
// Without an address only the lookup form is shown.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		middleware.ErrorResponse(w, http.StatusNotFound, "page not found")
		return
	}

	data := pageData{Query: strings.TrimSpace(r.URL.Query().Get("address"))}
	if data.Query == "" {
		h.write(w, http.StatusOK, data)
		return
	}

	resp, status, msg := h.accounts.lookup(r.Context(), data.Query)
	if resp == nil {
		data.Error = msg
		h.write(w, status, data)
		return
	}

	addr, _ := account.ParseAddress(data.Query)
	page, err := h.renderer.Render(resp, view.Viewer{Address: addr})
	if err != nil {
		slog.Error("failed to render page", "error", err, "request_id", middleware.RequestID(r.Context()))
		data.Error = "Error rendering account."
		h.write(w, http.StatusInternalServerError, data)
		return
	}
	data.Page = page
	h.write(w, http.StatusOK, data)
}

func (h *PageHandler) write(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("failed to execute page template", "error", err)
	}
}

// Scan handles GET /scan?address=
// Returns the raw snapshot as indented JSON.
func (h *PageHandler) Scan(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("address"))
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	resp, status, msg := h.accounts.lookup(r.Context(), raw)
	if resp == nil {
		middleware.ErrorResponse(w, status, msg)
		return
	}

	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		slog.Error("failed to encode snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error encoding account data.")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(body, '\n'))
}
