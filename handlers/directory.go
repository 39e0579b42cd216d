// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/horizon-bay/middleware"
	"github.com/danielhkuo/horizon-bay/models"
	"github.com/danielhkuo/horizon-bay/store"
)

type DirectoryHandler struct {
	store *store.Store
}

func NewDirectoryHandler(st *store.Store) *DirectoryHandler {
	return &DirectoryHandler{store: st}
}

// ListMembers handles GET /members
func (h *DirectoryHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Members())
}

// GetMember handles GET /members/:id
func (h *DirectoryHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := r.PathValue("id")

	member, ok := h.store.Member(memberID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, member)
}

// GetPortfolio handles GET /portfolio
// Optional ?member_id= filters to one member's entries.
func (h *DirectoryHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	memberID := r.URL.Query().Get("member_id")

	entries := []models.PortfolioView{}
	for _, entry := range h.store.Portfolio() {
		if memberID != "" && entry.MemberID != memberID {
			continue
		}
		entries = append(entries, models.PortfolioView{
			PortfolioEntry: entry,
			AmountDisplay:  models.FormatCurrency(entry.Amount),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.PortfolioResponse{Entries: entries})
}
