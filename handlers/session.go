// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/horizon-bay/middleware"
	"github.com/danielhkuo/horizon-bay/models"
	"github.com/danielhkuo/horizon-bay/store"
)

type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(st *store.Store) *SessionHandler {
	return &SessionHandler{store: st}
}

func (h *SessionHandler) session() models.SessionResponse {
	return models.SessionResponse{
		Role:             h.store.Role(),
		CurrentUserID:    h.store.CurrentUserID(),
		SidebarCollapsed: h.store.SidebarCollapsed(),
	}
}

// Get handles GET /session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.session())
}

// SetRole handles PUT /session/role
func (h *SessionHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req models.SetRoleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidRole(req.Role) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be admin, investor, or founder")
		return
	}

	h.store.SetRole(req.Role)

	slog.Info("role selected", "role", req.Role, "current_user", h.store.CurrentUserID())

	middleware.JSONResponse(w, http.StatusOK, h.session())
}

// ToggleSidebar handles POST /session/sidebar/toggle
func (h *SessionHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleSidebar()
	middleware.JSONResponse(w, http.StatusOK, h.session())
}
