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

type EventHandler struct {
	store *store.Store
}

func NewEventHandler(st *store.Store) *EventHandler {
	return &EventHandler{store: st}
}

// List handles GET /events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Events())
}

// Get handles GET /events/:id
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	event, ok := h.store.Event(eventID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, event)
}

// ToggleRSVP handles POST /events/:id/rsvp
func (h *EventHandler) ToggleRSVP(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")

	var req models.RSVPRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MemberID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "member_id is required")
		return
	}

	if _, ok := h.store.Event(eventID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}

	h.store.ToggleRSVP(eventID, req.MemberID)

	event, _ := h.store.Event(eventID)
	going := false
	for _, id := range event.RSVPd {
		if id == req.MemberID {
			going = true
			break
		}
	}

	slog.Info("rsvp toggled",
		"event_id", eventID,
		"member_id", req.MemberID,
		"going", going,
		"rsvp_count", event.RSVPCount,
	)

	middleware.JSONResponse(w, http.StatusOK, models.RSVPResponse{
		EventID:   eventID,
		Going:     going,
		RSVPCount: event.RSVPCount,
	})
}
