// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/horizon-bay/handlers"
	"github.com/danielhkuo/horizon-bay/middleware"
	"github.com/danielhkuo/horizon-bay/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(st)
	dealHandler := handlers.NewDealHandler(st)
	eventHandler := handlers.NewEventHandler(st)
	directoryHandler := handlers.NewDirectoryHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session facets
	mux.HandleFunc("GET /session", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("PUT /session/role", middleware.WithLogging(sessionHandler.SetRole))
	mux.HandleFunc("POST /session/sidebar/toggle", middleware.WithLogging(sessionHandler.ToggleSidebar))

	// Deal flow
	mux.HandleFunc("GET /deals", middleware.WithLogging(dealHandler.List))
	mux.HandleFunc("GET /deals/{id}", middleware.WithLogging(dealHandler.Get))
	mux.HandleFunc("PUT /deals/{id}/status", middleware.WithLogging(dealHandler.UpdateStatus))
	mux.HandleFunc("PUT /deals/{id}/interest", middleware.WithLogging(dealHandler.SetInterest))
	mux.HandleFunc("PUT /deals/{id}/soft-circle", middleware.WithLogging(dealHandler.SetSoftCircle))
	mux.HandleFunc("POST /deals/{id}/questions", middleware.WithLogging(dealHandler.AddQuestion))
	mux.HandleFunc("POST /deals/{id}/questions/{questionID}/upvote", middleware.WithLogging(dealHandler.UpvoteQuestion))

	// Events
	mux.HandleFunc("GET /events", middleware.WithLogging(eventHandler.List))
	mux.HandleFunc("GET /events/{id}", middleware.WithLogging(eventHandler.Get))
	mux.HandleFunc("POST /events/{id}/rsvp", middleware.WithLogging(eventHandler.ToggleRSVP))

	// Directory and portfolio
	mux.HandleFunc("GET /members", middleware.WithLogging(directoryHandler.ListMembers))
	mux.HandleFunc("GET /members/{id}", middleware.WithLogging(directoryHandler.GetMember))
	mux.HandleFunc("GET /portfolio", middleware.WithLogging(directoryHandler.GetPortfolio))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("horizon-bay API v1"))
	})

	return mux
}
