// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

NewRouter builds a *http.ServeMux with Go 1.22+ method routing:

	mux := router.NewRouter(st)

All routes except /health and / are wrapped with middleware.WithLogging.
The handlers share one *store.Store; every mutation route funnels into one
of the store's eight operations.

# Route Groups

  - /session: role and sidebar facets
  - /deals: pipeline reads, status, interest, soft circle, Q&A
  - /events: reads and RSVP
  - /members, /portfolio: directory reads

CORS is applied in main around the whole mux, not per route.
*/
package router
