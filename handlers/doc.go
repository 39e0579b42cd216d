// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Horizon Bay API.

# Handler Types

Each handler is a struct with the state store injected:

  - SessionHandler: role selection, sidebar flag, derived current user
  - DealHandler: deal reads plus interest, soft circle, Q&A, and status mutations
  - EventHandler: event reads and RSVP toggling
  - DirectoryHandler: member directory and portfolio reads

Handlers are created via constructor functions that accept *store.Store:

	dealHandler := handlers.NewDealHandler(st)

# Session

	GET  /session                → Get
	PUT  /session/role           → SetRole (admin, investor, or founder)
	POST /session/sidebar/toggle → ToggleSidebar

Selecting a role switches the derived current user id; there is no
authentication, the role is a locally selected facet.

# Deal Flow

	GET  /deals                                → List
	GET  /deals/{id}                           → Get
	PUT  /deals/{id}/status                    → UpdateStatus
	PUT  /deals/{id}/interest                  → SetInterest
	PUT  /deals/{id}/soft-circle               → SetSoftCircle
	POST /deals/{id}/questions                 → AddQuestion
	POST /deals/{id}/questions/{questionID}/upvote → UpvoteQuestion

SetInterest with an empty signal clears the investor's entry. SetSoftCircle
overwrites any earlier pledge by the same investor. Mutation responses carry
the updated deal so clients can swap their snapshot in one round trip.

# Events and Directory

	GET  /events            → List
	GET  /events/{id}       → Get
	POST /events/{id}/rsvp  → ToggleRSVP (idempotent pair)
	GET  /members           → ListMembers
	GET  /members/{id}      → GetMember
	GET  /portfolio         → GetPortfolio (?member_id= filters)

# Error Semantics

The store itself treats unknown identifiers as silent no-ops; handlers check
existence against the read surface first so the HTTP layer can return 404
without the store ever raising an error.
*/
package handlers
