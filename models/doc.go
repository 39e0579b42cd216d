// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SetRoleRequest: role
  - SetInterestRequest: investor_id, signal (empty string clears)
  - SoftCircleRequest: investor_id, amount
  - RSVPRequest: member_id
  - AddQuestionRequest: text, author_id
  - UpdateStatusRequest: status

# Response Types

Types for JSON responses:

  - SessionResponse: role, current_user_id, sidebar_collapsed
  - RSVPResponse: event_id, going, rsvp_count
  - AddQuestionResponse: the created question
  - PortfolioResponse: entries with display-formatted amounts
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Deal: pipeline deal with interests, soft circles, and Q&A
  - InterestEntry: one investor's signal on a deal
  - SoftCircleEntry: one investor's non-binding pledge on a deal
  - Question: deal Q&A item with upvotes and pinned flag
  - Member: directory profile (immutable for the session)
  - Event: community event with RSVP state
  - PortfolioEntry: a member's investment record (immutable)

# Constants

Deal statuses:

	StatusNew            = "New"
	StatusScreening      = "Screening"
	StatusIntroRequested = "Intro Requested"
	StatusDiligence      = "Diligence"
	StatusPassed         = "Passed"
	StatusInvesting      = "Investing"

Interest signals:

	SignalInterested = "interested"
	SignalWatching   = "watching"
	SignalPass       = "pass"
	SignalNone       = ""

Roles:

	RoleAdmin    = "admin"
	RoleInvestor = "investor"
	RoleFounder  = "founder"

# Formatting

FormatCurrency and FormatDate render amounts and day-granularity dates for
display ("$1.2M", "14 Mar 2026").
*/
package models
