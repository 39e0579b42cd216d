// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Horizon Bay API server.

Horizon Bay is an angel-investing community platform: deal flow, member
directory, events, and portfolio tracking. This server holds one session's
application state in memory and exposes it to presentation clients over a
JSON API. Nothing persists beyond the process: restarting the server resets
the session to the seed dataset.

# Starting the Server

No configuration is required:

	go run .

Optional settings via flags or environment variables:

	go run . -p 4180 -seed demo-seed.yaml

# Configuration

  - PORT (-p): Server port (default: 4180)
  - SEED_PATH (-seed): Alternate seed YAML file (default: embedded dataset)
  - ALLOWED_ORIGIN (-origin): CORS origin (default: reflect request origin)

A .env file in the working directory is loaded before parsing.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the in-memory application state store (the core of the system)
  - seed: embedded YAML seed collections and validation
  - handlers: HTTP request handlers (session, deals, events, directory)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - cliparse: Configuration parsing

All mutable state lives in one store.Store seeded at startup; handlers reach
it only through its typed operations. See package documentation for each
component.
*/
package main
