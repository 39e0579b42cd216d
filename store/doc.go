// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds all mutable session state for the Horizon Bay app: the
deal pipeline, member directory, events, portfolio, the selected role, and
the sidebar flag.

# Construction

A Store is seeded exactly once from initial collections:

	collections, err := seed.Default()
	st := store.New(collections)

Using a Store that was not built with New is a programmer error and panics
immediately. There is no way to re-seed a live store.

# Mutation Model

The store exposes eight operations:

  - SetRole, ToggleSidebar: session facets
  - SetInterest, AddSoftCircle: per-(deal, investor) associations
  - ToggleRSVP: event attendance
  - AddQuestion, UpvoteQuestion: deal Q&A
  - UpdateDealStatus: pipeline status

Every operation is total. A mutation referencing an unknown deal, event, or
question identifier is a silent no-op; nothing returns an error. Mutations
are serialized by a mutex, so each one is atomic with respect to reads.

# Copy-on-Write

Mutations never modify a published collection in place. The affected
collection (and the affected element's sub-collection) is copied, modified,
and swapped in as a whole. A slice obtained from a read accessor is therefore
a stable snapshot: callers may compare snapshots by identity to detect change
and may hold them indefinitely without locking.

# Derived State

CurrentUserID is computed from the selected role via a fixed role→member
mapping (admin→m1, investor→m2, founder→founder-1). It is never stored, so it
cannot diverge from the role.
*/
package store
