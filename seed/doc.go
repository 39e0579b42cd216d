// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed provides the initial collections the state store is built from.

# Datasets

The default dataset ships embedded in the binary:

	collections, err := seed.Default()

An alternate dataset can be loaded from a YAML file with the same shape:

	collections, err := seed.LoadFile("demo-seed.yaml")

# Shape

A seed file has four top-level lists:

	deals:      []models.Deal
	members:    []models.Member
	events:     []models.Event
	portfolio:  []models.PortfolioEntry

# Validation

Both loaders reject datasets that violate the invariants the store relies on:

  - unique deal, member, event, and question identifiers
  - at most one interest entry and one soft circle per investor per deal
  - rsvp_count equal to the number of rsvpd members on every event
  - enum fields restricted to their known values
*/
package seed
