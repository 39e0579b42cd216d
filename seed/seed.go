// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/horizon-bay/models"
)

//go:embed seed.yaml
var embedded []byte

// Collections are the initial datasets the store is seeded from.
type Collections struct {
	Deals     []models.Deal           `yaml:"deals"`
	Members   []models.Member         `yaml:"members"`
	Events    []models.Event          `yaml:"events"`
	Portfolio []models.PortfolioEntry `yaml:"portfolio"`
}

// Default parses the embedded seed dataset.
func Default() (Collections, error) {
	return parse(embedded)
}

// LoadFile parses a seed dataset from a YAML file, replacing the embedded one.
func LoadFile(path string) (Collections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Collections{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Collections, error) {
	var c Collections
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Collections{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Collections{}, fmt.Errorf("invalid seed data: %w", err)
	}
	return c, nil
}

// Validate checks the structural invariants the store assumes hold from the
// first mutation onward.
func (c Collections) Validate() error {
	dealIDs := make(map[string]bool)
	for _, d := range c.Deals {
		if d.ID == "" {
			return fmt.Errorf("deal %q has no id", d.Name)
		}
		if dealIDs[d.ID] {
			return fmt.Errorf("duplicate deal id %q", d.ID)
		}
		dealIDs[d.ID] = true

		if !models.ValidStatus(d.Status) {
			return fmt.Errorf("deal %q has unknown status %q", d.ID, d.Status)
		}

		investors := make(map[string]bool)
		for _, entry := range d.Interests {
			if investors[entry.InvestorID] {
				return fmt.Errorf("deal %q has duplicate interest entry for %q", d.ID, entry.InvestorID)
			}
			if entry.Signal == models.SignalNone || !models.ValidSignal(entry.Signal) {
				return fmt.Errorf("deal %q has invalid signal %q for %q", d.ID, entry.Signal, entry.InvestorID)
			}
			investors[entry.InvestorID] = true
		}

		pledgers := make(map[string]bool)
		for _, entry := range d.SoftCircles {
			if pledgers[entry.InvestorID] {
				return fmt.Errorf("deal %q has duplicate soft circle for %q", d.ID, entry.InvestorID)
			}
			pledgers[entry.InvestorID] = true
		}

		questionIDs := make(map[string]bool)
		for _, q := range d.Questions {
			if q.ID == "" || questionIDs[q.ID] {
				return fmt.Errorf("deal %q has missing or duplicate question id %q", d.ID, q.ID)
			}
			questionIDs[q.ID] = true
			if q.Upvotes < 0 {
				return fmt.Errorf("question %q has negative upvotes", q.ID)
			}
		}
	}

	memberIDs := make(map[string]bool)
	for _, m := range c.Members {
		if m.ID == "" {
			return fmt.Errorf("member %q has no id", m.Name)
		}
		if memberIDs[m.ID] {
			return fmt.Errorf("duplicate member id %q", m.ID)
		}
		memberIDs[m.ID] = true
		if !models.ValidRole(m.Role) {
			return fmt.Errorf("member %q has unknown role %q", m.ID, m.Role)
		}
	}

	eventIDs := make(map[string]bool)
	for _, e := range c.Events {
		if e.ID == "" {
			return fmt.Errorf("event %q has no id", e.Title)
		}
		if eventIDs[e.ID] {
			return fmt.Errorf("duplicate event id %q", e.ID)
		}
		eventIDs[e.ID] = true
		if e.RSVPCount != len(e.RSVPd) {
			return fmt.Errorf("event %q rsvp_count %d does not match %d rsvpd members", e.ID, e.RSVPCount, len(e.RSVPd))
		}
	}

	for _, p := range c.Portfolio {
		switch p.Status {
		case models.PortfolioActive, models.PortfolioExited, models.PortfolioWrittenOff:
		default:
			return fmt.Errorf("portfolio entry %s/%s has unknown status %q", p.MemberID, p.DealID, p.Status)
		}
	}

	return nil
}
