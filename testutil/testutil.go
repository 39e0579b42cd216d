// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/horizon-bay/models"
	"github.com/danielhkuo/horizon-bay/seed"
	"github.com/danielhkuo/horizon-bay/store"
)

// FixtureCollections returns a small deterministic dataset: deal d1 with no
// activity, deal d2 with one existing interest/pledge/question, event e1
// with no RSVPs, event e2 with one, and the members the role mapping needs.
func FixtureCollections() seed.Collections {
	return seed.Collections{
		Deals: []models.Deal{
			{
				ID:           "d1",
				Name:         "Glasswing Energy",
				Sector:       "Climate",
				Stage:        models.StageSeed,
				Ask:          "$2.0M",
				OneLiner:     "Modular heat batteries for light industry.",
				Description:  "Glasswing retrofits factory heat loops with thermal storage.",
				Status:       models.StatusNew,
				HeroImage:    "/images/deals/d1.jpg",
				FounderName:  "Ana Petrov",
				FounderEmail: "ana@glasswing.example",
				CreatedAt:    "2026-07-10",
				Tags:         []string{"climate", "hardware"},
				Interests:    []models.InterestEntry{},
				SoftCircles:  []models.SoftCircleEntry{},
				Questions:    []models.Question{},
			},
			{
				ID:           "d2",
				Name:         "Quill Legal",
				Sector:       "SaaS",
				Stage:        models.StagePreSeed,
				Ask:          "$500K",
				OneLiner:     "Drafting copilot for boutique law firms.",
				Description:  "Quill turns precedent libraries into first drafts.",
				Status:       models.StatusScreening,
				HeroImage:    "/images/deals/d2.jpg",
				FounderName:  "Leo Marsh",
				FounderEmail: "leo@quill.example",
				CreatedAt:    "2026-06-01",
				Tags:         []string{"saas", "legal"},
				Interests: []models.InterestEntry{
					{InvestorID: "m5", Signal: models.SignalWatching},
				},
				SoftCircles: []models.SoftCircleEntry{
					{InvestorID: "m5", Amount: 10000},
				},
				Questions: []models.Question{
					{
						ID:        "q-fixture-1",
						DealID:    "d2",
						Text:      "How defensible is the precedent corpus?",
						AuthorID:  "m5",
						Upvotes:   3,
						Pinned:    false,
						CreatedAt: "2026-06-05",
					},
				},
			},
		},
		Members: []models.Member{
			{ID: "m1", Name: "Harriet Lau", Role: models.RoleAdmin, Geo: "Sydney", ThesisTags: []string{"b2b-saas"}, ChequeMin: 25000, ChequeMax: 100000, AvailableThisMonth: true, EngagementScore: 92},
			{ID: "m2", Name: "Dev Chandra", Role: models.RoleInvestor, Geo: "Melbourne", ThesisTags: []string{"deeptech"}, ChequeMin: 10000, ChequeMax: 50000, AvailableThisMonth: true, EngagementScore: 78},
			{ID: "m5", Name: "Tom Whitfield", Role: models.RoleInvestor, Geo: "Sydney", ThesisTags: []string{"healthtech"}, ChequeMin: 20000, ChequeMax: 80000, AvailableThisMonth: true, EngagementScore: 71},
			{ID: "founder-1", Name: "Ana Petrov", Role: models.RoleFounder, Geo: "Perth", ThesisTags: []string{}, AvailableThisMonth: true, EngagementScore: 50},
		},
		Events: []models.Event{
			{
				ID:        "e1",
				Title:     "Pitch Night",
				Date:      "2026-09-17",
				Location:  "Surry Hills",
				Sector:    "Climate",
				Capacity:  10,
				RSVPCount: 0,
				Founders:  []string{"founder-1"},
				HeroImage: "/images/events/e1.jpg",
				RSVPd:     []string{},
			},
			{
				ID:        "e2",
				Title:     "Founder AMA",
				Date:      "2026-10-01",
				Location:  "Online",
				Sector:    "SaaS",
				Capacity:  100,
				RSVPCount: 1,
				Founders:  []string{},
				HeroImage: "/images/events/e2.jpg",
				RSVPd:     []string{"m2"},
			},
		},
		Portfolio: []models.PortfolioEntry{
			{MemberID: "m2", DealID: "d-old-1", Amount: 25000, Date: "2024-11-03", Status: models.PortfolioActive},
			{MemberID: "m5", DealID: "d-old-2", Amount: 40000, Date: "2025-02-12", Status: models.PortfolioExited},
		},
	}
}

// NewTestStore builds a store from the fixture dataset
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	c := FixtureCollections()
	if err := c.Validate(); err != nil {
		t.Fatalf("Fixture dataset is invalid: %v", err)
	}
	return store.New(c)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
