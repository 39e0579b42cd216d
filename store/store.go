// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/horizon-bay/models"
	"github.com/danielhkuo/horizon-bay/seed"
)

// roleUserMap fixes which member each role acts as. Process-wide
// configuration, not mutable state.
var roleUserMap = map[string]string{
	models.RoleAdmin:    "m1",
	models.RoleInvestor: "m2",
	models.RoleFounder:  "founder-1",
}

// Store holds all mutable session state: the domain collections, the selected
// role, and the sidebar flag. All access goes through its methods; collections
// are replaced wholesale on mutation (copy-on-write), so a slice returned by
// a read accessor is an immutable snapshot and never changes underneath the
// caller.
//
// A Store must be built with New. The zero value panics on first use.
type Store struct {
	mu sync.Mutex

	initialized      bool
	role             string
	sidebarCollapsed bool

	deals     []models.Deal
	members   []models.Member
	events    []models.Event
	portfolio []models.PortfolioEntry
}

// New seeds a Store from the given collections. The default role is investor.
// Input slices are copied so the caller cannot alias internal state.
func New(c seed.Collections) *Store {
	s := &Store{
		initialized: true,
		role:        models.RoleInvestor,
		deals:       append([]models.Deal(nil), c.Deals...),
		members:     append([]models.Member(nil), c.Members...),
		events:      append([]models.Event(nil), c.Events...),
		portfolio:   append([]models.PortfolioEntry(nil), c.Portfolio...),
	}
	return s
}

func (s *Store) mustInit() {
	if !s.initialized {
		panic("store: used before initialization; construct with store.New")
	}
}

// Read surface

// Role returns the currently selected role.
func (s *Store) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.role
}

// CurrentUserID derives the acting member identifier from the selected role.
// Computed from the fixed role mapping, never stored.
func (s *Store) CurrentUserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return roleUserMap[s.role]
}

// SidebarCollapsed returns the sidebar UI flag.
func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.sidebarCollapsed
}

// Deals returns the current deal snapshot.
func (s *Store) Deals() []models.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.deals
}

// Deal returns the deal with the given id, if present.
func (s *Store) Deal(dealID string) (models.Deal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	for _, d := range s.deals {
		if d.ID == dealID {
			return d, true
		}
	}
	return models.Deal{}, false
}

// Members returns the member directory. Immutable for the session.
func (s *Store) Members() []models.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.members
}

// Member returns the member with the given id, if present.
func (s *Store) Member(memberID string) (models.Member, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	for _, m := range s.members {
		if m.ID == memberID {
			return m, true
		}
	}
	return models.Member{}, false
}

// Events returns the current event snapshot.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.events
}

// Event returns the event with the given id, if present.
func (s *Store) Event(eventID string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	for _, e := range s.events {
		if e.ID == eventID {
			return e, true
		}
	}
	return models.Event{}, false
}

// Portfolio returns the portfolio entries. Immutable for the session.
func (s *Store) Portfolio() []models.PortfolioEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	return s.portfolio
}

// Write surface. Every operation is total: an unknown identifier is a silent
// no-op, and a no-op leaves the previous snapshot identity untouched.

// SetRole replaces the selected role. The derived current user follows.
func (s *Store) SetRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	s.role = role
}

// ToggleSidebar flips the sidebar flag. No domain effect.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()
	s.sidebarCollapsed = !s.sidebarCollapsed
}

// SetInterest records, overwrites, or clears an investor's signal on a deal.
// SignalNone clears: the entry is removed entirely, not stored as empty.
func (s *Store) SetInterest(dealID, investorID, signal string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	i, ok := indexDeal(s.deals, dealID)
	if !ok {
		return
	}
	deal := s.deals[i]

	existing := -1
	for j, entry := range deal.Interests {
		if entry.InvestorID == investorID {
			existing = j
			break
		}
	}

	interests := append([]models.InterestEntry(nil), deal.Interests...)
	switch {
	case existing >= 0 && signal == models.SignalNone:
		interests = append(interests[:existing], interests[existing+1:]...)
	case existing >= 0:
		interests[existing] = models.InterestEntry{InvestorID: investorID, Signal: signal}
	case signal != models.SignalNone:
		interests = append(interests, models.InterestEntry{InvestorID: investorID, Signal: signal})
	default:
		// no entry and no signal: nothing to do
		return
	}

	deal.Interests = interests
	s.replaceDeal(i, deal)
}

// AddSoftCircle records an investor's pledge on a deal. A later pledge for
// the same investor overwrites the amount, it never accumulates.
func (s *Store) AddSoftCircle(dealID, investorID string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	i, ok := indexDeal(s.deals, dealID)
	if !ok {
		return
	}
	deal := s.deals[i]

	circles := append([]models.SoftCircleEntry(nil), deal.SoftCircles...)
	updated := false
	for j, entry := range circles {
		if entry.InvestorID == investorID {
			circles[j].Amount = amount
			updated = true
			break
		}
	}
	if !updated {
		circles = append(circles, models.SoftCircleEntry{InvestorID: investorID, Amount: amount})
	}

	deal.SoftCircles = circles
	s.replaceDeal(i, deal)
}

// ToggleRSVP adds or removes a member from an event's RSVP list. The count
// moves in lockstep with the list on every transition.
func (s *Store) ToggleRSVP(eventID, memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	idx := -1
	for i, e := range s.events {
		if e.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	event := s.events[idx]

	going := -1
	for j, id := range event.RSVPd {
		if id == memberID {
			going = j
			break
		}
	}

	rsvpd := append([]string(nil), event.RSVPd...)
	if going >= 0 {
		rsvpd = append(rsvpd[:going], rsvpd[going+1:]...)
		event.RSVPCount--
	} else {
		rsvpd = append(rsvpd, memberID)
		event.RSVPCount++
	}
	event.RSVPd = rsvpd

	next := append([]models.Event(nil), s.events...)
	next[idx] = event
	s.events = next
}

// AddQuestion appends a question to a deal's Q&A list with a freshly
// generated identifier, zero upvotes, unpinned, dated today.
func (s *Store) AddQuestion(dealID, text, authorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	i, ok := indexDeal(s.deals, dealID)
	if !ok {
		return
	}
	deal := s.deals[i]

	question := models.Question{
		ID:        newQuestionID(),
		DealID:    dealID,
		Text:      text,
		AuthorID:  authorID,
		Upvotes:   0,
		Pinned:    false,
		CreatedAt: time.Now().Format(models.DateFormat),
	}

	questions := append([]models.Question(nil), deal.Questions...)
	deal.Questions = append(questions, question)
	s.replaceDeal(i, deal)
}

// UpvoteQuestion increments a question's upvote count by one. Repeated
// upvotes by the same caller are not deduplicated here.
func (s *Store) UpvoteQuestion(dealID, questionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	i, ok := indexDeal(s.deals, dealID)
	if !ok {
		return
	}
	deal := s.deals[i]

	target := -1
	for j, q := range deal.Questions {
		if q.ID == questionID {
			target = j
			break
		}
	}
	if target < 0 {
		return
	}

	questions := append([]models.Question(nil), deal.Questions...)
	questions[target].Upvotes++
	deal.Questions = questions
	s.replaceDeal(i, deal)
}

// UpdateDealStatus replaces a deal's pipeline status. Any status may move to
// any other; workflow ordering is a caller concern.
func (s *Store) UpdateDealStatus(dealID, newStatus string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustInit()

	i, ok := indexDeal(s.deals, dealID)
	if !ok {
		return
	}
	deal := s.deals[i]
	deal.Status = newStatus
	s.replaceDeal(i, deal)
}

// replaceDeal publishes a new deal snapshot with element i swapped out.
// Callers hold s.mu.
func (s *Store) replaceDeal(i int, deal models.Deal) {
	next := append([]models.Deal(nil), s.deals...)
	next[i] = deal
	s.deals = next
}

func indexDeal(deals []models.Deal, dealID string) (int, bool) {
	for i, d := range deals {
		if d.ID == dealID {
			return i, true
		}
	}
	return 0, false
}

// newQuestionID returns a session-unique question identifier. The original
// app derived these from a millisecond clock, which collides under rapid
// successive calls; a UUID cannot.
func newQuestionID() string {
	return "q-" + uuid.NewString()
}
