package store_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/danielhkuo/horizon-bay/models"
	"github.com/danielhkuo/horizon-bay/store"
	"github.com/danielhkuo/horizon-bay/testutil"
)

// sliceAddr fingerprints a slice's backing array so tests can assert whether
// a snapshot was replaced or left alone.
func sliceAddr[T any](s []T) string {
	return fmt.Sprintf("%p", s)
}

func findDeal(t *testing.T, st *store.Store, dealID string) models.Deal {
	t.Helper()
	deal, ok := st.Deal(dealID)
	if !ok {
		t.Fatalf("deal %s not found", dealID)
	}
	return deal
}

func TestSetInterestLifecycle(t *testing.T) {
	st := testutil.NewTestStore(t)

	// d1 starts with no interests
	if got := findDeal(t, st, "d1").Interests; len(got) != 0 {
		t.Fatalf("expected no seed interests on d1, got %v", got)
	}

	st.SetInterest("d1", "m2", models.SignalInterested)
	want := []models.InterestEntry{{InvestorID: "m2", Signal: models.SignalInterested}}
	if got := findDeal(t, st, "d1").Interests; !reflect.DeepEqual(got, want) {
		t.Errorf("after first signal: got %v, want %v", got, want)
	}

	// Second signal for the same investor overwrites, never appends
	st.SetInterest("d1", "m2", models.SignalPass)
	want = []models.InterestEntry{{InvestorID: "m2", Signal: models.SignalPass}}
	if got := findDeal(t, st, "d1").Interests; !reflect.DeepEqual(got, want) {
		t.Errorf("after overwrite: got %v, want %v", got, want)
	}

	// Clearing removes the entry entirely
	st.SetInterest("d1", "m2", models.SignalNone)
	if got := findDeal(t, st, "d1").Interests; len(got) != 0 {
		t.Errorf("after clear: expected no entries, got %v", got)
	}
}

func TestSetInterestPreservesOtherEntries(t *testing.T) {
	st := testutil.NewTestStore(t)

	// d2 seeds with m5 watching; appending m2 keeps m5 first
	st.SetInterest("d2", "m2", models.SignalInterested)
	got := findDeal(t, st, "d2").Interests
	want := []models.InterestEntry{
		{InvestorID: "m5", Signal: models.SignalWatching},
		{InvestorID: "m2", Signal: models.SignalInterested},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after append: got %v, want %v", got, want)
	}

	// Overwriting m5 updates in place, order unchanged
	st.SetInterest("d2", "m5", models.SignalPass)
	got = findDeal(t, st, "d2").Interests
	want = []models.InterestEntry{
		{InvestorID: "m5", Signal: models.SignalPass},
		{InvestorID: "m2", Signal: models.SignalInterested},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after overwrite: got %v, want %v", got, want)
	}

	// Clearing m5 leaves only m2
	st.SetInterest("d2", "m5", models.SignalNone)
	got = findDeal(t, st, "d2").Interests
	want = []models.InterestEntry{{InvestorID: "m2", Signal: models.SignalInterested}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("after clear: got %v, want %v", got, want)
	}
}

func TestSetInterestNoops(t *testing.T) {
	tests := []struct {
		name       string
		dealID     string
		investorID string
		signal     string
	}{
		{"unknown deal", "d-missing", "m2", models.SignalInterested},
		{"clear with no entry", "d1", "m2", models.SignalNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewTestStore(t)
			before := st.Deals()

			st.SetInterest(tt.dealID, tt.investorID, tt.signal)

			after := st.Deals()
			if !reflect.DeepEqual(before, after) {
				t.Errorf("state changed: before %v, after %v", before, after)
			}
			// A no-op must not even republish the snapshot
			if sliceAddr(before) != sliceAddr(after) {
				t.Errorf("snapshot was replaced on a no-op")
			}
		})
	}
}

func TestAddSoftCircleOverwrites(t *testing.T) {
	st := testutil.NewTestStore(t)

	st.AddSoftCircle("d1", "m2", 25000)
	st.AddSoftCircle("d1", "m5", 10000)
	st.AddSoftCircle("d1", "m2", 40000)

	got := findDeal(t, st, "d1").SoftCircles
	want := []models.SoftCircleEntry{
		{InvestorID: "m2", Amount: 40000}, // overwritten, not accumulated
		{InvestorID: "m5", Amount: 10000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddSoftCircleUnknownDeal(t *testing.T) {
	st := testutil.NewTestStore(t)
	before := st.Deals()

	st.AddSoftCircle("d-missing", "m2", 25000)

	if after := st.Deals(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed on unknown deal")
	}
}

func TestToggleRSVPInvolution(t *testing.T) {
	st := testutil.NewTestStore(t)

	original, _ := st.Event("e1")

	st.ToggleRSVP("e1", "m5")
	event, _ := st.Event("e1")
	if !reflect.DeepEqual(event.RSVPd, []string{"m5"}) {
		t.Fatalf("after first toggle: rsvpd = %v, want [m5]", event.RSVPd)
	}
	if event.RSVPCount != 1 {
		t.Fatalf("after first toggle: rsvp_count = %d, want 1", event.RSVPCount)
	}

	st.ToggleRSVP("e1", "m5")
	event, _ = st.Event("e1")
	if !reflect.DeepEqual(event, original) {
		t.Errorf("double toggle did not restore the event: got %v, want %v", event, original)
	}
}

func TestRSVPCountMatchesList(t *testing.T) {
	st := testutil.NewTestStore(t)

	sequence := []struct{ eventID, memberID string }{
		{"e1", "m1"},
		{"e1", "m2"},
		{"e2", "m2"}, // m2 seeded as going to e2; this removes
		{"e1", "m1"}, // removes
		{"e2", "m5"},
		{"e1", "m5"},
		{"e-missing", "m1"}, // no-op
	}

	for _, step := range sequence {
		st.ToggleRSVP(step.eventID, step.memberID)
		for _, event := range st.Events() {
			if event.RSVPCount != len(event.RSVPd) {
				t.Fatalf("event %s: rsvp_count %d != %d rsvpd after toggling (%s, %s)",
					event.ID, event.RSVPCount, len(event.RSVPd), step.eventID, step.memberID)
			}
		}
	}

	e1, _ := st.Event("e1")
	if !reflect.DeepEqual(e1.RSVPd, []string{"m2", "m5"}) {
		t.Errorf("e1 rsvpd = %v, want [m2 m5]", e1.RSVPd)
	}
	e2, _ := st.Event("e2")
	if !reflect.DeepEqual(e2.RSVPd, []string{"m5"}) {
		t.Errorf("e2 rsvpd = %v, want [m5]", e2.RSVPd)
	}
}

func TestAddQuestion(t *testing.T) {
	st := testutil.NewTestStore(t)

	before := len(findDeal(t, st, "d2").Questions)
	st.AddQuestion("d2", "What is the sales cycle?", "m2")

	questions := findDeal(t, st, "d2").Questions
	if len(questions) != before+1 {
		t.Fatalf("question count = %d, want %d", len(questions), before+1)
	}

	q := questions[len(questions)-1]
	if q.ID == "" {
		t.Error("question has no id")
	}
	if q.DealID != "d2" {
		t.Errorf("deal_id = %q, want d2", q.DealID)
	}
	if q.Text != "What is the sales cycle?" {
		t.Errorf("text = %q", q.Text)
	}
	if q.AuthorID != "m2" {
		t.Errorf("author_id = %q, want m2", q.AuthorID)
	}
	if q.Upvotes != 0 {
		t.Errorf("upvotes = %d, want 0", q.Upvotes)
	}
	if q.Pinned {
		t.Error("new question is pinned")
	}
	if q.CreatedAt != time.Now().Format(models.DateFormat) {
		t.Errorf("created_at = %q, want today", q.CreatedAt)
	}
}

func TestAddQuestionIDsUnique(t *testing.T) {
	st := testutil.NewTestStore(t)

	// Rapid successive additions must never collide
	for i := 0; i < 100; i++ {
		st.AddQuestion("d1", "q", models.AuthorAnon)
	}

	seen := make(map[string]bool)
	for _, q := range findDeal(t, st, "d1").Questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
	if len(seen) != 100 {
		t.Errorf("expected 100 questions, got %d", len(seen))
	}
}

func TestUpvoteQuestion(t *testing.T) {
	st := testutil.NewTestStore(t)

	st.AddQuestion("d2", "Second question", "m2")
	other := findDeal(t, st, "d2").Questions[1]

	st.UpvoteQuestion("d2", "q-fixture-1")

	questions := findDeal(t, st, "d2").Questions
	if questions[0].Upvotes != 4 {
		t.Errorf("upvotes = %d, want 4", questions[0].Upvotes)
	}
	if !reflect.DeepEqual(questions[1], other) {
		t.Errorf("unrelated question changed: got %v, want %v", questions[1], other)
	}
}

func TestUpvoteQuestionNoops(t *testing.T) {
	tests := []struct {
		name       string
		dealID     string
		questionID string
	}{
		{"unknown deal", "d-missing", "q-fixture-1"},
		{"unknown question", "d2", "q-missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.NewTestStore(t)
			before := st.Deals()

			st.UpvoteQuestion(tt.dealID, tt.questionID)

			if after := st.Deals(); !reflect.DeepEqual(before, after) {
				t.Errorf("state changed")
			}
		})
	}
}

func TestUpdateDealStatus(t *testing.T) {
	st := testutil.NewTestStore(t)

	// No transition graph: New may jump straight to Investing
	st.UpdateDealStatus("d1", models.StatusInvesting)
	if got := findDeal(t, st, "d1").Status; got != models.StatusInvesting {
		t.Errorf("status = %q, want %q", got, models.StatusInvesting)
	}

	// And straight back
	st.UpdateDealStatus("d1", models.StatusNew)
	if got := findDeal(t, st, "d1").Status; got != models.StatusNew {
		t.Errorf("status = %q, want %q", got, models.StatusNew)
	}

	before := st.Deals()
	st.UpdateDealStatus("d-missing", models.StatusPassed)
	if after := st.Deals(); !reflect.DeepEqual(before, after) {
		t.Errorf("unknown deal changed state")
	}
}

func TestRoleMapping(t *testing.T) {
	st := testutil.NewTestStore(t)

	// Default role is investor
	if got := st.Role(); got != models.RoleInvestor {
		t.Fatalf("default role = %q, want investor", got)
	}
	if got := st.CurrentUserID(); got != "m2" {
		t.Fatalf("default current user = %q, want m2", got)
	}

	tests := []struct {
		role string
		want string
	}{
		{models.RoleAdmin, "m1"},
		{models.RoleFounder, "founder-1"},
		{models.RoleInvestor, "m2"},
	}
	for _, tt := range tests {
		st.SetRole(tt.role)
		if got := st.CurrentUserID(); got != tt.want {
			t.Errorf("role %s: current user = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestToggleSidebar(t *testing.T) {
	st := testutil.NewTestStore(t)

	if st.SidebarCollapsed() {
		t.Fatal("sidebar starts collapsed")
	}
	st.ToggleSidebar()
	if !st.SidebarCollapsed() {
		t.Error("sidebar not collapsed after toggle")
	}
	st.ToggleSidebar()
	if st.SidebarCollapsed() {
		t.Error("sidebar collapsed after second toggle")
	}
}

func TestCopyOnWrite(t *testing.T) {
	st := testutil.NewTestStore(t)

	before := st.Deals()
	beforeInterests := findDeal(t, st, "d1").Interests

	st.SetInterest("d1", "m2", models.SignalInterested)

	after := st.Deals()

	// The mutation publishes a fresh snapshot; identity comparison detects it
	if sliceAddr(before) == sliceAddr(after) {
		t.Error("deals snapshot identity unchanged after mutation")
	}

	// The old snapshot still shows the old world
	for _, d := range before {
		if d.ID == "d1" && len(d.Interests) != len(beforeInterests) {
			t.Error("prior snapshot was mutated in place")
		}
	}

	// Unchanged deals keep their sub-collections shared between snapshots
	var beforeD2, afterD2 models.Deal
	for _, d := range before {
		if d.ID == "d2" {
			beforeD2 = d
		}
	}
	for _, d := range after {
		if d.ID == "d2" {
			afterD2 = d
		}
	}
	if !reflect.DeepEqual(beforeD2, afterD2) {
		t.Error("untouched deal differs between snapshots")
	}
}

func TestSeedSlicesNotAliased(t *testing.T) {
	c := testutil.FixtureCollections()
	st := store.New(c)

	// Mutating the caller's seed slice must not reach the store
	c.Deals[0].Status = models.StatusPassed

	deal, _ := st.Deal(c.Deals[0].ID)
	if deal.Status == models.StatusPassed {
		t.Error("store aliases the seed slice")
	}
}

func TestUninitializedStorePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic from uninitialized store")
		}
	}()

	var st store.Store
	st.Deals()
}
