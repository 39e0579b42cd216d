package models

// Deal status constants
const (
	StatusNew            = "New"
	StatusScreening      = "Screening"
	StatusIntroRequested = "Intro Requested"
	StatusDiligence      = "Diligence"
	StatusPassed         = "Passed"
	StatusInvesting      = "Investing"
)

// Funding stage constants
const (
	StagePreSeed = "Pre-seed"
	StageSeed    = "Seed"
	StageSeriesA = "Series A"
)

// Interest signal constants. The empty string means "no signal": a mutation
// carrying it clears any existing entry for that investor.
const (
	SignalInterested = "interested"
	SignalWatching   = "watching"
	SignalPass       = "pass"
	SignalNone       = ""
)

// Role constants
const (
	RoleAdmin    = "admin"
	RoleInvestor = "investor"
	RoleFounder  = "founder"
)

// Portfolio entry status constants
const (
	PortfolioActive     = "active"
	PortfolioExited     = "exited"
	PortfolioWrittenOff = "written-off"
)

// AuthorAnon marks a question asked without attribution.
const AuthorAnon = "anon"

// DateFormat is the day-granularity layout used for all dates in the system.
const DateFormat = "2006-01-02"

// ValidStatus reports whether s is one of the deal status constants.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusScreening, StatusIntroRequested, StatusDiligence, StatusPassed, StatusInvesting:
		return true
	}
	return false
}

// ValidSignal reports whether s is an interest signal, including SignalNone.
func ValidSignal(s string) bool {
	switch s {
	case SignalInterested, SignalWatching, SignalPass, SignalNone:
		return true
	}
	return false
}

// ValidRole reports whether s is one of the role constants.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleInvestor, RoleFounder:
		return true
	}
	return false
}

// Request types

type SetRoleRequest struct {
	Role string `json:"role"`
}

type SetInterestRequest struct {
	InvestorID string `json:"investor_id"`
	Signal     string `json:"signal"` // empty string clears the signal
}

type SoftCircleRequest struct {
	InvestorID string  `json:"investor_id"`
	Amount     float64 `json:"amount"`
}

type RSVPRequest struct {
	MemberID string `json:"member_id"`
}

type AddQuestionRequest struct {
	Text     string `json:"text"`
	AuthorID string `json:"author_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type SessionResponse struct {
	Role             string `json:"role"`
	CurrentUserID    string `json:"current_user_id"`
	SidebarCollapsed bool   `json:"sidebar_collapsed"`
}

type RSVPResponse struct {
	EventID   string `json:"event_id"`
	Going     bool   `json:"going"`
	RSVPCount int    `json:"rsvp_count"`
}

type AddQuestionResponse struct {
	Question Question `json:"question"`
}

type PortfolioResponse struct {
	Entries []PortfolioView `json:"entries"`
}

// PortfolioView is a PortfolioEntry with a display-formatted amount.
type PortfolioView struct {
	PortfolioEntry
	AmountDisplay string `json:"amount_display"`
}

// Domain types

type Deal struct {
	ID           string            `json:"id" yaml:"id"`
	Name         string            `json:"name" yaml:"name"`
	Sector       string            `json:"sector" yaml:"sector"`
	Stage        string            `json:"stage" yaml:"stage"`
	Ask          string            `json:"ask" yaml:"ask"`
	OneLiner     string            `json:"one_liner" yaml:"one_liner"`
	Description  string            `json:"description" yaml:"description"`
	Status       string            `json:"status" yaml:"status"`
	HeroImage    string            `json:"hero_image" yaml:"hero_image"`
	DeckURL      string            `json:"deck_url,omitempty" yaml:"deck_url"`
	FounderName  string            `json:"founder_name" yaml:"founder_name"`
	FounderEmail string            `json:"founder_email" yaml:"founder_email"`
	Traction     string            `json:"traction,omitempty" yaml:"traction"`
	CreatedAt    string            `json:"created_at" yaml:"created_at"`
	Tags         []string          `json:"tags" yaml:"tags"`
	Interests    []InterestEntry   `json:"interests" yaml:"interests"`
	SoftCircles  []SoftCircleEntry `json:"soft_circles" yaml:"soft_circles"`
	Questions    []Question        `json:"questions" yaml:"questions"`
}

// InterestEntry records one investor's signal on a deal. At most one entry
// per investor per deal.
type InterestEntry struct {
	InvestorID string `json:"investor_id" yaml:"investor_id"`
	Signal     string `json:"signal" yaml:"signal"`
}

// SoftCircleEntry records one investor's non-binding pledge on a deal.
// Later pledges overwrite, never accumulate.
type SoftCircleEntry struct {
	InvestorID string  `json:"investor_id" yaml:"investor_id"`
	Amount     float64 `json:"amount" yaml:"amount"`
}

type Question struct {
	ID        string `json:"id" yaml:"id"`
	DealID    string `json:"deal_id" yaml:"deal_id"`
	Text      string `json:"text" yaml:"text"`
	AuthorID  string `json:"author_id" yaml:"author_id"`
	Upvotes   int    `json:"upvotes" yaml:"upvotes"`
	Pinned    bool   `json:"pinned" yaml:"pinned"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

type Member struct {
	ID                 string   `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	Role               string   `json:"role" yaml:"role"`
	Background         string   `json:"background" yaml:"background"`
	ThesisTags         []string `json:"thesis_tags" yaml:"thesis_tags"`
	ChequeMin          float64  `json:"cheque_min" yaml:"cheque_min"`
	ChequeMax          float64  `json:"cheque_max" yaml:"cheque_max"`
	Geo                string   `json:"geo" yaml:"geo"`
	AvailableThisMonth bool     `json:"available_this_month" yaml:"available_this_month"`
	Avatar             string   `json:"avatar" yaml:"avatar"`
	EngagementScore    int      `json:"engagement_score" yaml:"engagement_score"`
}

type Event struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Date      string   `json:"date" yaml:"date"`
	Location  string   `json:"location" yaml:"location"`
	Sector    string   `json:"sector" yaml:"sector"`
	Capacity  int      `json:"capacity" yaml:"capacity"`
	RSVPCount int      `json:"rsvp_count" yaml:"rsvp_count"`
	Founders  []string `json:"founders" yaml:"founders"`
	HeroImage string   `json:"hero_image" yaml:"hero_image"`
	RSVPd     []string `json:"rsvpd" yaml:"rsvpd"`
}

type PortfolioEntry struct {
	MemberID string  `json:"member_id" yaml:"member_id"`
	DealID   string  `json:"deal_id" yaml:"deal_id"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Date     string  `json:"date" yaml:"date"`
	Status   string  `json:"status" yaml:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
