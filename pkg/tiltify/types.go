package tiltify

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Envelope is the wrapper around every API response.
type Envelope struct {
	Data     json.RawMessage `json:"data,omitempty"`
	Metadata *Metadata       `json:"metadata,omitempty"`
	Error    json.RawMessage `json:"error,omitempty"`

	// ErrorDescription accompanies a string error in OAuth responses.
	ErrorDescription string `json:"error_description,omitempty"`
}

// HasError reports whether the envelope carries a non-null error.
func (e *Envelope) HasError() bool {
	return len(e.Error) > 0 && !bytes.Equal(e.Error, []byte("null"))
}

// APIError returns the envelope's error as an APIError.
func (e *Envelope) APIError() (*APIError, error) {
	return ParseAPIError(e.Error, e.ErrorDescription)
}

// Metadata carries pagination state.
type Metadata struct {
	After  json.RawMessage `json:"after,omitempty"`
	Before json.RawMessage `json:"before,omitempty"`
	Limit  int             `json:"limit,omitempty"`
}

// Cursor returns the continuation cursor when it is truthy.
func (m *Metadata) Cursor() (string, bool) {
	if m == nil || len(m.After) == 0 {
		return "", false
	}

	var value interface{}

	err := json.Unmarshal(m.After, &value)
	if err != nil {
		return "", false
	}

	switch cursor := value.(type) {
	case string:
		return cursor, cursor != ""
	case float64:
		return strconv.FormatFloat(cursor, 'f', -1, 64), cursor != 0
	case bool:
		return "true", cursor
	default:
		return "", false
	}
}

// RouteType identifies the hierarchy a campaign belongs to.
type RouteType string

// Route types.
const (
	RouteTypeUnknown RouteType = ""
	RouteTypeUser    RouteType = "user"
	RouteTypeTeam    RouteType = "team"
)

// String implements fmt.Stringer.
func (t RouteType) String() string {
	if t == RouteTypeUnknown {
		return "unknown"
	}

	return string(t)
}

// Valid reports whether t is a resolved hierarchy.
func (t RouteType) Valid() bool {
	return t == RouteTypeUser || t == RouteTypeTeam
}

// PageObserver is called once per fetched page of a list operation.
type PageObserver[T any] func(page []T)

// Money is an amount in a currency.
type Money struct {
	Currency string `json:"currency" yaml:"currency"`
	Value    string `json:"value"    yaml:"value"`
}

// Image is an avatar or banner.
type Image struct {
	Alt    string `json:"alt,omitempty"    yaml:"alt,omitempty"`
	Src    string `json:"src"              yaml:"src"`
	Width  int    `json:"width,omitempty"  yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// User is an individual account.
type User struct {
	ID          string `json:"id"                    yaml:"id"`
	LegacyID    int    `json:"legacy_id,omitempty"   yaml:"legacy_id,omitempty"`
	Username    string `json:"username"              yaml:"username"`
	Slug        string `json:"slug"                  yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty"         yaml:"url,omitempty"`
	Avatar      *Image `json:"avatar,omitempty"      yaml:"avatar,omitempty"`
}

// Team is a group of users that can own campaigns.
type Team struct {
	ID          string `json:"id"                    yaml:"id"`
	LegacyID    int    `json:"legacy_id,omitempty"   yaml:"legacy_id,omitempty"`
	Name        string `json:"name"                  yaml:"name"`
	Slug        string `json:"slug"                  yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty"         yaml:"url,omitempty"`
	Avatar      *Image `json:"avatar,omitempty"      yaml:"avatar,omitempty"`
}

// Campaign is a fundraising campaign owned by a user or a team.
type Campaign struct {
	ID                 string    `json:"id"                             yaml:"id"`
	LegacyID           int       `json:"legacy_id,omitempty"            yaml:"legacy_id,omitempty"`
	Name               string    `json:"name"                           yaml:"name"`
	Slug               string    `json:"slug"                           yaml:"slug"`
	Status             string    `json:"status,omitempty"               yaml:"status,omitempty"`
	Description        string    `json:"description,omitempty"          yaml:"description,omitempty"`
	URL                string    `json:"url,omitempty"                  yaml:"url,omitempty"`
	CauseID            string    `json:"cause_id,omitempty"             yaml:"cause_id,omitempty"`
	FundraisingEventID string    `json:"fundraising_event_id,omitempty" yaml:"fundraising_event_id,omitempty"`
	Goal               *Money    `json:"goal,omitempty"                 yaml:"goal,omitempty"`
	AmountRaised       *Money    `json:"amount_raised,omitempty"        yaml:"amount_raised,omitempty"`
	TotalAmountRaised  *Money    `json:"total_amount_raised,omitempty"  yaml:"total_amount_raised,omitempty"`
	User               *User     `json:"user,omitempty"                 yaml:"user,omitempty"`
	Team               *Team     `json:"team,omitempty"                 yaml:"team,omitempty"`
	PublishedAt        time.Time `json:"published_at,omitempty"         yaml:"published_at,omitempty"`
}

// RouteType reports the hierarchy the payload names.
func (c *Campaign) RouteType() RouteType {
	switch {
	case c.Team != nil:
		return RouteTypeTeam
	case c.User != nil:
		return RouteTypeUser
	default:
		return RouteTypeUnknown
	}
}

// Cause is a charity receiving funds.
type Cause struct {
	ID          string `json:"id"                    yaml:"id"`
	LegacyID    int    `json:"legacy_id,omitempty"   yaml:"legacy_id,omitempty"`
	Name        string `json:"name"                  yaml:"name"`
	Slug        string `json:"slug"                  yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Currency    string `json:"currency,omitempty"    yaml:"currency,omitempty"`
}

// FundraisingEvent is an event that campaigns can support.
type FundraisingEvent struct {
	ID           string `json:"id"                      yaml:"id"`
	LegacyID     int    `json:"legacy_id,omitempty"     yaml:"legacy_id,omitempty"`
	Name         string `json:"name"                    yaml:"name"`
	Slug         string `json:"slug"                    yaml:"slug"`
	Description  string `json:"description,omitempty"   yaml:"description,omitempty"`
	CauseID      string `json:"cause_id,omitempty"      yaml:"cause_id,omitempty"`
	Goal         *Money `json:"goal,omitempty"          yaml:"goal,omitempty"`
	AmountRaised *Money `json:"amount_raised,omitempty" yaml:"amount_raised,omitempty"`
}

// Donation is a single donation to a campaign.
type Donation struct {
	ID           string    `json:"id"                       yaml:"id"`
	CampaignID   string    `json:"campaign_id,omitempty"    yaml:"campaign_id,omitempty"`
	Amount       Money     `json:"amount"                   yaml:"amount"`
	DonorName    string    `json:"donor_name"               yaml:"donor_name"`
	DonorComment string    `json:"donor_comment,omitempty"  yaml:"donor_comment,omitempty"`
	RewardID     string    `json:"reward_id,omitempty"      yaml:"reward_id,omitempty"`
	PollOptionID string    `json:"poll_option_id,omitempty" yaml:"poll_option_id,omitempty"`
	CompletedAt  time.Time `json:"completed_at,omitempty"   yaml:"completed_at,omitempty"`
}

// Reward is an incentive offered to donors.
type Reward struct {
	ID                string `json:"id"                           yaml:"id"`
	Name              string `json:"name"                         yaml:"name"`
	Description       string `json:"description,omitempty"        yaml:"description,omitempty"`
	Amount            *Money `json:"amount,omitempty"             yaml:"amount,omitempty"`
	Quantity          int    `json:"quantity,omitempty"           yaml:"quantity,omitempty"`
	QuantityRemaining int    `json:"quantity_remaining,omitempty" yaml:"quantity_remaining,omitempty"`
	Active            bool   `json:"active"                       yaml:"active"`
}

// Milestone is a fundraising goal step.
type Milestone struct {
	ID     string `json:"id"               yaml:"id"`
	Name   string `json:"name"             yaml:"name"`
	Amount *Money `json:"amount,omitempty" yaml:"amount,omitempty"`
	Active bool   `json:"active"           yaml:"active"`
}

// Target is a time-boxed goal (formerly a challenge).
type Target struct {
	ID           string    `json:"id"                      yaml:"id"`
	Name         string    `json:"name"                    yaml:"name"`
	Amount       *Money    `json:"amount,omitempty"        yaml:"amount,omitempty"`
	AmountRaised *Money    `json:"amount_raised,omitempty" yaml:"amount_raised,omitempty"`
	EndsAt       time.Time `json:"ends_at,omitempty"       yaml:"ends_at,omitempty"`
	Active       bool      `json:"active"                  yaml:"active"`
}

// PollOption is one choice of a poll.
type PollOption struct {
	ID           string `json:"id"                      yaml:"id"`
	Name         string `json:"name"                    yaml:"name"`
	AmountRaised *Money `json:"amount_raised,omitempty" yaml:"amount_raised,omitempty"`
}

// Poll lets donors vote with donations.
type Poll struct {
	ID          string       `json:"id"           yaml:"id"`
	Name        string       `json:"name"         yaml:"name"`
	Active      bool         `json:"active"       yaml:"active"`
	PollOptions []PollOption `json:"poll_options" yaml:"poll_options"`
}

// ScheduleItem is an entry of a campaign schedule.
type ScheduleItem struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at,omitempty"   yaml:"starts_at,omitempty"`
	EndsAt      time.Time `json:"ends_at,omitempty"     yaml:"ends_at,omitempty"`
}

// LeaderboardEntry is one ranked row of any leaderboard.
type LeaderboardEntry struct {
	ID       string  `json:"id,omitempty"       yaml:"id,omitempty"`
	Name     string  `json:"name"               yaml:"name"`
	Position int     `json:"position,omitempty" yaml:"position,omitempty"`
	Amount   *Money  `json:"amount,omitempty"   yaml:"amount,omitempty"`
	Value    float64 `json:"value,omitempty"    yaml:"value,omitempty"`
	URL      string  `json:"url,omitempty"      yaml:"url,omitempty"`
	Avatar   *Image  `json:"avatar,omitempty"   yaml:"avatar,omitempty"`
}

// Leaderboards joins two independently fetched leaderboards.
type Leaderboards struct {
	Individual []LeaderboardEntry `json:"individual" yaml:"individual"`
	Team       []LeaderboardEntry `json:"team"       yaml:"team"`
}

// IntegrationEvent is an event reported by a third-party integration.
type IntegrationEvent struct {
	ID        string    `json:"id"                   yaml:"id"`
	Name      string    `json:"name"                 yaml:"name"`
	Type      string    `json:"type,omitempty"       yaml:"type,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}
