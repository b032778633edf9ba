package tiltify

import (
	"context"
	"iter"
	"log/slog"
	"time"
)

// CampaignsClient defines operations for campaigns. A campaign id may belong to
// either the user or the team hierarchy; the client works out which.
type CampaignsClient interface {
	Get(ctx context.Context, campaignID string) (*Campaign, error)
	BySlug(ctx context.Context, ownerSlug, campaignSlug string) (*Campaign, error)
	DonorLeaderboards(ctx context.Context, campaignID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	// SupportingCampaigns is only available for team campaigns.
	SupportingCampaigns(ctx context.Context, campaignID string, observer PageObserver[Campaign]) ([]Campaign, error)
	Targets(ctx context.Context, campaignID string, observer PageObserver[Target]) ([]Target, error)
	// Deprecated: Use Targets.
	Challenges(ctx context.Context, campaignID string, observer PageObserver[Target]) ([]Target, error)
	Rewards(ctx context.Context, campaignID string, observer PageObserver[Reward]) ([]Reward, error)
	Milestones(ctx context.Context, campaignID string, observer PageObserver[Milestone]) ([]Milestone, error)
	Schedule(ctx context.Context, campaignID string, observer PageObserver[ScheduleItem]) ([]ScheduleItem, error)
	Polls(ctx context.Context, campaignID string, observer PageObserver[Poll]) ([]Poll, error)
	// UserLeaderboards is only available for team campaigns.
	UserLeaderboards(ctx context.Context, campaignID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	Donations(ctx context.Context, campaignID string, observer PageObserver[Donation]) ([]Donation, error)
	// RecentDonations returns the first page of donations only.
	RecentDonations(ctx context.Context, campaignID string, observer PageObserver[Donation]) ([]Donation, error)
	// DonationPages streams donations one page at a time. Each page is
	// requested when the loop asks for it; breaking out stops the requests.
	DonationPages(ctx context.Context, campaignID string) iter.Seq2[[]Donation, error]
}

// CausesClient defines operations for causes.
type CausesClient interface {
	Get(ctx context.Context, causeID string) (*Cause, error)
	UserLeaderboards(ctx context.Context, causeID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	DonorLeaderboards(ctx context.Context, causeID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	TeamLeaderboards(ctx context.Context, causeID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	FundraisingEvents(ctx context.Context, causeID string, observer PageObserver[FundraisingEvent]) ([]FundraisingEvent, error)
	Campaigns(ctx context.Context, causeID string, observer PageObserver[Campaign]) ([]Campaign, error)
	// Leaderboards fetches the user and team leaderboards concurrently. The
	// observer sees pages of both lists, one call at a time.
	Leaderboards(ctx context.Context, causeID string, observer PageObserver[LeaderboardEntry]) (*Leaderboards, error)

	// Removed from the v5 API; these always fail with a 410 APIError.
	Donations(ctx context.Context, causeID string) error
	VisibilityOptions(ctx context.Context, causeID string) error
	Permissions(ctx context.Context, causeID string) error
}

// FundraisingEventsClient defines operations for fundraising events.
type FundraisingEventsClient interface {
	Get(ctx context.Context, eventID string) (*FundraisingEvent, error)
	TeamFitnessDistanceLeaderboard(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	TeamFitnessTimeLeaderboard(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	UserFitnessTimeLeaderboard(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	SupportingEvents(ctx context.Context, eventID string, observer PageObserver[Campaign]) ([]Campaign, error)
	// Deprecated: Use SupportingEvents.
	Campaigns(ctx context.Context, eventID string, observer PageObserver[Campaign]) ([]Campaign, error)
	DonorLeaderboards(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	UserLeaderboards(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	TeamLeaderboards(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) ([]LeaderboardEntry, error)
	// Leaderboards fetches the user and team leaderboards concurrently. The
	// observer sees pages of both lists, one call at a time.
	Leaderboards(ctx context.Context, eventID string, observer PageObserver[LeaderboardEntry]) (*Leaderboards, error)

	// Removed from the v5 API; these always fail with a 410 APIError.
	List(ctx context.Context) error
	Donations(ctx context.Context, eventID string) error
	Incentives(ctx context.Context, eventID string) error
	Registrations(ctx context.Context, eventID string) error
	RegistrationFields(ctx context.Context, eventID string) error
	Schedule(ctx context.Context, eventID string) error
	VisibilityOptions(ctx context.Context, eventID string) error
}

// TeamsClient defines operations for teams.
type TeamsClient interface {
	Get(ctx context.Context, teamID string) (*Team, error)
	BySlug(ctx context.Context, slug string) (*Team, error)
	Members(ctx context.Context, teamID string, observer PageObserver[User]) ([]User, error)
	// MemberPages streams members one page at a time.
	MemberPages(ctx context.Context, teamID string) iter.Seq2[[]User, error]
	TeamCampaigns(ctx context.Context, teamID string, observer PageObserver[Campaign]) ([]Campaign, error)
	// Deprecated: Use TeamCampaigns.
	Campaigns(ctx context.Context, teamID string, observer PageObserver[Campaign]) ([]Campaign, error)
	// Deprecated: Use CampaignsClient.BySlug.
	Campaign(ctx context.Context, teamSlug, campaignSlug string) (*Campaign, error)

	// List was removed from the v5 API and always fails with a 410 APIError.
	List(ctx context.Context) error
}

// UsersClient defines operations for users.
type UsersClient interface {
	Get(ctx context.Context, userID string) (*User, error)
	BySlug(ctx context.Context, slug string) (*User, error)
	// CurrentUser returns the user owning the client credentials.
	CurrentUser(ctx context.Context) (*User, error)
	// Deprecated: Use CurrentUser.
	Self(ctx context.Context) (*User, error)
	Teams(ctx context.Context, userID string, observer PageObserver[Team]) ([]Team, error)
	IntegrationEvents(ctx context.Context, userID string, observer PageObserver[IntegrationEvent]) ([]IntegrationEvent, error)
	Campaigns(ctx context.Context, userID string, observer PageObserver[Campaign]) ([]Campaign, error)
	// Deprecated: Use CampaignsClient.BySlug.
	Campaign(ctx context.Context, userSlug, campaignSlug string) (*Campaign, error)

	// Removed from the v5 API; these always fail with a 410 APIError.
	OwnedTeams(ctx context.Context, userID string) error
	List(ctx context.Context) error
}

// Client is the Tiltify API client.
type Client interface {
	Campaigns() CampaignsClient
	Causes() CausesClient
	FundraisingEvents() FundraisingEventsClient
	Teams() TeamsClient
	Users() UsersClient
	// Close releases resources the client opened itself, such as a NATS
	// connection built from Config.Cache. Caches supplied through
	// Config.RouteTypeCache are left open.
	Close() error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Debug(string, map[string]interface{}) {}
func (NoopLogger) Info(string, map[string]interface{})  {}
func (NoopLogger) Warn(string, map[string]interface{})  {}
func (NoopLogger) Error(string, map[string]interface{}) {}

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *SlogLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, attrs(fields)...)
}

func attrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

// Config represents client configuration for building a tiltify.Client.
//
// # Authentication
//
// The API only supports the OAuth client_credentials grant. ClientID and
// ClientSecret come from the OAuth application registered in the Tiltify
// dashboard. A token is fetched on first use and reused until it expires. A
// 401 from the API forces one refresh and a retry.
//
// # Campaign hierarchy
//
// Campaign ids are shared between user and team campaigns. The client tries
// the team route first, falls back to the user route on 404, and remembers
// the answer in RouteTypeCache. Supply a shared cache (see NewCacheFromConfig)
// to reuse those answers across clients or processes.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to client
// methods. Transport retries are disabled unless RetryMax is set.
type Config struct {
	// Required fields
	// ClientID: OAuth client ID.
	ClientID string
	// ClientSecret: OAuth client secret used with ClientID.
	ClientSecret string

	// Optional configurations
	// BaseURL: API host, "https://v5api.tiltify.com" when empty.
	BaseURL string
	// TokenURL: full token endpoint. Defaults to BaseURL + "/oauth/token".
	TokenURL string
	// HTTPTimeout: timeout of the underlying http.Client, 30s when zero.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport retries for connection errors,
	// 429 and 5xx responses. Zero disables transport retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// RouteTypeCache: campaign hierarchy cache. Takes precedence over Cache.
	RouteTypeCache RouteTypeCache
	// Cache: builds RouteTypeCache when it is nil. A nil Cache means an
	// in-memory cache private to the client.
	Cache *CacheConfig
}
