package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

const paramFundraisingEventID = "fundraisingEventId"

// FundraisingEventsClient implements tiltify.FundraisingEventsClient.
type FundraisingEventsClient struct {
	executor *request.Executor
}

// NewFundraisingEventsClient creates a new fundraising events client.
func NewFundraisingEventsClient(executor *request.Executor) *FundraisingEventsClient {
	return &FundraisingEventsClient{
		executor: executor,
	}
}

func eventParams(eventID string) *tiltify.Params {
	return tiltify.NewParams(paramFundraisingEventID, eventID)
}

// Get implements tiltify.FundraisingEventsClient.Get.
func (c *FundraisingEventsClient) Get(ctx context.Context, eventID string) (*tiltify.FundraisingEvent, error) {
	event, err := request.Get[tiltify.FundraisingEvent](ctx, c.executor, tiltify.RouteFundraisingEvent, eventParams(eventID))
	if err != nil {
		return nil, fmt.Errorf("getting fundraising event: %w", err)
	}

	return event, nil
}

// TeamFitnessDistanceLeaderboard implements tiltify.FundraisingEventsClient.TeamFitnessDistanceLeaderboard.
func (c *FundraisingEventsClient) TeamFitnessDistanceLeaderboard(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventTeamFitnessDistance, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing team fitness distance leaderboard: %w", err)
	}

	return entries, nil
}

// TeamFitnessTimeLeaderboard implements tiltify.FundraisingEventsClient.TeamFitnessTimeLeaderboard.
func (c *FundraisingEventsClient) TeamFitnessTimeLeaderboard(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventTeamFitnessTime, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing team fitness time leaderboard: %w", err)
	}

	return entries, nil
}

// UserFitnessTimeLeaderboard implements tiltify.FundraisingEventsClient.UserFitnessTimeLeaderboard.
func (c *FundraisingEventsClient) UserFitnessTimeLeaderboard(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventUserFitnessTime, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing user fitness time leaderboard: %w", err)
	}

	return entries, nil
}

// SupportingEvents implements tiltify.FundraisingEventsClient.SupportingEvents.
func (c *FundraisingEventsClient) SupportingEvents(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	campaigns, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventSupportingEvents, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing supporting events: %w", err)
	}

	return campaigns, nil
}

// Campaigns implements tiltify.FundraisingEventsClient.Campaigns.
func (c *FundraisingEventsClient) Campaigns(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	return c.SupportingEvents(ctx, eventID, observer)
}

// DonorLeaderboards implements tiltify.FundraisingEventsClient.DonorLeaderboards.
func (c *FundraisingEventsClient) DonorLeaderboards(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventDonorLeaderboards, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing event donor leaderboards: %w", err)
	}

	return entries, nil
}

// UserLeaderboards implements tiltify.FundraisingEventsClient.UserLeaderboards.
func (c *FundraisingEventsClient) UserLeaderboards(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventUserLeaderboards, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing event user leaderboards: %w", err)
	}

	return entries, nil
}

// TeamLeaderboards implements tiltify.FundraisingEventsClient.TeamLeaderboards.
func (c *FundraisingEventsClient) TeamLeaderboards(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteFundraisingEventTeamLeaderboards, eventParams(eventID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing event team leaderboards: %w", err)
	}

	return entries, nil
}

// Leaderboards implements tiltify.FundraisingEventsClient.Leaderboards.
func (c *FundraisingEventsClient) Leaderboards(ctx context.Context, eventID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) (*tiltify.Leaderboards, error) {
	leaderboards, err := fetchLeaderboards(ctx, c.executor,
		tiltify.RouteFundraisingEventUserLeaderboards, tiltify.RouteFundraisingEventTeamLeaderboards,
		paramFundraisingEventID, eventID, observer)
	if err != nil {
		return nil, fmt.Errorf("getting event leaderboards: %w", err)
	}

	return leaderboards, nil
}

// List implements tiltify.FundraisingEventsClient.List.
func (c *FundraisingEventsClient) List(context.Context) error {
	return gone()
}

// Donations implements tiltify.FundraisingEventsClient.Donations.
func (c *FundraisingEventsClient) Donations(context.Context, string) error {
	return gone()
}

// Incentives implements tiltify.FundraisingEventsClient.Incentives.
func (c *FundraisingEventsClient) Incentives(context.Context, string) error {
	return gone()
}

// Registrations implements tiltify.FundraisingEventsClient.Registrations.
func (c *FundraisingEventsClient) Registrations(context.Context, string) error {
	return gone()
}

// RegistrationFields implements tiltify.FundraisingEventsClient.RegistrationFields.
func (c *FundraisingEventsClient) RegistrationFields(context.Context, string) error {
	return gone()
}

// Schedule implements tiltify.FundraisingEventsClient.Schedule.
func (c *FundraisingEventsClient) Schedule(context.Context, string) error {
	return gone()
}

// VisibilityOptions implements tiltify.FundraisingEventsClient.VisibilityOptions.
func (c *FundraisingEventsClient) VisibilityOptions(context.Context, string) error {
	return gone()
}
