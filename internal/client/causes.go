package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

const paramCauseID = "causeId"

// CausesClient implements tiltify.CausesClient.
type CausesClient struct {
	executor *request.Executor
}

// NewCausesClient creates a new causes client.
func NewCausesClient(executor *request.Executor) *CausesClient {
	return &CausesClient{
		executor: executor,
	}
}

// Get implements tiltify.CausesClient.Get.
func (c *CausesClient) Get(ctx context.Context, causeID string) (*tiltify.Cause, error) {
	cause, err := request.Get[tiltify.Cause](ctx, c.executor, tiltify.RouteCause, tiltify.NewParams(paramCauseID, causeID))
	if err != nil {
		return nil, fmt.Errorf("getting cause: %w", err)
	}

	return cause, nil
}

// UserLeaderboards implements tiltify.CausesClient.UserLeaderboards.
func (c *CausesClient) UserLeaderboards(ctx context.Context, causeID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteCauseUserLeaderboards, tiltify.NewParams(paramCauseID, causeID, observer), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing cause user leaderboards: %w", err)
	}

	return entries, nil
}

// DonorLeaderboards implements tiltify.CausesClient.DonorLeaderboards.
func (c *CausesClient) DonorLeaderboards(ctx context.Context, causeID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteCauseDonorLeaderboards, tiltify.NewParams(paramCauseID, causeID, observer), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing cause donor leaderboards: %w", err)
	}

	return entries, nil
}

// TeamLeaderboards implements tiltify.CausesClient.TeamLeaderboards.
func (c *CausesClient) TeamLeaderboards(ctx context.Context, causeID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := request.Collect(ctx, c.executor, tiltify.RouteCauseTeamLeaderboards, tiltify.NewParams(paramCauseID, causeID, observer), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing cause team leaderboards: %w", err)
	}

	return entries, nil
}

// FundraisingEvents implements tiltify.CausesClient.FundraisingEvents.
func (c *CausesClient) FundraisingEvents(ctx context.Context, causeID string, observer tiltify.PageObserver[tiltify.FundraisingEvent]) ([]tiltify.FundraisingEvent, error) {
	events, err := request.Collect(ctx, c.executor, tiltify.RouteCauseFundraisingEvents, tiltify.NewParams(paramCauseID, causeID, observer), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing cause fundraising events: %w", err)
	}

	return events, nil
}

// Campaigns implements tiltify.CausesClient.Campaigns.
func (c *CausesClient) Campaigns(ctx context.Context, causeID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	campaigns, err := request.Collect(ctx, c.executor, tiltify.RouteCauseCampaigns, tiltify.NewParams(paramCauseID, causeID, observer), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing cause campaigns: %w", err)
	}

	return campaigns, nil
}

// Leaderboards implements tiltify.CausesClient.Leaderboards.
func (c *CausesClient) Leaderboards(ctx context.Context, causeID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) (*tiltify.Leaderboards, error) {
	leaderboards, err := fetchLeaderboards(ctx, c.executor,
		tiltify.RouteCauseUserLeaderboards, tiltify.RouteCauseTeamLeaderboards, paramCauseID, causeID, observer)
	if err != nil {
		return nil, fmt.Errorf("getting cause leaderboards: %w", err)
	}

	return leaderboards, nil
}

// Donations implements tiltify.CausesClient.Donations.
func (c *CausesClient) Donations(context.Context, string) error {
	return gone()
}

// VisibilityOptions implements tiltify.CausesClient.VisibilityOptions.
func (c *CausesClient) VisibilityOptions(context.Context, string) error {
	return gone()
}

// Permissions implements tiltify.CausesClient.Permissions.
func (c *CausesClient) Permissions(context.Context, string) error {
	return gone()
}
