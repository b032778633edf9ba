package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// UsersClient implements tiltify.UsersClient.
type UsersClient struct {
	executor  *request.Executor
	campaigns *CampaignsClient
}

// NewUsersClient creates a new users client.
func NewUsersClient(executor *request.Executor, campaigns *CampaignsClient) *UsersClient {
	return &UsersClient{
		executor:  executor,
		campaigns: campaigns,
	}
}

// Get implements tiltify.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*tiltify.User, error) {
	user, err := request.Get[tiltify.User](ctx, c.executor, tiltify.RouteUser, tiltify.NewParams("userId", userID))
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

// BySlug implements tiltify.UsersClient.BySlug.
func (c *UsersClient) BySlug(ctx context.Context, slug string) (*tiltify.User, error) {
	user, err := request.Get[tiltify.User](ctx, c.executor, tiltify.RouteUserBySlug, tiltify.NewParams("slug", slug))
	if err != nil {
		return nil, fmt.Errorf("getting user by slug: %w", err)
	}

	return user, nil
}

// CurrentUser implements tiltify.UsersClient.CurrentUser.
func (c *UsersClient) CurrentUser(ctx context.Context) (*tiltify.User, error) {
	user, err := request.Get[tiltify.User](ctx, c.executor, tiltify.RouteCurrentUser, nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return user, nil
}

// Self implements tiltify.UsersClient.Self.
func (c *UsersClient) Self(ctx context.Context) (*tiltify.User, error) {
	return c.CurrentUser(ctx)
}

// Teams implements tiltify.UsersClient.Teams.
func (c *UsersClient) Teams(ctx context.Context, userID string, observer tiltify.PageObserver[tiltify.Team]) ([]tiltify.Team, error) {
	teams, err := request.Collect(ctx, c.executor, tiltify.RouteUserTeams, tiltify.NewParams("userId", userID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing user teams: %w", err)
	}

	return teams, nil
}

// IntegrationEvents implements tiltify.UsersClient.IntegrationEvents.
func (c *UsersClient) IntegrationEvents(ctx context.Context, userID string, observer tiltify.PageObserver[tiltify.IntegrationEvent]) ([]tiltify.IntegrationEvent, error) {
	events, err := request.Collect(ctx, c.executor, tiltify.RouteUserIntegrationEvents, tiltify.NewParams("userId", userID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing user integration events: %w", err)
	}

	return events, nil
}

// Campaigns implements tiltify.UsersClient.Campaigns.
func (c *UsersClient) Campaigns(ctx context.Context, userID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	campaigns, err := request.Collect(ctx, c.executor, tiltify.RouteUserCampaigns, tiltify.NewParams("userId", userID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing user campaigns: %w", err)
	}

	return campaigns, nil
}

// Campaign implements tiltify.UsersClient.Campaign.
func (c *UsersClient) Campaign(ctx context.Context, userSlug, campaignSlug string) (*tiltify.Campaign, error) {
	return c.campaigns.BySlug(ctx, userSlug, campaignSlug)
}

// OwnedTeams implements tiltify.UsersClient.OwnedTeams.
func (c *UsersClient) OwnedTeams(context.Context, string) error {
	return gone()
}

// List implements tiltify.UsersClient.List.
func (c *UsersClient) List(context.Context) error {
	return gone()
}
