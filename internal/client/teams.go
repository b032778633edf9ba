package client

import (
	"context"
	"fmt"
	"iter"

	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// TeamsClient implements tiltify.TeamsClient.
type TeamsClient struct {
	executor  *request.Executor
	campaigns *CampaignsClient
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(executor *request.Executor, campaigns *CampaignsClient) *TeamsClient {
	return &TeamsClient{
		executor:  executor,
		campaigns: campaigns,
	}
}

// Get implements tiltify.TeamsClient.Get.
func (c *TeamsClient) Get(ctx context.Context, teamID string) (*tiltify.Team, error) {
	team, err := request.Get[tiltify.Team](ctx, c.executor, tiltify.RouteTeam, tiltify.NewParams("teamId", teamID))
	if err != nil {
		return nil, fmt.Errorf("getting team: %w", err)
	}

	return team, nil
}

// BySlug implements tiltify.TeamsClient.BySlug.
func (c *TeamsClient) BySlug(ctx context.Context, slug string) (*tiltify.Team, error) {
	team, err := request.Get[tiltify.Team](ctx, c.executor, tiltify.RouteTeamBySlug, tiltify.NewParams("slug", slug))
	if err != nil {
		return nil, fmt.Errorf("getting team by slug: %w", err)
	}

	return team, nil
}

// Members implements tiltify.TeamsClient.Members.
func (c *TeamsClient) Members(ctx context.Context, teamID string, observer tiltify.PageObserver[tiltify.User]) ([]tiltify.User, error) {
	members, err := request.Collect(ctx, c.executor, tiltify.RouteTeamMembers, tiltify.NewParams("teamId", teamID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing team members: %w", err)
	}

	return members, nil
}

// MemberPages implements tiltify.TeamsClient.MemberPages.
func (c *TeamsClient) MemberPages(ctx context.Context, teamID string) iter.Seq2[[]tiltify.User, error] {
	return wrapPages(request.Pages[tiltify.User](ctx, c.executor, tiltify.RouteTeamMembers, tiltify.NewParams("teamId", teamID)), "listing team members")
}

// TeamCampaigns implements tiltify.TeamsClient.TeamCampaigns.
func (c *TeamsClient) TeamCampaigns(ctx context.Context, teamID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	campaigns, err := request.Collect(ctx, c.executor, tiltify.RouteTeamCampaigns, tiltify.NewParams("teamId", teamID), true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing team campaigns: %w", err)
	}

	return campaigns, nil
}

// Campaigns implements tiltify.TeamsClient.Campaigns.
func (c *TeamsClient) Campaigns(ctx context.Context, teamID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	return c.TeamCampaigns(ctx, teamID, observer)
}

// Campaign implements tiltify.TeamsClient.Campaign.
func (c *TeamsClient) Campaign(ctx context.Context, teamSlug, campaignSlug string) (*tiltify.Campaign, error) {
	return c.campaigns.BySlug(ctx, teamSlug, campaignSlug)
}

// List implements tiltify.TeamsClient.List.
func (c *TeamsClient) List(context.Context) error {
	return gone()
}
