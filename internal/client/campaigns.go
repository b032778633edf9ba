package client

import (
	"context"
	"fmt"
	"iter"

	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/internal/resolve"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// Campaign operations and their templates in each hierarchy.
var (
	opCampaignGet = resolve.Operation{
		Name:      "Get",
		UserRoute: tiltify.RouteCampaign,
		TeamRoute: tiltify.RouteTeamCampaign,
	}
	opCampaignBySlug = resolve.Operation{
		Name:      "BySlug",
		UserRoute: tiltify.RouteCampaignBySlugs,
		TeamRoute: tiltify.RouteTeamCampaignBySlugs,
	}
	opCampaignDonorLeaderboards = resolve.Operation{
		Name:      "DonorLeaderboards",
		UserRoute: tiltify.RouteCampaignDonorLeaderboard,
		TeamRoute: tiltify.RouteTeamCampaignDonorLeaderboard,
	}
	opCampaignSupportingCampaigns = resolve.Operation{
		Name:      "SupportingCampaigns",
		TeamRoute: tiltify.RouteTeamCampaignSupportingCampaigns,
	}
	opCampaignTargets = resolve.Operation{
		Name:      "Targets",
		UserRoute: tiltify.RouteCampaignTargets,
		TeamRoute: tiltify.RouteTeamCampaignTargets,
	}
	opCampaignRewards = resolve.Operation{
		Name:      "Rewards",
		UserRoute: tiltify.RouteCampaignRewards,
		TeamRoute: tiltify.RouteTeamCampaignRewards,
	}
	opCampaignMilestones = resolve.Operation{
		Name:      "Milestones",
		UserRoute: tiltify.RouteCampaignMilestones,
		TeamRoute: tiltify.RouteTeamCampaignMilestones,
	}
	opCampaignSchedule = resolve.Operation{
		Name:      "Schedule",
		UserRoute: tiltify.RouteCampaignSchedules,
		TeamRoute: tiltify.RouteTeamCampaignSchedules,
	}
	opCampaignPolls = resolve.Operation{
		Name:      "Polls",
		UserRoute: tiltify.RouteCampaignPolls,
		TeamRoute: tiltify.RouteTeamCampaignPolls,
	}
	opCampaignUserLeaderboards = resolve.Operation{
		Name:      "UserLeaderboards",
		TeamRoute: tiltify.RouteTeamCampaignUserLeaderboards,
	}
	opCampaignDonations = resolve.Operation{
		Name:      "Donations",
		UserRoute: tiltify.RouteCampaignDonations,
		TeamRoute: tiltify.RouteTeamCampaignDonations,
	}
)

// CampaignsClient implements tiltify.CampaignsClient.
type CampaignsClient struct {
	executor *request.Executor
	resolver *resolve.Resolver
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(executor *request.Executor, resolver *resolve.Resolver) *CampaignsClient {
	return &CampaignsClient{
		executor: executor,
		resolver: resolver,
	}
}

// Get implements tiltify.CampaignsClient.Get.
func (c *CampaignsClient) Get(ctx context.Context, campaignID string) (*tiltify.Campaign, error) {
	campaign, err := c.fetch(ctx, campaignID, opCampaignGet, tiltify.NewParams("campaignId", campaignID))
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}

	return campaign, nil
}

// BySlug implements tiltify.CampaignsClient.BySlug.
func (c *CampaignsClient) BySlug(ctx context.Context, ownerSlug, campaignSlug string) (*tiltify.Campaign, error) {
	params := tiltify.NewParams("ownerSlug", ownerSlug, "campaignSlug", campaignSlug)

	campaign, err := c.fetch(ctx, "", opCampaignBySlug, params)
	if err != nil {
		return nil, fmt.Errorf("getting campaign by slug: %w", err)
	}

	return campaign, nil
}

// fetch resolves a single campaign and records the hierarchy its payload names.
func (c *CampaignsClient) fetch(ctx context.Context, campaignID string, op resolve.Operation, params *tiltify.Params) (*tiltify.Campaign, error) {
	var campaign *tiltify.Campaign

	_, err := c.resolver.Resolve(ctx, campaignID, op, func(ctx context.Context, template string) error {
		var err error

		campaign, err = request.Get[tiltify.Campaign](ctx, c.executor, template, params)

		return err
	})
	if err != nil {
		return nil, err
	}

	c.resolver.Observe(ctx, campaign)

	return campaign, nil
}

// DonorLeaderboards implements tiltify.CampaignsClient.DonorLeaderboards.
func (c *CampaignsClient) DonorLeaderboards(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := listCampaign(ctx, c, campaignID, opCampaignDonorLeaderboards, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign donor leaderboards: %w", err)
	}

	return entries, nil
}

// SupportingCampaigns implements tiltify.CampaignsClient.SupportingCampaigns.
func (c *CampaignsClient) SupportingCampaigns(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Campaign]) ([]tiltify.Campaign, error) {
	campaigns, err := listCampaign(ctx, c, campaignID, opCampaignSupportingCampaigns, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing supporting campaigns: %w", err)
	}

	return campaigns, nil
}

// Targets implements tiltify.CampaignsClient.Targets.
func (c *CampaignsClient) Targets(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Target]) ([]tiltify.Target, error) {
	targets, err := listCampaign(ctx, c, campaignID, opCampaignTargets, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign targets: %w", err)
	}

	return targets, nil
}

// Challenges implements tiltify.CampaignsClient.Challenges.
func (c *CampaignsClient) Challenges(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Target]) ([]tiltify.Target, error) {
	return c.Targets(ctx, campaignID, observer)
}

// Rewards implements tiltify.CampaignsClient.Rewards.
func (c *CampaignsClient) Rewards(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Reward]) ([]tiltify.Reward, error) {
	rewards, err := listCampaign(ctx, c, campaignID, opCampaignRewards, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign rewards: %w", err)
	}

	return rewards, nil
}

// Milestones implements tiltify.CampaignsClient.Milestones.
func (c *CampaignsClient) Milestones(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Milestone]) ([]tiltify.Milestone, error) {
	milestones, err := listCampaign(ctx, c, campaignID, opCampaignMilestones, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign milestones: %w", err)
	}

	return milestones, nil
}

// Schedule implements tiltify.CampaignsClient.Schedule.
func (c *CampaignsClient) Schedule(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.ScheduleItem]) ([]tiltify.ScheduleItem, error) {
	items, err := listCampaign(ctx, c, campaignID, opCampaignSchedule, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign schedule: %w", err)
	}

	return items, nil
}

// Polls implements tiltify.CampaignsClient.Polls.
func (c *CampaignsClient) Polls(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Poll]) ([]tiltify.Poll, error) {
	polls, err := listCampaign(ctx, c, campaignID, opCampaignPolls, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign polls: %w", err)
	}

	return polls, nil
}

// UserLeaderboards implements tiltify.CampaignsClient.UserLeaderboards.
func (c *CampaignsClient) UserLeaderboards(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) ([]tiltify.LeaderboardEntry, error) {
	entries, err := listCampaign(ctx, c, campaignID, opCampaignUserLeaderboards, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign user leaderboards: %w", err)
	}

	return entries, nil
}

// Donations implements tiltify.CampaignsClient.Donations.
func (c *CampaignsClient) Donations(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Donation]) ([]tiltify.Donation, error) {
	donations, err := listCampaign(ctx, c, campaignID, opCampaignDonations, true, observer)
	if err != nil {
		return nil, fmt.Errorf("listing campaign donations: %w", err)
	}

	return donations, nil
}

// RecentDonations implements tiltify.CampaignsClient.RecentDonations.
func (c *CampaignsClient) RecentDonations(ctx context.Context, campaignID string, observer tiltify.PageObserver[tiltify.Donation]) ([]tiltify.Donation, error) {
	donations, err := listCampaign(ctx, c, campaignID, opCampaignDonations, false, observer)
	if err != nil {
		return nil, fmt.Errorf("listing recent campaign donations: %w", err)
	}

	return donations, nil
}

// DonationPages implements tiltify.CampaignsClient.DonationPages.
func (c *CampaignsClient) DonationPages(ctx context.Context, campaignID string) iter.Seq2[[]tiltify.Donation, error] {
	return wrapPages(campaignPages[tiltify.Donation](ctx, c, campaignID, opCampaignDonations), "listing campaign donations")
}

// campaignPages streams a campaign list operation. The hierarchy is settled
// by the first page: once a page has been yielded, a later failure is
// reported as is and never retried against the other hierarchy.
func campaignPages[T any](ctx context.Context, c *CampaignsClient, campaignID string, op resolve.Operation) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		var streamErr error

		_, err := c.resolver.Resolve(ctx, campaignID, op, func(ctx context.Context, template string) error {
			started := false

			for page, err := range request.Pages[T](ctx, c.executor, template, tiltify.NewParams("campaignId", campaignID)) {
				if err != nil {
					if !started {
						return err
					}

					streamErr = err

					return nil
				}

				started = true

				if !yield(page, nil) {
					return nil
				}
			}

			return nil
		})
		if err == nil {
			err = streamErr
		}

		if err != nil {
			yield(nil, err)
		}
	}
}

// listCampaign resolves a campaign list operation and collects its items.
func listCampaign[T any](ctx context.Context, c *CampaignsClient, campaignID string, op resolve.Operation, enumerate bool, observer tiltify.PageObserver[T]) ([]T, error) {
	var items []T

	_, err := c.resolver.Resolve(ctx, campaignID, op, func(ctx context.Context, template string) error {
		var err error

		items, err = request.Collect(ctx, c.executor, template, tiltify.NewParams("campaignId", campaignID), enumerate, observer)

		return err
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
