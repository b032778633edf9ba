package tiltify

// Route templates, relative to the public API root. Placeholders in braces are
// filled from the call parameters; everything else goes into the query.

// User campaign routes.
const (
	RouteCampaign                 = "campaigns/{campaignId}"
	RouteCampaignBySlugs          = "campaigns/by/slugs/{ownerSlug}/{campaignSlug}"
	RouteCampaignDonorLeaderboard = "campaigns/{campaignId}/donor_leaderboards"
	RouteCampaignTargets          = "campaigns/{campaignId}/targets"
	RouteCampaignRewards          = "campaigns/{campaignId}/rewards"
	RouteCampaignMilestones       = "campaigns/{campaignId}/milestones"
	RouteCampaignSchedules        = "campaigns/{campaignId}/schedules"
	RouteCampaignPolls            = "campaigns/{campaignId}/polls"
	RouteCampaignDonations        = "campaigns/{campaignId}/donations"
)

// Team campaign routes. Note the singular donor_leaderboard.
const (
	RouteTeamCampaign                    = "team_campaigns/{campaignId}"
	RouteTeamCampaignBySlugs             = "team_campaigns/by/slugs/{ownerSlug}/{campaignSlug}"
	RouteTeamCampaignDonorLeaderboard    = "team_campaigns/{campaignId}/donor_leaderboard"
	RouteTeamCampaignSupportingCampaigns = "team_campaigns/{campaignId}/supporting_campaigns"
	RouteTeamCampaignTargets             = "team_campaigns/{campaignId}/targets"
	RouteTeamCampaignRewards             = "team_campaigns/{campaignId}/rewards"
	RouteTeamCampaignMilestones          = "team_campaigns/{campaignId}/milestones"
	RouteTeamCampaignSchedules           = "team_campaigns/{campaignId}/schedules"
	RouteTeamCampaignUserLeaderboards    = "team_campaigns/{campaignId}/user_leaderboards"
	RouteTeamCampaignPolls               = "team_campaigns/{campaignId}/polls"
	RouteTeamCampaignDonations           = "team_campaigns/{campaignId}/donations"
)

// Cause routes.
const (
	RouteCause                  = "causes/{causeId}"
	RouteCauseUserLeaderboards  = "causes/{causeId}/user_leaderboards"
	RouteCauseDonorLeaderboards = "causes/{causeId}/donor_leaderboards"
	RouteCauseTeamLeaderboards  = "causes/{causeId}/team_leaderboards"
	RouteCauseFundraisingEvents = "causes/{causeId}/fundraising-events"
	RouteCauseCampaigns         = "causes/{causeId}/campaigns"
)

// Fundraising event routes.
const (
	RouteFundraisingEvent                    = "fundraising_events/{fundraisingEventId}"
	RouteFundraisingEventTeamFitnessDistance = "fundraising_events/{fundraisingEventId}/team_fitness_distance_leaderboard"
	RouteFundraisingEventTeamFitnessTime     = "fundraising_events/{fundraisingEventId}/team_fitness_time_leaderboard"
	RouteFundraisingEventUserFitnessTime     = "fundraising_events/{fundraisingEventId}/user_fitness_time_leaderboard"
	RouteFundraisingEventSupportingEvents    = "fundraising_events/{fundraisingEventId}/supporting_events"
	RouteFundraisingEventDonorLeaderboards   = "fundraising_events/{fundraisingEventId}/donor_leaderboards"
	RouteFundraisingEventUserLeaderboards    = "fundraising_events/{fundraisingEventId}/user_leaderboards"
	RouteFundraisingEventTeamLeaderboards    = "fundraising_events/{fundraisingEventId}/team_leaderboards"
)

// Team routes.
const (
	RouteTeam          = "teams/{teamId}"
	RouteTeamBySlug    = "teams/by/slug/{slug}"
	RouteTeamMembers   = "teams/{teamId}/members"
	RouteTeamCampaigns = "teams/{teamId}/team_campaigns"
)

// User routes.
const (
	RouteUser                  = "users/{userId}"
	RouteUserBySlug            = "users/by/slug/{slug}"
	RouteCurrentUser           = "current-user"
	RouteUserTeams             = "users/{userId}/teams"
	RouteUserIntegrationEvents = "users/{userId}/integration_events"
	RouteUserCampaigns         = "users/{userId}/campaigns"
)
