//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignWorkflow(t *testing.T) {
	client, config := newLiveClient(t)
	if config.CampaignID == "" {
		t.Skip("TILTIFY_TEST_CAMPAIGN_ID is required")
	}

	ctx := context.Background()

	campaign, err := client.Campaigns().Get(ctx, config.CampaignID)
	require.NoError(t, err)
	assert.Equal(t, config.CampaignID, campaign.ID)
	assert.True(t, campaign.RouteType().Valid())

	pages := 0

	donations, err := client.Campaigns().Donations(ctx, config.CampaignID, func([]tiltify.Donation) {
		pages++
	})
	require.NoError(t, err)
	assert.Positive(t, pages)
	t.Logf("campaign %s (%s): %d donations over %d pages", campaign.Name, campaign.RouteType(), len(donations), pages)

	_, err = client.Campaigns().Rewards(ctx, config.CampaignID, nil)
	require.NoError(t, err)
}

func TestCauseWorkflow(t *testing.T) {
	client, config := newLiveClient(t)
	if config.CauseID == "" {
		t.Skip("TILTIFY_TEST_CAUSE_ID is required")
	}

	ctx := context.Background()

	cause, err := client.Causes().Get(ctx, config.CauseID)
	require.NoError(t, err)
	assert.Equal(t, config.CauseID, cause.ID)

	_, err = client.Causes().Leaderboards(ctx, config.CauseID, nil)
	require.NoError(t, err)

	err = client.Causes().Donations(ctx, config.CauseID)
	assert.True(t, tiltify.IsGone(err))
}

func TestCurrentUser(t *testing.T) {
	client, _ := newLiveClient(t)

	user, err := client.Users().CurrentUser(context.Background())
	if tiltify.IsUnauthorized(err) || tiltify.IsNotFound(err) {
		t.Skipf("current user not available to these credentials: %v", err)
	}

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}
