package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fivetwenty-io/tiltify-client/internal/auth"
	"github.com/fivetwenty-io/tiltify-client/internal/constants"
	"github.com/fivetwenty-io/tiltify-client/internal/http"
	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/internal/resolve"
	"github.com/fivetwenty-io/tiltify-client/internal/route"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// Client implements the tiltify.Client interface.
type Client struct {
	httpClient     *http.Client
	tokenManager   auth.TokenManager
	executor       *request.Executor
	resolver       *resolve.Resolver
	routeTypeCache tiltify.RouteTypeCache
	logger         tiltify.Logger

	// ownsCache is set when the client built routeTypeCache from Config.Cache.
	ownsCache bool
	closeOnce sync.Once
	closeErr  error

	// Resource clients
	campaigns         *CampaignsClient
	causes            *CausesClient
	fundraisingEvents *FundraisingEventsClient
	teams             *TeamsClient
	users             *UsersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *tiltify.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	httpTimeout := constants.DefaultHTTPTimeout
	if config.HTTPTimeout > 0 {
		httpTimeout = config.HTTPTimeout
	}

	httpOpts = append(httpOpts, http.WithHTTPTimeout(httpTimeout))

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// getBaseURL returns the API host from config or the public default.
func getBaseURL(config *tiltify.Config) string {
	if config.BaseURL != "" {
		return strings.TrimSuffix(config.BaseURL, "/")
	}

	return constants.DefaultBaseURL
}

// getTokenURL returns token URL from config or derives it from the base URL.
func getTokenURL(config *tiltify.Config) string {
	if config.TokenURL != "" {
		return config.TokenURL
	}

	return getBaseURL(config) + constants.TokenPath
}

// createRouteTypeCache returns the configured cache, building one if needed.
// owned reports whether the cache was built here.
func createRouteTypeCache(ctx context.Context, config *tiltify.Config) (cache tiltify.RouteTypeCache, owned bool, err error) {
	if config.RouteTypeCache != nil {
		return config.RouteTypeCache, false, nil
	}

	cache, err = tiltify.NewCacheFromConfig(ctx, config.Cache)
	if err != nil {
		return nil, false, fmt.Errorf("creating route type cache: %w", err)
	}

	return cache, true, nil
}

// New creates a new Tiltify API client using the client_credentials grant.
func New(ctx context.Context, config *tiltify.Config) (*Client, error) {
	if config == nil {
		return nil, tiltify.ErrConfigRequired
	}

	if config.ClientID == "" {
		return nil, tiltify.ErrClientIDRequired
	}

	if config.ClientSecret == "" {
		return nil, tiltify.ErrClientSecretRequired
	}

	httpClient := http.NewClient(getBaseURL(config), createHTTPClientOptions(config)...)

	tokenManager := auth.NewClientCredentialsTokenManager(&auth.ClientCredentialsConfig{
		TokenURL:     getTokenURL(config),
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}, httpClient, auth.WithLogger(loggerOrNoop(config.Logger)))

	return newClient(ctx, config, httpClient, tokenManager)
}

// NewWithTokenManager creates a new Tiltify API client with a custom token manager.
func NewWithTokenManager(ctx context.Context, config *tiltify.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, tiltify.ErrConfigRequired
	}

	if tokenManager == nil {
		return nil, constants.ErrNoTokenManager
	}

	httpClient := http.NewClient(getBaseURL(config), createHTTPClientOptions(config)...)

	return newClient(ctx, config, httpClient, tokenManager)
}

func newClient(ctx context.Context, config *tiltify.Config, httpClient *http.Client, tokenManager auth.TokenManager) (*Client, error) {
	cache, owned, err := createRouteTypeCache(ctx, config)
	if err != nil {
		return nil, err
	}

	return assemble(config, httpClient, tokenManager, cache, owned), nil
}

func assemble(config *tiltify.Config, httpClient *http.Client, tokenManager auth.TokenManager, cache tiltify.RouteTypeCache, ownsCache bool) *Client {
	logger := loggerOrNoop(config.Logger)

	client := &Client{
		httpClient:     httpClient,
		tokenManager:   tokenManager,
		executor:       request.NewExecutor(httpClient, route.NewRouter(constants.APIPath), tokenManager, logger),
		resolver:       resolve.New(cache, logger),
		routeTypeCache: cache,
		logger:         logger,
		ownsCache:      ownsCache,
	}

	// Initialize resource clients
	client.campaigns = NewCampaignsClient(client.executor, client.resolver)
	client.causes = NewCausesClient(client.executor)
	client.fundraisingEvents = NewFundraisingEventsClient(client.executor)
	client.teams = NewTeamsClient(client.executor, client.campaigns)
	client.users = NewUsersClient(client.executor, client.campaigns)

	return client
}

func loggerOrNoop(logger tiltify.Logger) tiltify.Logger {
	if logger == nil {
		return tiltify.NoopLogger{}
	}

	return logger
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// RouteTypeCache returns the campaign hierarchy cache in use.
func (c *Client) RouteTypeCache() tiltify.RouteTypeCache {
	return c.routeTypeCache
}

// Close implements tiltify.Client.Close. It closes the route type cache only
// when the client built it from Config.Cache; a cache passed in through
// Config.RouteTypeCache belongs to the caller. Later calls return the first
// result.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if !c.ownsCache {
			return
		}

		closer, ok := c.routeTypeCache.(io.Closer)
		if !ok {
			return
		}

		err := closer.Close()
		if err != nil {
			c.closeErr = fmt.Errorf("closing route type cache: %w", err)

			return
		}

		c.logger.Debug("Closed route type cache", nil)
	})

	return c.closeErr
}

// Campaigns implements tiltify.Client.Campaigns.
func (c *Client) Campaigns() tiltify.CampaignsClient {
	return c.campaigns
}

// Causes implements tiltify.Client.Causes.
func (c *Client) Causes() tiltify.CausesClient {
	return c.causes
}

// FundraisingEvents implements tiltify.Client.FundraisingEvents.
func (c *Client) FundraisingEvents() tiltify.FundraisingEventsClient {
	return c.fundraisingEvents
}

// Teams implements tiltify.Client.Teams.
func (c *Client) Teams() tiltify.TeamsClient {
	return c.teams
}

// Users implements tiltify.Client.Users.
func (c *Client) Users() tiltify.UsersClient {
	return c.users
}
