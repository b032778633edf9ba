// Package resolve routes campaign operations to the user or team hierarchy.
package resolve

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// Operation names the two templates of a campaign operation. An empty
// template means the operation does not exist in that hierarchy.
type Operation struct {
	Name      string
	UserRoute string
	TeamRoute string
}

func (o Operation) route(routeType tiltify.RouteType) string {
	if routeType == tiltify.RouteTypeTeam {
		return o.TeamRoute
	}

	return o.UserRoute
}

// Call runs an operation against one template.
type Call func(ctx context.Context, template string) error

// Resolver picks templates for campaign ids and remembers which hierarchy
// each id belongs to.
type Resolver struct {
	cache  tiltify.RouteTypeCache
	logger tiltify.Logger
}

// New creates a resolver backed by cache.
func New(cache tiltify.RouteTypeCache, logger tiltify.Logger) *Resolver {
	if cache == nil {
		cache = tiltify.NewMemoryRouteTypeCache()
	}

	if logger == nil {
		logger = tiltify.NoopLogger{}
	}

	return &Resolver{cache: cache, logger: logger}
}

// Resolve runs call with the template for campaignID.
//
// For a known id only the matching template is used; when the operation has
// none, UnsupportedOperationError is returned without calling. For an unknown
// id the team template is tried first when both exist, and a 404 falls back
// to the user template. The hierarchy that answered is recorded. An empty
// campaignID is never looked up or recorded.
func (r *Resolver) Resolve(ctx context.Context, campaignID string, op Operation, call Call) (tiltify.RouteType, error) {
	known := r.lookup(ctx, campaignID)

	if known.Valid() {
		template := op.route(known)
		if template == "" {
			return known, &tiltify.UnsupportedOperationError{Operation: op.Name, RouteType: known}
		}

		return known, call(ctx, template)
	}

	primary, alternate := tiltify.RouteTypeTeam, tiltify.RouteTypeUser

	switch {
	case op.TeamRoute != "" && op.UserRoute != "":
	case op.TeamRoute != "":
		alternate = tiltify.RouteTypeUnknown
	case op.UserRoute != "":
		primary, alternate = tiltify.RouteTypeUser, tiltify.RouteTypeUnknown
	default:
		return tiltify.RouteTypeUnknown, &tiltify.UnsupportedOperationError{Operation: op.Name}
	}

	err := call(ctx, op.route(primary))
	if err == nil {
		r.record(ctx, campaignID, primary)

		return primary, nil
	}

	if !campaignNotFound(err) || alternate == tiltify.RouteTypeUnknown {
		return tiltify.RouteTypeUnknown, err
	}

	r.logger.Debug("Campaign not found in hierarchy, trying alternate", map[string]interface{}{
		"operation":   op.Name,
		"campaign_id": campaignID,
		"tried":       primary.String(),
	})

	err = call(ctx, op.route(alternate))
	if err != nil {
		return tiltify.RouteTypeUnknown, err
	}

	r.record(ctx, campaignID, alternate)

	return alternate, nil
}

// campaignNotFound reports whether err is an API 404 for the campaign route.
// A 404 from the token endpoint says nothing about the hierarchy.
func campaignNotFound(err error) bool {
	var authErr *tiltify.AuthError
	if errors.As(err, &authErr) {
		return false
	}

	return tiltify.IsNotFound(err)
}

// Classify reports the hierarchy a campaign payload names. A team marker wins
// over a user marker.
func Classify(campaign *tiltify.Campaign) tiltify.RouteType {
	if campaign == nil {
		return tiltify.RouteTypeUnknown
	}

	return campaign.RouteType()
}

// Observe records the hierarchy of a fetched campaign under its own id.
func (r *Resolver) Observe(ctx context.Context, campaign *tiltify.Campaign) {
	routeType := Classify(campaign)

	switch routeType {
	case tiltify.RouteTypeUser, tiltify.RouteTypeTeam:
		r.record(ctx, campaign.ID, routeType)
	case tiltify.RouteTypeUnknown:
	}
}

// Lookup returns the cached hierarchy of campaignID.
func (r *Resolver) Lookup(ctx context.Context, campaignID string) tiltify.RouteType {
	return r.lookup(ctx, campaignID)
}

func (r *Resolver) lookup(ctx context.Context, campaignID string) tiltify.RouteType {
	if campaignID == "" {
		return tiltify.RouteTypeUnknown
	}

	routeType, err := r.cache.Lookup(ctx, campaignID)
	if err != nil {
		r.logger.Warn("Route type lookup failed", map[string]interface{}{
			"campaign_id": campaignID,
			"error":       err.Error(),
		})

		return tiltify.RouteTypeUnknown
	}

	return routeType
}

func (r *Resolver) record(ctx context.Context, campaignID string, routeType tiltify.RouteType) {
	if campaignID == "" {
		return
	}

	err := r.cache.Record(ctx, campaignID, routeType)
	if err != nil {
		r.logger.Warn("Route type record failed", map[string]interface{}{
			"campaign_id": campaignID,
			"route_type":  routeType.String(),
			"error":       err.Error(),
		})

		return
	}

	r.logger.Debug("Recorded campaign route type", map[string]interface{}{
		"campaign_id": campaignID,
		"route_type":  routeType.String(),
	})
}
