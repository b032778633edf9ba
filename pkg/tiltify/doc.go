// Package tiltify provides types, interfaces, and helpers for working with the
// Tiltify v5 public API.
//
// # Overview
//
// The tiltify package defines the domain types (e.g., Campaign, Cause, Team,
// Donation) and the interfaces for resource-oriented clients (e.g.,
// CampaignsClient, CausesClient). A concrete implementation is provided by the
// tiltifyclient package, which wires configuration, transport, and
// authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/tiltify-client/pkg/tiltifyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := tiltifyclient.NewWithClientCredentials(ctx, "client-id", "client-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  donations, err := cli.Campaigns().Donations(ctx, "campaign-id", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = donations
//	}
//
// # Pagination
//
// List operations follow the "after" cursor until the API stops returning
// one, and return every item in server order. Pass a PageObserver to see each
// page as it arrives:
//
//	_, err := cli.Campaigns().Donations(ctx, id, func(page []tiltify.Donation) {
//	  log.Printf("got %d donations", len(page))
//	})
//
// # Campaign hierarchies
//
// A campaign belongs either to a user or to a team, and the API exposes the
// two under different paths. Campaign operations take only the id: the client
// tries the team path, falls back to the user path on 404, and records the
// answer in a RouteTypeCache. Operations that only exist for one hierarchy
// fail with UnsupportedOperationError, without a request, once the campaign
// is known to belong to the other.
//
// # Errors
//
// Error envelopes are returned as *APIError. Helpers such as IsNotFound,
// IsUnauthorized and IsGone branch on common cases. Network failures and
// non-JSON bodies are *TransportError; a failed credential exchange is
// *AuthError. Operations removed from the v5 API fail with a 410 APIError.
package tiltify
