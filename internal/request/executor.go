// Package request performs authenticated API calls and cursor pagination.
package request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/tiltify-client/internal/auth"
	"github.com/fivetwenty-io/tiltify-client/internal/constants"
	tiltifyhttp "github.com/fivetwenty-io/tiltify-client/internal/http"
	"github.com/fivetwenty-io/tiltify-client/internal/route"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// Executor issues GET requests against route templates.
type Executor struct {
	transport tiltifyhttp.Doer
	router    *route.Router
	tokens    auth.TokenManager
	logger    tiltify.Logger
}

// NewExecutor creates an executor. A nil logger discards output.
func NewExecutor(transport tiltifyhttp.Doer, router *route.Router, tokens auth.TokenManager, logger tiltify.Logger) *Executor {
	if logger == nil {
		logger = tiltify.NoopLogger{}
	}

	return &Executor{
		transport: transport,
		router:    router,
		tokens:    tokens,
		logger:    logger,
	}
}

// Call performs one authenticated request and returns the envelope. The
// target is built before any network traffic. When the API answers 401 the
// token is dropped and the request is sent once more; a second 401 is
// returned as is.
func (e *Executor) Call(ctx context.Context, template string, params *tiltify.Params) (*tiltify.Envelope, error) {
	built, err := e.router.Build(template, params)
	if err != nil {
		return nil, err
	}

	return e.send(ctx, built, true)
}

func (e *Executor) send(ctx context.Context, built *route.Built, reattempt bool) (*tiltify.Envelope, error) {
	token, err := e.tokens.EnsureToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := e.transport.Do(ctx, &tiltifyhttp.Request{
		Method:   http.MethodGet,
		Path:     built.Path,
		RawQuery: built.RawQuery,
		Headers:  map[string]string{"Authorization": token.AuthorizationHeader()},
	})
	if err != nil {
		return nil, err
	}

	envelope := &tiltify.Envelope{}

	err = json.Unmarshal(resp.Body, envelope)
	if err != nil {
		return nil, &tiltify.TransportError{
			Method:     http.MethodGet,
			URL:        built.String(),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode envelope: %w", err),
		}
	}

	apiErr, err := classify(envelope, resp)
	if err != nil {
		return nil, err
	}

	if apiErr == nil {
		return envelope, nil
	}

	if apiErr.Status == http.StatusUnauthorized && reattempt {
		e.logger.Debug("Access token rejected, retrying with a fresh token", map[string]interface{}{
			"route": built.Template,
		})
		e.tokens.Invalidate()

		return e.send(ctx, built, false)
	}

	return nil, apiErr
}

// classify returns the API error carried by the response, if any. An error
// status without an error envelope is still an error.
func classify(envelope *tiltify.Envelope, resp *tiltifyhttp.Response) (*tiltify.APIError, error) {
	if envelope.HasError() {
		apiErr, err := envelope.APIError()
		if err != nil {
			return nil, err
		}

		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}

		return apiErr, nil
	}

	if resp.StatusCode < http.StatusBadRequest {
		return nil, nil
	}

	apiErr := &tiltify.APIError{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
		Fields:  map[string]interface{}{},
	}

	_ = json.Unmarshal(resp.Body, &apiErr.Fields)

	if message, ok := apiErr.Fields["message"].(string); ok && message != "" {
		apiErr.Message = message
	}

	return apiErr, nil
}

// walk is the pagination loop behind Collect and Pages. visit
// receives each list page and returns false to stop. The returned data is the
// first response's data when it is not a list or enumerate is off.
func (e *Executor) walk(ctx context.Context, template string, params *tiltify.Params, enumerate bool, visit func(page []json.RawMessage) bool) (json.RawMessage, bool, error) {
	current := params.Clone()

	for {
		envelope, err := e.Call(ctx, template, current)
		if err != nil {
			return nil, false, err
		}

		var page []json.RawMessage
		if json.Unmarshal(envelope.Data, &page) != nil || page == nil {
			return envelope.Data, false, nil
		}

		if !visit(page) || !enumerate {
			return envelope.Data, true, nil
		}

		cursor, ok := envelope.Metadata.Cursor()
		if len(page) == 0 || !ok {
			return nil, true, nil
		}

		e.logger.Debug("Following page cursor", map[string]interface{}{
			"route": template,
			"after": cursor,
		})

		current = current.Clone().
			Set(constants.ParamAfter, cursor).
			Set(constants.ParamLimit, constants.PageLimit)
	}
}
