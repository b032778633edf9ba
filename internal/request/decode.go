package request

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// Get performs a single call and decodes its data into T.
func Get[T any](ctx context.Context, executor *Executor, template string, params *tiltify.Params) (*T, error) {
	envelope, err := executor.Call(ctx, template, params)
	if err != nil {
		return nil, err
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, tiltify.ErrEmptyResponse
	}

	var result T

	err = json.Unmarshal(envelope.Data, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", template, err)
	}

	return &result, nil
}

// Collect runs a list request and decodes every page into T. observer, if
// set, sees each decoded page as it arrives. With enumerate off only the
// first page is fetched.
func Collect[T any](ctx context.Context, executor *Executor, template string, params *tiltify.Params, enumerate bool, observer tiltify.PageObserver[T]) ([]T, error) {
	items := []T{}

	err := walkPages(ctx, executor, template, params, enumerate, func(page []T) bool {
		items = append(items, page...)

		if observer != nil {
			observer(page)
		}

		return true
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Pages returns the decoded pages of a list as a lazy sequence. Each page is
// requested when the consumer asks for it; stopping early issues no further
// requests. A failure is yielded once, as the last element.
func Pages[T any](ctx context.Context, executor *Executor, template string, params *tiltify.Params) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		stopped := false

		err := walkPages(ctx, executor, template, params, true, func(page []T) bool {
			stopped = !yield(page, nil)

			return !stopped
		})
		if err != nil && !stopped {
			yield(nil, err)
		}
	}
}

// walkPages drives the executor's pagination loop and decodes each list page
// into T before handing it to visit. Data that is not a list is an error.
func walkPages[T any](ctx context.Context, executor *Executor, template string, params *tiltify.Params, enumerate bool, visit func(page []T) bool) error {
	var decodeErr error

	decoded := 0

	_, list, err := executor.walk(ctx, template, params, enumerate, func(raw []json.RawMessage) bool {
		page := make([]T, len(raw))

		for i, item := range raw {
			err := json.Unmarshal(item, &page[i])
			if err != nil {
				decodeErr = fmt.Errorf("failed to decode %s item %d: %w", template, decoded+i, err)

				return false
			}
		}

		decoded += len(page)

		return visit(page)
	})

	switch {
	case err != nil:
		return err
	case decodeErr != nil:
		return decodeErr
	case !list:
		return fmt.Errorf("%s: %w", template, tiltify.ErrNotPaginated)
	}

	return nil
}
