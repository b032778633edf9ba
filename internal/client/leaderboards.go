package client

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/fivetwenty-io/tiltify-client/internal/request"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"golang.org/x/sync/errgroup"
)

// fetchLeaderboards fetches the individual and team leaderboards
// concurrently. The first failure cancels the other fetch and is returned.
// observer sees pages of both lists as they arrive, never two at once.
func fetchLeaderboards(ctx context.Context, executor *request.Executor, individualRoute, teamRoute, param, id string, observer tiltify.PageObserver[tiltify.LeaderboardEntry]) (*tiltify.Leaderboards, error) {
	group, ctx := errgroup.WithContext(ctx)
	result := &tiltify.Leaderboards{}
	observe := serialized(observer)

	group.Go(func() error {
		entries, err := request.Collect(ctx, executor, individualRoute, tiltify.NewParams(param, id), true, observe)
		if err != nil {
			return err
		}

		result.Individual = entries

		return nil
	})

	group.Go(func() error {
		entries, err := request.Collect(ctx, executor, teamRoute, tiltify.NewParams(param, id), true, observe)
		if err != nil {
			return err
		}

		result.Team = entries

		return nil
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return result, nil
}

// serialized guards observer with a mutex. A nil observer stays nil.
func serialized[T any](observer tiltify.PageObserver[T]) tiltify.PageObserver[T] {
	if observer == nil {
		return nil
	}

	var mu sync.Mutex

	return func(page []T) {
		mu.Lock()
		defer mu.Unlock()

		observer(page)
	}
}

// wrapPages prefixes the error of a page stream with action.
func wrapPages[T any](pages iter.Seq2[[]T, error], action string) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for page, err := range pages {
			if err != nil {
				yield(nil, fmt.Errorf("%s: %w", action, err))

				return
			}

			if !yield(page, nil) {
				return
			}
		}
	}
}

// gone is returned by operations removed from the v5 API.
func gone() error {
	return tiltify.ErrGone()
}
