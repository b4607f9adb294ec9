package wall

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tvwall/multiview/pkg/model"
)

type Resolver interface {
	ResolveLive(ctx context.Context, channelID string) (model.LiveResolution, error)
}

// Dispatcher runs the side effects an action needs and then reduces it.
type Dispatcher struct {
	resolver Resolver
}

func NewDispatcher(resolver Resolver) *Dispatcher {
	return &Dispatcher{resolver: resolver}
}

func (d *Dispatcher) Dispatch(ctx context.Context, state model.Wall, action Action) (model.Wall, error) {
	if action.Type == ActionToggleChannel {
		category, ch, err := catalogChannel(&state, action.Category, action.Index)
		if err != nil {
			return state, err
		}

		if category.LiveCheck && !ch.Selected {
			ref := ch.Ref()
			if !ref.NeedsResolution() {
				return state, errors.Wrapf(model.ErrInvalidAction, "%q has no channel id", ch.Name)
			}

			resolution, err := d.resolver.ResolveLive(ctx, ref.Identifier)
			if err != nil {
				return state, errors.Wrapf(err, "failed to check %q", ch.Name)
			}

			log.WithFields(log.Fields{
				"channel": ch.Name,
				"live":    resolution.IsLive(),
			}).Debug("live check for selection")

			action.Live = &resolution
		}
	} else {
		action.Live = nil
	}

	return Apply(state, action)
}

// CheckResult is the outcome of one channel in a CheckAll batch.
type CheckResult struct {
	Resolution model.LiveResolution
	Err        error
}

// CheckAll resolves channel ids with at most limit checks in flight.
// Duplicate ids are resolved once. A failing channel is reported in its own
// result; an error is returned only when ctx is done.
func CheckAll(ctx context.Context, resolver Resolver, ids []string, limit int) (map[string]CheckResult, error) {
	if limit <= 0 {
		limit = model.DefaultConcurrency
	}

	var (
		mu      sync.Mutex
		results = make(map[string]CheckResult, len(ids))
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		id := id
		group.Go(func() error {
			resolution, err := resolver.ResolveLive(ctx, id)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				log.WithError(err).WithField("channel_id", id).Warn("live check failed")
				err = errors.Wrapf(err, "failed to check channel %q", id)
			}

			mu.Lock()
			results[id] = CheckResult{Resolution: resolution, Err: err}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
