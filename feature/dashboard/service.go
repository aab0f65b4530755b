package dashboard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"treeboard/core/tree"
	"treeboard/feature/dashboard/providers"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cache is the development-mode tree cache the service consults before
// hitting the providers. Read returns nil on a miss; Write failures are
// logged and never fail a load. *treecache.Store satisfies it.
type Cache interface {
	Read(ctx context.Context) *tree.Tree
	Write(ctx context.Context, t *tree.Tree) error
}

// Service is the process-wide reload coordinator. It holds the current
// load job in a single atomically swapped slot: readers load the pointer
// and never block, writers race through compare-and-swap.
type Service struct {
	providers []providers.Provider
	cache     Cache // nil outside development mode
	cmp       tree.CompareFunc
	logger    *zap.Logger

	current atomic.Pointer[Job]
	events  *notifier
}

// NewService creates the coordinator. cache may be nil (production mode);
// cmp may be nil to use tree.ByStatusThenTitle.
func NewService(provs []providers.Provider, cache Cache, cmp tree.CompareFunc, logger *zap.Logger) *Service {
	if cmp == nil {
		cmp = tree.ByStatusThenTitle
	}
	return &Service{
		providers: provs,
		cache:     cache,
		cmp:       cmp,
		logger:    logger,
		events:    newNotifier(logger),
	}
}

// CurrentTree returns the visible tree of the current job, or the empty
// tree before the first invalidation. It never blocks and never fails.
func (s *Service) CurrentTree() *tree.Tree {
	return s.current.Load().VisibleTree()
}

// LastLoadTime returns when the current job started loading, or the zero
// time before the first invalidation.
func (s *Service) LastLoadTime() time.Time {
	if j := s.current.Load(); j != nil {
		return j.StartedAt()
	}
	return time.Time{}
}

// LastLoadDuration returns the current job's elapsed load time, or zero
// before the first invalidation.
func (s *Service) LastLoadDuration() time.Duration {
	if j := s.current.Load(); j != nil {
		return j.Duration()
	}
	return 0
}

// Subscribe registers fn to run after each successful reload and returns
// a subscription id for Unsubscribe. Handlers receive no payload; they
// re-read CurrentTree themselves.
func (s *Service) Subscribe(fn func()) int {
	return s.events.subscribe(fn)
}

// Unsubscribe removes a handler registered with Subscribe.
func (s *Service) Unsubscribe(id int) {
	s.events.unsubscribe(id)
}

// Invalidate replaces the current job with a fresh load and waits for it
// to resolve. It never returns an error: cancelled, quota-rejected, and
// failed loads all degrade to the previous tree and are reported through
// the logger only. The change notification fires only on success.
//
// Two concurrent Invalidate calls race on the compare-and-swap; the loser
// still awaits its own, now orphaned, job and will notify from that job's
// outcome even though the winner's tree is the one left visible. Callers
// observing a notification must re-read CurrentTree rather than assume
// their own refresh produced it.
func (s *Service) Invalidate(ctx context.Context, force bool) {
	old := s.current.Load()

	var fallback *tree.Tree
	if old != nil {
		fallback = old.VisibleTree()
	}

	job := startJob(fallback, s.loader(force))
	if !s.current.CompareAndSwap(old, job) {
		s.logger.Debug("lost invalidation race, awaiting orphaned job")
	}
	if old != nil {
		// Cancel the superseded load regardless of the swap outcome.
		old.Cancel()
	}

	err := job.Await(ctx)
	switch classify(err) {
	case outcomeSucceeded:
		s.logger.Info("tree reloaded",
			zap.Int("roots", len(job.VisibleTree().Roots)),
			zap.Int("nodes", job.VisibleTree().NodeCount()),
			zap.Duration("took", job.Duration()),
			zap.Bool("forced", force),
		)
		s.events.publish()
	case outcomeCancelled:
		s.logger.Debug("tree reload superseded", zap.Duration("after", job.Duration()))
	case outcomeQuotaExceeded:
		s.logger.Warn("tree reload hit upstream quota, serving previous tree", zap.Error(err))
	case outcomeFailed:
		s.logger.Error("tree reload failed, serving previous tree", zap.Error(err))
	}
}

// loader builds the tree production function for one job. force always
// goes to the providers; otherwise the development cache, when present,
// short-circuits the fetch and gets refreshed on a miss.
func (s *Service) loader(force bool) Loader {
	return func(ctx context.Context) (*tree.Tree, error) {
		if !force && s.cache != nil {
			if cached := s.cache.Read(ctx); cached != nil && !cached.IsEmpty() {
				return cached, nil
			}
		}

		fresh, err := s.fetchAll(ctx)
		if err != nil {
			return nil, err
		}

		if !force && s.cache != nil {
			if err := s.cache.Write(ctx, fresh); err != nil {
				s.logger.Warn("failed to write tree cache", zap.Error(err))
			}
		}
		return fresh, nil
	}
}

// fetchAll queries every provider concurrently and merges the partial
// forests in provider order. The first failure cancels the remaining
// fetches through the group context.
func (s *Service) fetchAll(ctx context.Context) (*tree.Tree, error) {
	g, ctx := errgroup.WithContext(ctx)
	partials := make([]*tree.Tree, len(s.providers))

	for i, p := range s.providers {
		i, p := i, p
		g.Go(func() error {
			partial, err := p.FetchPartialTree(ctx)
			if err != nil {
				return fmt.Errorf("provider %s: %w", p.Name(), err)
			}
			partials[i] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return tree.Merge(s.cmp, partials...), nil
}
