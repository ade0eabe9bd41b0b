package places

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"vedic-backend/internal/state"
)

// MinQueryLength is the shortest query that reaches the geocoder.
const MinQueryLength = 3

// Searcher ranks places for a query.
type Searcher interface {
	Search(query string, limit int) []Place
}

// Service fronts a Searcher with a TTL cache and coalesces concurrent
// lookups for the same query.
type Service struct {
	search Searcher
	limit  int
	cache  *state.Cache[[]Place]
	group  singleflight.Group
	log    *zap.Logger
}

// NewService creates a new place lookup service
func NewService(search Searcher, limit int, ttl time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if limit <= 0 {
		limit = 7
	}
	return &Service{
		search: search,
		limit:  limit,
		cache:  state.NewCache[[]Place](ttl),
		log:    log,
	}
}

// Cache exposes the underlying cache, mainly for tests.
func (s *Service) Cache() *state.Cache[[]Place] {
	return s.cache
}

// Lookup returns ranked places for q. Short queries and a cancelled
// context yield an empty list.
func (s *Service) Lookup(ctx context.Context, q string) ([]Place, error) {
	key := strings.ToLower(strings.TrimSpace(q))
	if len(key) < MinQueryLength {
		return []Place{}, nil
	}
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	ch := s.group.DoChan(key, func() (interface{}, error) {
		found := s.search.Search(key, s.limit)
		s.cache.Set(key, found)
		s.log.Debug("place lookup", zap.String("query", key), zap.Int("results", len(found)))
		return found, nil
	})

	select {
	case <-ctx.Done():
		return []Place{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return []Place{}, res.Err
		}
		return res.Val.([]Place), nil
	}
}

// First returns the best match for q, if any.
func (s *Service) First(ctx context.Context, q string) (Place, bool, error) {
	found, err := s.Lookup(ctx, q)
	if err != nil || len(found) == 0 {
		return Place{}, false, err
	}
	return found[0], true, nil
}
