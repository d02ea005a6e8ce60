package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

// loadTimeout bounds a shared list load. The load runs detached from the
// request that started it, so one caller leaving does not fail the others.
const loadTimeout = 5 * time.Second

// todoStore mirrors the store the todo service depends on.
type todoStore interface {
	Insert(ctx context.Context, t *domain.Todo) (*domain.Todo, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error)
	UpdateByIDForOwner(ctx context.Context, ownerID uuid.UUID, t *domain.Todo) (*domain.Todo, error)
	DeleteByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}

type listCache interface {
	GetList(ctx context.Context, ownerID uuid.UUID) ([]domain.Todo, bool, error)
	Generation(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SetList(ctx context.Context, ownerID uuid.UUID, gen int64, todos []domain.Todo) (bool, error)
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
	TTL() time.Duration
}

// CachedStore decorates a todo store with a per-owner list cache.
//
// Every write bumps the owner's generation before returning, and a load
// only stores its list if the generation it read first is unchanged, so a
// list read before a write is never cached after it. If invalidation fails
// the owner bypasses the cache until any list stored before the write has
// expired. Cache failures are logged and never fail a request.
type CachedStore struct {
	next  todoStore
	cache listCache
	log   *slog.Logger
	sf    singleflight.Group
	now   func() time.Time

	mu       sync.Mutex
	bypassTo map[uuid.UUID]time.Time
}

// NewCachedStore wraps next with cache.
func NewCachedStore(log *slog.Logger, next todoStore, cache listCache) *CachedStore {
	return &CachedStore{
		next:     next,
		cache:    cache,
		log:      log.With("component", "todo_cache"),
		now:      time.Now,
		bypassTo: make(map[uuid.UUID]time.Time),
	}
}

// GetByIDForOwner is not cached.
func (s *CachedStore) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domain.Todo, error) {
	return s.next.GetByIDForOwner(ctx, ownerID, id)
}

// ListForOwner serves the owner's list from cache, filtering in memory.
// Concurrent misses for the same owner share one store query; each caller
// still returns as soon as its own ctx is done.
func (s *CachedStore) ListForOwner(ctx context.Context, ownerID uuid.UUID, filter domain.TodoFilter) ([]domain.Todo, error) {
	if s.bypassed(ownerID) {
		return s.next.ListForOwner(ctx, ownerID, filter)
	}

	ch := s.sf.DoChan(ownerID.String(), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return s.load(loadCtx, ownerID)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	all := res.Val.([]domain.Todo)
	out := make([]domain.Todo, 0, len(all))
	for _, t := range all {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *CachedStore) load(ctx context.Context, ownerID uuid.UUID) ([]domain.Todo, error) {
	owner := slog.String("user_id", ownerID.String())

	if todos, ok, err := s.cache.GetList(ctx, ownerID); err != nil {
		s.log.WarnContext(ctx, "cache read failed", owner, slog.Any("error", err))
	} else if ok {
		return todos, nil
	}

	// Read the generation before the store so a write that lands in
	// between makes the store result unstorable.
	gen, genErr := s.cache.Generation(ctx, ownerID)
	if genErr != nil {
		s.log.WarnContext(ctx, "cache generation read failed", owner, slog.Any("error", genErr))
	}

	todos, err := s.next.ListForOwner(ctx, ownerID, domain.TodoFilter{})
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return todos, nil
	}

	stored, err := s.cache.SetList(ctx, ownerID, gen, todos)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "cache write failed", owner, slog.Any("error", err))
	case !stored:
		s.log.DebugContext(ctx, "cache write skipped after concurrent write", owner)
	}
	return todos, nil
}

// Insert stores t and invalidates the owner's list.
func (s *CachedStore) Insert(ctx context.Context, t *domain.Todo) (*domain.Todo, error) {
	out, err := s.next.Insert(ctx, t)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, t.OwnerID)
	return out, nil
}

// UpdateByIDForOwner updates t and invalidates the owner's list.
func (s *CachedStore) UpdateByIDForOwner(ctx context.Context, ownerID uuid.UUID, t *domain.Todo) (*domain.Todo, error) {
	out, err := s.next.UpdateByIDForOwner(ctx, ownerID, t)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return out, nil
}

// DeleteByIDForOwner deletes the todo and invalidates the owner's list.
func (s *CachedStore) DeleteByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.next.DeleteByIDForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *CachedStore) invalidate(ctx context.Context, ownerID uuid.UUID) {
	// Later readers must start a fresh load rather than join one that may
	// have read the store before this write.
	s.sf.Forget(ownerID.String())

	if err := s.cache.Invalidate(context.WithoutCancel(ctx), ownerID); err != nil {
		until := s.now().Add(s.cache.TTL())
		s.mu.Lock()
		s.bypassTo[ownerID] = until
		s.mu.Unlock()

		s.log.WarnContext(ctx, "cache invalidate failed, bypassing cache",
			slog.String("user_id", ownerID.String()),
			slog.Time("until", until),
			slog.Any("error", err),
		)
	}
}

func (s *CachedStore) bypassed(ownerID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.bypassTo[ownerID]
	if !ok {
		return false
	}
	if s.now().Before(until) {
		return true
	}
	delete(s.bypassTo, ownerID)
	return false
}
