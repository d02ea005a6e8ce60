// Package cache provides an optional Redis read-through cache for todo lists.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

const (
	keyListPrefix = "todo:list:"
	keyGenPrefix  = "todo:gen:"

	// genTTL must outlive any list load and any cached list.
	genTTL = 24 * time.Hour
)

// setIfGeneration stores the list only if the owner's write generation is
// still the one the caller read before loading from the store.
var setIfGeneration = redis.NewScript(`
local cur = redis.call('GET', KEYS[1]) or '0'
if cur ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// TodoCache stores each owner's full todo list under one key, guarded by a
// per-owner write generation.
type TodoCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb redis.Cmdable, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

type entry struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func listKey(ownerID uuid.UUID) string {
	return keyListPrefix + ownerID.String()
}

func genKey(ownerID uuid.UUID) string {
	return keyGenPrefix + ownerID.String()
}

// TTL is how long a stored list lives.
func (c *TodoCache) TTL() time.Duration {
	return c.ttl
}

// GetList returns the cached list. ok is false on a miss.
func (c *TodoCache) GetList(ctx context.Context, ownerID uuid.UUID) (todos []domain.Todo, ok bool, err error) {
	b, err := c.rdb.Get(ctx, listKey(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, fmt.Errorf("decode cached list: %w", err)
	}

	todos = make([]domain.Todo, 0, len(entries))
	for _, e := range entries {
		todos = append(todos, domain.Todo(e))
	}
	return todos, true, nil
}

// Generation returns the owner's write generation; 0 if none was recorded.
func (c *TodoCache) Generation(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

// SetList stores the owner's full, unfiltered list if no write has happened
// since gen was read. stored is false when the list was discarded.
func (c *TodoCache) SetList(ctx context.Context, ownerID uuid.UUID, gen int64, todos []domain.Todo) (stored bool, err error) {
	entries := make([]entry, 0, len(todos))
	for _, t := range todos {
		entries = append(entries, entry(t))
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return false, fmt.Errorf("encode list: %w", err)
	}

	n, err := setIfGeneration.Run(ctx, c.rdb,
		[]string{genKey(ownerID), listKey(ownerID)},
		strconv.FormatInt(gen, 10), b, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis set list: %w", err)
	}
	return n == 1, nil
}

// Invalidate bumps the owner's write generation and drops the cached list
// in one transaction. Loads that started earlier can no longer store.
func (c *TodoCache) Invalidate(ctx context.Context, ownerID uuid.UUID) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey(ownerID))
		pipe.Expire(ctx, genKey(ownerID), genTTL)
		pipe.Del(ctx, listKey(ownerID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}
