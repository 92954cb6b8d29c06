package listview

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache keeps the last fetched collection per entity. Every mutation must
// Invalidate the entity so the next list render refetches from the server.
type Cache[T any] struct {
	lru *expirable.LRU[string, []T]

	mu    sync.Mutex
	hooks []func()
}

// NewCache returns a cache of up to size collections living ttl each.
// size <= 0 returns a disabled cache that never hits.
func NewCache[T any](size int, ttl time.Duration) *Cache[T] {
	if size <= 0 {
		return &Cache[T]{}
	}
	return &Cache[T]{lru: expirable.NewLRU[string, []T](size, nil, ttl)}
}

func (c *Cache[T]) Get(key string) ([]T, bool) {
	if c == nil || c.lru == nil {
		return nil, false
	}
	return c.lru.Get(key)
}

func (c *Cache[T]) Set(key string, items []T) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(key, items)
}

// Invalidate drops key and runs every OnInvalidate hook, also on a disabled cache.
func (c *Cache[T]) Invalidate(key string) {
	if c == nil {
		return
	}
	if c.lru != nil {
		c.lru.Remove(key)
	}

	c.mu.Lock()
	hooks := append([]func(){}, c.hooks...)
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// OnInvalidate registers fn to run after every Invalidate. Collections that embed
// rows of this entity register their Purge here.
func (c *Cache[T]) OnInvalidate(fn func()) {
	if c == nil || fn == nil {
		return
	}
	c.mu.Lock()
	c.hooks = append(c.hooks, fn)
	c.mu.Unlock()
}

// Purge drops every collection.
func (c *Cache[T]) Purge() {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Purge()
}
