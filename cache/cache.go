// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements the bounded formula cache described in
// spec §5: a fixed-capacity, process-local memoization of parsed and
// packed formulas keyed by the inputs that determine their layout.
package cache // import "github.com/go-mathtex/mathtex/cache"

import (
	"fmt"
	"hash/fnv"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the number of entries the cache holds before
// evicting the least recently used one (spec §5, "at most 50 distinct
// formulas").
const DefaultCapacity = 50

// Key identifies a cache entry: the exact inputs a Formula's layout
// depends on. Two requests with equal keys always produce byte-equal
// draw lists (spec §8 property 2).
type Key struct {
	Expression   string
	FontSetID    string
	PointSize    float64
	DPI          float64
	DefaultStyle string
}

func (k Key) hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%s\x00%g\x00%g\x00%s", k.Expression, k.FontSetID, k.PointSize, k.DPI, k.DefaultStyle)
	return h.Sum64()
}

// Cache is a bounded LRU store from Key to an arbitrary built
// Formula value V, safe for concurrent use by virtue of the
// underlying lru.Cache's own locking.
type Cache[V any] struct {
	lru *lru.Cache[uint64, entry[V]]
}

type entry[V any] struct {
	key   Key
	value V
}

// New returns a Cache holding at most capacity entries; capacity <= 0
// selects DefaultCapacity.
func New[V any](capacity int) (*Cache[V], error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l, err := lru.New[uint64, entry[V]](capacity)
	if err != nil {
		return nil, fmt.Errorf("mathtex/cache: %w", err)
	}
	return &Cache[V]{lru: l}, nil
}

// Get returns the cached value for key, if present. A hash collision
// between two distinct keys is treated as a miss rather than
// misattributing one formula's layout to another's request.
func (c *Cache[V]) Get(key Key) (V, bool) {
	e, ok := c.lru.Get(key.hash())
	if !ok || e.key != key {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, evicting the least recently used entry
// if the cache is at capacity.
func (c *Cache[V]) Put(key Key, value V) {
	c.lru.Add(key.hash(), entry[V]{key: key, value: value})
}

// Len returns the number of entries currently cached.
func (c *Cache[V]) Len() int { return c.lru.Len() }

// Purge discards every cached entry.
func (c *Cache[V]) Purge() { c.lru.Purge() }

// Stats reports a human-readable cache occupancy summary, e.g. for
// diagnostic logging.
func (c *Cache[V]) Stats(capacity int) string {
	return fmt.Sprintf("%s / %s entries", humanize.Comma(int64(c.lru.Len())), humanize.Comma(int64(capacity)))
}
