// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import "testing"

func TestGetMiss(t *testing.T) {
	c, err := New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(Key{Expression: "x"}); ok {
		t.Error("Get on an empty cache reported a hit")
	}
}

func TestPutThenGet(t *testing.T) {
	c, err := New[string](4)
	if err != nil {
		t.Fatal(err)
	}
	key := Key{Expression: `$x^2$`, FontSetID: "stix", PointSize: 12, DPI: 100, DefaultStyle: "it"}
	c.Put(key, "formula")

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get reported a miss for a key just Put")
	}
	if got != "formula" {
		t.Errorf("Get = %q, want %q", got, "formula")
	}
}

func TestGetDistinguishesKeyFields(t *testing.T) {
	c, err := New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	base := Key{Expression: `$x$`, FontSetID: "stix", PointSize: 12, DPI: 100, DefaultStyle: "it"}
	c.Put(base, 1)

	variants := []Key{
		{Expression: `$y$`, FontSetID: "stix", PointSize: 12, DPI: 100, DefaultStyle: "it"},
		{Expression: `$x$`, FontSetID: "dejavu", PointSize: 12, DPI: 100, DefaultStyle: "it"},
		{Expression: `$x$`, FontSetID: "stix", PointSize: 14, DPI: 100, DefaultStyle: "it"},
		{Expression: `$x$`, FontSetID: "stix", PointSize: 12, DPI: 72, DefaultStyle: "it"},
		{Expression: `$x$`, FontSetID: "stix", PointSize: 12, DPI: 100, DefaultStyle: "rm"},
	}
	for _, v := range variants {
		if _, ok := c.Get(v); ok {
			t.Errorf("Get(%+v) reported a hit, want a miss distinct from %+v", v, base)
		}
	}
}

func TestEvictionAtCapacity(t *testing.T) {
	c, err := New[int](2)
	if err != nil {
		t.Fatal(err)
	}
	c.Put(Key{Expression: "a"}, 1)
	c.Put(Key{Expression: "b"}, 2)
	c.Put(Key{Expression: "c"}, 3)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get(Key{Expression: "a"}); ok {
		t.Error("least recently used entry \"a\" was not evicted")
	}
	if _, ok := c.Get(Key{Expression: "c"}); !ok {
		t.Error("most recently added entry \"c\" was evicted")
	}
}

func TestPurge(t *testing.T) {
	c, err := New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	c.Put(Key{Expression: "a"}, 1)
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Purge, want 0", c.Len())
	}
}

func TestNewDefaultsCapacity(t *testing.T) {
	c, err := New[int](0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < DefaultCapacity+1; i++ {
		c.Put(Key{Expression: string(rune('a' + i%26)), PointSize: float64(i)}, i)
	}
	if c.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, want DefaultCapacity = %d", c.Len(), DefaultCapacity)
	}
}

func TestStats(t *testing.T) {
	c, err := New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	c.Put(Key{Expression: "a"}, 1)
	want := "1 / 4 entries"
	if got := c.Stats(4); got != want {
		t.Errorf("Stats(4) = %q, want %q", got, want)
	}
}
