// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtex // import "github.com/go-mathtex/mathtex"

import (
	"github.com/go-mathtex/mathtex/cache"
	"github.com/go-mathtex/mathtex/font"
)

// NewCached is New, memoized in store under a key built from every
// input that determines the formula's layout (spec §5 "Formula
// cache"). A cache hit returns the previously built Formula without
// re-parsing or re-packing.
func NewCached(store *cache.Cache[*Formula], fontSetID, expression string, provider font.Provider, pointSize, dpi float64, defaultStyle string) (*Formula, error) {
	key := cache.Key{
		Expression:   expression,
		FontSetID:    fontSetID,
		PointSize:    pointSize,
		DPI:          dpi,
		DefaultStyle: defaultStyle,
	}
	if f, ok := store.Get(key); ok {
		return f, nil
	}
	f, err := New(expression, provider, pointSize, dpi, defaultStyle)
	if err != nil {
		return nil, err
	}
	store.Put(key, f)
	return f, nil
}
