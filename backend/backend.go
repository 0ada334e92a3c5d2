// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package backend defines the sink contract a rendering backend must
// satisfy to consume a Formula's flat draw list; font loading and
// glyph rasterization are the backend's own concern, not the layout
// core's (spec §6.3).
package backend // import "github.com/go-mathtex/mathtex/backend"

import (
	"fmt"

	"github.com/go-mathtex/mathtex/ship"
)

// Backend is the capability set a formula is rendered against.
type Backend interface {
	SetCanvasSize(width, height, depth, dpi float64)
	Render(glyphs []ship.Glyph, rects []ship.Rect)
	Save(filename, format string) error
}

// UnavailableError reports a save format the selected backend cannot
// produce; fatal to Save only (spec §7).
type UnavailableError struct {
	Backend string
	Format  string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("mathtex/backend: %s backend cannot save format %q", e.Backend, e.Format)
}
