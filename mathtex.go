// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtex is the facade over the parser, box-and-glue layout
// engine and shipper: it turns a LaTeX-like math expression into a
// flat list of positioned glyphs and filled rectangles, ready to hand
// to a Backend.
package mathtex // import "github.com/go-mathtex/mathtex"

import (
	"fmt"

	"github.com/go-mathtex/mathtex/ast"
	"github.com/go-mathtex/mathtex/backend"
	"github.com/go-mathtex/mathtex/box"
	"github.com/go-mathtex/mathtex/font"
	"github.com/go-mathtex/mathtex/parser"
	"github.com/go-mathtex/mathtex/ship"
)

// DefaultPointSize, DefaultDPI and DefaultStyle mirror spec §6.1's
// Formula::new defaults.
const (
	DefaultPointSize = 12.0
	DefaultDPI       = 100.0
	DefaultStyle     = "it"
)

// Formula is a parsed, packed expression: its root Hlist is immutable
// once built (spec §3 "Lifecycle").
type Formula struct {
	root        *box.Hlist
	provider    font.Provider
	ptSize, dpi float64
	diagnostics []string
}

// New parses expression, lowers it against provider's metrics at
// pointSize/dpi, and packs it into a root Hlist. defaultStyle selects
// the font alias applied in math mode when no explicit font switch is
// in effect ("rm", "it", or "bf" per spec §6.1).
func New(expression string, provider font.Provider, pointSize, dpi float64, defaultStyle string) (*Formula, error) {
	if pointSize <= 0 {
		pointSize = DefaultPointSize
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if defaultStyle == "" {
		defaultStyle = DefaultStyle
	}

	tree, err := parser.Parse(expression)
	if err != nil {
		return nil, err
	}
	top, ok := tree.(ast.List)
	if !ok {
		top = ast.List{tree}
	}

	l := newLowerer(provider, defaultStyle)
	var children []box.Node
	for _, item := range top {
		switch it := item.(type) {
		case ast.List:
			nodes, err := l.lowerVerbatim(it, pointSize, dpi)
			if err != nil {
				return nil, err
			}
			children = append(children, nodes...)
		case *ast.MathExpr:
			st := state{style: defaultStyle, ptSize: pointSize, dpi: dpi}
			nodes, err := l.lowerMathList(it.List, st)
			if err != nil {
				return nil, err
			}
			hl, diag := box.NewHlist(nodes, true)
			if diag != nil {
				l.warnf("%s", diag)
			}
			children = append(children, hl)
		default:
			return nil, fmt.Errorf("mathtex: internal: unexpected top-level node %T", item)
		}
	}

	root, diag := box.NewHlist(children, true)
	if diag != nil {
		l.warnf("%s", diag)
	}

	return &Formula{
		root:        root,
		provider:    provider,
		ptSize:      pointSize,
		dpi:         dpi,
		diagnostics: l.diags,
	}, nil
}

// Width, Height and Depth report the packed formula's extent in
// points (spec §6.1).
func (f *Formula) Width() float64  { return f.root.List.Box.Width }
func (f *Formula) Height() float64 { return f.root.List.Box.Height }
func (f *Formula) Depth() float64  { return f.root.List.Box.Depth }

// Diagnostics reports non-fatal warnings accumulated while building
// the formula (missing glyphs, overfull/underfull boxes; spec §7).
func (f *Formula) Diagnostics() []string { return f.diagnostics }

func (f *Formula) glyphInfo(c *box.Char) ship.GlyphMetrics {
	r, err := box.ResolveSymbol(c.Symbol, c.Math)
	if err != nil {
		r = 0
	}
	return ship.GlyphMetrics{
		Xmin: 0,
		Xmax: c.Width,
		Ymin: -c.Height,
		Ymax: c.Depth,
		Info: ship.GlyphInfo{Rune: r, Alias: string(c.Alias), PtSize: c.PtSize},
	}
}

// DrawList ships the packed tree into its flat draw list, re-shipped
// once so the leftmost ink sits at x = 0 (spec §4.3).
func (f *Formula) DrawList() ship.Result {
	first := ship.Ship(f.root, 0, 0, f.glyphInfo)
	if first.BBox.Empty {
		return first
	}
	return ship.Ship(f.root, -first.BBox.XMin, 0, f.glyphInfo)
}

// Render pushes the formula's canvas size and draw list to b, per the
// backend contract of spec §6.3.
func (f *Formula) Render(b backend.Backend) error {
	b.SetCanvasSize(f.Width(), f.Height(), f.Depth(), f.dpi)
	dl := f.DrawList()
	b.Render(dl.Glyphs, dl.Rects)
	return nil
}

// Save is a convenience wrapper combining Render and Backend.Save.
func (f *Formula) Save(b backend.Backend, filename, format string) error {
	if err := f.Render(b); err != nil {
		return err
	}
	return b.Save(filename, format)
}
