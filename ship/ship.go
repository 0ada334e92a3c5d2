// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ship implements TeX's final pass, converting a packed
// box.Node tree into a flat list of absolute-positioned glyphs and
// filled rectangles plus their bounding box.
package ship // import "github.com/go-mathtex/mathtex/ship"

import (
	"fmt"
	"math"

	"github.com/go-mathtex/mathtex/box"
)

// clampBound is the absolute value each glue's stretch or shrink
// amount is clamped to before it is accumulated, guarding against
// arithmetic overflow on pathological glue ratios (spec §4.3).
const clampBound = 1e9

// Glyph is one positioned glyph; Info is opaque to this package,
// sourced from the font provider that produced the box.Char.
type Glyph struct {
	X, Y float64
	Info interface{}
}

// GlyphInfo is the concrete Glyph.Info payload produced by the
// GlyphInfoFunc implementations in this module; backends that know
// about fonts (backend/raster, backend/svg, backend/pdf) type-assert
// to it to know which rune, in which font alias, at which size, to
// paint.
type GlyphInfo struct {
	Rune   rune
	Alias  string
	PtSize float64
}

// Rect is an axis-aligned filled rectangle in backend coordinates.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// BBox is an ink bounding box; Empty reports whether anything was
// emitted at all.
type BBox struct {
	XMin, YMin, XMax, YMax float64
	Empty                  bool
}

func emptyBBox() BBox {
	return BBox{
		XMin: math.Inf(1), YMin: math.Inf(1),
		XMax: math.Inf(-1), YMax: math.Inf(-1),
		Empty: true,
	}
}

func (b *BBox) expand(x1, y1, x2, y2 float64) {
	b.Empty = false
	b.XMin = math.Min(b.XMin, x1)
	b.YMin = math.Min(b.YMin, y1)
	b.XMax = math.Max(b.XMax, x2)
	b.YMax = math.Max(b.YMax, y2)
}

// GlyphMetrics is the subset of font.Metrics the shipper needs to
// extend the bounding box and report a glyph's own info handle;
// supplied per-Char by the caller's metrics lookup via GlyphInfoFunc.
type GlyphMetrics struct {
	Xmin, Ymin, Xmax, Ymax float64
	Info                   interface{}
}

// GlyphInfoFunc resolves a box.Char into the metrics/handle the
// shipper needs; this keeps ship decoupled from the font package's
// provider interface shape while still letting each emitted glyph
// carry the caller's opaque handle.
type GlyphInfoFunc func(c *box.Char) GlyphMetrics

// Result is the flat draw list produced by Ship.
type Result struct {
	Glyphs []Glyph
	Rects  []Rect
	BBox   BBox
}

type shipper struct {
	glyphInfo GlyphInfoFunc
	glyphs    []Glyph
	rects     []Rect
	bbox      BBox
}

// Ship traverses root (must be an *box.Hlist) and produces the flat
// draw list. Running an identical Ship call twice over the same tree
// produces identical output (spec §8 property 2) since the traversal
// never mutates the tree.
func Ship(root *box.Hlist, ox, oy float64, glyphInfo GlyphInfoFunc) Result {
	s := &shipper{glyphInfo: glyphInfo, bbox: emptyBBox()}
	s.hlistOut(root, 0, 0, ox, oy)
	return Result{Glyphs: s.glyphs, Rects: s.rects, BBox: s.bbox}
}

func clamp(v float64) float64 {
	if v > clampBound {
		return clampBound
	}
	if v < -clampBound {
		return -clampBound
	}
	return v
}

// hlistOut emits children of h from left to right, starting at
// (curH, curV) with page offset (offH, offV).
func (s *shipper) hlistOut(h *box.Hlist, curH, curV, offH, offV float64) {
	baseLine := curV
	l := &h.List

	for _, n := range l.Children {
		switch node := n.(type) {
		case *box.Char:
			s.emitChar(node, curH, curV, offH, offV)
			curH += node.Width

		case *box.Accent:
			s.emitChar(&node.Char, curH, curV, offH, offV)
			curH += node.Char.Width

		case *box.Kern:
			curH += node.Width

		case *box.Box:
			// A bare Box reaching hlist_out carries no glyph or ink of
			// its own (spec §9 open question on the source's
			// "baseline"/"base_line" mismatch); treat it as inert
			// spacing at the list baseline.
			curH += node.Width

		case *box.Rule:
			w, ht, d := resolveRule(node, l.Box.Width, l.Box.Height, l.Box.Depth)
			s.emitRect(curH, curV, w, ht, d, offH, offV)
			curH += w

		case *box.Hlist:
			s.hlistOut(node, curH, baseLine+node.List.Shift, offH, offV)
			curH += node.List.Box.Width

		case *box.Vlist:
			s.vlistOut(node, curH, baseLine+node.List.Shift, offH, offV)
			curH += node.List.Box.Width

		case *box.AutoHeightChar:
			s.hlistOut(&node.Hlist, curH, baseLine+node.Hlist.List.Shift, offH, offV)
			curH += node.Hlist.List.Box.Width

		case *box.AutoWidthChar:
			s.hlistOut(&node.Hlist, curH, baseLine+node.Hlist.List.Shift, offH, offV)
			curH += node.Hlist.List.Box.Width

		case *box.SubSuperCluster:
			s.hlistOut(&node.Hlist, curH, baseLine+node.Hlist.List.Shift, offH, offV)
			curH += node.Hlist.List.Box.Width

		case *box.Glue:
			curH += s.glueAdvance(node, l)

		default:
			panic(fmt.Errorf("ship: unhandled node type %T in hlist_out", n))
		}
	}
}

// vlistOut is hlist_out's vertical analogue; a bare Char reaching here
// is a fatal internal-invariant violation (spec §7, §8 property 8).
func (s *shipper) vlistOut(v *box.Vlist, curH, curV, offH, offV float64) {
	l := &v.List
	// curV arrives at the list's baseline; children are laid out from its top.
	curV -= l.Box.Height

	for _, n := range l.Children {
		switch node := n.(type) {
		case *box.Char:
			panic("ship: Char node in vlist_out")

		case *box.Accent:
			panic("ship: Accent node in vlist_out")

		case *box.Kern:
			curV += node.Width

		case *box.Box:
			// A bare Box (e.g. Genfrac's spacers) is inert vertical spacing.
			curV += node.Height + node.Depth

		case *box.Rule:
			w, ht, d := resolveRule(node, l.Box.Width, l.Box.Height, l.Box.Depth)
			curV += ht
			s.emitRect(curH, curV-ht, w, ht, d, offH, offV)
			curV += d

		case *box.Hlist:
			curV += node.List.Box.Height
			s.hlistOut(node, curH+node.List.Shift, curV, offH, offV)
			curV += node.List.Box.Depth

		case *box.Vlist:
			curV += node.List.Box.Height
			s.vlistOut(node, curH+node.List.Shift, curV, offH, offV)
			curV += node.List.Box.Depth

		case *box.AutoHeightChar:
			curV += node.Hlist.List.Box.Height
			s.hlistOut(&node.Hlist, curH+node.Hlist.List.Shift, curV, offH, offV)
			curV += node.Hlist.List.Box.Depth

		case *box.AutoWidthChar:
			curV += node.Hlist.List.Box.Height
			s.hlistOut(&node.Hlist, curH+node.Hlist.List.Shift, curV, offH, offV)
			curV += node.Hlist.List.Box.Depth

		case *box.Glue:
			curV += s.glueAdvanceV(node, l)

		default:
			panic(fmt.Errorf("ship: unhandled node type %T in vlist_out", n))
		}
	}
}

func (s *shipper) emitChar(c *box.Char, curH, curV, offH, offV float64) {
	gm := s.glyphInfo(c)
	x, y := curH+offH, curV+offV
	s.glyphs = append(s.glyphs, Glyph{X: x, Y: y, Info: gm.Info})
	s.bbox.expand(x+gm.Xmin, y+gm.Ymin, x+gm.Xmax, y+gm.Ymax)
}

func (s *shipper) emitRect(curH, curV, w, height, depth, offH, offV float64) {
	if w > 0 && height+depth > 0 {
		x1, y1 := curH+offH, curV-height+offV
		x2, y2 := x1+w, curV+depth+offV
		s.rects = append(s.rects, Rect{X1: x1, Y1: y1, X2: x2, Y2: y2})
		s.bbox.expand(x1, y1, x2, y2)
	}
}

// resolveRule substitutes the enclosing box's corresponding dimension
// for any of a Rule's running (+Inf) dimensions.
func resolveRule(r *box.Rule, listWidth, listHeight, listDepth float64) (w, height, depth float64) {
	w, height, depth = r.Width, r.Height, r.Depth
	if math.IsInf(w, 0) {
		w = listWidth
	}
	if math.IsInf(height, 0) {
		height = listHeight
	}
	if math.IsInf(depth, 0) {
		depth = listDepth
	}
	return w, height, depth
}

// glueAdvance resolves a horizontal Glue's rule width against the
// enclosing list's glue-set, accumulating only glue whose order
// matches the list's glue_order, and clamps to guard against overflow
// from extreme glue ratios.
func (s *shipper) glueAdvance(g *box.Glue, l *box.List) float64 {
	width := g.Width
	switch l.GlueSign {
	case box.GlueSignStretch:
		if g.StretchOrder == l.GlueOrder {
			width += clamp(l.GlueSet * g.Stretch)
		}
	case box.GlueSignShrink:
		if g.ShrinkOrder == l.GlueOrder {
			width -= clamp(l.GlueSet * g.Shrink)
		}
	}
	return width
}

func (s *shipper) glueAdvanceV(g *box.Glue, l *box.List) float64 {
	return s.glueAdvance(g, l)
}
