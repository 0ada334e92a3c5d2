// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package box implements the TeX-like box-and-glue layout model: a
// tree of typed nodes, packed bottom-up into horizontal and vertical
// lists with glue-set resolution, kerning, sub/superscript placement,
// fractions, radicals, and auto-sized delimiters.
//
// The following is based directly on the document 'woven' from the
// TeX82 source code. This information is also available in printed
// form:
//
//	Knuth, Donald E.. 1986.  Computers and Typesetting, Volume B:
//	TeX: The Program.  Addison-Wesley Professional.
//
// Note that (as TeX) y increases downward.
package box // import "github.com/go-mathtex/mathtex/box"

import (
	"fmt"
	"math"

	"github.com/go-mathtex/mathtex/font"
	"gonum.org/v1/gonum/floats"
)

const (
	// ShrinkFactor is how much a node shrinks per script level; GrowFactor
	// is its inverse.
	ShrinkFactor = 0.7
	GrowFactor   = 1.0 / ShrinkFactor

	// NumSizeLevels bounds how many levels a node will shrink before it
	// stops getting smaller.
	NumSizeLevels = 6
)

// FontConstants holds the magic ratios that control sub/superscript
// and fraction placement; these are not retrievable from font metrics
// themselves.
type FontConstants struct {
	ScriptSpace   float64
	SubDrop       float64
	Sup1          float64
	Sub1          float64
	Sub2          float64
	Delta         float64
	DeltaSlanted  float64
	DeltaIntegral float64
}

// DefaultFontConstants follows the formulas of spec §4.1 rather than
// the gonum/plot port's DefaultFontConstants, which drifted from the
// original mathtex boxmodel.py constants (ScriptSpace 0.05 vs 0.2,
// SubDrop 0.4 vs 0.3, Sup1 0.7 vs 0.5, Sub1 0.3 vs 0.0, Delta 0.025 vs
// 0.18). The values below match the source this was ported from.
var DefaultFontConstants = FontConstants{
	ScriptSpace:   0.2,
	SubDrop:       0.3,
	Sup1:          0.5,
	Sub1:          0.0,
	Sub2:          0.5,
	Delta:         0.18,
	DeltaSlanted:  0.2,
	DeltaIntegral: 0.1,
}

// Node is any element of the box tree.
type Node interface {
	// Kerning reports the spacing this node wants inserted before next.
	Kerning(next Node) float64

	// Shrink shrinks the node one level smaller, up to NumSizeLevels.
	Shrink()

	// Grow grows the node one level larger, without limit.
	Grow()

	hpackDims(width, height, depth *float64, stretch, shrink []float64)
	vpackDims(width, height, depth *float64, stretch, shrink []float64)
}

// Dims reports the current width, height, and depth of a node.
type Dims struct {
	Width, Height, Depth float64
}

// Box is a plain node with a physical size and no children.
type Box struct {
	Size   int
	Width  float64
	Height float64
	Depth  float64
}

func (*Box) Kerning(next Node) float64 { return 0 }

func (b *Box) Shrink() {
	b.Size--
	if b.Size >= NumSizeLevels {
		return
	}
	b.Width *= ShrinkFactor
	b.Height *= ShrinkFactor
	b.Depth *= ShrinkFactor
}

func (b *Box) Grow() {
	b.Size++
	b.Width *= GrowFactor
	b.Height *= GrowFactor
	b.Depth *= GrowFactor
}

func (b *Box) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*width += b.Width
	if math.IsInf(b.Height, 0) || math.IsInf(b.Depth, 0) {
		return
	}
	*height = floats.Max([]float64{*height, b.Height})
	*depth = floats.Max([]float64{*depth, b.Depth})
}

func (b *Box) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*height += *depth + b.Height
	*depth = b.Depth
	if math.IsInf(b.Width, 0) {
		return
	}
	*width = floats.Max([]float64{*width, b.Width})
}

// Char is a single resolved glyph at a font/size/dpi.
//
// Unlike TeX, the font alias and metrics are stored with each Char to
// make metrics lookups self-contained. Font metrics give a full
// bounding box and an advance, unlike TeX's width/height/depth model;
// Metrics are converted to that model using the ink width. Kerning
// reports only the provider's pair kern between two adjacent Chars;
// the difference between a glyph's advance and its width is not added
// as spacing.
type Char struct {
	Symbol string
	Alias  font.Alias
	Class  font.Class

	Size    int
	PtSize  float64
	DPI     float64
	Math    bool
	Slanted bool

	Width, Height, Depth float64
	metrics              font.Metrics

	Provider font.Provider
}

// NewChar resolves symbol's metrics through provider and constructs a
// Char node. Per spec §3, depth = -(iceberg - metric height), height =
// iceberg.
func NewChar(provider font.Provider, alias font.Alias, class font.Class, symbol string, ptSize, dpi float64, math bool) (*Char, error) {
	m, err := provider.Metrics(alias, class, symbol, ptSize, dpi)
	if err != nil {
		if _, ok := err.(*font.MissingGlyphError); !ok {
			return nil, err
		}
		m, err = provider.Metrics(font.Roman, class, font.DummyGlyph, ptSize, dpi)
		if err != nil {
			return nil, fmt.Errorf("box: dummy glyph unavailable: %w", err)
		}
		symbol = font.DummyGlyph
		alias = font.Roman
	}
	c := &Char{
		Symbol:   symbol,
		Alias:    alias,
		Class:    class,
		PtSize:   ptSize,
		DPI:      dpi,
		Math:     math,
		Slanted:  m.Slanted,
		Width:    m.Width,
		Height:   m.Iceberg,
		Depth:    -(m.Iceberg - m.Height),
		metrics:  m,
		Provider: provider,
	}
	return c, nil
}

func (c *Char) Kerning(next Node) float64 {
	nc, ok := next.(*Char)
	if !ok {
		return 0
	}
	return c.Provider.Kern(c.Alias, c.Class, c.Symbol, c.PtSize, nc.Alias, nc.Class, nc.Symbol, nc.PtSize, c.DPI)
}

func (c *Char) Shrink() {
	c.Size--
	if c.Size >= NumSizeLevels {
		return
	}
	c.PtSize *= ShrinkFactor
	c.Width *= ShrinkFactor
	c.Height *= ShrinkFactor
	c.Depth *= ShrinkFactor
}

func (c *Char) Grow() {
	c.Size++
	c.PtSize *= GrowFactor
	c.Width *= GrowFactor
	c.Height *= GrowFactor
	c.Depth *= GrowFactor
}

func (c *Char) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*width += c.Width
	*height = floats.Max([]float64{*height, c.Height})
	*depth = floats.Max([]float64{*depth, c.Depth})
}

func (*Char) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	panic("box: Char node in Vlist")
}

// Accent is a character whose glyph is already offset from the
// baseline in its source font, so depth is forced to zero.
type Accent struct {
	Char Char
}

// NewAccent builds an Accent over the resolved symbol.
func NewAccent(provider font.Provider, alias font.Alias, class font.Class, symbol string, ptSize, dpi float64) (*Accent, error) {
	c, err := NewChar(provider, alias, class, symbol, ptSize, dpi, true)
	if err != nil {
		return nil, err
	}
	a := &Accent{Char: *c}
	a.updateMetrics()
	return a, nil
}

func (a *Accent) updateMetrics() {
	a.Char.Depth = 0
}

func (a *Accent) Kerning(next Node) float64 { return a.Char.Kerning(next) }

func (a *Accent) Shrink() {
	a.Char.Shrink()
	a.updateMetrics()
}

func (a *Accent) Grow() {
	a.Char.Grow()
	a.updateMetrics()
}

func (a *Accent) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	a.Char.hpackDims(width, height, depth, stretch, shrink)
}

func (*Accent) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	panic("box: Accent node in Vlist")
}

// Kern is a fixed, non-elastic amount of spacing. In a horizontal list
// it widens the gap between two glyphs (e.g. for italic correction or
// font-designer kerning); in a vertical list its width is spacing in
// the vertical direction.
type Kern struct {
	Size  int
	Width float64
}

func NewKern(width float64) *Kern { return &Kern{Width: width} }

func (k *Kern) Kerning(next Node) float64 { return 0 }

func (k *Kern) Shrink() {
	k.Size--
	if k.Size >= NumSizeLevels {
		return
	}
	k.Width *= ShrinkFactor
}

func (k *Kern) Grow() {
	k.Size++
	k.Width *= GrowFactor
}

func (k *Kern) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*width += k.Width
}

func (k *Kern) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*height += *depth + k.Width
	*depth = 0
}

// Rule is a solid filled rectangle, e.g. a fraction bar or radical
// vinculum. Any of width, height, depth may be +Inf ("running"); the
// shipper resolves a running dimension to the enclosing box's size.
type Rule struct {
	Width, Height, Depth float64
}

func NewRule(w, h, d float64) *Rule { return &Rule{Width: w, Height: h, Depth: d} }

func (r *Rule) Kerning(next Node) float64 { return 0 }
func (r *Rule) Shrink()                   {}
func (r *Rule) Grow()                     {}

func (r *Rule) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*width += r.Width
	if math.IsInf(r.Height, 0) || math.IsInf(r.Depth, 0) {
		return
	}
	*height = floats.Max([]float64{*height, r.Height})
	*depth = floats.Max([]float64{*depth, r.Depth})
}

func (r *Rule) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*height += *depth + r.Height
	*depth = r.Depth
	if math.IsInf(r.Width, 0) {
		return
	}
	*width = floats.Max([]float64{*width, r.Width})
}

// NewHRule builds a horizontal rule of running width and the given
// thickness, split evenly between height and depth.
func NewHRule(thickness float64) *Rule {
	return NewRule(math.Inf(+1), thickness/2, thickness/2)
}

// NewVRule builds a vertical rule of running height/depth.
func NewVRule(thickness float64) *Rule {
	return NewRule(thickness, math.Inf(+1), math.Inf(+1))
}

// Glue is elastic spacing: a natural width plus stretch and shrink
// components, each carrying an order of infinity (0 finite, 1-3
// progressively larger, "fil"/"fill"/"filll").
type Glue struct {
	Size                      int
	Width                     float64
	Stretch, Shrink           float64
	StretchOrder, ShrinkOrder int
}

// Named glue presets, interned as an 8-entry pool; callers must copy
// before mutating (Shrink/Grow) since Glue is otherwise shared.
var (
	GlueFil      = Glue{Width: 0, Stretch: 1, StretchOrder: 1}
	GlueFill     = Glue{Width: 0, Stretch: 1, StretchOrder: 2}
	GlueFilll    = Glue{Width: 0, Stretch: 1, StretchOrder: 3}
	GlueNegFil   = Glue{Width: 0, Shrink: 1, ShrinkOrder: 1}
	GlueNegFill  = Glue{Width: 0, Shrink: 1, ShrinkOrder: 2}
	GlueNegFilll = Glue{Width: 0, Shrink: 1, ShrinkOrder: 3}
	GlueEmpty    = Glue{}
	GlueSS       = Glue{Width: 0, Stretch: 1, StretchOrder: 1, Shrink: -1, ShrinkOrder: 1}
)

// NewGlue copies one of the named presets by name.
func NewGlue(name string) *Glue {
	switch name {
	case "fil":
		g := GlueFil
		return &g
	case "fill":
		g := GlueFill
		return &g
	case "filll":
		g := GlueFilll
		return &g
	case "neg_fil":
		g := GlueNegFil
		return &g
	case "neg_fill":
		g := GlueNegFill
		return &g
	case "neg_filll":
		g := GlueNegFilll
		return &g
	case "empty":
		g := GlueEmpty
		return &g
	case "ss":
		g := GlueSS
		return &g
	default:
		panic(fmt.Errorf("box: unknown glue spec %q", name))
	}
}

func (g *Glue) Kerning(next Node) float64 { return 0 }

func (g *Glue) Shrink() {
	g.Size--
	if g.Size >= NumSizeLevels {
		return
	}
	g.Width *= ShrinkFactor
}

func (g *Glue) Grow() {
	g.Size++
	g.Width *= GrowFactor
}

func (g *Glue) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*width += g.Width
	stretch[g.StretchOrder] += g.Stretch
	shrink[g.ShrinkOrder] += g.Shrink
}

func (g *Glue) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*height += *depth
	*depth = 0
	*height += g.Width
	stretch[g.StretchOrder] += g.Stretch
	shrink[g.ShrinkOrder] += g.Shrink
}

var (
	_ Node = (*Box)(nil)
	_ Node = (*Char)(nil)
	_ Node = (*Accent)(nil)
	_ Node = (*Kern)(nil)
	_ Node = (*Rule)(nil)
	_ Node = (*Glue)(nil)
)
