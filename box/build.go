// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import (
	"math"

	"github.com/go-mathtex/mathtex/font"
	"gonum.org/v1/gonum/floats"
)

// Builder lowers resolved symbols into packed box trees, using a font
// provider and a fixed set of layout constants. It holds no
// per-expression state; one Builder may be reused across formulas.
type Builder struct {
	Provider  font.Provider
	Constants FontConstants
}

// NewBuilder returns a Builder using the default TeX layout constants.
func NewBuilder(provider font.Provider) *Builder {
	return &Builder{Provider: provider, Constants: DefaultFontConstants}
}

// NewAutoHeightChar selects the smallest sized alternative of symbol
// whose height+depth is at least height+depth, per spec §4.1's
// auto-sized delimiter rule.
func (b *Builder) NewAutoHeightChar(alias font.Alias, symbol string, height, depth, ptSize, dpi float64) (*AutoHeightChar, error) {
	alts := b.Provider.SizedAlternatives(alias, symbol)
	if len(alts) == 0 {
		alts = []font.SizedAlternative{{Font: alias, Symbol: symbol}}
	}
	target := height + depth
	var chosen *Char
	for _, alt := range alts {
		c, err := NewChar(b.Provider, alt.Font, "", alt.Symbol, ptSize, dpi, true)
		if err != nil {
			return nil, err
		}
		chosen = c
		if c.Height+c.Depth >= target {
			break
		}
	}
	shift := (chosen.Height - chosen.Depth) / 2 - (height-depth)/2
	hl, _ := NewHlist([]Node{chosen}, false)
	hl.List.Shift = shift
	return &AutoHeightChar{Hlist: *hl, Char: chosen}, nil
}

// NewAutoWidthChar is the horizontal analogue of NewAutoHeightChar,
// used for wide accents spanning a given width.
func (b *Builder) NewAutoWidthChar(alias font.Alias, symbol string, width, ptSize, dpi float64) (*AutoWidthChar, error) {
	alts := b.Provider.SizedAlternatives(alias, symbol)
	if len(alts) == 0 {
		alts = []font.SizedAlternative{{Font: alias, Symbol: symbol}}
	}
	var chosen *Char
	for _, alt := range alts {
		c, err := NewChar(b.Provider, alt.Font, "", alt.Symbol, ptSize, dpi, true)
		if err != nil {
			return nil, err
		}
		chosen = c
		if c.Width >= width {
			break
		}
	}
	hl, _ := NewHlist([]Node{chosen}, false)
	return &AutoWidthChar{Hlist: *hl, Char: chosen}, nil
}

// IsOverUnder reports whether nucleus stacks its scripts centered
// above/below (e.g. a large operator like Σ, Π, or a limit-taking
// function name) rather than setting them to the side.
func IsOverUnder(symbol string) bool {
	_, ok := overUnderSymbols[symbol]
	return ok
}

// IsDropsub reports whether nucleus is a "dropsub" symbol (∫, ∮, ...)
// whose subscript drops further below the baseline.
func IsDropsub(symbol string) bool {
	_, ok := dropsubSymbols[symbol]
	return ok
}

var overUnderSymbols = map[string]bool{
	"sum": true, "prod": true, "coprod": true, "bigcup": true, "bigcap": true,
	"bigvee": true, "bigwedge": true, "bigodot": true, "bigotimes": true,
	"bigoplus": true, "biguplus": true, "lim": true, "liminf": true,
	"limsup": true, "max": true, "min": true, "sup": true, "inf": true,
	"det": true, "gcd": true, "Pr": true, "projlim": true, "varinjlim": true,
	"varprojlim": true, "varliminf": true, "varlimsup": true,
}

var dropsubSymbols = map[string]bool{
	"int": true, "oint": true, "iint": true, "oiint": true,
	"iiint": true, "oiiint": true,
}

// SubSuper places sub and/or super relative to nucleus, per spec
// §4.1. Exactly one of sub/super may be nil, but not both when called.
// Scripts are stacked over/under only when nucleus is a *Char whose
// symbol IsOverUnder accepts; a function name such as \lim or \max
// arrives as an Hlist of letters and gets side scripts.
func (b *Builder) SubSuper(nucleus Node, sub, super Node, xHeight, ptSize, dpi float64, slanted bool) (*SubSuperCluster, error) {
	if IsOverUnder(nucleusSymbol(nucleus)) {
		return b.overUnderSubSuper(nucleus, sub, super, ptSize, dpi)
	}
	return b.sideSubSuper(nucleus, sub, super, xHeight, ptSize, dpi, slanted)
}

func nucleusSymbol(n Node) string {
	if c, ok := n.(*Char); ok {
		return c.Symbol
	}
	return ""
}

// overUnderSubSuper centers super above and sub below nucleus,
// separated by 3*underline-thickness, and shifts the whole stack so
// its baseline sits at sub.height + nucleus.depth.
func (b *Builder) overUnderSubSuper(nucleus, sub, super Node, ptSize, dpi float64) (*SubSuperCluster, error) {
	thickness := b.Provider.UnderlineThickness(font.Extension, ptSize, dpi)

	width := dimsOf(nucleus).Width
	if d := dimsOf(sub); sub != nil && d.Width > width {
		width = d.Width
	}
	if d := dimsOf(super); super != nil && d.Width > width {
		width = d.Width
	}

	var children []Node
	if super != nil {
		cs := HCentered([]Node{super})
		cs.Hpack(width, Exactly)
		children = append(children, cs, NewKern(3*thickness))
	}
	cn := HCentered([]Node{nucleus})
	cn.Hpack(width, Exactly)
	children = append(children, cn)
	var subH *Hlist
	if sub != nil {
		subH = HCentered([]Node{sub})
		subH.Hpack(width, Exactly)
		children = append(children, NewKern(3*thickness), subH)
	}

	vl, _ := NewVlist(children)
	if subH != nil {
		vl.List.Shift = subH.List.Box.Height + dimsOf(nucleus).Depth
	}
	hl, _ := NewHlist([]Node{vl}, false)
	return &SubSuperCluster{Hlist: *hl, Nucleus: nucleus, Sub: sub, Super: super}, nil
}

func dimsOf(n Node) Dims { return NodeDims(n) }

// NodeDims reports a node's current width/height/depth as it would
// contribute to an enclosing Hlist, without packing it into one. A nil
// node reports the zero Dims, matching an absent sub or superscript.
func NodeDims(n Node) Dims {
	if n == nil {
		return Dims{}
	}
	var w, h, d float64
	stretch := make([]float64, 4)
	shrink := make([]float64, 4)
	n.hpackDims(&w, &h, &d, stretch, shrink)
	return Dims{Width: w, Height: h, Depth: d}
}

// sideSubSuper sets sub/super to the side of nucleus per the
// shift_up/shift_down formulas of spec §4.1.
func (b *Builder) sideSubSuper(nucleus Node, sub, super Node, xHeight, ptSize, dpi float64, slanted bool) (*SubSuperCluster, error) {
	c := b.Constants
	t := b.Provider.UnderlineThickness(font.Extension, ptSize, dpi)

	if sub != nil {
		sub.Shrink()
	}
	if super != nil {
		super.Shrink()
	}

	nd := dimsOf(nucleus)

	var shiftUp, shiftDown float64
	if super != nil {
		sd := dimsOf(super)
		shiftUp = floats.Max([]float64{nd.Height - c.SubDrop*xHeight, sd.Depth + xHeight/4, c.Sup1 * xHeight})
	}
	if sub != nil {
		subd := dimsOf(sub)
		shiftDown = floats.Max([]float64{c.SubDrop * xHeight, subd.Height - 0.8*xHeight})
		if IsDropsub(nucleusSymbol(nucleus)) {
			shiftDown += nd.Depth + c.SubDrop*xHeight
		}
	}

	if sub != nil && super != nil {
		subd := dimsOf(sub)
		superd := dimsOf(super)
		clearance := (shiftUp - superd.Depth) - (subd.Height - shiftDown)
		need := 2 * t
		if clearance < need {
			deficit := need - clearance
			shiftUp += deficit
			shiftDown += deficit
		}
	}

	var children []Node
	scriptSpace := NewKern(c.ScriptSpace * xHeight)

	switch {
	case super != nil && sub != nil:
		if slanted {
			delta := c.Delta * (shiftUp + shiftDown)
			super = shiftRight(super, delta)
		}
		supH, _ := NewHlist([]Node{super}, false)
		supH.List.Shift = -shiftUp
		subH, _ := NewHlist([]Node{sub}, false)
		subH.List.Shift = shiftDown
		vl, _ := NewVlist([]Node{supH, subH})
		children = []Node{nucleus, vl, scriptSpace}
	case super != nil:
		supH, _ := NewHlist([]Node{super}, false)
		supH.List.Shift = -shiftUp
		children = []Node{nucleus, supH, scriptSpace}
	case sub != nil:
		subH, _ := NewHlist([]Node{sub}, false)
		subH.List.Shift = shiftDown
		children = []Node{nucleus, subH, scriptSpace}
	default:
		children = []Node{nucleus}
	}

	hl, _ := NewHlist(children, false)
	return &SubSuperCluster{Hlist: *hl, Nucleus: nucleus, Sub: sub, Super: super}, nil
}

// shiftRight wraps n in a single-child Hlist offset horizontally by
// prepending a Kern; used for the slanted-nucleus superscript offset.
func shiftRight(n Node, delta float64) Node {
	hl, _ := NewHlist([]Node{NewKern(delta), n}, false)
	return hl
}

// Genfrac builds num/den separated by a rule, unifying \frac, \binom,
// \stackrel and \genfrac per spec §4.1.
func (b *Builder) Genfrac(num, den Node, ruleThickness, ptSize, dpi, xHeight float64) (*Hlist, error) {
	t := ruleThickness
	if t < 0 {
		t = b.Provider.UnderlineThickness(font.Extension, ptSize, dpi)
	}

	num.Shrink()
	den.Shrink()

	nd := dimsOf(num)
	dd := dimsOf(den)
	width := floats.Max([]float64{nd.Width, dd.Width})

	cnum := HCentered([]Node{num})
	cnum.Hpack(width, Exactly)
	cden := HCentered([]Node{den})
	cden.Hpack(width, Exactly)

	var rule Node
	if t > 0 {
		rule = NewHRule(t)
	} else {
		rule = NewKern(0)
	}

	vl, _ := NewVlist([]Node{
		cnum,
		vboxOf(0, 2*t),
		rule,
		vboxOf(0, 2*t),
		cden,
	})

	eq, err := NewChar(b.Provider, font.Roman, "", "=", ptSize, dpi, true)
	if err == nil {
		mid := (eq.metrics.Ymax + eq.metrics.Ymin) / 2
		vl.List.Shift = cden.List.Box.Height - (mid - 3*t)
	}

	hl, _ := NewHlist([]Node{vl}, false)
	hl.Hpack(0, Additional)
	return hl, nil
}

// vboxOf returns a fixed-size spacer with the given height and depth
// and no width, used as the padding around a fraction rule.
func vboxOf(height, depth float64) Node {
	return &Box{Height: height, Depth: depth}
}

// Sqrt builds a radical around body, with an optional shrunk-twice
// root index, per spec §4.1.
func (b *Builder) Sqrt(body Node, index Node, ptSize, dpi, xHeight float64) (*Hlist, error) {
	t := b.Provider.UnderlineThickness(font.Extension, ptSize, dpi)
	bd := dimsOf(body)

	height := bd.Height + 5*t
	depth := bd.Depth + 2*t

	check, err := b.NewAutoHeightChar(font.Extension, "__sqrt__", height, depth, ptSize, dpi)
	if err != nil {
		return nil, err
	}

	vl, _ := NewVlist([]Node{
		NewHRule(t),
		NewGlue("fill"),
		body,
	})
	vl.Vpack(height+ptSize*dpi/1200, Exactly, math.Inf(1))

	children := []Node{check, vl}

	if index != nil {
		index.Shrink()
		index.Shrink()
		idxH, _ := NewHlist([]Node{index}, false)
		idxH.List.Shift = -0.6 * height
		kern := NewKern(-check.Char.Width * 0.5)
		children = append([]Node{idxH, kern}, children...)
	}

	hl, _ := NewHlist(children, false)
	hl.Hpack(0, Additional)
	return hl, nil
}

// AutoSizedDelimiter wraps body between the smallest sized
// alternatives of left and right whose height+depth covers body's, or
// the largest available size if none suffice. A delimiter name of "."
// omits that side.
func (b *Builder) AutoSizedDelimiter(left string, body []Node, right string, ptSize, dpi float64) (*Hlist, error) {
	var height, depth float64
	for _, n := range body {
		d := dimsOf(n)
		height = floats.Max([]float64{height, d.Height})
		depth = floats.Max([]float64{depth, d.Depth})
	}

	var children []Node
	if left != "." {
		l, err := b.NewAutoHeightChar(font.Extension, left, height, depth, ptSize, dpi)
		if err != nil {
			return nil, err
		}
		children = append(children, l)
	}
	children = append(children, body...)
	if right != "." {
		r, err := b.NewAutoHeightChar(font.Extension, right, height, depth, ptSize, dpi)
		if err != nil {
			return nil, err
		}
		children = append(children, r)
	}

	hl, _ := NewHlist(children, false)
	hl.Hpack(0, Additional)
	return hl, nil
}
