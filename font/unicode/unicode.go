// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unicode is the generic Unicode/STIX-equivalent font set: it
// looks glyphs up directly by code point in a Liberation-backed face
// set, with a virtual-font remap layer for logical styles (bb, cal,
// frak, scr, circled, sf, it, bf, rm) that the underlying face cannot
// draw directly, and falls back to the latinmodern set for anything
// neither can resolve.
package unicode // import "github.com/go-mathtex/mathtex/font/unicode"

import (
	"fmt"
	"sync"

	"github.com/go-fonts/liberation/liberationmonoregular"
	"github.com/go-fonts/liberation/liberationsansbold"
	"github.com/go-fonts/liberation/liberationsansitalic"
	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/go-fonts/liberation/liberationserifbold"
	"github.com/go-fonts/liberation/liberationserifitalic"
	"github.com/go-fonts/liberation/liberationserifregular"
	stdfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/exp/slices"

	"github.com/go-mathtex/mathtex/box"
	"github.com/go-mathtex/mathtex/font"
	"github.com/go-mathtex/mathtex/font/latinmodern"
)

// virtualStyles lists the logical styles this set remaps onto a
// physical face rather than resolving directly by code point.
var virtualStyles = []string{"bb", "cal", "frak", "scr", "circled", "sf", "it", "bf", "rm"}

// Set is the Unicode/STIX-equivalent font.Provider.
type Set struct {
	mu       sync.Mutex
	faces    map[font.Alias]*sfnt.Font
	bufs     map[font.Alias]*sfnt.Buffer
	fallback font.Provider
	sans     bool
}

// New loads the Liberation-backed faces and wires a latinmodern
// fallback for symbols the Unicode face cannot supply.
func New() (*Set, error) {
	return newSet(false)
}

// NewSans is the StixSans-equivalent variant: StixFonts behaviour
// with the sans-serif face preferred.
func NewSans() (*Set, error) {
	return newSet(true)
}

func newSet(sans bool) (*Set, error) {
	fb, err := latinmodern.New()
	if err != nil {
		return nil, err
	}
	s := &Set{
		faces:    make(map[font.Alias]*sfnt.Font),
		bufs:     make(map[font.Alias]*sfnt.Buffer),
		fallback: fb,
		sans:     sans,
	}
	table := map[font.Alias][]byte{
		font.Roman:     liberationserifregular.TTF,
		font.Italic:    liberationserifitalic.TTF,
		font.Bold:      liberationserifbold.TTF,
		font.Typewriter: liberationmonoregular.TTF,
		font.SansSerif: liberationsansregular.TTF,
	}
	if sans {
		table[font.Roman] = liberationsansregular.TTF
		table[font.Italic] = liberationsansitalic.TTF
		table[font.Bold] = liberationsansbold.TTF
	}
	for alias, raw := range table {
		f, err := opentype.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("mathtex/font/unicode: parsing %q: %w", alias, err)
		}
		s.faces[alias] = f
		s.bufs[alias] = &sfnt.Buffer{}
	}
	return s, nil
}

// remapStyle applies the STIX-style virtual-font remap: a logical
// style name maps a symbol onto the alias that actually carries its
// shape, leaving the code point itself untouched since the Liberation
// faces carry a conventional Latin/Greek/symbol repertoire rather than
// distinct blackboard/fraktur/script glyph ranges.
func remapStyle(class string) font.Alias {
	if slices.Contains(virtualStyles, class) || class == "tt" {
		switch class {
		case "bf":
			return font.Bold
		case "it":
			return font.Italic
		case "sf":
			return font.SansSerif
		case "tt":
			return font.Typewriter
		default:
			return font.Roman
		}
	}
	return font.Roman
}

func ppem(size, dpi float64) fixed.Int26_6 {
	px := size * dpi / 72
	return fixed.Int26_6(px*64 + 0.5)
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// Metrics implements font.Provider, falling back to the latinmodern
// set (spec §9 "Font fallback") when the Unicode face lacks the
// requested code point.
func (s *Set) Metrics(alias font.Alias, class font.Class, symbol string, size, dpi float64) (font.Metrics, error) {
	r, err := box.ResolveSymbol(symbol, true)
	if err != nil {
		return s.fallback.Metrics(alias, class, symbol, size, dpi)
	}

	resolved := remapStyle(string(class))
	s.mu.Lock()
	f := s.faces[resolved]
	if f == nil {
		f = s.faces[font.Roman]
	}
	buf := s.bufs[resolved]
	s.mu.Unlock()

	idx, err := f.GlyphIndex(buf, r)
	if err != nil || idx == 0 {
		return s.fallback.Metrics(alias, class, symbol, size, dpi)
	}

	px := ppem(size, dpi)
	adv, err := f.GlyphAdvance(buf, idx, px, stdfont.HintingNone)
	if err != nil {
		return s.fallback.Metrics(alias, class, symbol, size, dpi)
	}
	bounds, err := f.GlyphBounds(buf, idx, px, stdfont.HintingNone)
	if err != nil {
		return s.fallback.Metrics(alias, class, symbol, size, dpi)
	}

	xmin, xmax := toFloat(bounds.Min.X), toFloat(bounds.Max.X)
	ymin, ymax := toFloat(bounds.Min.Y), toFloat(bounds.Max.Y)

	return font.Metrics{
		Advance: toFloat(adv),
		Width:   xmax - xmin,
		Height:  ymax - ymin,
		Xmin:    xmin,
		Xmax:    xmax,
		Ymin:    -ymax,
		Ymax:    -ymin,
		Iceberg: -ymin,
		Slanted: class == "it",
	}, nil
}

// Kern implements font.Provider.
func (s *Set) Kern(alias1 font.Alias, class1 font.Class, sym1 string, size1 float64, alias2 font.Alias, class2 font.Class, sym2 string, size2, dpi float64) float64 {
	if alias1 != alias2 || size1 != size2 {
		return 0
	}
	r1, err1 := box.ResolveSymbol(sym1, true)
	r2, err2 := box.ResolveSymbol(sym2, true)
	if err1 != nil || err2 != nil {
		return 0
	}

	s.mu.Lock()
	f := s.faces[alias1]
	buf := s.bufs[alias1]
	s.mu.Unlock()
	if f == nil {
		return 0
	}

	i1, err := f.GlyphIndex(buf, r1)
	if err != nil {
		return 0
	}
	i2, err := f.GlyphIndex(buf, r2)
	if err != nil {
		return 0
	}
	k, err := f.Kern(buf, i1, i2, ppem(size1, dpi), stdfont.HintingNone)
	if err != nil {
		return 0
	}
	return toFloat(k)
}

// XHeight implements font.Provider.
func (s *Set) XHeight(alias font.Alias, size, dpi float64) float64 {
	m, err := s.Metrics(alias, "", "x", size, dpi)
	if err != nil {
		return 0.5 * size * dpi / 72
	}
	return m.Iceberg
}

// UnderlineThickness implements font.Provider.
func (s *Set) UnderlineThickness(alias font.Alias, size, dpi float64) float64 {
	return ((0.75 / 12.0) * size * dpi) / 72.0
}

// SizedAlternatives implements font.Provider, deferring to the
// latinmodern fallback's extension-font alternatives.
func (s *Set) SizedAlternatives(alias font.Alias, symbol string) []font.SizedAlternative {
	return s.fallback.SizedAlternatives(alias, symbol)
}

// DefaultStyle implements font.Provider.
func (s *Set) DefaultStyle() font.Alias { return font.Italic }

var _ font.Provider = (*Set)(nil)
