// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latinmodern is the Computer Modern / BaKoMa reference font
// set: TeX's original seven math fonts (cmr10, cmmi10, cmsy10, cmex10,
// cmtt10, cmss10, cmb10), realised here with the metric-compatible
// Latin Modern OpenType family.
package latinmodern // import "github.com/go-mathtex/mathtex/font/latinmodern"

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmmath"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	stdfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-mathtex/mathtex/box"
	"github.com/go-mathtex/mathtex/font"
)

// Set is the BaKoMa-equivalent font.Provider.
type Set struct {
	mu    sync.Mutex
	faces map[font.Alias]*sfnt.Font
	bufs  map[font.Alias]*sfnt.Buffer
}

// New loads the seven BaKoMa-equivalent faces and returns a ready
// Provider.
func New() (*Set, error) {
	s := &Set{
		faces: make(map[font.Alias]*sfnt.Font),
		bufs:  make(map[font.Alias]*sfnt.Buffer),
	}
	table := map[font.Alias][]byte{
		font.Roman:      lmroman10regular.TTF,
		font.Italic:     lmroman10italic.TTF,
		font.Bold:       lmroman10bold.TTF,
		font.Typewriter: lmmono10regular.TTF,
		font.SansSerif:  lmsans10regular.TTF,
		font.Extension:  lmmath.TTF,
		font.Calligraph: lmmath.TTF,
	}
	for alias, raw := range table {
		f, err := opentype.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("mathtex/font/latinmodern: parsing %q: %w", alias, err)
		}
		s.faces[alias] = f
		s.bufs[alias] = &sfnt.Buffer{}
	}
	return s, nil
}

func (s *Set) face(alias font.Alias) *sfnt.Font {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[alias]; ok {
		return f
	}
	return s.faces[font.Roman]
}

func ppem(size, dpi float64) fixed.Int26_6 {
	px := size * dpi / 72
	return fixed.Int26_6(px*64 + 0.5)
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// Metrics implements font.Provider.
func (s *Set) Metrics(alias font.Alias, class font.Class, symbol string, size, dpi float64) (font.Metrics, error) {
	r, err := box.ResolveSymbol(symbol, true)
	if err != nil {
		return font.Metrics{}, &font.MissingGlyphError{Alias: alias, Symbol: symbol}
	}

	s.mu.Lock()
	f := s.faces[alias]
	if f == nil {
		f = s.faces[font.Roman]
	}
	buf := s.bufs[alias]
	s.mu.Unlock()
	if buf == nil {
		buf = &sfnt.Buffer{}
	}

	idx, err := f.GlyphIndex(buf, r)
	if err != nil || idx == 0 {
		return font.Metrics{}, &font.MissingGlyphError{Alias: alias, Symbol: symbol}
	}

	px := ppem(size, dpi)
	adv, err := f.GlyphAdvance(buf, idx, px, stdfont.HintingNone)
	if err != nil {
		return font.Metrics{}, fmt.Errorf("mathtex/font/latinmodern: advance: %w", err)
	}
	bounds, err := f.GlyphBounds(buf, idx, px, stdfont.HintingNone)
	if err != nil {
		return font.Metrics{}, fmt.Errorf("mathtex/font/latinmodern: bounds: %w", err)
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

// UnderlineThickness implements font.Provider. TeX itself hardcodes
// this from the font's PCLT table; lacking that table in the Latin
// Modern OpenType files, it is derived from point size the same way
// the reference mathtex implementation's TruetypeFonts fallback does.
func (s *Set) UnderlineThickness(alias font.Alias, size, dpi float64) float64 {
	return ((0.75 / 12.0) * size * dpi) / 72.0
}

// SizedAlternatives implements font.Provider. The Latin Modern
// OpenType distribution does not carry the BaKoMa cmex10 binary
// size-alternative table the reference implementation shipped
// alongside its fonts, so growth is approximated by the single glyph
// at hand; true discrete size steps would need that table's data,
// which is not present anywhere in the retrieved corpus.
func (s *Set) SizedAlternatives(alias font.Alias, symbol string) []font.SizedAlternative {
	return []font.SizedAlternative{{Font: alias, Symbol: symbol}}
}

// DefaultStyle implements font.Provider.
func (s *Set) DefaultStyle() font.Alias { return font.Italic }

var _ font.Provider = (*Set)(nil)
