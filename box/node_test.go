// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import (
	"math"
	"testing"

	"github.com/go-mathtex/mathtex/font"
)

type fakeProvider struct{}

func (fakeProvider) Metrics(alias font.Alias, class font.Class, symbol string, size, dpi float64) (font.Metrics, error) {
	_, err := ResolveSymbol(symbol, true)
	if err != nil {
		return font.Metrics{}, &font.MissingGlyphError{Alias: alias, Symbol: symbol}
	}
	adv := size * 0.6
	return font.Metrics{
		Advance: adv, Width: adv,
		Xmin: 0, Xmax: adv,
		Ymin: -size * 0.7, Ymax: size * 0.2,
		Iceberg: size * 0.7,
		Height:  size * 0.9,
		Slanted: class == "it",
	}, nil
}

func (fakeProvider) Kern(alias1 font.Alias, class1 font.Class, sym1 string, size1 float64, alias2 font.Alias, class2 font.Class, sym2 string, size2, dpi float64) float64 {
	return 0
}

func (fakeProvider) XHeight(alias font.Alias, size, dpi float64) float64 { return size * 0.45 }

func (fakeProvider) UnderlineThickness(alias font.Alias, size, dpi float64) float64 {
	return size * 0.04
}

func (fakeProvider) SizedAlternatives(alias font.Alias, symbol string) []font.SizedAlternative {
	return []font.SizedAlternative{{Font: alias, Symbol: symbol}}
}

func (fakeProvider) DefaultStyle() font.Alias { return font.Italic }

var _ font.Provider = fakeProvider{}

func TestNewCharDepthHeight(t *testing.T) {
	c, err := NewChar(fakeProvider{}, font.Italic, "it", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	if c.Height != 12*0.7 {
		t.Errorf("Height = %v, want %v", c.Height, 12*0.7)
	}
	wantDepth := -(12*0.7 - c.metrics.Height)
	if c.Depth != wantDepth {
		t.Errorf("Depth = %v, want %v", c.Depth, wantDepth)
	}
}

func TestNewCharMissingGlyphFallback(t *testing.T) {
	c, err := NewChar(fakeProvider{}, font.Italic, "it", "\\notasymbol", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	if c.Symbol != font.DummyGlyph {
		t.Errorf("Symbol = %q, want dummy glyph", c.Symbol)
	}
	if c.Alias != font.Roman {
		t.Errorf("Alias = %q, want %q", c.Alias, font.Roman)
	}
}

func TestShrinkGrowRoundTrip(t *testing.T) {
	c, err := NewChar(fakeProvider{}, font.Roman, "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	w0, h0, d0 := c.Width, c.Height, c.Depth
	c.Shrink()
	c.Grow()
	const tol = 1e-9
	if math.Abs(c.Width-w0) > tol*w0 {
		t.Errorf("Width round-trip = %v, want %v", c.Width, w0)
	}
	if math.Abs(c.Height-h0) > tol*h0 {
		t.Errorf("Height round-trip = %v, want %v", c.Height, h0)
	}
	if math.Abs(c.Depth-d0) > tol*math.Max(d0, 1) {
		t.Errorf("Depth round-trip = %v, want %v", c.Depth, d0)
	}
}

func TestGlueNamedPresetsAreIndependentCopies(t *testing.T) {
	a := NewGlue("fil")
	b := NewGlue("fil")
	a.Shrink()
	if b.Width != GlueFil.Width {
		t.Errorf("mutating one Glue copy affected another")
	}
}
