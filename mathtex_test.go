// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtex

import (
	"testing"

	"github.com/go-mathtex/mathtex/font"
)

// fakeProvider supplies deterministic metrics for every symbol it is
// asked about, so these tests exercise the parser/lowering/packing
// pipeline without depending on real embedded font bytes.
type fakeProvider struct{}

func (fakeProvider) Metrics(alias font.Alias, class font.Class, symbol string, size, dpi float64) (font.Metrics, error) {
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

func (fakeProvider) Kern(font.Alias, font.Class, string, float64, font.Alias, font.Class, string, float64, float64) float64 {
	return 0
}

func (fakeProvider) XHeight(font.Alias, float64, float64) float64 { return 5 }

func (fakeProvider) UnderlineThickness(font.Alias, float64, float64) float64 { return 0.5 }

func (fakeProvider) SizedAlternatives(alias font.Alias, symbol string) []font.SizedAlternative {
	return []font.SizedAlternative{
		{Font: alias, Symbol: symbol},
		{Font: alias, Symbol: symbol},
	}
}

func (fakeProvider) DefaultStyle() font.Alias { return font.Italic }

var _ font.Provider = fakeProvider{}

func TestNewSingleChar(t *testing.T) {
	f, err := New(`$x$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	if f.Width() <= 0 {
		t.Errorf("Width = %v, want > 0", f.Width())
	}
	dl := f.DrawList()
	if len(dl.Glyphs) != 1 {
		t.Fatalf("len(Glyphs) = %d, want 1", len(dl.Glyphs))
	}
}

func TestNewSubscript(t *testing.T) {
	f, err := New(`$x_2$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	if len(dl.Glyphs) != 2 {
		t.Fatalf("len(Glyphs) = %d, want 2 (x, 2)", len(dl.Glyphs))
	}
	// The subscript sits below the nucleus's baseline.
	if dl.Glyphs[1].Y <= dl.Glyphs[0].Y {
		t.Errorf("subscript Y = %v, want > nucleus Y = %v", dl.Glyphs[1].Y, dl.Glyphs[0].Y)
	}
}

func TestNewSuperscript(t *testing.T) {
	f, err := New(`$x^2$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	if len(dl.Glyphs) != 2 {
		t.Fatalf("len(Glyphs) = %d, want 2 (x, 2)", len(dl.Glyphs))
	}
}

func TestNewFraction(t *testing.T) {
	f, err := New(`$\frac{1}{2}$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	if len(dl.Glyphs) != 2 {
		t.Fatalf("len(Glyphs) = %d, want 2 (numerator, denominator)", len(dl.Glyphs))
	}
	if len(dl.Rects) != 1 {
		t.Fatalf("len(Rects) = %d, want 1 (fraction rule)", len(dl.Rects))
	}
}

func TestNewSqrt(t *testing.T) {
	f, err := New(`$\sqrt{x}$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	if len(dl.Glyphs) < 2 {
		t.Fatalf("len(Glyphs) = %d, want >= 2 (radical sign, body)", len(dl.Glyphs))
	}
	if len(dl.Rects) != 1 {
		t.Fatalf("len(Rects) = %d, want 1 (radical overline)", len(dl.Rects))
	}
}

func TestNewAutoDelimFraction(t *testing.T) {
	f, err := New(`$\left(\frac{a}{b}\right)$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	// left paren, a, b, right paren
	if len(dl.Glyphs) != 4 {
		t.Fatalf("len(Glyphs) = %d, want 4", len(dl.Glyphs))
	}
	if len(dl.Rects) != 1 {
		t.Fatalf("len(Rects) = %d, want 1 (fraction rule)", len(dl.Rects))
	}
}

func TestNewSumWithLimits(t *testing.T) {
	f, err := New(`$\sum_{i=1}^n i$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	// n (superscript limit), sum (nucleus), i, =, 1 (subscript limit), i (trailing)
	if len(dl.Glyphs) != 6 {
		t.Fatalf("len(Glyphs) = %d, want 6", len(dl.Glyphs))
	}
	// overUnderSubSuper stacks the limits in a Vlist (super above,
	// nucleus, sub below), so Y increases monotonically down the stack
	// since y grows downward.
	superY, nucleusY, subY := dl.Glyphs[0].Y, dl.Glyphs[1].Y, dl.Glyphs[2].Y
	if !(superY < nucleusY) {
		t.Errorf("superscript limit Y = %v, want strictly above nucleus Y = %v", superY, nucleusY)
	}
	if !(nucleusY < subY) {
		t.Errorf("nucleus Y = %v, want strictly above subscript limit Y = %v", nucleusY, subY)
	}
}

func TestNewMixedVerbatimAndMath(t *testing.T) {
	f, err := New(`\$100$ \alpha $`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	// verbatim "$" and "100" (one Char each, since the scanner groups
	// digits into a single Number token) plus math "alpha" (1 glyph)
	if len(dl.Glyphs) != 3 {
		t.Fatalf("len(Glyphs) = %d, want 3", len(dl.Glyphs))
	}
}

func TestNewUnknownSymbolIsFatal(t *testing.T) {
	_, err := New(`$\notasymbol$`, fakeProvider{}, 12, 100, "it")
	if err == nil {
		t.Fatal("expected an error for an unknown symbol")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	f, err := New(`$x$`, fakeProvider{}, 0, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	if f.ptSize != DefaultPointSize {
		t.Errorf("ptSize = %v, want %v", f.ptSize, DefaultPointSize)
	}
	if f.dpi != DefaultDPI {
		t.Errorf("dpi = %v, want %v", f.dpi, DefaultDPI)
	}
}

func TestDrawListRecentersToXZero(t *testing.T) {
	f, err := New(`$x$`, fakeProvider{}, 12, 100, "it")
	if err != nil {
		t.Fatal(err)
	}
	dl := f.DrawList()
	if dl.BBox.Empty {
		t.Fatal("expected a non-empty bbox")
	}
	if dl.BBox.XMin != 0 {
		t.Errorf("BBox.XMin = %v, want 0 after recentring", dl.BBox.XMin)
	}
}
