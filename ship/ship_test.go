// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ship

import (
	"reflect"
	"testing"

	"github.com/go-mathtex/mathtex/box"
	"github.com/go-mathtex/mathtex/font"
)

type fakeProvider struct{}

func (fakeProvider) Metrics(alias font.Alias, class font.Class, symbol string, size, dpi float64) (font.Metrics, error) {
	adv := size * 0.6
	return font.Metrics{
		Advance: adv, Width: adv,
		Ymin: -size * 0.7, Ymax: size * 0.2,
		Iceberg: size * 0.7, Height: size * 0.9,
	}, nil
}
func (fakeProvider) Kern(font.Alias, font.Class, string, float64, font.Alias, font.Class, string, float64, float64) float64 {
	return 0
}
func (fakeProvider) XHeight(font.Alias, float64, float64) float64             { return 5 }
func (fakeProvider) UnderlineThickness(font.Alias, float64, float64) float64   { return 0.5 }
func (fakeProvider) SizedAlternatives(font.Alias, string) []font.SizedAlternative {
	return nil
}
func (fakeProvider) DefaultStyle() font.Alias { return font.Italic }

func glyphInfo(c *box.Char) GlyphMetrics {
	return GlyphMetrics{
		Xmin: 0, Xmax: c.Width,
		Ymin: -c.Height, Ymax: c.Depth,
		Info: GlyphInfo{Rune: []rune(c.Symbol)[0], Alias: string(c.Alias), PtSize: c.PtSize},
	}
}

func TestShipSingleChar(t *testing.T) {
	c, err := box.NewChar(fakeProvider{}, font.Roman, "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	hl, _ := box.NewHlist([]box.Node{c}, false)

	res := Ship(hl, 0, 0, glyphInfo)
	if len(res.Glyphs) != 1 {
		t.Fatalf("len(Glyphs) = %d, want 1", len(res.Glyphs))
	}
	if len(res.Rects) != 0 {
		t.Fatalf("len(Rects) = %d, want 0", len(res.Rects))
	}
	if res.Glyphs[0].X != 0 || res.Glyphs[0].Y != 0 {
		t.Errorf("Glyph = (%v, %v), want (0, 0)", res.Glyphs[0].X, res.Glyphs[0].Y)
	}
}

func TestShipIsIdempotent(t *testing.T) {
	c, err := box.NewChar(fakeProvider{}, font.Roman, "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	k := box.NewKern(3)
	hl, _ := box.NewHlist([]box.Node{c, k}, false)

	a := Ship(hl, 0, 0, glyphInfo)
	b := Ship(hl, 0, 0, glyphInfo)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Ship is not idempotent: %+v != %+v", a, b)
	}
}

func TestShipEmitsRuleAsRect(t *testing.T) {
	// A running-width HRule only resolves against the enclosing box's
	// width; nest it in a Vlist the way Genfrac/Sqrt do, rather than a
	// bare Hlist, so there is a finite width for it to resolve to.
	r := box.NewHRule(1)
	vl, diag := box.NewVlist([]box.Node{r})
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	vl.List.Box.Width = 20

	hl, _ := box.NewHlist([]box.Node{vl}, false)
	res := Ship(hl, 0, 0, glyphInfo)
	if len(res.Rects) != 1 {
		t.Fatalf("len(Rects) = %d, want 1", len(res.Rects))
	}
}

func TestCharInVlistIsRejected(t *testing.T) {
	// box.Vpack itself refuses a bare Char before the shipper ever sees
	// it; vlist_out's own Char case (spec §8 property 8) is a second
	// line of defense for trees assembled without going through Vpack.
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic packing a Char inside a Vlist")
		}
	}()
	c, err := box.NewChar(fakeProvider{}, font.Roman, "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	box.NewVlist([]box.Node{c})
}
