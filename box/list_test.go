// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import "testing"

func TestHpackNaturalWidthNoGlue(t *testing.T) {
	a, err := NewChar(fakeProvider{}, "rm", "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewChar(fakeProvider{}, "rm", "rm", "y", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	hl, diag := NewHlist([]Node{a, b}, false)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	want := a.Width + b.Width
	if hl.List.Box.Width != want {
		t.Errorf("Width = %v, want %v", hl.List.Box.Width, want)
	}
	if hl.List.GlueSign != GlueSignNormal {
		t.Errorf("GlueSign = %v, want Normal", hl.List.GlueSign)
	}
}

func TestHpackExactlyStretchesFilGlue(t *testing.T) {
	a, err := NewChar(fakeProvider{}, "rm", "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGlue("fil")
	hl, _ := NewHlist([]Node{a, g}, false)
	diag := hl.Hpack(a.Width+50, Exactly)
	if diag != nil {
		t.Fatalf("unexpected diagnostic for fil glue absorbing stretch: %v", diag)
	}
	if hl.List.GlueSign != GlueSignStretch {
		t.Errorf("GlueSign = %v, want Stretch", hl.List.GlueSign)
	}
	if hl.List.GlueOrder != 1 {
		t.Errorf("GlueOrder = %v, want 1 (fil)", hl.List.GlueOrder)
	}
}

func TestHpackOverfullWithoutGlue(t *testing.T) {
	a, err := NewChar(fakeProvider{}, "rm", "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	hl, _ := NewHlist([]Node{a}, false)
	diag := hl.Hpack(a.Width-5, Exactly)
	if diag == nil || !diag.Overfull {
		t.Fatalf("diag = %v, want an Overfull diagnostic", diag)
	}
}

func TestVpackDepthClampedToMaxDepth(t *testing.T) {
	r := NewRule(10, 5, 20)
	vl, _ := NewVlist([]Node{r})
	diag := vl.Vpack(0, Additional, 8)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	if vl.List.Box.Depth != 8 {
		t.Errorf("Depth = %v, want clamped to 8", vl.List.Box.Depth)
	}
}

func TestHCenteredCentersWithinWiderPack(t *testing.T) {
	a, err := NewChar(fakeProvider{}, "rm", "rm", "x", 12, 100, true)
	if err != nil {
		t.Fatal(err)
	}
	c := HCentered([]Node{a})
	diag := c.Hpack(100, Exactly)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	if c.List.Box.Width != 100 {
		t.Errorf("Width = %v, want 100", c.List.Box.Width)
	}
	if c.List.GlueSign != GlueSignStretch {
		t.Errorf("GlueSign = %v, want Stretch (ss glue absorbing slack)", c.List.GlueSign)
	}
}
