// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"os"
	"strings"
	"testing"

	"github.com/go-mathtex/mathtex/ship"
)

func TestRenderEmitsFillAndShow(t *testing.T) {
	c := New()
	c.SetCanvasSize(100, 20, 5, 100)
	c.Render(
		[]ship.Glyph{{X: 1, Y: 2, Info: ship.GlyphInfo{Rune: 'x', Alias: "it", PtSize: 12}}},
		[]ship.Rect{{X1: 0, Y1: 0, X2: 10, Y2: 1}},
	)
	s := c.buf.String()
	if !strings.Contains(s, "fill") {
		t.Error("Render did not emit a fill path for the rect")
	}
	if !strings.Contains(s, "(x) show") {
		t.Error("Render did not emit a show operator for the glyph")
	}
	if !strings.Contains(s, "%%BoundingBox: 0 0 100 25") {
		t.Errorf("missing expected bounding box comment, got: %s", s)
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	c := New()
	c.SetCanvasSize(10, 10, 0, 100)
	if err := c.Save("x.png", "png"); err == nil {
		t.Fatal("expected an UnavailableError for format \"png\"")
	}
}

func TestSaveWritesEPSFile(t *testing.T) {
	c := New()
	c.SetCanvasSize(10, 10, 0, 100)
	name := t.TempDir() + "/out.eps"
	if err := c.Save(name, "eps"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%!PS-Adobe-3.0 EPSF-3.0") {
		t.Error("saved file missing EPS header")
	}
	if !strings.HasSuffix(string(data), "showpage\n") {
		t.Error("saved file missing trailing showpage")
	}
}
