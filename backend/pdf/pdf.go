// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdf implements the backend.Backend contract over
// github.com/go-pdf/fpdf, producing PDF output only; any other save
// format is reported through backend.UnavailableError (spec §6.3).
package pdf // import "github.com/go-mathtex/mathtex/backend/pdf"

import (
	"github.com/go-pdf/fpdf"

	"github.com/go-mathtex/mathtex/backend"
	"github.com/go-mathtex/mathtex/ship"
)

// aliasFont maps a GlyphInfo.Alias to the fpdf builtin font family
// closest to it; fpdf's 14 standard fonts carry no math extension
// repertoire, so "cal" and "ex" fall back to Symbol, matching the
// nearest built-in fpdf ships with glyphs outside plain Latin text.
var aliasFont = map[string]string{
	"rm":  "Times",
	"it":  "Times",
	"bf":  "Times",
	"tt":  "Courier",
	"sf":  "Helvetica",
	"cal": "Symbol",
	"ex":  "Symbol",
}

var aliasStyle = map[string]string{
	"it": "I",
	"bf": "B",
}

// Canvas renders a formula's draw list with fpdf.
type Canvas struct {
	pdf     *fpdf.Fpdf
	w, h, d float64
	dpi     float64
}

// New returns a ready Canvas.
func New() *Canvas {
	return &Canvas{}
}

// pointsToMM converts a PDF-point measurement, as this module's
// layout works in points, to the millimetres fpdf's default unit
// expects.
func pointsToMM(pt float64) float64 { return pt * 25.4 / 72 }

func (c *Canvas) SetCanvasSize(width, height, depth, dpi float64) {
	c.w, c.h, c.d, c.dpi = width, height, depth, dpi
	c.pdf = fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		SizeStr: "",
		Size: fpdf.SizeType{
			Wd: pointsToMM(width),
			Ht: pointsToMM(height + depth),
		},
	})
	c.pdf.SetMargins(0, 0, 0)
	c.pdf.SetAutoPageBreak(false, 0)
	c.pdf.AddPage()
}

func (c *Canvas) Render(glyphs []ship.Glyph, rects []ship.Rect) {
	c.pdf.SetFillColor(0, 0, 0)
	for _, r := range rects {
		x, y := pointsToMM(r.X1), pointsToMM(r.Y1)
		w, h := pointsToMM(r.X2-r.X1), pointsToMM(r.Y2-r.Y1)
		c.pdf.Rect(x, y, w, h, "F")
	}
	for _, g := range glyphs {
		info, ok := g.Info.(ship.GlyphInfo)
		if !ok {
			continue
		}
		family, ok := aliasFont[info.Alias]
		if !ok {
			family = "Times"
		}
		c.pdf.SetFont(family, aliasStyle[info.Alias], info.PtSize)
		c.pdf.Text(pointsToMM(g.X), pointsToMM(g.Y), string(info.Rune))
	}
}

func (c *Canvas) Save(filename, format string) error {
	if format != "pdf" {
		return &backend.UnavailableError{Backend: "pdf", Format: format}
	}
	return c.pdf.OutputFileAndClose(filename)
}

var _ backend.Backend = (*Canvas)(nil)
