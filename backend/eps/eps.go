// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eps implements the backend.Backend contract by emitting
// Encapsulated PostScript directly: filled rectangles as "fill" paths
// and glyphs as "show" text, with no dependency on a rasterizer.
package eps // import "github.com/go-mathtex/mathtex/backend/eps"

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/go-mathtex/mathtex/backend"
	"github.com/go-mathtex/mathtex/ship"
)

// pr is the precision used when formatting float64s into the
// PostScript stream.
const pr = 5

// aliasFont maps a GlyphInfo.Alias to a PostScript base-14 font name;
// an EPS viewer substitutes its own if the named font is absent.
var aliasFont = map[string]string{
	"rm": "Times-Roman",
	"it": "Times-Italic",
	"bf": "Times-Bold",
	"tt": "Courier",
	"sf": "Helvetica",
	"cal": "Symbol",
	"ex": "Symbol",
}

// Canvas accumulates a formula's draw list into an EPS document body.
type Canvas struct {
	buf         bytes.Buffer
	w, h, d     float64
	dpi         float64
	curFont     string
	curFontSize float64
}

// New returns a ready Canvas.
func New() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetCanvasSize(width, height, depth, dpi float64) {
	c.w, c.h, c.d, c.dpi = width, height, depth, dpi
	c.curFont, c.curFontSize = "", 0
	c.buf.Reset()
	c.buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	c.buf.WriteString("%%Creator: github.com/go-mathtex/mathtex/backend/eps\n")
	fmt.Fprintf(&c.buf, "%%%%BoundingBox: 0 0 %.*g %.*g\n", pr, width, pr, height+depth)
	fmt.Fprintf(&c.buf, "%%%%CreationDate: %s\n", strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()))
	c.buf.WriteString("%%EndComments\n\n")
}

// Render draws rects as filled boxes, then glyphs as PostScript show
// operators, flipping the coordinate system so y increases upward as
// PostScript expects (the draw list's y increases downward, per TeX).
func (c *Canvas) Render(glyphs []ship.Glyph, rects []ship.Rect) {
	top := c.h + c.d
	for _, r := range rects {
		x1, y1 := r.X1, top-r.Y1
		x2, y2 := r.X2, top-r.Y2
		c.buf.WriteString("newpath\n")
		fmt.Fprintf(&c.buf, "%.*g %.*g moveto\n", pr, x1, pr, y1)
		fmt.Fprintf(&c.buf, "%.*g %.*g lineto\n", pr, x2, pr, y1)
		fmt.Fprintf(&c.buf, "%.*g %.*g lineto\n", pr, x2, pr, y2)
		fmt.Fprintf(&c.buf, "%.*g %.*g lineto\n", pr, x1, pr, y2)
		c.buf.WriteString("closepath\nfill\n")
	}
	for _, g := range glyphs {
		info, ok := g.Info.(ship.GlyphInfo)
		if !ok {
			continue
		}
		name, ok := aliasFont[info.Alias]
		if !ok {
			name = "Times-Roman"
		}
		if c.curFont != name || c.curFontSize != info.PtSize {
			c.curFont, c.curFontSize = name, info.PtSize
			fmt.Fprintf(&c.buf, "/%s findfont %.*g scalefont setfont\n", name, pr, info.PtSize)
		}
		fmt.Fprintf(&c.buf, "%.*g %.*g moveto\n", pr, g.X, pr, top-g.Y)
		fmt.Fprintf(&c.buf, "(%s) show\n", escapePS(string(info.Rune)))
	}
}

// escapePS backslash-escapes the PostScript string delimiters.
func escapePS(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (c *Canvas) Save(filename, format string) error {
	if format != "eps" {
		return &backend.UnavailableError{Backend: "eps", Format: format}
	}
	var out bytes.Buffer
	out.Write(c.buf.Bytes())
	out.WriteString("showpage\n")
	return os.WriteFile(filename, out.Bytes(), 0o644)
}

var _ backend.Backend = (*Canvas)(nil)
