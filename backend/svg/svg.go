// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg implements the backend.Backend contract over
// github.com/ajstarks/svgo, producing SVG output.
package svg // import "github.com/go-mathtex/mathtex/backend/svg"

import (
	"bytes"
	"fmt"
	"os"
	"time"

	svgo "github.com/ajstarks/svgo"
	"github.com/ncruces/go-strftime"

	"github.com/go-mathtex/mathtex/backend"
	"github.com/go-mathtex/mathtex/ship"
)

// aliasFamily maps a GlyphInfo.Alias to the CSS font-family name
// emitted in the SVG text elements; a viewer is expected to have an
// equivalent Latin Modern / Liberation family installed or substitute
// one by its own font-matching rules.
var aliasFamily = map[string]string{
	"rm": "Latin Modern Roman, serif",
	"it": "Latin Modern Roman, serif",
	"bf": "Latin Modern Roman, serif",
	"tt": "Latin Modern Mono, monospace",
	"sf": "Latin Modern Sans, sans-serif",
	"cal": "Latin Modern Math, serif",
	"ex": "Latin Modern Math, serif",
}

// Canvas renders a formula's draw list as SVG markup.
type Canvas struct {
	buf        bytes.Buffer
	svg        *svgo.SVG
	w, h, d    float64
	dpi        float64
}

// New returns a ready Canvas.
func New() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetCanvasSize(width, height, depth, dpi float64) {
	c.w, c.h, c.d, c.dpi = width, height, depth, dpi
	c.buf.Reset()
	c.svg = svgo.New(&c.buf)
	c.svg.Start(int(width+0.5), int(height+depth+0.5))
	c.svg.Comment("Created: " + strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()))
}

func (c *Canvas) Render(glyphs []ship.Glyph, rects []ship.Rect) {
	for _, r := range rects {
		w, h := int(r.X2-r.X1+0.5), int(r.Y2-r.Y1+0.5)
		c.svg.Rect(int(r.X1+0.5), int(r.Y1+0.5), w, h, "fill:black")
	}
	for _, g := range glyphs {
		info, ok := g.Info.(ship.GlyphInfo)
		if !ok {
			continue
		}
		family, ok := aliasFamily[info.Alias]
		if !ok {
			family = "serif"
		}
		style := fmt.Sprintf("font-family:%s;font-size:%.2fpt", family, info.PtSize)
		c.svg.Text(int(g.X+0.5), int(g.Y+0.5), string(info.Rune), style)
	}
}

func (c *Canvas) Save(filename, format string) error {
	switch format {
	case "svg":
		c.svg.End()
		return os.WriteFile(filename, c.buf.Bytes(), 0o644)
	default:
		return &backend.UnavailableError{Backend: "svg", Format: format}
	}
}

var _ backend.Backend = (*Canvas)(nil)
