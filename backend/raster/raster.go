// Copyright ©2021 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster implements the backend.Backend contract over
// git.sr.ht/~sbinet/gg, producing PNG output.
package raster // import "github.com/go-mathtex/mathtex/backend/raster"

import (
	"fmt"

	"git.sr.ht/~sbinet/gg"
	stdfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/go-mathtex/mathtex/backend"
	"github.com/go-mathtex/mathtex/ship"
)

// Canvas rasterizes a formula's draw list with gg.
type Canvas struct {
	dc       *gg.Context
	w, h, d  float64
	dpi      float64
	faces    map[string]stdfont.Face
	fontData map[string][]byte
}

// New returns a Canvas; fontData maps the font aliases a formula's
// GlyphInfo may carry (spec §6.2's rm/it/bf/cal/tt/sf/ex) to raw
// OpenType bytes used to rasterize glyphs.
func New(fontData map[string][]byte) *Canvas {
	return &Canvas{
		faces:    make(map[string]stdfont.Face),
		fontData: fontData,
	}
}

func (c *Canvas) SetCanvasSize(width, height, depth, dpi float64) {
	c.w, c.h, c.d, c.dpi = width, height, depth, dpi
	c.dc = gg.NewContext(int(width+0.5), int(height+depth+0.5))
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()
	c.dc.SetRGB(0, 0, 0)
}

func (c *Canvas) faceFor(alias string, size float64) (stdfont.Face, error) {
	key := fmt.Sprintf("%s@%.2f@%.2f", alias, size, c.dpi)
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	raw, ok := c.fontData[alias]
	if !ok {
		raw, ok = c.fontData["rm"]
		if !ok {
			return nil, fmt.Errorf("mathtex/backend/raster: no font registered for alias %q", alias)
		}
	}
	sf, err := opentype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("mathtex/backend/raster: parsing font: %w", err)
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     c.dpi,
		Hinting: stdfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("mathtex/backend/raster: building face: %w", err)
	}
	c.faces[key] = face
	return face, nil
}

func (c *Canvas) Render(glyphs []ship.Glyph, rects []ship.Rect) {
	for _, r := range rects {
		c.dc.DrawRectangle(r.X1, r.Y1, r.X2-r.X1, r.Y2-r.Y1)
		c.dc.Fill()
	}
	for _, g := range glyphs {
		info, ok := g.Info.(ship.GlyphInfo)
		if !ok {
			continue
		}
		face, err := c.faceFor(info.Alias, info.PtSize)
		if err != nil {
			continue
		}
		c.dc.SetFontFace(face)
		c.dc.DrawString(string(info.Rune), g.X, g.Y)
	}
}

func (c *Canvas) Save(filename, format string) error {
	switch format {
	case "png":
		return c.dc.SavePNG(filename)
	default:
		return &backend.UnavailableError{Backend: "raster", Format: format}
	}
}

var _ backend.Backend = (*Canvas)(nil)
