// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package font defines the contract a font set must satisfy to supply
// glyph metrics, kerning, and sized alternatives to the box layout
// engine. Concrete implementations live in the latinmodern and unicode
// subpackages; font loading and glyph rasterization themselves are
// external collaborators, not the concern of this package.
package font // import "github.com/go-mathtex/mathtex/font"

import "fmt"

// Alias is a TeX font alias, e.g. "rm", "it", "bf", "cal", "tt", "sf",
// "ex".
type Alias string

const (
	Roman      Alias = "rm"
	Italic     Alias = "it"
	Bold       Alias = "bf"
	Calligraph Alias = "cal"
	Typewriter Alias = "tt"
	SansSerif  Alias = "sf"
	Extension  Alias = "ex"
)

// Class is the coarse font family used to key kerning lookups. The
// lowering pass sets it to the current style name for every style, so
// any font switch changes the class, not only rm, it and bf.
type Class string

// Metrics describes a single resolved glyph.
type Metrics struct {
	Advance float64
	Width   float64
	Height  float64
	Xmin    float64
	Xmax    float64
	Ymin    float64
	Ymax    float64

	// Iceberg is the glyph's height above the baseline (horiBearingY).
	Iceberg float64
	Slanted bool
}

// SizedAlternative is one entry of the ordered, smallest-first list of
// glyphs a stretchy delimiter or radical may grow into.
type SizedAlternative struct {
	Font   Alias
	Symbol string
}

// Provider is the contract a font set exposes to the box layout
// engine. size and dpi are in points and dots-per-inch respectively.
type Provider interface {
	Metrics(alias Alias, class Class, symbol string, size, dpi float64) (Metrics, error)
	Kern(alias1 Alias, class1 Class, sym1 string, size1 float64, alias2 Alias, class2 Class, sym2 string, size2, dpi float64) float64
	XHeight(alias Alias, size, dpi float64) float64
	UnderlineThickness(alias Alias, size, dpi float64) float64
	SizedAlternatives(alias Alias, symbol string) []SizedAlternative
	DefaultStyle() Alias
}

// MissingGlyphError is returned by Metrics, together with zero
// Metrics, when the requested code point is not present in the chosen
// font; the caller queries the dummy glyph U+00A4 in roman instead and
// proceeds.
type MissingGlyphError struct {
	Alias  Alias
	Symbol string
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("mathtex/font: missing glyph %q in font %q", e.Symbol, e.Alias)
}

// DummyGlyph is substituted whenever a font cannot supply the
// requested code point.
const DummyGlyph = "¤"
