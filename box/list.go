// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// GlueSign is the direction a list's glue was set in.
type GlueSign int

const (
	GlueSignNormal GlueSign = 0
	GlueSignShrink GlueSign = -1
	GlueSignStretch GlueSign = 1
)

// List is the shared state of an Hlist or Vlist: a sequence of
// children plus the glue-setting computed by the last pack call.
type List struct {
	Box      Box
	Shift    float64 // arbitrary vertical (Hlist) or horizontal (Vlist) offset
	Children []Node

	GlueSet   float64
	GlueSign  GlueSign
	GlueOrder int
}

func newList(children []Node) *List {
	l := &List{Children: make([]Node, len(children))}
	copy(l.Children, children)
	return l
}

func (l *List) Kerning(next Node) float64 { return l.Box.Kerning(next) }

func (l *List) Shrink() {
	for _, n := range l.Children {
		n.Shrink()
	}
	l.Box.Shrink()
	if l.Box.Size < NumSizeLevels {
		l.Shift *= ShrinkFactor
		l.GlueSet *= ShrinkFactor
	}
}

func (l *List) Grow() {
	for _, n := range l.Children {
		n.Grow()
	}
	l.Box.Grow()
	l.Shift *= GrowFactor
	l.GlueSet *= GrowFactor
}

func (l *List) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*width += l.Box.Width
	if math.IsInf(l.Box.Height, 0) || math.IsInf(l.Box.Depth, 0) {
		return
	}
	*height = floats.Max([]float64{*height, l.Box.Height - l.Shift})
	*depth = floats.Max([]float64{*depth, l.Box.Depth + l.Shift})
}

func (l *List) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	*height += *depth + l.Box.Height
	*depth = l.Box.Depth
	if math.IsInf(l.Box.Width, 0) {
		return
	}
	*width = floats.Max([]float64{*width, l.Box.Width})
}

// PackMode selects whether hpack/vpack produce an exact size or the
// natural size plus an additional amount.
type PackMode int

const (
	Additional PackMode = iota
	Exactly
)

// Diagnostic is a non-fatal packing warning (spec §7
// OverfullBox/UnderfullBox).
type Diagnostic struct {
	Overfull bool
	Amount   float64
}

func (d Diagnostic) String() string {
	kind := "Underfull"
	if d.Overfull {
		kind = "Overfull"
	}
	return fmt.Sprintf("%s box (%.3gpt)", kind, d.Amount)
}

// Hlist is a horizontal list of boxes.
type Hlist struct {
	List List
}

// NewHlist builds an Hlist from children, optionally inserting Kern
// nodes from adjacent Kerning() calls, and packs it to its natural
// width.
func NewHlist(children []Node, doKern bool) (*Hlist, *Diagnostic) {
	h := &Hlist{List: *newList(children)}
	if doKern {
		h.kern()
	}
	return h, h.Hpack(0, Additional)
}

// kern inserts Kern nodes between adjacent children per their
// Kerning() amount.
func (h *Hlist) kern() {
	n := len(h.List.Children)
	if n == 0 {
		return
	}
	out := make([]Node, 0, n)
	for i, elem := range h.List.Children {
		var dist float64
		if i < n-1 {
			dist = elem.Kerning(h.List.Children[i+1])
		}
		out = append(out, elem)
		if dist != 0 {
			out = append(out, NewKern(dist))
		}
	}
	h.List.Children = out
}

// Hpack computes the list's width/height/depth and its glue setting.
// In Exactly mode the list is packed to exactly width; in Additional
// mode to its natural width plus width. It returns a non-nil
// Diagnostic when glue order 0 could not absorb the requested change
// and the list is non-empty (spec §4.2).
func (h *Hlist) Hpack(width float64, mode PackMode) *Diagnostic {
	var (
		hgt, dep, x float64
		stretch     = make([]float64, 4)
		shrnk       = make([]float64, 4)
	)
	for _, n := range h.List.Children {
		n.hpackDims(&x, &hgt, &dep, stretch, shrnk)
	}
	h.List.Box.Height = hgt
	h.List.Box.Depth = dep

	natural := x
	if mode == Additional {
		width += x
	}
	h.List.Box.Width = width
	x = width - natural

	return h.List.setGlue(x, stretch, shrnk, len(h.List.Children) > 0)
}

func (h *Hlist) Kerning(next Node) float64 { return h.List.Kerning(next) }
func (h *Hlist) Shrink()                   { h.List.Shrink() }
func (h *Hlist) Grow()                     { h.List.Grow() }

func (h *Hlist) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	h.List.hpackDims(width, height, depth, stretch, shrink)
}
func (h *Hlist) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	h.List.vpackDims(width, height, depth, stretch, shrink)
}

// Vlist is a vertical list of boxes.
type Vlist struct {
	List List
}

// NewVlist builds a Vlist packed to its natural height with unbounded
// max depth.
func NewVlist(children []Node) (*Vlist, *Diagnostic) {
	v := &Vlist{List: *newList(children)}
	return v, v.Vpack(0, Additional, math.Inf(+1))
}

// Vpack is the vertical analogue of Hpack; maxDepth clamps the depth
// of the final box, pushing any excess into height.
func (v *Vlist) Vpack(height float64, mode PackMode, maxDepth float64) *Diagnostic {
	var (
		w, dep, x float64
		stretch   = make([]float64, 4)
		shrnk     = make([]float64, 4)
	)
	for _, n := range v.List.Children {
		n.vpackDims(&w, &x, &dep, stretch, shrnk)
	}
	v.List.Box.Width = w

	if dep > maxDepth {
		x += dep - maxDepth
		v.List.Box.Depth = maxDepth
	} else {
		v.List.Box.Depth = dep
	}

	natural := x
	if mode == Additional {
		height += x
	}
	v.List.Box.Height = height
	x = height - natural

	return v.List.setGlue(x, stretch, shrnk, len(v.List.Children) > 0)
}

func (v *Vlist) Kerning(next Node) float64 { return v.List.Kerning(next) }
func (v *Vlist) Shrink()                   { v.List.Shrink() }
func (v *Vlist) Grow()                     { v.List.Grow() }

func (v *Vlist) hpackDims(width, height, depth *float64, stretch, shrink []float64) {
	v.List.hpackDims(width, height, depth, stretch, shrink)
}
func (v *Vlist) vpackDims(width, height, depth *float64, stretch, shrink []float64) {
	v.List.vpackDims(width, height, depth, stretch, shrink)
}

// setGlue resolves x into a GlueSign/GlueOrder/GlueSet triple and
// reports an Overfull/Underfull diagnostic when order 0 could not
// absorb it.
func (l *List) setGlue(x float64, stretch, shrink []float64, nonEmpty bool) *Diagnostic {
	switch {
	case x == 0:
		l.GlueSign, l.GlueOrder, l.GlueSet = GlueSignNormal, 0, 0
		return nil
	case x > 0:
		order := highestNonZero(stretch)
		l.GlueSign = GlueSignStretch
		l.GlueOrder = order
		if stretch[order] != 0 {
			l.GlueSet = x / stretch[order]
		}
		if order == 0 && nonEmpty {
			return &Diagnostic{Overfull: false, Amount: floats.Round(x, 3)}
		}
		return nil
	default:
		order := highestNonZero(shrink)
		l.GlueSign = GlueSignShrink
		l.GlueOrder = order
		if shrink[order] != 0 {
			l.GlueSet = -x / shrink[order]
		}
		if order == 0 && nonEmpty {
			return &Diagnostic{Overfull: true, Amount: floats.Round(-x, 3)}
		}
		return nil
	}
}

func highestNonZero(totals []float64) int {
	for order := len(totals) - 1; order > 0; order-- {
		if totals[order] != 0 {
			return order
		}
	}
	return 0
}

// HCentered wraps elements in an Hlist centered within its enclosing
// box via glue of infinite stretch on both sides.
func HCentered(elements []Node) *Hlist {
	nodes := make([]Node, 0, len(elements)+2)
	nodes = append(nodes, NewGlue("ss"))
	nodes = append(nodes, elements...)
	nodes = append(nodes, NewGlue("ss"))
	h, _ := NewHlist(nodes, false)
	return h
}

// VCentered is the vertical analogue of HCentered.
func VCentered(elements []Node) *Vlist {
	nodes := make([]Node, 0, len(elements)+2)
	nodes = append(nodes, NewGlue("ss"))
	nodes = append(nodes, elements...)
	nodes = append(nodes, NewGlue("ss"))
	v, _ := NewVlist(nodes)
	return v
}

// AutoHeightChar wraps the best-fitting sized variant of a symbol for
// a stretchy delimiter or radical: an Hlist around a single Char whose
// height+depth is at least the requested size.
type AutoHeightChar struct {
	Hlist
	Char *Char
}

// AutoWidthChar is the horizontal analogue, used for wide accents.
type AutoWidthChar struct {
	Hlist
	Char *Char
}

// SubSuperCluster is an Hlist specialization carrying the nucleus,
// subscript, and superscript nodes that were combined to produce it;
// retained so later passes (e.g. kerning against the next sibling)
// can still see the constituents.
type SubSuperCluster struct {
	Hlist
	Nucleus Node
	Sub     Node
	Super   Node
}

var (
	_ Node = (*Hlist)(nil)
	_ Node = (*Vlist)(nil)
	_ Node = (*AutoHeightChar)(nil)
	_ Node = (*AutoWidthChar)(nil)
	_ Node = (*SubSuperCluster)(nil)
)
