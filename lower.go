// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtex // import "github.com/go-mathtex/mathtex"

import (
	"fmt"
	"strconv"

	"github.com/go-mathtex/mathtex/ast"
	"github.com/go-mathtex/mathtex/box"
	"github.com/go-mathtex/mathtex/font"
)

// state is one frame of the parser's font/size state stack (spec
// §4.1): current style name, point size and dpi. style doubles as
// both the font_alias and font_class the spec describes separately —
// the Unicode/STIX virtual-font remap and the classic BaKoMa alias
// lookup both key off the same style letter, so carrying one string
// through both serves both font sets without contradiction.
type state struct {
	style  string
	ptSize float64
	dpi    float64
}

func (s state) alias() font.Alias { return aliasForStyle(s.style) }
func (s state) class() font.Class { return font.Class(s.style) }

// aliasForStyle maps a style letter to the concrete font.Alias used by
// the classic seven-alias (BaKoMa/Latin-Modern) lookup path; virtual
// STIX styles with no BaKoMa equivalent fall back to Roman, since for
// those the Unicode font set's class-keyed remap does the real work.
func aliasForStyle(style string) font.Alias {
	switch style {
	case "rm":
		return font.Roman
	case "it":
		return font.Italic
	case "bf":
		return font.Bold
	case "cal":
		return font.Calligraph
	case "tt":
		return font.Typewriter
	case "sf":
		return font.SansSerif
	case "ex":
		return font.Extension
	default:
		return font.Roman
	}
}

type lowerer struct {
	provider     font.Provider
	builder      *box.Builder
	defaultStyle string
	diags        []string
	emCache      map[emKey]float64
}

type emKey struct {
	style       string
	ptSize, dpi float64
}

func newLowerer(provider font.Provider, defaultStyle string) *lowerer {
	return &lowerer{
		provider:     provider,
		builder:      box.NewBuilder(provider),
		defaultStyle: defaultStyle,
		emCache:      make(map[emKey]float64),
	}
}

// emWidth returns the advance of 'm' in the given style/size/dpi,
// memoized per spec §4.1's "em-width cache".
func (l *lowerer) emWidth(st state) (float64, error) {
	key := emKey{style: st.style, ptSize: st.ptSize, dpi: st.dpi}
	if w, ok := l.emCache[key]; ok {
		return w, nil
	}
	m, err := l.provider.Metrics(st.alias(), st.class(), "m", st.ptSize, st.dpi)
	if err != nil {
		return 0, err
	}
	l.emCache[key] = m.Advance
	return m.Advance, nil
}

func (l *lowerer) warnf(format string, args ...interface{}) {
	l.diags = append(l.diags, fmt.Sprintf(format, args...))
}

// lowerVerbatim builds the Char nodes for text outside any $...$ span,
// set in the ambient roman font (spec §6.4).
func (l *lowerer) lowerVerbatim(list []ast.Node, ptSize, dpi float64) ([]box.Node, error) {
	var out []box.Node
	for _, n := range list {
		lit, ok := n.(*ast.Literal)
		if !ok {
			continue
		}
		c, err := box.NewChar(l.provider, font.Roman, font.Class("rm"), lit.Text, ptSize, dpi, false)
		if err != nil {
			return nil, err
		}
		if c.Symbol == font.DummyGlyph {
			l.warnf("missing glyph for %q, substituted dummy glyph", lit.Text)
		}
		out = append(out, c)
	}
	return out, nil
}

// lowerMathList lowers a sequence of math-mode placeables/spaces into
// box nodes, in source order.
func (l *lowerer) lowerMathList(list []ast.Node, st state) ([]box.Node, error) {
	var out []box.Node
	for _, n := range list {
		switch item := n.(type) {
		case *ast.Space:
			w, ok := box.SpaceWidths[item.Name]
			if !ok {
				w = 0
			}
			em, err := l.emWidth(st)
			if err != nil {
				return nil, err
			}
			out = append(out, box.NewKern(w*em))
		case *ast.Macro:
			if item.Name.Name == "hspace" {
				n, err := strconv.ParseFloat(item.Args[0].(*ast.Literal).Text, 64)
				if err != nil {
					return nil, fmt.Errorf("mathtex: bad \\hspace argument: %w", err)
				}
				em, err := l.emWidth(st)
				if err != nil {
					return nil, err
				}
				out = append(out, box.NewKern(n*em))
				continue
			}
			node, err := l.lowerPlaceable(item, st)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
		default:
			node, err := l.lowerPlaceable(item, st)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
		}
	}
	return out, nil
}

// lowerGroup lowers a braced body to a single packed Hlist.
func (l *lowerer) lowerGroup(list []ast.Node, st state) (box.Node, error) {
	children, err := l.lowerMathList(list, st)
	if err != nil {
		return nil, err
	}
	hl, diag := box.NewHlist(children, true)
	if diag != nil {
		l.warnf("%s", diag)
	}
	return hl, nil
}

func (l *lowerer) lowerArg(arg ast.Node, st state) (box.Node, error) {
	switch a := arg.(type) {
	case *ast.Arg:
		return l.lowerGroup(a.List, st)
	default:
		return l.lowerPlaceable(arg, st)
	}
}

// lowerPlaceable lowers a single `placeable` production (spec §4.1's
// grammar) to one box node.
func (l *lowerer) lowerPlaceable(n ast.Node, st state) (box.Node, error) {
	if n == nil {
		return &box.Box{}, nil
	}
	switch node := n.(type) {
	case *ast.Literal:
		return l.lowerLiteral(node, st)
	case *ast.Group:
		gst := st
		if node.Font != "" {
			gst.style = l.resolveFontSwitch(node.Font)
		}
		return l.lowerGroup(node.List, gst)
	case *ast.SubSuper:
		return l.lowerSubSuper(node, st)
	case *ast.AutoDelim:
		return l.lowerAutoDelim(node, st)
	case *ast.Macro:
		return l.lowerMacro(node, st)
	case ast.List:
		return l.lowerGroup(node, st)
	default:
		return nil, fmt.Errorf("mathtex: internal: unhandled placeable %T", n)
	}
}

// resolveFontSwitch turns a group's font-switch name into the style
// letter this lowerer's state tracks; "default"/"regular" restores the
// formula's configured default style.
func (l *lowerer) resolveFontSwitch(name string) string {
	switch name {
	case "default", "regular":
		return l.defaultStyle
	default:
		return name
	}
}

func (l *lowerer) lowerLiteral(lit *ast.Literal, st state) (box.Node, error) {
	c, err := box.NewChar(l.provider, st.alias(), st.class(), lit.Text, st.ptSize, st.dpi, true)
	if err != nil {
		return nil, err
	}
	if c.Symbol == font.DummyGlyph {
		l.warnf("missing glyph for %q, substituted dummy glyph", lit.Text)
	}
	em, err := l.emWidth(st)
	if err != nil {
		return nil, err
	}
	return box.WrapSymbol(c, em), nil
}

func (l *lowerer) lowerSubSuper(n *ast.SubSuper, st state) (box.Node, error) {
	nucleus, err := l.lowerPlaceable(n.Nucleus, st)
	if err != nil {
		return nil, err
	}
	var sub, super box.Node
	if n.Sub != nil {
		sub, err = l.lowerPlaceable(n.Sub, st)
		if err != nil {
			return nil, err
		}
	}
	if n.Super != nil {
		super, err = l.lowerPlaceable(n.Super, st)
		if err != nil {
			return nil, err
		}
	}
	xh := l.provider.XHeight(st.alias(), st.ptSize, st.dpi)
	slanted := false
	if c, ok := nucleus.(*box.Char); ok {
		slanted = c.Slanted
	}
	return l.builder.SubSuper(nucleus, sub, super, xh, st.ptSize, st.dpi, slanted)
}

func (l *lowerer) lowerAutoDelim(n *ast.AutoDelim, st state) (box.Node, error) {
	body, err := l.lowerMathList(n.Body, st)
	if err != nil {
		return nil, err
	}
	return l.builder.AutoSizedDelimiter(n.Ldelim, body, n.Rdelim, st.ptSize, st.dpi)
}

func (l *lowerer) lowerMacro(m *ast.Macro, st state) (box.Node, error) {
	name := m.Name.Name
	switch {
	case name == "frac" || name == "stackrel" || name == "binom":
		return l.lowerFracLike(m, st)
	case name == "genfrac":
		return l.lowerGenfrac(m, st)
	case name == "sqrt":
		return l.lowerSqrt(m, st)
	case name == "operatorname" || name == "operatorname*":
		return l.lowerOperatorname(m, st)
	case box.FunctionNames[name]:
		return l.lowerFunctionName(name, st)
	case isAccentMacro(name):
		return l.lowerAccent(m, st)
	default:
		if entry, ok := box.CharOverChars[name]; ok {
			return l.lowerCharOverChars(entry, st)
		}
		return nil, fmt.Errorf("mathtex: internal: unhandled macro %q", name)
	}
}

func isAccentMacro(name string) bool {
	if _, ok := box.AccentMap[name]; ok {
		return true
	}
	return box.WideAccents[name]
}

func (l *lowerer) lowerFracLike(m *ast.Macro, st state) (box.Node, error) {
	num, err := l.lowerArg(m.Args[0], st)
	if err != nil {
		return nil, err
	}
	den, err := l.lowerArg(m.Args[1], st)
	if err != nil {
		return nil, err
	}
	xh := l.provider.XHeight(st.alias(), st.ptSize, st.dpi)

	var ruleThickness float64
	ldelim, rdelim := ".", "."
	switch m.Name.Name {
	case "frac":
		ruleThickness = -1
	case "stackrel":
		ruleThickness = 0
	case "binom":
		ruleThickness = 0
		ldelim, rdelim = "(", ")"
	}

	frac, err := l.builder.Genfrac(num, den, ruleThickness, st.ptSize, st.dpi, xh)
	if err != nil {
		return nil, err
	}
	if ldelim == "." && rdelim == "." {
		return frac, nil
	}
	return l.builder.AutoSizedDelimiter(ldelim, []box.Node{frac}, rdelim, st.ptSize, st.dpi)
}

// genfracStyleShrink is the number of extra shrink() steps applied for
// each LaTeX genfrac style level (0=display,1=text,2=script,3=scriptscript).
func genfracStyleShrink(style string) int {
	switch style {
	case "2", "3":
		return 1
	default:
		return 0
	}
}

func (l *lowerer) lowerGenfrac(m *ast.Macro, st state) (box.Node, error) {
	ldelim := m.Args[0].(*ast.Literal).Text
	rdelim := m.Args[1].(*ast.Literal).Text
	ruleSize := m.Args[2].(*ast.Literal).Text
	style := m.Args[3].(*ast.Literal).Text

	num, err := l.lowerArg(m.Args[4], st)
	if err != nil {
		return nil, err
	}
	den, err := l.lowerArg(m.Args[5], st)
	if err != nil {
		return nil, err
	}
	for i := 0; i < genfracStyleShrink(style); i++ {
		num.Shrink()
		den.Shrink()
	}

	ruleThickness := -1.0
	if ruleSize != "" {
		if v, err := strconv.ParseFloat(ruleSize, 64); err == nil {
			em, emErr := l.emWidth(st)
			if emErr == nil {
				ruleThickness = v * em
			}
		}
	}

	xh := l.provider.XHeight(st.alias(), st.ptSize, st.dpi)
	frac, err := l.builder.Genfrac(num, den, ruleThickness, st.ptSize, st.dpi, xh)
	if err != nil {
		return nil, err
	}
	if ldelim == "." && rdelim == "." {
		return frac, nil
	}
	return l.builder.AutoSizedDelimiter(ldelim, []box.Node{frac}, rdelim, st.ptSize, st.dpi)
}

func (l *lowerer) lowerSqrt(m *ast.Macro, st state) (box.Node, error) {
	bodyArg := m.Args[0]
	body, err := l.lowerArg(bodyArg, st)
	if err != nil {
		return nil, err
	}

	var index box.Node
	for _, a := range m.Args[1:] {
		opt, ok := a.(*ast.OptArg)
		if !ok {
			continue
		}
		lit := opt.List[0].(*ast.Literal)
		c, err := box.NewChar(l.provider, st.alias(), st.class(), lit.Text, st.ptSize, st.dpi, true)
		if err != nil {
			return nil, err
		}
		index = c
	}

	xh := l.provider.XHeight(st.alias(), st.ptSize, st.dpi)
	return l.builder.Sqrt(body, index, st.ptSize, st.dpi, xh)
}

func (l *lowerer) lowerOperatorname(m *ast.Macro, st state) (box.Node, error) {
	arg := m.Args[0].(*ast.Arg)
	var letters []box.Node
	for _, n := range arg.List {
		lit, ok := n.(*ast.Literal)
		if !ok {
			continue
		}
		c, err := box.NewChar(l.provider, font.Roman, font.Class("rm"), lit.Text, st.ptSize, st.dpi, true)
		if err != nil {
			return nil, err
		}
		letters = append(letters, c)
	}
	hl, diag := box.NewHlist(letters, true)
	if diag != nil {
		l.warnf("%s", diag)
	}
	return hl, nil
}

func (l *lowerer) lowerFunctionName(name string, st state) (box.Node, error) {
	var letters []box.Node
	for _, r := range name {
		c, err := box.NewChar(l.provider, font.Roman, font.Class("rm"), string(r), st.ptSize, st.dpi, true)
		if err != nil {
			return nil, err
		}
		letters = append(letters, c)
	}
	hl, diag := box.NewHlist(letters, true)
	if diag != nil {
		l.warnf("%s", diag)
	}
	return hl, nil
}

func (l *lowerer) lowerCharOverChars(entry box.CharOverCharsEntry, st state) (box.Node, error) {
	underStyle := st.style
	if entry.UnderFont != "" {
		underStyle = entry.UnderFont
	}
	under, err := box.NewChar(l.provider, aliasForStyle(underStyle), font.Class(underStyle), entry.UnderSym, st.ptSize, st.dpi, true)
	if err != nil {
		return nil, err
	}
	overStyle := st.style
	if entry.OverFont != "" {
		overStyle = entry.OverFont
	}
	over, err := box.NewChar(l.provider, aliasForStyle(overStyle), font.Class(overStyle), entry.OverSym, st.ptSize, st.dpi, true)
	if err != nil {
		return nil, err
	}
	over.PtSize *= entry.OverScale
	over.Width *= entry.OverScale
	over.Height *= entry.OverScale
	over.Depth *= entry.OverScale

	centered := box.HCentered([]box.Node{over})
	underH, _ := box.NewHlist([]box.Node{under}, false)
	vl, diag := box.NewVlist([]box.Node{centered, box.NewKern(entry.SpaceUscore), underH})
	if diag != nil {
		l.warnf("%s", diag)
	}
	hl, _ := box.NewHlist([]box.Node{vl}, false)
	return hl, nil
}

// lowerAccent builds an accent glyph centered (or stretched, for
// \widehat/\widetilde) over its argument.
func (l *lowerer) lowerAccent(m *ast.Macro, st state) (box.Node, error) {
	name := m.Name.Name
	body, err := l.lowerArg(m.Args[0], st)
	if err != nil {
		return nil, err
	}
	bd := box.NodeDims(body)

	var accentPiece box.Node
	if box.WideAccents[name] {
		wide, err := l.builder.NewAutoWidthChar(font.Extension, name, bd.Width, st.ptSize, st.dpi)
		if err != nil {
			return nil, err
		}
		accentPiece = wide
	} else {
		sym := box.AccentMap[name]
		acc, err := box.NewAccent(l.provider, st.alias(), st.class(), sym, st.ptSize, st.dpi)
		if err != nil {
			return nil, err
		}
		accentPiece = box.HCentered([]box.Node{acc})
	}

	vl, diag := box.NewVlist([]box.Node{accentPiece, box.NewKern(0), body})
	if diag != nil {
		l.warnf("%s", diag)
	}
	hl, _ := box.NewHlist([]box.Node{vl}, false)
	return hl, nil
}
