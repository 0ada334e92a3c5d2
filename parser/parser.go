// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the recursive-descent, packrat-memoised
// grammar of spec §4.1: math expression text in, ast.Node tree out.
package parser // import "github.com/go-mathtex/mathtex/parser"

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-mathtex/mathtex/ast"
	"github.com/go-mathtex/mathtex/box"
	"github.com/go-mathtex/mathtex/token"
)

// ParseError reports a grammar violation at a source position.
type ParseError struct {
	Pos      token.Pos
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mathtex: parse error at %d: expected %s", e.Pos, e.Expected)
}

// UnknownSymbolError reports a command absent from the symbol table.
type UnknownSymbolError struct {
	Pos  token.Pos
	Name string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("mathtex: unknown symbol %q at %d", e.Name, e.Pos)
}

type rule int

const (
	ruleMath rule = iota
	ruleSimple
	ruleSubsuper
	rulePlaceable
	ruleGroup
	ruleAutoDelim
)

type memoKey struct {
	rule rule
	pos  int
}

type memoEntry struct {
	node ast.Node
	next int
	err  error
}

// Parser turns a token stream into an ast.Node tree. It holds no font
// or size state; that lives in the lowering pass of package mathtex,
// which walks the tree produced here.
type Parser struct {
	toks []token.Token
	pos  int
	memo map[memoKey]memoEntry
}

// Parse scans and parses expression into its ast.Node tree.
func Parse(expression string) (ast.Node, error) {
	sc := newScanner(strings.NewReader(expression))
	var toks []token.Token
	for sc.Next() {
		tok := sc.Token()
		if tok.Kind == token.Comment {
			continue
		}
		toks = append(toks, tok)
	}
	toks = append(toks, token.Token{Kind: token.EOF, Pos: token.Pos(len(expression))})

	p := &Parser{toks: toks, memo: make(map[memoKey]memoEntry)}
	return p.parseExpression()
}

func (p *Parser) cur() token.Token  { return p.toks[p.pos] }
func (p *Parser) atEnd() bool       { return p.cur().Kind == token.EOF }
func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expression := non_math ( '$' math? '$' non_math )*
func (p *Parser) parseExpression() (ast.Node, error) {
	var list ast.List

	nm := p.parseNonMath()
	if len(nm) > 0 {
		list = append(list, ast.List(nm))
	}

	for p.cur().Kind == token.Dollar {
		left := p.advance().Pos
		var inner ast.List
		if p.cur().Kind != token.Dollar {
			m, err := p.parseMath()
			if err != nil {
				return nil, err
			}
			inner = m
		}
		if p.cur().Kind != token.Dollar {
			return nil, &ParseError{Pos: p.cur().Pos, Expected: "'$'"}
		}
		right := p.advance().Pos
		list = append(list, &ast.MathExpr{Left: left, List: inner, Right: right})

		nm = p.parseNonMath()
		if len(nm) > 0 {
			list = append(list, ast.List(nm))
		}
	}

	if !p.atEnd() {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: "EOF"}
	}
	return list, nil
}

// parseNonMath collects verbatim text up to the next unescaped '$' or
// EOF, unescaping \$ to a literal dollar.
func (p *Parser) parseNonMath() []ast.Node {
	var out []ast.Node
	for {
		t := p.cur()
		switch {
		case t.Kind == token.Dollar:
			return out
		case t.Kind == token.EOF:
			return out
		case t.Kind == token.Macro && t.Text == `\$`:
			p.advance()
			out = append(out, &ast.Literal{LitPos: t.Pos, Text: "$"})
		default:
			p.advance()
			out = append(out, &ast.Literal{LitPos: t.Pos, Text: t.Text})
		}
	}
}

// math := ( auto_delim | simple )+
func (p *Parser) parseMath() (ast.List, error) {
	var out ast.List
	for p.cur().Kind != token.Dollar && !p.atEnd() {
		n, err := p.parseAutoDelimOrSimple()
		if err != nil {
			return nil, err
		}
		if n == nil {
			break
		}
		out = append(out, n)
	}
	return out, nil
}

func (p *Parser) parseAutoDelimOrSimple() (ast.Node, error) {
	if p.cur().Kind == token.Macro && p.cur().Text == `\left` {
		return p.parseAutoDelim()
	}
	return p.parseSimple()
}

// simple := space | custom_space | font_switch | subsuper
func (p *Parser) parseSimple() (ast.Node, error) {
	t := p.cur()
	switch {
	case t.Kind == token.Space:
		p.advance()
		return p.parseSimple()
	case t.Kind == token.Macro && isSpaceMacro(t.Text):
		p.advance()
		return &ast.Space{SpacePos: t.Pos, Name: t.Text}, nil
	case t.Kind == token.Macro && t.Text == `\hspace`:
		return p.parseHspace()
	default:
		return p.memoized(ruleSubsuper, p.parseSubsuper)
	}
}

func isSpaceMacro(name string) bool {
	_, ok := box.SpaceWidths[name]
	return ok
}

func (p *Parser) parseHspace() (ast.Node, error) {
	pos := p.advance().Pos
	if p.cur().Kind != token.Lbrace {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: `'{' after \hspace`}
	}
	p.advance()
	num := p.collectNumber()
	if num == "" {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: "number"}
	}
	if p.cur().Kind != token.Rbrace {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: "'}'"}
	}
	p.advance()
	if _, err := strconv.ParseFloat(num, 64); err != nil {
		return nil, &ParseError{Pos: pos, Expected: "numeric \\hspace argument"}
	}
	return &ast.Macro{
		Name: ast.Ident{NamePos: pos, Name: "hspace"},
		Args: []ast.Node{&ast.Literal{LitPos: pos, Text: num}},
	}, nil
}

func (p *Parser) collectNumber() string {
	var b strings.Builder
	for p.cur().Kind == token.Number || (p.cur().Kind == token.Sub) {
		b.WriteString(p.advance().Text)
	}
	return b.String()
}

// subsuper := [placeable] ( ('_'|'^') placeable ){0,2} | placeable
func (p *Parser) parseSubsuper() (ast.Node, error) {
	var nucleus ast.Node
	if p.startsPlaceable() {
		n, err := p.parsePlaceable()
		if err != nil {
			return nil, err
		}
		nucleus = n
	}

	var sub, super ast.Node
	for i := 0; i < 2; i++ {
		switch p.cur().Kind {
		case token.Underscore:
			if sub != nil {
				return nil, &ParseError{Pos: p.cur().Pos, Expected: "at most one subscript"}
			}
			p.advance()
			n, err := p.parsePlaceable()
			if err != nil {
				return nil, err
			}
			sub = n
		case token.Hat:
			if super != nil {
				return nil, &ParseError{Pos: p.cur().Pos, Expected: "at most one superscript"}
			}
			p.advance()
			n, err := p.parsePlaceable()
			if err != nil {
				return nil, err
			}
			super = n
		default:
			i = 2
		}
	}

	if sub == nil && super == nil {
		return nucleus, nil
	}
	return &ast.SubSuper{Nucleus: nucleus, Sub: sub, Super: super}, nil
}

func (p *Parser) startsPlaceable() bool {
	t := p.cur()
	switch t.Kind {
	case token.Underscore, token.Hat, token.Dollar, token.Rbrace, token.Rbrack, token.EOF:
		return false
	case token.Macro:
		return t.Text != `\right`
	default:
		return true
	}
}

// placeable := function | symbol | accent | group | frac | stackrel
//
//	| binom | genfrac | sqrt | operatorname | c_over_c
func (p *Parser) parsePlaceable() (ast.Node, error) {
	t := p.cur()

	if t.Kind == token.Lbrace {
		return p.parseGroup("")
	}

	if t.Kind == token.Macro {
		name := strings.TrimPrefix(t.Text, `\`)
		switch {
		case name == "frac":
			return p.parseFracLike("frac", 2)
		case name == "stackrel":
			return p.parseFracLike("stackrel", 2)
		case name == "binom":
			return p.parseFracLike("binom", 2)
		case name == "genfrac":
			return p.parseGenfrac()
		case name == "sqrt":
			return p.parseSqrt()
		case name == "operatorname" || name == "operatorname*":
			return p.parseOperatorname(name == "operatorname*")
		case box.FunctionNames[name]:
			p.advance()
			return &ast.Macro{Name: ast.Ident{NamePos: t.Pos, Name: name}}, nil
		case isFontSwitch(name):
			return p.parseFontSwitchGroup(name)
		case isAccentName(name):
			return p.parseAccent(name)
		case strings.HasPrefix(name, "math") && isFontAlias(strings.TrimPrefix(name, "math")):
			return p.parseFontSwitchGroup(strings.TrimPrefix(name, "math"))
		default:
			if _, ok := box.CharOverChars[name]; ok {
				p.advance()
				return &ast.Macro{Name: ast.Ident{NamePos: t.Pos, Name: name}}, nil
			}
			return p.parseSymbol()
		}
	}

	return p.parseSymbol()
}

func isFontSwitch(name string) bool {
	switch name {
	case "rm", "it", "bf", "cal", "tt", "sf", "default", "bb", "frak", "circled", "scr", "regular":
		return true
	}
	return false
}

func isFontAlias(name string) bool { return isFontSwitch(name) }

func isAccentName(name string) bool {
	if _, ok := box.AccentMap[name]; ok {
		return true
	}
	return box.WideAccents[name]
}

// accent := '\' accent_name placeable
func (p *Parser) parseAccent(name string) (ast.Node, error) {
	pos := p.advance().Pos
	body, err := p.parsePlaceable()
	if err != nil {
		return nil, err
	}
	arg := &ast.Arg{List: []ast.Node{body}}
	if g, ok := body.(*ast.Group); ok && g.Font == "" {
		arg = &ast.Arg{Lbrace: g.Lbrace, List: g.List, Rbrace: g.Rbrace}
	}
	return &ast.Macro{
		Name: ast.Ident{NamePos: pos, Name: name},
		Args: []ast.Node{arg},
	}, nil
}

// group := [latex_font_prefix] '{' ( auto_delim | simple )* '}'
func (p *Parser) parseGroup(font string) (ast.Node, error) {
	left := p.cur().Pos
	if p.cur().Kind != token.Lbrace {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: "'{'"}
	}
	p.advance()

	var list ast.List
	for p.cur().Kind != token.Rbrace && !p.atEnd() {
		n, err := p.parseAutoDelimOrSimple()
		if err != nil {
			return nil, err
		}
		if n == nil {
			break
		}
		list = append(list, n)
	}
	if p.cur().Kind != token.Rbrace {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: "'}'"}
	}
	right := p.advance().Pos

	return &ast.Group{Lbrace: left, Font: font, List: list, Rbrace: right}, nil
}

// parseFontSwitchGroup handles both the `{\bf ...}` declaration form
// (font name directly before the opening brace) and `\mathbf{...}`
// taking one required argument.
func (p *Parser) parseFontSwitchGroup(font string) (ast.Node, error) {
	p.advance() // consume the font-name macro token
	if p.cur().Kind == token.Lbrace {
		return p.parseGroup(font)
	}
	body, err := p.parsePlaceable()
	if err != nil {
		return nil, err
	}
	return &ast.Group{Font: font, List: []ast.Node{body}}, nil
}

// requiredGroup parses exactly one `{...}` argument.
func (p *Parser) requiredGroup(forWhat string) (*ast.Arg, error) {
	if p.cur().Kind != token.Lbrace {
		return nil, &ParseError{Pos: p.cur().Pos, Expected: fmt.Sprintf("'{' in %s", forWhat)}
	}
	g, err := p.parseGroup("")
	if err != nil {
		return nil, err
	}
	grp := g.(*ast.Group)
	return &ast.Arg{Lbrace: grp.Lbrace, List: grp.List, Rbrace: grp.Rbrace}, nil
}

// frac/stackrel/binom := '\name' group group
func (p *Parser) parseFracLike(name string, nGroups int) (ast.Node, error) {
	pos := p.advance().Pos
	args := make([]ast.Node, 0, nGroups)
	for i := 0; i < nGroups; i++ {
		g, err := p.requiredGroup(name)
		if err != nil {
			return nil, err
		}
		args = append(args, g)
	}
	return &ast.Macro{Name: ast.Ident{NamePos: pos, Name: name}, Args: args}, nil
}

// genfrac := '\genfrac' '{' delimL '}' '{' delimR '}' '{' rulesize '}' '{' style '}' group group
func (p *Parser) parseGenfrac() (ast.Node, error) {
	pos := p.advance().Pos

	ldelim, err := p.bracedDelim()
	if err != nil {
		return nil, err
	}
	rdelim, err := p.bracedDelim()
	if err != nil {
		return nil, err
	}
	rule, err := p.bracedLiteral()
	if err != nil {
		return nil, err
	}
	style, err := p.bracedLiteral()
	if err != nil {
		return nil, err
	}
	num, err := p.requiredGroup("genfrac")
	if err != nil {
		return nil, err
	}
	den, err := p.requiredGroup("genfrac")
	if err != nil {
		return nil, err
	}
	return &ast.Macro{
		Name: ast.Ident{NamePos: pos, Name: "genfrac"},
		Args: []ast.Node{
			&ast.Literal{Text: ldelim}, &ast.Literal{Text: rdelim},
			&ast.Literal{Text: rule}, &ast.Literal{Text: style},
			num, den,
		},
	}, nil
}

func (p *Parser) bracedDelim() (string, error) {
	if p.cur().Kind != token.Lbrace {
		return "", &ParseError{Pos: p.cur().Pos, Expected: "'{'"}
	}
	p.advance()
	var text string
	if p.cur().Kind != token.Rbrace {
		text = p.advance().Text
	}
	if p.cur().Kind != token.Rbrace {
		return "", &ParseError{Pos: p.cur().Pos, Expected: "'}'"}
	}
	p.advance()
	if text == "" {
		text = "."
	}
	return text, nil
}

func (p *Parser) bracedLiteral() (string, error) {
	if p.cur().Kind != token.Lbrace {
		return "", &ParseError{Pos: p.cur().Pos, Expected: "'{'"}
	}
	p.advance()
	text := p.collectNumber()
	if p.cur().Kind != token.Rbrace {
		return "", &ParseError{Pos: p.cur().Pos, Expected: "'}'"}
	}
	p.advance()
	return text, nil
}

// sqrt := '\sqrt' ( '[' integer ']' )? group
func (p *Parser) parseSqrt() (ast.Node, error) {
	pos := p.advance().Pos
	var index ast.Node
	if p.cur().Kind == token.Lbrack {
		p.advance()
		n := p.collectNumber()
		if p.cur().Kind != token.Rbrack {
			return nil, &ParseError{Pos: p.cur().Pos, Expected: "']'"}
		}
		p.advance()
		index = &ast.Literal{Text: n}
	}
	body, err := p.requiredGroup("sqrt")
	if err != nil {
		return nil, err
	}
	args := []ast.Node{body}
	if index != nil {
		args = append(args, &ast.OptArg{List: []ast.Node{index}})
	}
	return &ast.Macro{Name: ast.Ident{NamePos: pos, Name: "sqrt"}, Args: args}, nil
}

// operatorname := '\operatorname' ('*')? group
func (p *Parser) parseOperatorname(star bool) (ast.Node, error) {
	pos := p.advance().Pos
	body, err := p.requiredGroup("operatorname")
	if err != nil {
		return nil, err
	}
	name := "operatorname"
	if star {
		name = "operatorname*"
	}
	return &ast.Macro{Name: ast.Ident{NamePos: pos, Name: name}, Args: []ast.Node{body}}, nil
}

// auto_delim := '\left' delim_L ( auto_delim | simple+ ) '\right' delim_R
func (p *Parser) parseAutoDelim() (ast.Node, error) {
	pos := p.advance().Pos // consume \left
	ldelim, err := p.delimToken(box.LeftDelim, box.AmbiDelim)
	if err != nil {
		return nil, err
	}

	var body []ast.Node
	for {
		if p.cur().Kind == token.Macro && p.cur().Text == `\right` {
			break
		}
		if p.atEnd() {
			return nil, &ParseError{Pos: p.cur().Pos, Expected: `\right`}
		}
		n, err := p.parseAutoDelimOrSimple()
		if err != nil {
			return nil, err
		}
		body = append(body, n)
	}
	rightPos := p.advance().Pos // consume \right
	_ = rightPos
	rdelim, err := p.delimToken(box.RightDelim, box.AmbiDelim)
	if err != nil {
		return nil, err
	}
	end := p.toks[p.pos-1].Pos

	return &ast.AutoDelim{LeftPos: pos, Ldelim: ldelim, Body: body, Rdelim: rdelim, RightEnd: end}, nil
}

func (p *Parser) delimToken(primary, ambi map[string]bool) (string, error) {
	t := p.cur()
	text := t.Text
	if t.Kind == token.Macro {
		text = t.Text
	}
	if primary[text] || ambi[text] {
		p.advance()
		return text, nil
	}
	return "", &ParseError{Pos: t.Pos, Expected: "delimiter"}
}

// symbol is a single ASCII literal, a known command from the tex2uni
// table, or one of the small set of backslash-escaped punctuation.
func (p *Parser) parseSymbol() (ast.Node, error) {
	t := p.advance()

	switch t.Kind {
	case token.Macro:
		name := strings.TrimPrefix(t.Text, `\`)
		if len(name) == 1 && strings.ContainsRune(`%${}[]_|`, rune(name[0])) {
			return &ast.Literal{LitPos: t.Pos, Text: name}, nil
		}
		if !box.IsKnownSymbol(name) {
			return nil, &UnknownSymbolError{Pos: t.Pos, Name: t.Text}
		}
		return &ast.Literal{LitPos: t.Pos, Text: name, Command: true}, nil
	case token.Number, token.Word:
		return &ast.Literal{LitPos: t.Pos, Text: t.Text}, nil
	default:
		if len(t.Text) != 1 {
			return nil, &ParseError{Pos: t.Pos, Expected: "symbol"}
		}
		return &ast.Literal{LitPos: t.Pos, Text: t.Text}, nil
	}
}

// memoized wraps a parse function with packrat memoisation keyed by
// (rule, position), required per spec §4.1 for acceptable performance
// on nested sub/superscripts.
func (p *Parser) memoized(r rule, fn func() (ast.Node, error)) (ast.Node, error) {
	key := memoKey{rule: r, pos: p.pos}
	if e, ok := p.memo[key]; ok {
		p.pos = e.next
		return e.node, e.err
	}
	startPos := p.pos
	node, err := fn()
	p.memo[key] = memoEntry{node: node, next: p.pos, err: err}
	_ = startPos
	return node, err
}
