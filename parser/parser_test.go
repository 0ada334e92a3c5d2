// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"testing"

	"github.com/go-mathtex/mathtex/ast"
)

func mathList(t *testing.T, expression string) ast.List {
	t.Helper()
	n, err := Parse(expression)
	if err != nil {
		t.Fatalf("Parse(%q) = %v", expression, err)
	}
	list, ok := n.(ast.List)
	if !ok || len(list) != 1 {
		t.Fatalf("Parse(%q) = %#v, want a single-element ast.List", expression, n)
	}
	mx, ok := list[0].(*ast.MathExpr)
	if !ok {
		t.Fatalf("Parse(%q) top item = %T, want *ast.MathExpr", expression, list[0])
	}
	return mx.List
}

func TestParseSubSuper(t *testing.T) {
	list := mathList(t, `$x_2$`)
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	ss, ok := list[0].(*ast.SubSuper)
	if !ok {
		t.Fatalf("list[0] = %T, want *ast.SubSuper", list[0])
	}
	nuc, ok := ss.Nucleus.(*ast.Literal)
	if !ok || nuc.Text != "x" {
		t.Errorf("Nucleus = %#v, want Literal{x}", ss.Nucleus)
	}
	if ss.Super != nil {
		t.Errorf("Super = %#v, want nil", ss.Super)
	}
	sub, ok := ss.Sub.(*ast.Literal)
	if !ok || sub.Text != "2" {
		t.Errorf("Sub = %#v, want Literal{2}", ss.Sub)
	}
}

func TestParseSubAndSuperTogether(t *testing.T) {
	list := mathList(t, `$x_2^3$`)
	ss := list[0].(*ast.SubSuper)
	if sub, ok := ss.Sub.(*ast.Literal); !ok || sub.Text != "2" {
		t.Errorf("Sub = %#v, want Literal{2}", ss.Sub)
	}
	if sup, ok := ss.Super.(*ast.Literal); !ok || sup.Text != "3" {
		t.Errorf("Super = %#v, want Literal{3}", ss.Super)
	}
}

func TestParseDoubleSubscriptIsError(t *testing.T) {
	_, err := Parse(`$x_2_3$`)
	if err == nil {
		t.Fatal("expected error for a double subscript")
	}
}

func TestParseFrac(t *testing.T) {
	list := mathList(t, `$\frac{1}{2}$`)
	m, ok := list[0].(*ast.Macro)
	if !ok || m.Name.Name != "frac" {
		t.Fatalf("list[0] = %#v, want Macro{frac}", list[0])
	}
	if len(m.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(m.Args))
	}
	for i, want := range []string{"1", "2"} {
		arg, ok := m.Args[i].(*ast.Arg)
		if !ok || len(arg.List) != 1 {
			t.Fatalf("Args[%d] = %#v, want a one-element Arg", i, m.Args[i])
		}
		lit, ok := arg.List[0].(*ast.Literal)
		if !ok || lit.Text != want {
			t.Errorf("Args[%d][0] = %#v, want Literal{%s}", i, arg.List[0], want)
		}
	}
}

func TestParseSqrtWithIndex(t *testing.T) {
	list := mathList(t, `$\sqrt[3]{x}$`)
	m := list[0].(*ast.Macro)
	if m.Name.Name != "sqrt" {
		t.Fatalf("Name = %q, want sqrt", m.Name.Name)
	}
	if len(m.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2 (body, index)", len(m.Args))
	}
	if _, ok := m.Args[0].(*ast.Arg); !ok {
		t.Errorf("Args[0] = %T, want *ast.Arg", m.Args[0])
	}
	opt, ok := m.Args[1].(*ast.OptArg)
	if !ok || len(opt.List) != 1 {
		t.Fatalf("Args[1] = %#v, want a one-element OptArg", m.Args[1])
	}
	lit, ok := opt.List[0].(*ast.Literal)
	if !ok || lit.Text != "3" {
		t.Errorf("index = %#v, want Literal{3}", opt.List[0])
	}
}

func TestParseSqrtWithoutIndex(t *testing.T) {
	list := mathList(t, `$\sqrt{x}$`)
	m := list[0].(*ast.Macro)
	if len(m.Args) != 1 {
		t.Fatalf("len(Args) = %d, want 1 (no index)", len(m.Args))
	}
}

func TestParseAutoDelim(t *testing.T) {
	list := mathList(t, `$\left(\frac{a}{b}\right)$`)
	ad, ok := list[0].(*ast.AutoDelim)
	if !ok {
		t.Fatalf("list[0] = %T, want *ast.AutoDelim", list[0])
	}
	if ad.Ldelim != "(" || ad.Rdelim != ")" {
		t.Errorf("delims = %q...%q, want (...)", ad.Ldelim, ad.Rdelim)
	}
	if len(ad.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(ad.Body))
	}
	if _, ok := ad.Body[0].(*ast.Macro); !ok {
		t.Errorf("Body[0] = %T, want *ast.Macro (frac)", ad.Body[0])
	}
}

func TestParseUnterminatedGroupIsError(t *testing.T) {
	_, err := Parse(`$\frac{1}{2`)
	if err == nil {
		t.Fatal("expected error for a group missing its closing brace")
	}
}

func TestParseGroup(t *testing.T) {
	list := mathList(t, `${a+b}$`)
	g, ok := list[0].(*ast.Group)
	if !ok {
		t.Fatalf("list[0] = %T, want *ast.Group", list[0])
	}
	if g.Font != "" {
		t.Errorf("Font = %q, want empty", g.Font)
	}
	if len(g.List) != 3 {
		t.Fatalf("len(List) = %d, want 3 (a, +, b)", len(g.List))
	}
}

func TestParseFontSwitchGroup(t *testing.T) {
	list := mathList(t, `$\mathbf{x}$`)
	g, ok := list[0].(*ast.Group)
	if !ok {
		t.Fatalf("list[0] = %T, want *ast.Group", list[0])
	}
	if g.Font != "bf" {
		t.Errorf("Font = %q, want bf", g.Font)
	}
}

func TestParseAccent(t *testing.T) {
	list := mathList(t, `$\hat{x}$`)
	m, ok := list[0].(*ast.Macro)
	if !ok || m.Name.Name != "hat" {
		t.Fatalf("list[0] = %#v, want Macro{hat}", list[0])
	}
	if len(m.Args) != 1 {
		t.Fatalf("len(Args) = %d, want 1", len(m.Args))
	}
	arg := m.Args[0].(*ast.Arg)
	lit, ok := arg.List[0].(*ast.Literal)
	if !ok || lit.Text != "x" {
		t.Errorf("body = %#v, want Literal{x}", arg.List[0])
	}
}

func TestParseGenfrac(t *testing.T) {
	list := mathList(t, `$\genfrac{(}{)}{0}{}{a}{b}$`)
	m := list[0].(*ast.Macro)
	if m.Name.Name != "genfrac" {
		t.Fatalf("Name = %q, want genfrac", m.Name.Name)
	}
	if len(m.Args) != 6 {
		t.Fatalf("len(Args) = %d, want 6", len(m.Args))
	}
	ldelim := m.Args[0].(*ast.Literal)
	rdelim := m.Args[1].(*ast.Literal)
	if ldelim.Text != "(" || rdelim.Text != ")" {
		t.Errorf("delims = %q, %q, want (, )", ldelim.Text, rdelim.Text)
	}
}

func TestParseUnknownSymbolIsError(t *testing.T) {
	_, err := Parse(`$\notasymbol$`)
	if err == nil {
		t.Fatal("expected an UnknownSymbolError")
	}
	if _, ok := err.(*UnknownSymbolError); !ok {
		t.Errorf("err = %T, want *UnknownSymbolError", err)
	}
}

func TestParseEscapedDollarOutsideMath(t *testing.T) {
	n, err := Parse(`\$100$ \alpha $`)
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	list, ok := n.(ast.List)
	if !ok || len(list) < 2 {
		t.Fatalf("Parse = %#v, want a multi-element List", n)
	}
	verbatim, ok := list[0].(ast.List)
	if !ok || len(verbatim) == 0 {
		t.Fatalf("list[0] = %#v, want a non-empty verbatim ast.List", list[0])
	}
	lit, ok := verbatim[0].(*ast.Literal)
	if !ok || lit.Text != "$" {
		t.Errorf("verbatim[0] = %#v, want Literal{$}", verbatim[0])
	}
}

func TestParseNonMathVerbatim(t *testing.T) {
	n, err := Parse(`hi $x$ bye`)
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	list := n.(ast.List)
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3 (verbatim, math, verbatim)", len(list))
	}
	if _, ok := list[0].(ast.List); !ok {
		t.Errorf("list[0] = %T, want ast.List", list[0])
	}
	if _, ok := list[1].(*ast.MathExpr); !ok {
		t.Errorf("list[1] = %T, want *ast.MathExpr", list[1])
	}
	if _, ok := list[2].(ast.List); !ok {
		t.Errorf("list[2] = %T, want ast.List", list[2])
	}
}
