// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the intermediate parse tree produced by the
// mathtex parser, before it is lowered into the box.Node layout tree.
//
// The grammar modelled here follows TeX: a List of placeables, where a
// placeable may itself be a Group, a Macro invocation (\frac, \sqrt,
// \left...\right, accents, font switches, ...), a SubSuper cluster, or
// a bare Literal/Space leaf.
package ast // import "github.com/go-mathtex/mathtex/ast"

import (
	"fmt"
	"io"

	"github.com/go-mathtex/mathtex/token"
)

// Node is any element of the parse tree.
type Node interface {
	Pos() token.Pos
	End() token.Pos

	isNode()
}

// List is a sequence of sibling nodes, e.g. the body of a group or of
// the whole expression.
type List []Node

func (x List) isNode() {}
func (x List) Pos() token.Pos {
	if len(x) == 0 {
		return -1
	}
	return x[0].Pos()
}
func (x List) End() token.Pos {
	if len(x) == 0 {
		return -1
	}
	return x[len(x)-1].End()
}

// Ident is a bare command name (without its leading backslash) or font
// alias token.
type Ident struct {
	NamePos token.Pos
	Name    string
}

func (x *Ident) Pos() token.Pos { return x.NamePos }
func (x *Ident) End() token.Pos { return token.Pos(int(x.NamePos) + len(x.Name)) }
func (x *Ident) isNode()        {}

// Arg is a required `{...}` group argument.
type Arg struct {
	Lbrace token.Pos
	List   []Node
	Rbrace token.Pos
}

func (x *Arg) Pos() token.Pos { return x.Lbrace }
func (x *Arg) End() token.Pos { return x.Rbrace }
func (x *Arg) isNode()        {}

// OptArg is an optional `[...]` argument, used by `\sqrt[n]{}`.
type OptArg struct {
	Lbrack token.Pos
	List   []Node
	Rbrack token.Pos
}

func (x *OptArg) Pos() token.Pos { return x.Lbrack }
func (x *OptArg) End() token.Pos { return x.Rbrack }
func (x *OptArg) isNode()        {}

// Macro is a backslash-command invocation together with its arguments,
// e.g. \frac{a}{b}, \sqrt[3]{x}, \hat{x}, \mathrm{...}.
type Macro struct {
	Name Ident
	Args []Node // each is *Arg or *OptArg
}

func (x *Macro) isNode()        {}
func (x *Macro) Pos() token.Pos { return x.Name.Pos() }
func (x *Macro) End() token.Pos {
	if len(x.Args) > 0 {
		return x.Args[len(x.Args)-1].End()
	}
	return x.Name.End()
}

// Group is an anonymous `{...}` grouping that establishes a new font
// scope, optionally prefixed by a LaTeX font-switch command
// (\mathrm{...} is represented as a Macro instead; a bare {...} or
// {\bf ...} is a Group).
type Group struct {
	Lbrace token.Pos
	Font   string // "" if no explicit font switch opens the group
	List   []Node
	Rbrace token.Pos
}

func (x *Group) Pos() token.Pos { return x.Lbrace }
func (x *Group) End() token.Pos { return x.Rbrace }
func (x *Group) isNode()        {}

// MathExpr wraps a `$...$` span; outside of such a span, text is
// non-math and rendered verbatim in the ambient font.
type MathExpr struct {
	Left  token.Pos
	List  []Node
	Right token.Pos
}

func (x *MathExpr) isNode()        {}
func (x *MathExpr) Pos() token.Pos { return x.Left }
func (x *MathExpr) End() token.Pos { return x.Right }

// Literal is a single symbol: an ASCII character, a known TeX command
// name (without backslash), or one of the small set of backslash
// punctuation escapes.
type Literal struct {
	LitPos token.Pos
	Text   string
	// Command is true when Text names a \command rather than a bare
	// character (e.g. "alpha" for \alpha).
	Command bool
}

func (x *Literal) isNode()        {}
func (x *Literal) Pos() token.Pos { return x.LitPos }
func (x *Literal) End() token.Pos { return token.Pos(int(x.LitPos) + len(x.Text)) }

// Space is one of the named TeX spacing commands (\, \; \quad \qquad
// \! \/ or a backslash followed by a space).
type Space struct {
	SpacePos token.Pos
	Name     string
}

func (x *Space) isNode()        {}
func (x *Space) Pos() token.Pos { return x.SpacePos }
func (x *Space) End() token.Pos { return token.Pos(int(x.SpacePos) + len(x.Name)) }

// Op is an operator-ish single character consumed structurally by the
// grammar ('_', '^', and similar) rather than treated as a symbol.
type Op struct {
	OpPos token.Pos
	Text  string
}

func (x *Op) isNode()        {}
func (x *Op) Pos() token.Pos { return x.OpPos }
func (x *Op) End() token.Pos { return token.Pos(int(x.OpPos) + len(x.Text)) }

// SubSuper is a nucleus together with a subscript and/or superscript,
// per spec.md's `subsuper` production. At most one of Sub and Super is
// nil: the parser builds a SubSuper only when at least one script is
// present.
type SubSuper struct {
	Nucleus Node // nil means an implicit empty box (e.g. "_2" alone)
	Sub     Node
	Super   Node
}

func (x *SubSuper) isNode() {}
func (x *SubSuper) Pos() token.Pos {
	if x.Nucleus != nil {
		return x.Nucleus.Pos()
	}
	if x.Sub != nil {
		return x.Sub.Pos()
	}
	return x.Super.Pos()
}
func (x *SubSuper) End() token.Pos {
	if x.Super != nil {
		return x.Super.End()
	}
	if x.Sub != nil {
		return x.Sub.End()
	}
	return x.Nucleus.End()
}

// AutoDelim is `\left L ... \right R`.
type AutoDelim struct {
	LeftPos  token.Pos
	Ldelim   string
	Body     []Node
	Rdelim   string
	RightEnd token.Pos
}

func (x *AutoDelim) isNode()        {}
func (x *AutoDelim) Pos() token.Pos { return x.LeftPos }
func (x *AutoDelim) End() token.Pos { return x.RightEnd }

// Print renders node for debugging, matching the teacher's Print
// helper shape.
func Print(o io.Writer, node Node) {
	switch node := node.(type) {
	case *Arg:
		fmt.Fprintf(o, "{")
		for i, n := range node.List {
			if i > 0 {
				fmt.Fprintf(o, ", ")
			}
			Print(o, n)
		}
		fmt.Fprintf(o, "}")
	case *OptArg:
		fmt.Fprintf(o, "[")
		for i, n := range node.List {
			if i > 0 {
				fmt.Fprintf(o, ", ")
			}
			Print(o, n)
		}
		fmt.Fprintf(o, "]")
	case *Ident:
		fmt.Fprintf(o, "ast.Ident{%q}", node.Name)
	case *Macro:
		fmt.Fprintf(o, "ast.Macro{%q", node.Name.Name)
		for _, n := range node.Args {
			fmt.Fprintf(o, ", ")
			Print(o, n)
		}
		fmt.Fprintf(o, "}")
	case *Group:
		fmt.Fprintf(o, "ast.Group{%q: ", node.Font)
		for i, n := range node.List {
			if i > 0 {
				fmt.Fprintf(o, ", ")
			}
			Print(o, n)
		}
		fmt.Fprintf(o, "}")
	case *MathExpr:
		fmt.Fprintf(o, "ast.MathExpr{")
		for i, n := range node.List {
			if i > 0 {
				fmt.Fprintf(o, ", ")
			}
			Print(o, n)
		}
		fmt.Fprintf(o, "}")
	case *Literal:
		fmt.Fprintf(o, "ast.Lit{%q}", node.Text)
	case *Space:
		fmt.Fprintf(o, "ast.Space{%q}", node.Name)
	case List:
		fmt.Fprintf(o, "ast.List{")
		for i, n := range node {
			if i > 0 {
				fmt.Fprintf(o, ", ")
			}
			Print(o, n)
		}
		fmt.Fprintf(o, "}")
	case *SubSuper:
		fmt.Fprintf(o, "ast.SubSuper{nucleus: ")
		if node.Nucleus != nil {
			Print(o, node.Nucleus)
		}
		if node.Sub != nil {
			fmt.Fprintf(o, ", sub: ")
			Print(o, node.Sub)
		}
		if node.Super != nil {
			fmt.Fprintf(o, ", super: ")
			Print(o, node.Super)
		}
		fmt.Fprintf(o, "}")
	case *AutoDelim:
		fmt.Fprintf(o, "ast.AutoDelim{%q...%q: ", node.Ldelim, node.Rdelim)
		for i, n := range node.Body {
			if i > 0 {
				fmt.Fprintf(o, ", ")
			}
			Print(o, n)
		}
		fmt.Fprintf(o, "}")
	case *Op:
		fmt.Fprintf(o, "ast.Op{%q}", node.Text)
	default:
		panic(fmt.Errorf("ast: unknown node %T", node))
	}
}

var (
	_ Node = (List)(nil)
	_ Node = (*Arg)(nil)
	_ Node = (*OptArg)(nil)
	_ Node = (*Ident)(nil)
	_ Node = (*Macro)(nil)
	_ Node = (*Group)(nil)
	_ Node = (*MathExpr)(nil)
	_ Node = (*Literal)(nil)
	_ Node = (*Space)(nil)
	_ Node = (*Op)(nil)
	_ Node = (*SubSuper)(nil)
	_ Node = (*AutoDelim)(nil)
)
