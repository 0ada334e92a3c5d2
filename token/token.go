// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical tokens of the mathtex math-mode
// grammar and the positions used to report parse errors.
package token // import "github.com/go-mathtex/mathtex/token"

//go:generate stringer -type Kind

type Kind int

const (
	Invalid Kind = iota
	Macro      // \foo
	EmptyLine
	Comment
	Space
	Word
	Number
	Dollar
	Lbrace
	Rbrace
	Lbrack
	Rbrack
	Equal
	Underscore
	Lparen
	Rparen
	Lt
	Gt
	Hat
	Div
	Mul
	Sub
	Add
	Not
	Colon
	Comma
	Semicolon
	Backslash
	Other
	Verbatim
	EOF
)

// Token is a single lexical token together with its source text and
// position.
type Token struct {
	Kind Kind
	Pos  Pos
	Text string
}

func (t Token) String() string { return t.Text }

// Pos is a byte offset into the source expression.
type Pos int

// Position is a human-readable source location. ParseError and
// UnknownSymbolError report a Pos byte offset, not a Position.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}
