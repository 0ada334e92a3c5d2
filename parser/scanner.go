// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser // import "github.com/go-mathtex/mathtex/parser"

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/go-mathtex/mathtex/token"
)

// scanner tokenizes a mathtex expression one lexeme at a time. Letters
// are scanned one rune at a time rather than as whole words, since
// math mode treats each letter as its own symbol; a run of digits and
// '.' forms a single Number token. The parser turns each token into
// its own Literal, in math and non-math text alike.
type scanner struct {
	src []byte
	pos int

	tok token.Token
	err error
}

func newScanner(r io.Reader) *scanner {
	b, _ := io.ReadAll(bufio.NewReader(r))
	return &scanner{src: b}
}

// Next advances to the next token, returning false at EOF.
func (s *scanner) Next() bool {
	if s.pos >= len(s.src) {
		s.tok = token.Token{Kind: token.EOF, Pos: token.Pos(s.pos)}
		return false
	}
	start := s.pos
	r, sz := utf8.DecodeRune(s.src[s.pos:])

	switch {
	case r == '%':
		// comment to end of line
		for s.pos < len(s.src) && s.src[s.pos] != '\n' {
			s.pos++
		}
		s.tok = token.Token{Kind: token.Comment, Pos: token.Pos(start), Text: string(s.src[start:s.pos])}
		return true

	case r == '\\':
		s.pos += sz
		if s.pos < len(s.src) {
			nr, nsz := utf8.DecodeRune(s.src[s.pos:])
			if isLetter(nr) {
				for s.pos < len(s.src) {
					rr, rsz := utf8.DecodeRune(s.src[s.pos:])
					if !isLetter(rr) {
						break
					}
					s.pos += rsz
				}
				// absorb an optional trailing '*' (e.g. \operatorname*)
				if s.pos < len(s.src) && s.src[s.pos] == '*' {
					s.pos++
				}
			} else {
				s.pos += nsz
			}
		}
		s.tok = token.Token{Kind: token.Macro, Pos: token.Pos(start), Text: string(s.src[start:s.pos])}
		return true

	case unicode.IsSpace(r):
		for s.pos < len(s.src) {
			rr, rsz := utf8.DecodeRune(s.src[s.pos:])
			if !unicode.IsSpace(rr) {
				break
			}
			s.pos += rsz
		}
		s.tok = token.Token{Kind: token.Space, Pos: token.Pos(start), Text: string(s.src[start:s.pos])}
		return true

	case r >= '0' && r <= '9':
		s.pos += sz
		for s.pos < len(s.src) {
			rr, rsz := utf8.DecodeRune(s.src[s.pos:])
			if (rr < '0' || rr > '9') && rr != '.' {
				break
			}
			s.pos += rsz
		}
		s.tok = token.Token{Kind: token.Number, Pos: token.Pos(start), Text: string(s.src[start:s.pos])}
		return true

	default:
		s.pos += sz
		kind := singleKind(r)
		s.tok = token.Token{Kind: kind, Pos: token.Pos(start), Text: string(r)}
		return true
	}
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r) && r < utf8.RuneSelf
}

func singleKind(r rune) token.Kind {
	switch r {
	case '$':
		return token.Dollar
	case '{':
		return token.Lbrace
	case '}':
		return token.Rbrace
	case '[':
		return token.Lbrack
	case ']':
		return token.Rbrack
	case '_':
		return token.Underscore
	case '^':
		return token.Hat
	case '=':
		return token.Equal
	case '(':
		return token.Lparen
	case ')':
		return token.Rparen
	case '<':
		return token.Lt
	case '>':
		return token.Gt
	case '/':
		return token.Div
	case '*':
		return token.Mul
	case '-':
		return token.Sub
	case '+':
		return token.Add
	case '!':
		return token.Not
	case ':':
		return token.Colon
	case ',':
		return token.Comma
	case ';':
		return token.Semicolon
	default:
		if isLetter(r) || (r >= '0' && r <= '9') {
			return token.Word
		}
		return token.Other
	}
}

// Token returns the most recently scanned token.
func (s *scanner) Token() token.Token { return s.tok }
