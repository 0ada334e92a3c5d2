// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser // import "github.com/go-mathtex/mathtex/parser"

import (
	"strings"
	"testing"

	"github.com/go-mathtex/mathtex/token"
)

func TestScanner(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "math",
			input: `$x_2$`,
			want:  []token.Kind{token.Dollar, token.Word, token.Underscore, token.Number, token.Dollar},
		},
		{
			name:  "macro",
			input: `\sigma`,
			want:  []token.Kind{token.Macro},
		},
		{
			name:  "macro with star",
			input: `\operatorname*`,
			want:  []token.Kind{token.Macro},
		},
		{
			name:  "escaped punctuation macro",
			input: `\$`,
			want:  []token.Kind{token.Macro},
		},
		{
			name:  "comment",
			input: "% boo is 42\nrest",
			want: []token.Kind{
				token.Comment, token.Space,
				token.Word, token.Word, token.Word, token.Word,
			},
		},
		{
			name:  "number",
			input: "23.4",
			want:  []token.Kind{token.Number},
		},
		{
			name:  "braces and scripts",
			input: "{a_b^c}",
			want: []token.Kind{
				token.Lbrace, token.Word, token.Underscore, token.Word,
				token.Hat, token.Word, token.Rbrace,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sc := newScanner(strings.NewReader(tc.input))
			var got []token.Kind
			for sc.Next() {
				got = append(got, sc.Token().Kind)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("token count = %d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i, k := range got {
				if k != tc.want[i] {
					t.Errorf("token %d = %v, want %v", i, k, tc.want[i])
				}
			}
		})
	}
}
