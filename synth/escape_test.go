package synth

import "testing"

// =============================================================================
// Code point escaping
// =============================================================================

func TestEscapeCodePoint(t *testing.T) {
	tests := []struct {
		name    string
		r       rune
		unicode bool
		inClass bool
		want    string
	}{
		// Printable ASCII
		{"letter", 'a', false, false, "a"},
		{"digit", '7', false, false, "7"},
		{"space", ' ', false, false, " "},

		// Pattern metacharacters
		{"dot", '.', false, false, `\.`},
		{"star", '*', false, false, `\*`},
		{"plus", '+', false, false, `\+`},
		{"question", '?', false, false, `\?`},
		{"caret", '^', false, false, `\^`},
		{"dollar", '$', false, false, `\$`},
		{"open brace", '{', false, false, `\{`},
		{"pipe", '|', false, false, `\|`},
		{"open paren", '(', false, false, `\(`},
		{"open bracket", '[', false, false, `\[`},
		{"backslash", '\\', false, false, `\\`},
		{"slash", '/', false, false, `\/`},
		{"hyphen in pattern", '-', false, false, "-"},

		// Class context uses its own special set
		{"dot in class", '.', false, true, "."},
		{"star in class", '*', false, true, "*"},
		{"hyphen in class", '-', false, true, `\-`},
		{"caret in class", '^', false, true, `\^`},
		{"bracket in class", '[', false, true, `\[`},
		{"close bracket in class", ']', false, true, `\]`},
		{"backslash in class", '\\', false, true, `\\`},
		{"slash in class", '/', false, true, "/"},

		// Control shorthands
		{"tab", '\t', false, false, `\t`},
		{"newline", '\n', false, false, `\n`},
		{"carriage return", '\r', false, false, `\r`},
		{"form feed", '\f', false, false, `\f`},
		{"vertical tab", '\v', false, false, `\v`},

		// Hex bands
		{"nul", 0x00, false, false, `\x00`},
		{"bell", 0x07, false, false, `\x07`},
		{"delete", 0x7F, false, false, `\x7F`},
		{"latin-1", 0xE9, false, false, `\xE9`},
		{"byte ceiling", 0xFF, false, false, `\xFF`},
		{"bmp floor", 0x100, false, false, `\u0100`},
		{"bmp", 0x0101, false, false, `\u0101`},
		{"bmp ceiling", 0xFFFF, false, false, `\uFFFF`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeCodePoint(tt.r, tt.unicode, tt.inClass)
			if got != tt.want {
				t.Errorf("EscapeCodePoint(%#x, %v, %v) = %q, want %q",
					tt.r, tt.unicode, tt.inClass, got, tt.want)
			}
		})
	}
}

func TestEscapeCodePointAstral(t *testing.T) {
	// Astral points render one way per dialect: a brace escape under the
	// u flag, a surrogate escape pair without it.
	if got := EscapeCodePoint(0x1F600, true, false); got != `\u{1F600}` {
		t.Errorf("unicode mode = %q, want %q", got, `\u{1F600}`)
	}
	want := `\` + `uD83D` + `\` + `uDE00`
	if got := EscapeCodePoint(0x1F600, false, false); got != want {
		t.Errorf("unit mode = %q, want %q", got, want)
	}
}

// =============================================================================
// Whole-string escaping
// =============================================================================

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in      string
		unicode bool
		want    string
	}{
		{"abc", false, "abc"},
		{"a.b", false, `a\.b`},
		{"f(x)", false, `f\(x\)`},
		{"a/b", false, `a\/b`},
		{"a\tb", false, `a\tb`},
		{"café", false, `caf\xE9`},
		{"ābc", false, `\u0101bc`},
		{"😀", true, `\u{1F600}`},
	}
	for _, tt := range tests {
		if got := EscapeString(tt.in, tt.unicode); got != tt.want {
			t.Errorf("EscapeString(%q, %v) = %q, want %q", tt.in, tt.unicode, got, tt.want)
		}
	}
}
