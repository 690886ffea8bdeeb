package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "abc", "abc"},
		{"empty", "", ""},
		{"metachar escapes pass through", `a\.b\(c\)`, `a\.b\(c\)`},
		{"hex escape passes through", `\xE9`, `\xE9`},
		{"control escape passes through", `a\tb`, `a\tb`},
		{"bmp escape", `\u0101`, `\x{101}`},
		{"bmp escape in class", `[\u0101\u0102]`, `[\x{101}\x{102}]`},
		{"brace escape", `\u{1F600}`, `\x{1F600}`},
		{"surrogate pair combines", `\uD83D\uDE00`, `\x{1F600}`},
		{"pair inside class", `[\uD83D\uDE00]`, `[\x{1F600}]`},
		{"mixed", `foo\u0101(?:bar)?`, `foo\x{101}(?:bar)?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Translate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"lone high surrogate", `\uD83D`, ErrLoneSurrogate},
		{"lone low surrogate", `\uDE00`, ErrLoneSurrogate},
		{"high without low partner", `\uD83Dx`, ErrLoneSurrogate},
		{"high before non-surrogate escape", `\uD83D\u0041`, ErrLoneSurrogate},
		{"trailing backslash", `ab\`, ErrBadEscape},
		{"truncated unicode escape", `\u00`, ErrBadEscape},
		{"unterminated brace escape", `\u{1F600`, ErrBadEscape},
		{"non-hex brace payload", `\u{xyz}`, ErrBadEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Translate(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var terr *TranslateError
			require.ErrorAs(t, err, &terr)
		})
	}
}
