package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr error
	}{
		{name: "plain words", line: "borrow 111", want: []string{"borrow", "111"}},
		{name: "extra whitespace", line: "  remove \t 111  ", want: []string{"remove", "111"}},
		{
			name: "double quotes group words",
			line: `add fiction "The Left Hand of Darkness" "Ursula K. Le Guin" 222`,
			want: []string{"add", "fiction", "The Left Hand of Darkness", "Ursula K. Le Guin", "222"},
		},
		{name: "single quotes keep double quotes", line: `search 'say "hi"'`, want: []string{"search", `say "hi"`}},
		{name: "escaped space", line: `search Dune\ Messiah`, want: []string{"search", "Dune Messiah"}},
		{name: "empty quoted word", line: `add fiction "" x 1`, want: []string{"add", "fiction", "", "x", "1"}},
		{name: "quote inside word", line: `search O"Neil"`, want: []string{"search", "ONeil"}},
		{name: "unterminated double quote", line: `search "Dune`, wantErr: errUnterminatedQuote},
		{name: "trailing backslash", line: `search Dune\`, wantErr: errUnterminatedQuote},
		{name: "blank line", line: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
