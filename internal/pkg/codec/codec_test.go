package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestObscureKnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "abc", "SALT1985_nop"},
		{"wraps around z", "xyz", "SALT1985_klm"},
		{"uppercase", "ABC", "SALT1985_NOP"},
		{"non letters pass through", "user@example.com", "SALT1985_hfre@rknzcyr.pbz"},
		{"digits untouched", "agent007", "SALT1985_ntrag007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Obscure(tt.in))
		})
	}
}

func TestObscureEmptyInput(t *testing.T) {
	require.Equal(t, "", Obscure(""))
}

func TestRevealWithoutPrefix(t *testing.T) {
	require.Equal(t, "", Reveal("user@example.com"))
	require.Equal(t, "", Reveal(""))
	require.Equal(t, "", Reveal("SALT1985"))
}

func TestRevealUndoesObscure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[ -~]*`).Draw(t, "text")
		if text == "" {
			return
		}
		require.Equal(t, text, Reveal(Obscure(text)))
	})
}
