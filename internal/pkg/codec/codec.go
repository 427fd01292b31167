// Package codec implements the legacy letter-substitution transform used to
// obscure email addresses in the data files. It is a fixed Caesar rotation,
// not encryption - anyone holding a data file can reverse it. It is kept only
// so existing users.json files remain readable; passwords are handled by the
// password package (bcrypt) and never pass through here.
package codec

const (
	shift  = 13
	prefix = "SALT1985_"

	// LegacySecret was appended to passwords before obscuring in the old
	// scheme (Obscure(password + LegacySecret)). Those tokens are no longer
	// honored; the constant is retained to document the on-disk format.
	LegacySecret = "BLOCKBUSTER1985"
)

// Obscure rotates ASCII letters by the fixed shift and prepends the format
// prefix. Non-letter characters pass through unchanged. Empty input yields
// an empty token.
func Obscure(text string) string {
	if text == "" {
		return ""
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = rotate(text[i], shift)
	}
	return prefix + string(out)
}

// Reveal undoes Obscure. Tokens without the format prefix reveal to the
// empty string, matching the legacy behavior for un-obscured values.
func Reveal(token string) string {
	if len(token) < len(prefix) || token[:len(prefix)] != prefix {
		return ""
	}
	text := token[len(prefix):]
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = rotate(text[i], 26-shift)
	}
	return string(out)
}

func rotate(c byte, by int) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return byte((int(c-'a')+by)%26) + 'a'
	case c >= 'A' && c <= 'Z':
		return byte((int(c-'A')+by)%26) + 'A'
	default:
		return c
	}
}
