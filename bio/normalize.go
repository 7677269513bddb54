package bio

import "strings"

// Substitute replaces every occurrence of from with to.
func Substitute(text string, from, to byte) string {
	if strings.IndexByte(text, from) < 0 {
		return text
	}
	b := []byte(text)
	for i := range b {
		if b[i] == from {
			b[i] = to
		}
	}
	return string(b)
}

// StripChar removes every occurrence of c, the order of the remaining
// characters is preserved.
func StripChar(text string, c byte) string {
	if strings.IndexByte(text, c) < 0 {
		return text
	}
	b := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != c {
			b = append(b, text[i])
		}
	}
	return string(b)
}

// Normalize converts DNA text to an RNA sequence: T is replaced by U,
// line breaks and spaces are removed.
func Normalize(text string) string {
	text = Substitute(text, 'T', 'U')
	text = StripChar(text, '\n')
	text = StripChar(text, '\r')
	return StripChar(text, ' ')
}
