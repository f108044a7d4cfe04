package font

import "unicode/utf8"

// Decode returns the codepoint starting at byte offset i and the offset of
// the next codepoint. Returns 0 at the end of the string or on an invalid
// sequence (the offset still advances by one byte so scans terminate).
func Decode(s string, i int) (cp rune, next int) {
	if i >= len(s) {
		return 0, len(s)
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && size <= 1 {
		return 0, i + 1
	}
	return r, i + size
}

// Strlen counts the codepoints in s.
func Strlen(s string) int { return utf8.RuneCountInString(s) }

// Offset maps a codepoint index to its byte offset. Indices past the end
// clamp to len(s).
func Offset(s string, index int) int {
	if index <= 0 {
		return 0
	}
	i := 0
	for n := 0; n < index && i < len(s); n++ {
		_, i = Decode(s, i)
	}
	return i
}
