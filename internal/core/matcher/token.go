package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWord reports whether r is considered a word character for boundary checks.
// Letters, numbers, combining marks (Mn) and connector punctuation (Pc, e.g. underscore).
// Hyphen, apostrophe and most punctuation remain non-word
func isWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.In(r, unicode.Mn, unicode.Pc)
}

// boundaryOK reports whether [start,end) is flanked by non-word runes or the string edges
func boundaryOK(s string, start, end int) bool {
	var prev, next rune
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(s[:start])
	}
	if end < len(s) {
		next, _ = utf8.DecodeRuneInString(s[end:])
	}
	return !isWord(prev) && !isWord(next)
}

// indexWhole returns the byte offset of the leftmost whole-word occurrence of word in s, or -1.
// word is matched literally; overlapping candidates are all considered
func indexWhole(s, word string) int {
	if word == "" {
		return -1
	}
	_, step := utf8.DecodeRuneInString(word)
	off := 0
	for off <= len(s)-len(word) {
		i := strings.Index(s[off:], word)
		if i < 0 {
			return -1
		}
		start := off + i
		if boundaryOK(s, start, start+len(word)) {
			return start
		}
		off = start + step
	}
	return -1
}
