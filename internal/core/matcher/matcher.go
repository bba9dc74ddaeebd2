// Package matcher implements whole-word matching of a literal target word over
// lowercased text, consuming one occurrence at a time
package matcher

import "strings"

// FindAndConsume reports whether word occurs in text as a whole word. When it does,
// the first literal occurrence of word is cut out of text and the rest is returned.
//
// The removed occurrence is the leftmost substring match, which is not necessarily the
// whole-word match that was found (e.g. "classic class" loses the "class" inside
// "classic" first). Removal can also join fragments into new words. Both effects are
// part of the counting baseline and must not be "fixed" here.
//
// No match returns (false, text) unchanged. An empty word never matches
func FindAndConsume(text, word string) (bool, string) {
	if indexWhole(text, word) < 0 {
		return false, text
	}
	return true, strings.Replace(text, word, "", 1)
}

// Each calls fn once per occurrence found by repeated FindAndConsume and returns the
// text that is left once word no longer matches
func Each(text, word string, fn func()) string {
	for {
		found, rest := FindAndConsume(text, word)
		if !found {
			return text
		}
		text = rest
		if fn != nil {
			fn()
		}
	}
}

// Count returns how many times word is consumed from text
func Count(text, word string) int {
	n := 0
	Each(text, word, func() { n++ })
	return n
}
