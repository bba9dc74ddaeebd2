// Package normalize prepares comment bodies and target words for matching.
//
// ModeLower applies the Unicode lowercase mapping only, so counts equal a plain
// lowercase comparison. ModeFold additionally strips control runes and broken
// UTF-8, applies NFKC and case folding, removes combining marks and format runes
// such as zero width joiners, narrows fullwidth forms, reads digit and symbol
// lookalikes as letters (4 and @ as a, 0 as o, 1 and ! as i, 3 as e, 5 and $ as s,
// 7 as t) and finally squeezes whitespace
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

)

// Mode selects how much normalization is applied
type Mode int

const (
	// ModeLower lowercases only
	ModeLower Mode = iota
	// ModeFold runs the full folding pipeline
	ModeFold
)

func (m Mode) String() string {
	if m == ModeFold {
		return "fold"
	}
	return "lower"
}

// Normalizer is concurrency safe; transformer state lives in the pools below
type Normalizer struct {
	mode Mode
}

// casers are stateful, so each goroutine borrows its own
var lowerPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

// foldPool holds the x/text part of the fold pipeline
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// New constructs a Normalizer for mode
func New(mode Mode) *Normalizer { return &Normalizer{mode: mode} }

// Mode reports the configured mode
func (n *Normalizer) Mode() Mode { return n.mode }

// Normalize returns the normalized form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	if n == nil || n.mode == ModeLower {
		return lower(s)
	}
	return fold(s)
}

// Words normalizes every entry of words and drops the ones that become empty
func (n *Normalizer) Words(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(n.Normalize(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func lower(s string) string {
	c := lowerPool.Get().(cases.Caser)
	out := c.String(s)
	c.Reset()
	lowerPool.Put(c)
	return out
}

func fold(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, _ := transform.String(tr, Sanitize(s))
	tr.Reset()
	foldPool.Put(tr)
	return collapseSpaces(leetFold(out))
}

// leet maps a small set of ASCII lookalikes onto the letter they imitate
var leet = strings.NewReplacer(
	"4", "a", "@", "a",
	"0", "o",
	"1", "i", "!", "i",
	"3", "e",
	"5", "s", "$", "s",
	"7", "t",
)

func leetFold(s string) string { return leet.Replace(s) }

// collapseSpaces turns each whitespace run into one ASCII space and trims both ends
func collapseSpaces(s string) string { return strings.Join(strings.Fields(s), " ") }
