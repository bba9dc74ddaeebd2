// Package chart renders (label, value) pairs as a horizontal text bar chart
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"sailormouth/internal/core/report"
)

// ANSI color codes per tier
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

// DefaultWidth is the bar length of the largest value
const DefaultWidth = 50

// Renderer draws bars. The zero value is not usable; use New
type Renderer struct {
	Width  int
	Symbol string
	// MinLength is the shortest bar drawn for any row
	MinLength int
}

// New returns a renderer with the standard layout
func New() *Renderer {
	return &Renderer{Width: DefaultWidth, Symbol: "|", MinLength: 1}
}

// Render is New().Render
func Render(title string, bars []report.Bar, tiers []report.ColorTier) []string {
	return New().Render(title, bars, tiers)
}

// Render returns the chart lines: the title when non-empty, then one row per bar
// as "<bar><pad>  <value>  <label>". With tiers set, each row is wrapped in its tier's color
func (r *Renderer) Render(title string, bars []report.Bar, tiers []report.ColorTier) []string {
	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}
	sym := r.Symbol
	if sym == "" {
		sym = "|"
	}

	maxVal, valW := 0, 0
	values := make([]string, len(bars))
	for i, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
		values[i] = HumanSI(b.Value)
		valW = max(valW, len(values[i]))
	}

	lines := make([]string, 0, len(bars)+1)
	if title != "" {
		lines = append(lines, title)
	}

	for i, b := range bars {
		n := r.MinLength
		if maxVal > 0 {
			n = max(n, b.Value*width/maxVal)
		}
		bar := strings.Repeat(sym, n)
		pad := strings.Repeat(" ", max(0, width-n))
		line := fmt.Sprintf("%s%s  %*s  %s", bar, pad, valW, values[i], b.Label)
		if tiers != nil && i < len(tiers) {
			line = Colorize(tiers[i], line)
		}
		lines = append(lines, line)
	}
	return lines
}

// Colorize wraps s in the ANSI color for tier
func Colorize(tier report.ColorTier, s string) string {
	return ansi(tier) + s + colorReset
}

func ansi(tier report.ColorTier) string {
	switch tier {
	case report.TierRed:
		return colorRed
	case report.TierYellow:
		return colorYellow
	case report.TierCyan:
		return colorCyan
	case report.TierBlue:
		return colorBlue
	case report.TierPurple:
		return colorPurple
	case report.TierGreen:
		return colorGreen
	default:
		return colorWhite
	}
}

var siUnits = []string{"", "k", "M", "G", "T"}

// HumanSI formats v with decimal SI suffixes: 999, 1k, 1.5k, 2.3M
func HumanSI(v int) string {
	if v < 1000 && v > -1000 {
		return strconv.Itoa(v)
	}
	f := float64(v)
	u := 0
	for (f >= 1000 || f <= -1000) && u < len(siUnits)-1 {
		f /= 1000
		u++
	}
	s := strconv.FormatFloat(f, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + siUnits[u]
}
