// Package report orders aggregated counts for display and carries the run summary
package report

import (
	"math"
	"slices"

	"sailormouth/internal/core/tally"
)

// Summary holds record-level counters for one run
type Summary struct {
	RecordsScanned   int `json:"records_scanned"`
	RecordsWithMatch int `json:"records_with_match"`
	// MatchRatioPercent is nil when nothing was scanned
	MatchRatioPercent *float64 `json:"match_ratio_percent,omitempty"`
}

// NewSummary builds a summary and derives the match ratio
func NewSummary(scanned, withMatch int) Summary {
	s := Summary{RecordsScanned: scanned, RecordsWithMatch: withMatch}
	s.MatchRatioPercent = s.Ratio()
	return s
}

// Ratio returns 100*with/scanned rounded half-to-even at three places, or nil when scanned is zero
func (s Summary) Ratio() *float64 {
	if s.RecordsScanned <= 0 {
		return nil
	}
	r := math.RoundToEven(100*float64(s.RecordsWithMatch)/float64(s.RecordsScanned)*1000) / 1000
	return &r
}

// Bar is one (label, value) pair for the chart
type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// WordCount is one word and its count within a group
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// GroupBreakdown lists a group's words in display order
type GroupBreakdown struct {
	Group string      `json:"group"`
	Total int         `json:"total"`
	Words []WordCount `json:"words"`
}

// Report is the finished, ordered view of a run
type Report struct {
	Sort      SortMode         `json:"sort"`
	Bars      []Bar            `json:"bars"`
	Breakdown []GroupBreakdown `json:"breakdown,omitempty"`
	Summary   Summary          `json:"summary"`
	// Empty is true when no group recorded a single occurrence
	Empty bool `json:"empty"`
}

// Build orders snap under mode. The breakdown is filled only when verbose.
// snap itself is not modified
func Build(snap tally.Snapshot, summary Summary, mode SortMode, verbose bool) Report {
	groups := slices.Clone(snap)
	slices.SortStableFunc(groups, groupOrder(mode))

	rep := Report{
		Sort:    mode,
		Bars:    make([]Bar, 0, len(groups)),
		Summary: summary,
		Empty:   len(groups) == 0,
	}
	rep.Summary.MatchRatioPercent = summary.Ratio()

	byWord := wordOrder(mode)
	for _, g := range groups {
		rep.Bars = append(rep.Bars, Bar{Label: g.Name, Value: g.TotalCount})
		if !verbose {
			continue
		}
		words := make([]WordCount, 0, len(g.WordCounts))
		for _, w := range g.Words() {
			words = append(words, WordCount{Word: w, Count: g.WordCounts[w]})
		}
		slices.SortStableFunc(words, byWord)
		rep.Breakdown = append(rep.Breakdown, GroupBreakdown{Group: g.Name, Total: g.TotalCount, Words: words})
	}
	return rep
}

// Tiers returns the color tier of each bar, aligned with Bars
func (r Report) Tiers() []ColorTier {
	out := make([]ColorTier, len(r.Bars))
	for i, b := range r.Bars {
		out[i] = Tier(b.Value)
	}
	return out
}
