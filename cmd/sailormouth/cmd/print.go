package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"sailormouth/internal/core/chart"
	"sailormouth/internal/core/report"
	"sailormouth/internal/services/profile/domain"
)

// Print writes the plain text report for res
func Print(w io.Writer, res domain.Result, verbose, color bool) error {
	bw := bufio.NewWriter(w)
	rep := res.Report

	if verbose {
		fmt.Fprint(bw, "\nBreakdown by individual subreddit\n\n")
		for _, g := range rep.Breakdown {
			fmt.Fprintf(bw, "/r/%s\n", g.Group)
			for _, wc := range g.Words {
				fmt.Fprintf(bw, "  '%s' appears: %d time(s).\n", wc.Word, wc.Count)
			}
		}
	}

	s := rep.Summary
	fmt.Fprintf(bw, "\nTotal comments analyzed: %d\n", s.RecordsScanned)
	fmt.Fprintf(bw, "Number of comments containing target words: %d\n", s.RecordsWithMatch)
	if s.MatchRatioPercent != nil {
		fmt.Fprintf(bw, "Percentage of comments containing target words: %s%%\n", formatRatio(*s.MatchRatioPercent))
	}

	var tiers []report.ColorTier
	if color {
		tiers = rep.Tiers()
	}
	fmt.Fprintln(bw)
	for _, line := range chart.Render(res.User+"'s Graph", rep.Bars, tiers) {
		fmt.Fprintln(bw, line)
	}
	if rep.Empty {
		fmt.Fprintln(bw, "Hmm. Nothing found")
	}
	return bw.Flush()
}

// formatRatio keeps one decimal on whole numbers: 50 prints as 50.0
func formatRatio(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == float64(int64(f)) {
		s += ".0"
	}
	return s
}
