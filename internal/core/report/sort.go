package report

import (
	"cmp"
	"strings"

	"sailormouth/internal/core/tally"
	perr "sailormouth/internal/platform/errors"
)

// SortMode selects both the group order and the word order inside each group
type SortMode int

const (
	// SortNone orders groups case-insensitively by name and words alphabetically
	SortNone SortMode = iota
	// SortIncreasing orders groups by total and words by count, smallest first
	SortIncreasing
	// SortDecreasing orders groups by total and words by count, largest first
	SortDecreasing
)

func (m SortMode) String() string {
	switch m {
	case SortIncreasing:
		return "inc"
	case SortDecreasing:
		return "dec"
	default:
		return "none"
	}
}

// MarshalText encodes the mode as its short name
func (m SortMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseSortMode accepts "", "none", "inc" and "dec" in any case
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "inc":
		return SortIncreasing, nil
	case "dec":
		return SortDecreasing, nil
	}
	return SortNone, perr.WithField(perr.InvalidArgf("unknown sort mode %q (want inc or dec)", s), "sort")
}

// groupOrder returns the comparator for groups under mode. Callers sort stably
func groupOrder(mode SortMode) func(a, b tally.GroupStats) int {
	switch mode {
	case SortIncreasing:
		return func(a, b tally.GroupStats) int { return cmp.Compare(a.TotalCount, b.TotalCount) }
	case SortDecreasing:
		return func(a, b tally.GroupStats) int { return cmp.Compare(b.TotalCount, a.TotalCount) }
	default:
		return func(a, b tally.GroupStats) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
}

// wordOrder returns the comparator for words inside one group under mode. Callers sort stably
func wordOrder(mode SortMode) func(a, b WordCount) int {
	switch mode {
	case SortIncreasing:
		return func(a, b WordCount) int { return cmp.Compare(a.Count, b.Count) }
	case SortDecreasing:
		return func(a, b WordCount) int { return cmp.Compare(b.Count, a.Count) }
	default:
		return func(a, b WordCount) int { return strings.Compare(a.Word, b.Word) }
	}
}
