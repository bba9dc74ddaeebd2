// Package tally accumulates per-group word occurrence counts for a single run
package tally

import (
	"fmt"
)

// GroupStats holds the counts recorded for one group key
type GroupStats struct {
	Name       string
	WordCounts map[string]int
	TotalCount int

	// order is word discovery order, used to break ties stably
	order []string
}

// Words returns the group's words in the order they were first recorded
func (g *GroupStats) Words() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Check verifies TotalCount equals the sum of WordCounts and that every count is positive
func (g *GroupStats) Check() error {
	sum := 0
	for w, c := range g.WordCounts {
		if c <= 0 {
			return fmt.Errorf("group %q: word %q has non-positive count %d", g.Name, w, c)
		}
		sum += c
	}
	if sum != g.TotalCount {
		return fmt.Errorf("group %q: total %d != sum of word counts %d", g.Name, g.TotalCount, sum)
	}
	if len(g.order) != len(g.WordCounts) {
		return fmt.Errorf("group %q: %d words discovered but %d counted", g.Name, len(g.order), len(g.WordCounts))
	}
	return nil
}

func (g *GroupStats) clone() GroupStats {
	wc := make(map[string]int, len(g.WordCounts))
	for w, c := range g.WordCounts {
		wc[w] = c
	}
	return GroupStats{
		Name:       g.Name,
		WordCounts: wc,
		TotalCount: g.TotalCount,
		order:      g.Words(),
	}
}

// Aggregator maps group keys to their stats. Single writer; not safe for concurrent use
type Aggregator struct {
	groups map[string]*GroupStats
	order  []string
}

// New returns an empty aggregator
func New() *Aggregator {
	return &Aggregator{groups: make(map[string]*GroupStats)}
}

// Record adds one occurrence of word to group, creating the group on first use
func (a *Aggregator) Record(group, word string) {
	if a.groups == nil {
		a.groups = make(map[string]*GroupStats)
	}
	g, ok := a.groups[group]
	if !ok {
		g = &GroupStats{Name: group, WordCounts: make(map[string]int)}
		a.groups[group] = g
		a.order = append(a.order, group)
	}
	if _, seen := g.WordCounts[word]; !seen {
		g.order = append(g.order, word)
	}
	g.WordCounts[word]++
	g.TotalCount++
}

// Len returns the number of groups with at least one occurrence
func (a *Aggregator) Len() int { return len(a.order) }

// Group returns a copy of the stats for key
func (a *Aggregator) Group(key string) (GroupStats, bool) {
	g, ok := a.groups[key]
	if !ok {
		return GroupStats{}, false
	}
	return g.clone(), true
}

// Snapshot is a point-in-time copy of every group, in discovery order
type Snapshot []GroupStats

// Snapshot copies the current state. Reordering or editing the result does not touch the aggregator
func (a *Aggregator) Snapshot() Snapshot {
	out := make(Snapshot, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.groups[k].clone())
	}
	return out
}

// Total sums TotalCount across all groups
func (s Snapshot) Total() int {
	n := 0
	for i := range s {
		n += s[i].TotalCount
	}
	return n
}
