// Package board reconstructs the historical leaderboard of a single hole
// from its raw solutions log. The API only exposes the append-only log, so
// ranks, medals and scores are re-derived here.
package board

import (
	"fmt"
	"math"
	"sort"

	"github.com/warmans/golfduel/pkg/golf"
)

// Metric selects which size measure defines "shorter is better".
type Metric string

const (
	MetricBytes Metric = "bytes"
	MetricChars Metric = "chars"
)

func (m Metric) valid() bool {
	return m == MetricBytes || m == MetricChars
}

// Unit is the singular unit name for delta annotations e.g. "byte".
func (m Metric) Unit() string {
	if m == MetricChars {
		return "char"
	}
	return "byte"
}

// NoEntry is the length reported for a golfer with no solution on a board.
// It loses against any real solution.
const NoEntry = math.MaxInt

// Entry is one golfer's best solution on a board, annotated with its
// standing among the full field.
type Entry struct {
	golf.Solution

	// Length is the solution's size under the board's metric.
	Length int

	// Rank is the 1-based competition rank. Equal lengths share a rank and
	// the next distinct length skips past them. Rank 0 means the golfer
	// holds the hole's diamond: the only solution at the minimal length.
	Rank int

	// Score is the relative standing in (0, 1000]. The leader scores
	// exactly 1000, everyone else LeaderLength/Length*1000.
	Score float64
}

// Diamond reports whether the entry is the hole's sole leader.
func (e Entry) Diamond() bool {
	return e.Rank == 0
}

// Board is one hole's reconstructed leaderboard at the cutoff: at most one
// entry per golfer, ordered by ascending length with earlier submissions
// first among equals.
type Board struct {
	HoleID       string
	HoleName     string
	Entries      []Entry
	LeaderLength int
}

// Reconstruct derives one hole's board from its raw solutions log.
//
// Ranks, scores and the leader length are always computed against the full
// field of golfers; restricting the board to the golfers of interest is a
// separate display step, see Narrow.
func Reconstruct(log golf.SolutionLog, metric Metric, cutoff string) (Board, error) {
	if !metric.valid() {
		return Board{}, fmt.Errorf("unknown scoring metric %q", metric)
	}

	entries := measure(log.Solutions, metric)
	entries = retain(entries, metric, cutoff)
	entries = bestPerGolfer(entries)
	rankOrder(entries)
	assignRanks(entries)

	b := Board{HoleID: log.HoleID, HoleName: log.HoleName, Entries: entries}
	if len(entries) > 0 {
		b.LeaderLength = entries[0].Length
		for i := range entries {
			entries[i].Score = float64(b.LeaderLength) / float64(entries[i].Length) * 1000
		}
	}
	return b, nil
}

// measure wraps every solution with its length under the selected metric.
func measure(solutions []golf.Solution, metric Metric) []Entry {
	entries := make([]Entry, 0, len(solutions))
	for _, s := range solutions {
		length := s.Bytes
		if metric == MetricChars {
			length = s.Chars
		}
		entries = append(entries, Entry{Solution: s, Length: length})
	}
	return entries
}

// retain keeps the solutions recorded under the selected metric that were
// submitted at or before the cutoff. Timestamps are fixed-width zero-padded
// text, so the comparison is lexicographic.
func retain(entries []Entry, metric Metric, cutoff string) []Entry {
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Scoring == string(metric) && e.Submitted <= cutoff {
			kept = append(kept, e)
		}
	}
	return kept
}

// bestPerGolfer reduces the log to each golfer's shortest solution. A
// golfer with two solutions of the same minimal length keeps the earliest
// one, so the timestamp tie-break for medals sees when the golfer first
// reached that length.
func bestPerGolfer(entries []Entry) []Entry {
	best := make(map[string]Entry, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		cur, seen := best[e.Golfer]
		if !seen {
			best[e.Golfer] = e
			order = append(order, e.Golfer)
			continue
		}
		if e.Length < cur.Length || (e.Length == cur.Length && e.Submitted < cur.Submitted) {
			best[e.Golfer] = e
		}
	}
	out := make([]Entry, 0, len(order))
	for _, golfer := range order {
		out = append(out, best[golfer])
	}
	return out
}

// rankOrder sorts entries into ranking order: ascending length, with the
// earlier submission winning among equal lengths. Two stable passes, so the
// timestamp order survives the re-sort by length.
func rankOrder(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Submitted < entries[j].Submitted
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Length < entries[j].Length
	})
}

// assignRanks walks the ranking order assigning competition ranks: equal
// lengths share a rank, the next distinct length gets its 1-based position.
// If the minimal length is held by a single golfer that entry's rank is
// rewritten to 0, the diamond.
func assignRanks(entries []Entry) {
	for i := range entries {
		switch {
		case i == 0:
			entries[i].Rank = 1
		case entries[i].Length == entries[i-1].Length:
			entries[i].Rank = entries[i-1].Rank
		default:
			entries[i].Rank = i + 1
		}
	}
	if len(entries) >= 2 && entries[0].Length < entries[1].Length {
		entries[0].Rank = 0
	}
}

// Lookup returns the golfer's entry, if any.
func (b Board) Lookup(golfer string) (Entry, bool) {
	for _, e := range b.Entries {
		if e.Golfer == golfer {
			return e, true
		}
	}
	return Entry{}, false
}

// LengthOf returns the golfer's length on the board, or NoEntry if the
// golfer never solved the hole.
func (b Board) LengthOf(golfer string) int {
	if e, ok := b.Lookup(golfer); ok {
		return e.Length
	}
	return NoEntry
}

// Narrow returns a copy of the board restricted to the given golfers. It is
// purely a display filter: ranks, scores and the leader length keep the
// values computed against the full field.
func (b Board) Narrow(golfers []string) Board {
	keep := make(map[string]struct{}, len(golfers))
	for _, g := range golfers {
		keep[g] = struct{}{}
	}
	narrowed := b
	narrowed.Entries = make([]Entry, 0, len(golfers))
	for _, e := range b.Entries {
		if _, ok := keep[e.Golfer]; ok {
			narrowed.Entries = append(narrowed.Entries, e)
		}
	}
	return narrowed
}
