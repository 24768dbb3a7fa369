// Package compare builds the cross-hole comparison between two golfers
// from their reconstructed boards.
package compare

import (
	"math"
	"slices"
	"sort"

	"github.com/warmans/golfduel/pkg/board"
)

// Report is the head-to-head standing of "me" against "them": the boards
// both golfers appear on, ordered for presentation, plus the tally.
type Report struct {
	Me     string
	Them   string
	Boards []board.Board
	Wins   int
	Draws  int
	Losses int
}

// Delta is the headline number: positive means "me" is behind overall.
func (r Report) Delta() int {
	return r.Losses - r.Wins
}

func (r Report) Total() int {
	return r.Wins + r.Draws + r.Losses
}

// sortScore is a fine-grained numeric proxy for a golfer's standing on a
// board. Rounding to a tenth of a point keeps near-ties together and the
// diamond bonus then breaks them in favour of a true sole leader.
func sortScore(b board.Board, golfer string) float64 {
	e, ok := b.Lookup(golfer)
	if !ok {
		return 0
	}
	score := math.Round(e.Score * 10000)
	if e.Diamond() {
		score++
	}
	return score
}

// Compare filters the boards to those where both golfers have an entry,
// orders them by how badly "me" fares against "them", and tallies the
// wins, draws and losses.
//
// Ordering is ascending by the standing gap, with equal gaps broken by
// "me"'s own standing, ascending. Unless reverse is set the final order is
// inverted so the report leads with the holes where "me" trails most.
func Compare(boards []board.Board, me string, them string, reverse bool) Report {
	rep := Report{Me: me, Them: them}
	for _, b := range boards {
		if _, ok := b.Lookup(me); !ok {
			continue
		}
		if _, ok := b.Lookup(them); !ok {
			continue
		}
		rep.Boards = append(rep.Boards, b)
		switch myLen, theirLen := b.LengthOf(me), b.LengthOf(them); {
		case myLen < theirLen:
			rep.Wins++
		case myLen == theirLen:
			rep.Draws++
		default:
			rep.Losses++
		}
	}

	sort.SliceStable(rep.Boards, func(i, j int) bool {
		return sortScore(rep.Boards[i], me) < sortScore(rep.Boards[j], me)
	})
	sort.SliceStable(rep.Boards, func(i, j int) bool {
		gapI := sortScore(rep.Boards[i], me) - sortScore(rep.Boards[i], them)
		gapJ := sortScore(rep.Boards[j], me) - sortScore(rep.Boards[j], them)
		return gapI < gapJ
	})
	if !reverse {
		slices.Reverse(rep.Boards)
	}
	return rep
}
