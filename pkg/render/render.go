// Package render turns a comparison report into the terminal bar-chart
// view: one line per hole plus a centered summary block.
package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/warmans/golfduel/pkg/board"
	"github.com/warmans/golfduel/pkg/compare"
)

// Role is a golfer's part in the report. Colors hang off the role rather
// than a position in some list, so adding a participant means adding a
// role, not widening an array.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
	RoleReference
)

type Palette map[Role]*color.Color

func DefaultPalette() Palette {
	return Palette{
		RolePrimary:   color.New(color.FgGreen, color.Bold),
		RoleSecondary: color.New(color.FgRed, color.Bold),
		RoleReference: color.New(color.FgYellow, color.Bold),
	}
}

const filler = "·"

type Options struct {
	// Reference is an optional third golfer shown on the bars for context.
	// It never affects which holes are reported.
	Reference string

	// HoleWidth is the right-aligned hole name column; BarWidth the number
	// of bar cells. The summary block derives its centering from both.
	HoleWidth int
	BarWidth  int

	// Unit is the singular length unit for delta annotations e.g. "byte".
	Unit string

	// ShowLengths appends each golfer's own length to the annotation.
	ShowLengths bool

	Palette Palette
}

func roles(rep compare.Report, opts Options) map[string]Role {
	r := map[string]Role{
		rep.Me:   RolePrimary,
		rep.Them: RoleSecondary,
	}
	if opts.Reference != "" {
		r[opts.Reference] = RoleReference
	}
	return r
}

// Render produces the full report text.
func Render(rep compare.Report, opts Options) string {
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}
	if opts.Unit == "" {
		opts.Unit = "byte"
	}

	sb := &strings.Builder{}
	golferRoles := roles(rep, opts)
	for _, b := range rep.Boards {
		fmt.Fprintf(
			sb,
			"%*s %s %s\n",
			opts.HoleWidth,
			holeName(b),
			bar(b, opts, golferRoles),
			annotation(b, rep, opts),
		)
	}
	summary(sb, rep, opts)
	return sb.String()
}

func holeName(b board.Board) string {
	if b.HoleName != "" {
		return b.HoleName
	}
	return b.HoleID
}

// bar lays the golfers' markers out on a row of BarWidth cells. The cell is
// proportional to the score, 1000 on the far right. A marker landing on an
// occupied cell slides left until it finds a free one, stopping at cell 0.
func bar(b board.Board, opts Options, roles map[string]Role) string {
	cells := make([]string, opts.BarWidth)
	occupied := make([]bool, opts.BarWidth)

	for _, e := range b.Entries {
		c := int(e.Score / 1000 * float64(opts.BarWidth-1))
		for c > 0 && occupied[c] {
			c--
		}
		occupied[c] = true
		marker := e.Golfer[:1]
		if role, tracked := roles[e.Golfer]; tracked {
			marker = opts.Palette[role].Sprint(marker)
		}
		cells[c] = marker
	}

	for i, cell := range cells {
		if cell == "" {
			cells[i] = filler
		}
	}
	return strings.Join(cells, "")
}

// annotation is the trailing delta: my length minus theirs, colored by
// whether that favours me, then the hole's leading length in parentheses.
func annotation(b board.Board, rep compare.Report, opts Options) string {
	myLen, theirLen := b.LengthOf(rep.Me), b.LengthOf(rep.Them)
	delta := myLen - theirLen

	var text string
	switch {
	case delta < 0:
		text = opts.Palette[RolePrimary].Sprintf("%d %s", delta, pluralize(opts.Unit, delta))
	case delta > 0:
		text = opts.Palette[RoleSecondary].Sprintf("+%d %s", delta, pluralize(opts.Unit, delta))
	default:
		text = "even"
	}

	text += fmt.Sprintf(" (%d)", b.LeaderLength)
	if opts.ShowLengths {
		text += fmt.Sprintf(" [%s %d, %s %d]", rep.Me, myLen, rep.Them, theirLen)
	}
	return text
}

func pluralize(unit string, n int) string {
	if n == 1 || n == -1 {
		return unit
	}
	return unit + "s"
}

// summary appends the centered tally, headline and name banner, aligned
// under the bar column.
func summary(sb *strings.Builder, rep compare.Report, opts Options) {
	pad := strings.Repeat(" ", opts.HoleWidth+1)

	counts := fmt.Sprintf("%d / %d / %d", rep.Wins, rep.Draws, rep.Losses)
	fmt.Fprintf(sb, "\n%s%s\n", pad, center(counts, opts.BarWidth))

	headline := fmt.Sprintf("%s over %d %s", verdict(rep.Delta()), rep.Total(), pluralize("hole", rep.Total()))
	fmt.Fprintf(sb, "%s%s\n", pad, center(headline, opts.BarWidth))

	banner := fmt.Sprintf("%s  vs  %s", rep.Me, rep.Them)
	left := strings.Repeat(" ", leftMargin(banner, opts.BarWidth))
	fmt.Fprintf(
		sb,
		"%s%s%s  vs  %s\n",
		pad,
		left,
		opts.Palette[RolePrimary].Sprint(rep.Me),
		opts.Palette[RoleSecondary].Sprint(rep.Them),
	)
}

func verdict(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("%d %s", delta, pluralizeIrregular("loss", "losses", delta))
	case delta < 0:
		return fmt.Sprintf("%d %s", -delta, pluralize("win", -delta))
	default:
		return "Tie"
	}
}

func pluralizeIrregular(singular string, plural string, n int) string {
	if n == 1 || n == -1 {
		return singular
	}
	return plural
}

func center(s string, width int) string {
	return strings.Repeat(" ", leftMargin(s, width)) + s
}

func leftMargin(s string, width int) int {
	if len(s) >= width {
		return 0
	}
	return (width - len(s)) / 2
}
