package compare

import (
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/warmans/golfduel/pkg/board"
	"github.com/warmans/golfduel/pkg/compare"
	"github.com/warmans/golfduel/pkg/cutoff"
	"github.com/warmans/golfduel/pkg/flag"
	"github.com/warmans/golfduel/pkg/golf"
	"github.com/warmans/golfduel/pkg/render"

	"log/slog"
)

func NewCompareCommand(logger *slog.Logger) *cobra.Command {

	var me string
	var them string
	var reference string
	var lang string
	var scoring string
	var cutoffStr string
	var baseURL string
	var holeWidth int64
	var barWidth int64
	var reverse bool
	var showLengths bool
	var dump bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "compare two golfers hole by hole as of a point in time",
		RunE: func(cmd *cobra.Command, args []string) error {

			if me == "" || them == "" {
				return fmt.Errorf("both --me and --them are required")
			}
			if barWidth < 3 {
				return fmt.Errorf("bar width must be at least 3")
			}
			cut, err := cutoff.Normalize(cutoffStr)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client := golf.NewClient(logger, baseURL)

			logger.Info("Fetching list of holes...")
			holes, err := client.Holes(ctx)
			if err != nil {
				return err
			}

			logger.Info("Fetching solution log for each hole (this will take several seconds)...", "holes", len(holes), "lang", lang)
			logs, err := client.AllSolutionLogs(ctx, holes, lang)
			if err != nil {
				return err
			}

			tracked := []string{me, them}
			if reference != "" {
				tracked = append(tracked, reference)
			}

			started := time.Now()
			boards := make([]board.Board, 0, len(logs))
			for _, log := range logs {
				b, err := board.Reconstruct(log, board.Metric(scoring), cut)
				if err != nil {
					return err
				}
				boards = append(boards, b.Narrow(tracked))
			}
			rep := compare.Compare(boards, me, them, reverse)
			logger.Debug("processed solution logs", "duration", time.Since(started))

			if dump {
				spew.Fdump(os.Stderr, rep.Boards)
			}

			fmt.Print(render.Render(rep, render.Options{
				Reference:   reference,
				HoleWidth:   int(holeWidth),
				BarWidth:    int(barWidth),
				Unit:        board.Metric(scoring).Unit(),
				ShowLengths: showLengths,
			}))
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &me, "", "me", "", "your golfer handle")
	flag.StringVarEnv(cmd.Flags(), &them, "", "them", "", "the golfer to compare against")
	flag.StringVarEnv(cmd.Flags(), &reference, "", "reference", "", "optional third golfer shown on the bars for context")
	flag.StringVarEnv(cmd.Flags(), &lang, "", "lang", "rust", "language to compare solutions for")
	flag.StringVarEnv(cmd.Flags(), &scoring, "", "scoring", "bytes", "scoring metric (bytes or chars)")
	flag.StringVarEnv(cmd.Flags(), &cutoffStr, "", "cutoff", "now", "reconstruct the leaderboards as of this point in time")
	flag.StringVarEnv(cmd.Flags(), &baseURL, "", "api-url", golf.DefaultBaseURL, "")
	flag.Int64VarEnv(cmd.Flags(), &holeWidth, "", "hole-width", 24, "width of the hole name column")
	flag.Int64VarEnv(cmd.Flags(), &barWidth, "", "bar-width", 40, "width of the bar chart in cells")
	flag.BoolVarEnv(cmd.Flags(), &reverse, "", "reverse", false, "best holes first instead of worst")
	flag.BoolVarEnv(cmd.Flags(), &showLengths, "", "show-lengths", false, "append each golfer's own length to every line")
	flag.BoolVarEnv(cmd.Flags(), &dump, "", "dump", false, "dump the computed boards to stderr before rendering")

	flag.Parse()

	return cmd
}
