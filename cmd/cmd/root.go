package cmd

import (
	"github.com/spf13/cobra"
	"github.com/warmans/golfduel/cmd/cmd/board"
	"github.com/warmans/golfduel/cmd/cmd/compare"
	"github.com/warmans/golfduel/cmd/cmd/holes"
	"log/slog"
)

var (
	rootCmd = &cobra.Command{
		Use:   "golfduel",
		Short: "historical head-to-head reports for code.golf",
	}
)

// Execute executes the root command.
func Execute(logger *slog.Logger) error {
	rootCmd.AddCommand(compare.NewCompareCommand(logger))
	rootCmd.AddCommand(board.NewBoardCommand(logger))
	rootCmd.AddCommand(holes.NewHolesCommand(logger))
	return rootCmd.Execute()
}
