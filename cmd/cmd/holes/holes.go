package holes

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/warmans/golfduel/pkg/flag"
	"github.com/warmans/golfduel/pkg/golf"

	"log/slog"
)

func NewHolesCommand(logger *slog.Logger) *cobra.Command {

	var baseURL string

	cmd := &cobra.Command{
		Use:   "holes",
		Short: "list all holes known to the API",
		RunE: func(cmd *cobra.Command, args []string) error {

			client := golf.NewClient(logger, baseURL)
			holes, err := client.Holes(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Category"})
			for _, h := range holes {
				table.Append([]string{h.ID, h.Name, h.Category})
			}
			table.Render()
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &baseURL, "", "api-url", golf.DefaultBaseURL, "")

	flag.Parse()

	return cmd
}
