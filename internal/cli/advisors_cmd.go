package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/cli/formatter"
	"github.com/alexanderramin/dayplan/internal/prompt"
)

func newAdvisorsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advisors",
		Short: "List the advisors available to --advisor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printOut(cmd, formatter.FormatAdvisors(app.Catalog.All(), prompt.DefaultAdvisorIDs))
			return nil
		},
	}
}
