// Package filter provides the command that shows or sets the persisted
// category selection.
package filter

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
)

// NewCommand creates the filter command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "filter [CATEGORY]",
		Aliases: []string{"select"},
		GroupID: "quotes",
		Short:   "Show or set the selected category",
		Long: `Show the selected category, or select a new one.

The selection is remembered between runs and used by "quotegen random".
Selecting "all" clears the filter. A selected category that has no
quotes reads back as "all".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if len(args) == 1 {
				if err := client.SetSelection(ctx, args[0]); err != nil {
					return err
				}
			}
			selection := client.Selection(ctx)

			format := output.Format(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), map[string]string{"category": selection})
			}
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), selection)
				return err
			}
			alert := alerts.NewSuccess("Selected category: " + selection)
			if selection != args[0] {
				alert = alerts.NewWarning(fmt.Sprintf("No quotes in category %q, showing all", args[0]))
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), format).WriteAlert(alert)
		},
	}
}
