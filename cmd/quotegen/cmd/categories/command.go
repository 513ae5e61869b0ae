// Package categories provides the categories command.
package categories

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/output"
	"github.com/agentstation/quotegen/internal/cmd/table"
)

// NewCommand creates the categories command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		GroupID: "quotes",
		Short:   "List categories with quote counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), client.Categories())
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), table.Categories(client.List()))
		},
	}
}
