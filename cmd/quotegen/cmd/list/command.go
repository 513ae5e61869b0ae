// Package list provides the list quotes command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/output"
	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/quotes"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "quotes",
		Short:   "List quotes",
		Example: `  quotegen list
  quotegen list --category Wisdom -o yaml
  quotegen list -o wide`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			list := client.Filter(category)
			if list == nil {
				list = []quotes.Quote{}
			}
			return output.NewFormatter(output.Format(app.OutputFormat())).Format(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", constants.AllCategories, "only list quotes in this category")

	return cmd
}
