// Package random provides the random quote command.
package random

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/output"
	"github.com/agentstation/quotegen/pkg/errors"
)

// NewCommand creates the random command.
func NewCommand(app application.Application) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "random",
		Aliases: []string{"quote", "show"},
		GroupID: "quotes",
		Short:   "Show a random quote",
		Long: `Show a random quote from the selected category.

Without --category the persisted selection is used (see "quotegen filter").
Use --category all to pick from every quote.`,
		Example: `  quotegen random
  quotegen random --category Wisdom
  quotegen random -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			q, err := client.Random(cmd.Context(), category)
			if errors.IsNoneAvailable(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No quotes available in this category.")
				return nil
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return output.WriteQuote(w, output.Format(app.OutputFormat()), q, output.IsTerminal(w))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category to pick from (default: current selection)")

	return cmd
}
