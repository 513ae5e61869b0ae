// Package add provides the add quote command.
package add

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
)

// NewCommand creates the add command.
func NewCommand(app application.Application) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "add TEXT...",
		GroupID: "quotes",
		Short:   "Add a quote",
		Long: `Add a quote to the local catalog.

Words are joined with single spaces, so quoting the text is optional.
Both the text and the category must be non-blank.`,
		Example: `  quotegen add "Less is more." --category Design
  quotegen add Stay hungry, stay foolish -c Motivation`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			q, err := client.Add(cmd.Context(), strings.Join(args, " "), category)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), q)
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), format).
				WriteAlert(alerts.NewSuccess("Quote added").WithDetails(q.String()))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category for the new quote (required)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
