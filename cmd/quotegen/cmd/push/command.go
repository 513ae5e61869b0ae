// Package push provides the push command.
package push

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/remove"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
)

// NewCommand creates the push command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "push ID",
		GroupID: "sync",
		Short:   "Send a local quote to the remote server",
		Long: `Send one stored quote to the remote server.

The local catalog is unchanged whether or not the push succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := remove.ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			ack, err := client.Push(cmd.Context(), id)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), ack)
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), format).
				WriteAlert(alerts.NewSuccess(fmt.Sprintf("Quote %d sent (remote id %d)", id, ack.ID)))
		},
	}
}
