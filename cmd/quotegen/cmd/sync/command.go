// Package sync provides the sync command and its status subcommand.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// NewCommand creates the sync command.
func NewCommand(app application.Application) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "sync",
		GroupID: "sync",
		Short:   "Merge quotes from the remote server",
		Long: `Fetch quotes from the remote server and merge them by id.

Remote quotes overwrite local quotes with the same id and new ids are
appended. Local quotes missing from the remote are never removed. If the
server cannot be reached the local catalog is left unchanged.`,
		Example: `  quotegen sync
  quotegen sync --dry-run
  quotegen sync status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			run := client.Sync
			if dryRun {
				run = client.Preview
			}
			result, err := run(cmd.Context())
			if err != nil {
				return err
			}

			return writeResult(cmd, app, result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without applying it")
	cmd.AddCommand(newStatusCommand(app))

	return cmd
}

func newStatusCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show periodic sync health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			return output.NewFormatter(output.Format(app.OutputFormat())).Format(cmd.OutOrStdout(), client.SyncStatus())
		},
	}
}

func writeResult(cmd *cobra.Command, app application.Application, result *pkgsync.Result) error {
	format := output.Format(app.OutputFormat())
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), result)
	}

	message := "Quotes synced: " + result.Summary()
	if result.DryRun {
		message = "Sync preview: " + result.Summary()
	}
	alert := alerts.NewSuccess(message)
	if !result.HasChanges() {
		alert = alerts.NewInfo(message)
	}
	return alerts.NewFormatWriter(cmd.OutOrStdout(), format).WriteAlert(alert)
}
