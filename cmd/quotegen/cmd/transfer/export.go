// Package transfer provides the export and import commands.
package transfer

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/quotes"
)

// NewExportCommand creates the export command.
func NewExportCommand(app application.Application) *cobra.Command {
	var fileFormat string

	cmd := &cobra.Command{
		Use:     "export [PATH]",
		GroupID: "sync",
		Short:   "Export all quotes to a file",
		Long: `Write every quote to PATH, or to stdout when PATH is "-".

The file format is taken from --file-format, then from the PATH
extension (.json, .yaml, .yml, .toml), and defaults to JSON.`,
		Example: `  quotegen export
  quotegen export backup.yaml
  quotegen export - --file-format toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := constants.ExportFileName
			if len(args) == 1 {
				path = args[0]
			}
			format, err := resolveFormat(fileFormat, path)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			if path == "-" {
				return client.Export(cmd.OutOrStdout(), format)
			}

			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
			if err != nil {
				return errors.WrapIO("create", path, err)
			}
			if err := client.Export(f, format); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.WrapIO("close", path, err)
			}

			return alerts.NewFormatWriter(cmd.OutOrStdout(), output.Format(app.OutputFormat())).
				WriteAlert(alerts.NewSuccess(fmt.Sprintf("Exported %d quotes to %s", len(client.List()), path)))
		},
	}

	cmd.Flags().StringVar(&fileFormat, "file-format", "", "file format: json, yaml, toml")

	return cmd
}

// resolveFormat prefers an explicit format and falls back to the path
// extension.
func resolveFormat(explicit, path string) (quotes.Format, error) {
	if explicit != "" {
		return quotes.ParseFormat(explicit)
	}
	if path == "-" {
		return quotes.FormatJSON, nil
	}
	return quotes.FormatFromPath(path), nil
}

// openInput opens path for reading; "-" is stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	return f, nil
}
