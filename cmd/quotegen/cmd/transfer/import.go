package transfer

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
)

// NewImportCommand creates the import command.
func NewImportCommand(app application.Application) *cobra.Command {
	var fileFormat string

	cmd := &cobra.Command{
		Use:     "import PATH",
		GroupID: "sync",
		Short:   "Import quotes from a file",
		Long: `Merge quotes from PATH (or stdin when PATH is "-") into the catalog.

Quotes are merged by id: matching ids are overwritten, new ids are
appended and quotes without an id get a fresh one. If any entry is
invalid nothing is imported.`,
		Example: `  quotegen import quotes.json
  cat quotes.yaml | quotegen import - --file-format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := resolveFormat(fileFormat, path)
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			r, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			defer r.Close()

			result, err := client.Import(cmd.Context(), r, format)
			if err != nil {
				return err
			}

			outFormat := output.Format(app.OutputFormat())
			switch outFormat {
			case output.FormatJSON, output.FormatYAML:
				return output.NewFormatter(outFormat).Format(cmd.OutOrStdout(), result)
			}
			return alerts.NewFormatWriter(cmd.OutOrStdout(), outFormat).
				WriteAlert(alerts.NewSuccess("Quotes imported: " + result.String()))
		},
	}

	cmd.Flags().StringVar(&fileFormat, "file-format", "", "file format: json, yaml, toml (default: from extension)")

	return cmd
}
