// Package remove provides the remove quote command.
package remove

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
	"github.com/agentstation/quotegen/pkg/errors"
)

// NewCommand creates the remove command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm", "delete"},
		GroupID: "quotes",
		Short:   "Remove a quote by id",
		Long: `Remove a quote from the local catalog.

A removed quote comes back on the next sync if the remote still has it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			if err := client.Remove(cmd.Context(), id); err != nil {
				return err
			}

			return alerts.NewFormatWriter(cmd.OutOrStdout(), output.Format(app.OutputFormat())).
				WriteAlert(alerts.NewSuccess(fmt.Sprintf("Quote %d removed", id)))
		},
	}
}

// ParseID parses a positive quote id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("id", s, "must be a positive integer")
	}
	return id, nil
}
