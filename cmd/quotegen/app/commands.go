package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/quotegen/cmd/add"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/categories"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/filter"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/list"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/push"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/random"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/remove"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/serve"
	synccmd "github.com/agentstation/quotegen/cmd/quotegen/cmd/sync"
	"github.com/agentstation/quotegen/cmd/quotegen/cmd/transfer"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Quote commands
	rootCmd.AddCommand(random.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(categories.NewCommand(a))
	rootCmd.AddCommand(filter.NewCommand(a))

	// Sync & transfer commands
	rootCmd.AddCommand(synccmd.NewCommand(a))
	rootCmd.AddCommand(push.NewCommand(a))
	rootCmd.AddCommand(transfer.NewExportCommand(a))
	rootCmd.AddCommand(transfer.NewImportCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("quotegen %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
