package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/internal/cmd/output"
)

// errWriter receives warnings and background notices.
var errWriter io.Writer = os.Stderr

// Execute runs the quotegen CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "quotegen",
		Short:   "Dynamic quote generator",
		Version: a.version,
		Long: `Quotegen keeps a catalog of quotes grouped by category, shows them at
random, and keeps the catalog in step with a remote quote server.

Quotes are stored locally (see --storage) so the catalog works offline.
Sync merges remote quotes by id without ever dropping local ones.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "quotes",
		Title: "Quote Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sync",
		Title: "Sync & Transfer Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.quotegen.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml, wide")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.StringVar(&a.config.Storage, "storage", a.config.Storage, "storage backend: memory, file, sqlite")
	flags.StringVar(&a.config.DataDir, "data-dir", a.config.DataDir, "directory for the file and sqlite backends")

	rootCmd.SetVersionTemplate("quotegen {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. Flags are bound
// directly to the config, so this only reloads an explicit config file
// and rebuilds the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		path, _ := cmd.Flags().GetString("config")
		config, err := LoadConfigFile(path)
		if err != nil {
			return err
		}
		// Flags given on the command line still win over the file
		config.UpdateFromFlags(a.config.Verbose, a.config.Quiet, a.config.NoColor, a.config.Format, a.config.LogLevel)
		if cmd.Flags().Changed("storage") {
			config.Storage = a.config.Storage
		}
		if cmd.Flags().Changed("data-dir") {
			config.DataDir = a.config.DataDir
		}
		a.config = config
	}

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// ExitOnError prints err to stderr and exits with status 1. A nil error
// does nothing.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
