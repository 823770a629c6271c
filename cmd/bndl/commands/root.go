// Package commands implements the CLI commands for the bndl launcher.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bndl/internal/core/ports"
)

// CLI represents the command line interface for bndl.
type CLI struct {
	app      Application
	logger   ports.Logger
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Launch(ctx context.Context, args []string) (int, error)
	Refresh(ctx context.Context, force bool) (string, error)
	Bundles(ctx context.Context) ([]string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bndl [editor args...]",
		Short:         "Launch the editor with an up-to-date local bundle list",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown flags belong to the editor. A bare invocation passes
		// everything through verbatim, so the root never parses flags;
		// launcher options live on the subcommands instead.
		DisableFlagParsing: true,
	}

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			c.logger.SetVerbose(true)
		}
	}

	// A bare invocation launches the editor, matching the wrapper's role
	// as a drop-in replacement for the editor binary.
	rootCmd.RunE = c.runLaunch

	rootCmd.AddCommand(c.newLaunchCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code recorded by the last executed command.
// A nonzero editor exit is reported here rather than as an error.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
