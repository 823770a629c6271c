package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch [editor args...]",
		Short: "Refresh the bundle list and start the editor",
		Args:  cobra.ArbitraryArgs,
		// Arguments, flag-shaped ones included, are the editor's to
		// interpret.
		DisableFlagParsing: true,
		RunE:               c.runLaunch,
	}
}

// runLaunch backs both the bare root invocation and the launch subcommand.
// The editor's exit code is recorded on the CLI rather than surfaced as an
// error.
func (c *CLI) runLaunch(cmd *cobra.Command, args []string) error {
	code, err := c.app.Launch(cmd.Context(), args)
	if err != nil {
		return err
	}
	c.exitCode = code
	return nil
}
