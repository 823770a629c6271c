package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bndl/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the discovered bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundles, err := c.app.Bundles(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, bundle := range bundles {
				_, _ = fmt.Fprintln(out, style.Bundle.Render(style.Dot+" "+bundle))
			}
			_, _ = fmt.Fprintln(out, style.Count.Render(fmt.Sprintf("%d bundle(s)", len(bundles))))
			return nil
		},
	}
}
