package commands

import "github.com/spf13/cobra"

func (c *CLI) newStatuslineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statusline",
		Short: "Render the status line for the event on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Statusline(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
