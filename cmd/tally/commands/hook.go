package commands

import "github.com/spf13/cobra"

func (c *CLI) newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook",
		Short: "Record a session hook event read from stdin",
		Long: "Records the prompt submission time on UserPromptSubmit, forgets the\n" +
			"session on SessionEnd and sweeps session timestamps older than 24h.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Hook(cmd.Context(), cmd.InOrStdin())
		},
	}
}
