package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tally/internal/app"
)

func (c *CLI) newRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch usage data into the cache",
		Long:  "Fetches the selected usage caches now. Both are refreshed when neither flag is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			blocks, _ := cmd.Flags().GetBool("blocks")
			daily, _ := cmd.Flags().GetBool("daily")
			quiet, _ := cmd.Flags().GetBool("quiet")
			leased, _ := cmd.Flags().GetBool("leased")
			token, _ := cmd.Flags().GetString("lease-token")

			return c.app.Refresh(cmd.Context(), app.RefreshOptions{
				Blocks:     blocks,
				Daily:      daily,
				Quiet:      quiet,
				Leased:     leased,
				LeaseToken: token,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("blocks", false, "Refresh the active block usage")
	cmd.Flags().Bool("daily", false, "Refresh today's usage")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	cmd.Flags().Bool("leased", false, "The lock is already held by the dispatching process")
	cmd.Flags().String("lease-token", "", "Token of the dispatched lease")
	_ = cmd.Flags().MarkHidden("leased")
	_ = cmd.Flags().MarkHidden("lease-token")
	return cmd
}
