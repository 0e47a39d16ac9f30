package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectChannelCmd = &cobra.Command{
	Use:   "select-channel",
	Short: "Scroll to a channel and act on it",
	Long: `Bring a channel row into view and act on it according to the current mode.

In direct mode --option answers the option dialog: the internal player, an
external player or a recording, by text or by position (#1, #2, #3). In
catch-up mode the channel is selected and the previous one deselected.

Examples:
  captvty-nav select-channel --channel "France 2" --option "#1"
  captvty-nav select-channel --channel arte --option externe`,
	Args: cobra.NoArgs,
	RunE: runSelectChannel,
}

func init() {
	rootCmd.AddCommand(selectChannelCmd)
	selectChannelCmd.Flags().String("channel", "", "Channel name (exact, case-insensitive, substring, or #N)")
	selectChannelCmd.Flags().String("option", "", "Direct mode option answer (default: ask the host)")
}

func runSelectChannel(cmd *cobra.Command, args []string) error {
	channel, _ := cmd.Flags().GetString("channel")
	option, _ := cmd.Flags().GetString("option")
	if channel == "" {
		return fmt.Errorf("specify --channel")
	}

	session, err := newSession()
	if err != nil {
		return err
	}
	return printResult(session.SelectChannel(cmd.Context(), channel, option))
}
