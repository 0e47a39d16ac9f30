package cmd

import (
	"github.com/spf13/cobra"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List the channels of the channel list",
	Args:  cobra.NoArgs,
	RunE:  runChannels,
}

func init() {
	rootCmd.AddCommand(channelsCmd)
}

func runChannels(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return printResult(session.Channels(cmd.Context()))
}
