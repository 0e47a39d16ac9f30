package cmd

import (
	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Show the current Captvty mode",
	Long: `Resolve the current mode (direct, catchup or other) from the right-most mode
button and print the announcement spoken when the application gains focus.`,
	Args: cobra.NoArgs,
	RunE: runMode,
}

var buttonsCmd = &cobra.Command{
	Use:   "buttons",
	Short: "List the located mode buttons",
	Args:  cobra.NoArgs,
	RunE:  runButtons,
}

func init() {
	rootCmd.AddCommand(modeCmd)
	rootCmd.AddCommand(buttonsCmd)
}

func runMode(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return printResult(session.Mode(cmd.Context()))
}

func runButtons(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return printResult(session.Buttons(cmd.Context()))
}
