package cmd

import (
	"github.com/spf13/cobra"
)

var selectModeCmd = &cobra.Command{
	Use:   "select-mode <direct|catchup>",
	Short: "Switch Captvty to the direct or catch-up menu",
	Long: `Press the mode button for the given mode through its accessibility action
and print the spoken confirmation.

Examples:
  captvty-nav select-mode direct
  captvty-nav select-mode catchup --fixture ./captvty.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"direct", "catchup"},
	RunE:      runSelectMode,
}

func init() {
	rootCmd.AddCommand(selectModeCmd)
}

func runSelectMode(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}
	return printResult(session.SelectMode(cmd.Context(), args[0]))
}
