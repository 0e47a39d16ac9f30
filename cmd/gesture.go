package cmd

import (
	"fmt"
	"sort"

	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/spf13/cobra"
)

// gestureEntry is the output of gesture --list.
type gestureEntry struct {
	Gesture     string `yaml:"gesture"     json:"gesture"`
	Description string `yaml:"description" json:"description"`
}

var gestureCmd = &cobra.Command{
	Use:   "gesture [combo]",
	Short: "Send a bound key gesture",
	Long: `Run the handler bound to a key gesture as the screen reader would.
Dialogs opened by the handler are answered from --answer, in order.

Examples:
  captvty-nav gesture --list
  captvty-nav gesture ctrl+r
  captvty-nav gesture nvda+l --answer Arte --answer "#2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGesture,
}

func init() {
	rootCmd.AddCommand(gestureCmd)
	gestureCmd.Flags().StringArray("answer", nil, "Dialog answer (repeatable)")
	gestureCmd.Flags().Bool("list", false, "List the bound gestures")
}

func runGesture(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")
	answers, _ := cmd.Flags().GetStringArray("answer")

	session, err := newSession()
	if err != nil {
		return err
	}

	if list {
		var entries []gestureEntry
		for id, g := range session.Module().Gestures() {
			entries = append(entries, gestureEntry{Gesture: id, Description: g.Description})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Gesture < entries[j].Gesture })
		return output.Print(entries)
	}
	if len(args) == 0 {
		return fmt.Errorf("specify a gesture or --list")
	}
	return printResult(session.Gesture(cmd.Context(), args[0], answers))
}
