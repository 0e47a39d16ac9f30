package cmd

import (
	"strings"

	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/mj1618/captvty-nav/internal/server"
	"github.com/spf13/cobra"
)

var parseProgramCmd = &cobra.Command{
	Use:   "parse-program <text>",
	Short: "Parse a program description",
	Long: `Split a Captvty program description into its fields. Labels are read in a
fixed order; the first missing or out-of-order label ends parsing.

Example:
  captvty-nav parse-program "Le journal; Chaîne: France 2; Durée: 40 min"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParseProgram,
}

func init() {
	rootCmd.AddCommand(parseProgramCmd)
}

func runParseProgram(cmd *cobra.Command, args []string) error {
	return output.Print(server.ParseProgram(strings.Join(args, " ")))
}
