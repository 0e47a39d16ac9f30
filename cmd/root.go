package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/captvty-nav/internal/config"
	"github.com/mj1618/captvty-nav/internal/logging"
	"github.com/mj1618/captvty-nav/internal/output"
	"github.com/mj1618/captvty-nav/internal/platform/fixture"
	"github.com/mj1618/captvty-nav/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfg is the configuration loaded by the root command before any subcommand runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "captvty-nav",
	Short: "Navigate the Captvty window by geometry",
	Long: `Locate and drive the controls of the Captvty streaming application from
its UI tree: mode buttons, the channel list and program descriptions.

Captvty exposes no usable accessibility names for these controls, so they are
found by pixel width, child count and fixed child paths. Without a live host
binding the window is replayed from a fixture file (--fixture), or from the
built-in sample window when none is configured.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $HOME/.captvty-nav.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("fixture", "", "Recorded window YAML to replay, or \"sample\" (default: config, then sample)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flags := rootCmd.PersistentFlags()

		cfgFile, _ := flags.GetString("config")
		loaded, err := config.Load(viper.New(), cfgFile)
		if err != nil {
			return err
		}
		if flags.Changed("log-level") {
			loaded.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("fixture") {
			loaded.Fixture, _ = flags.GetString("fixture")
		}
		if loaded.Fixture == "" {
			loaded.Fixture = fixture.SampleName
		}
		cfg = loaded

		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
		fixture.Register(cfg.Fixture)

		format, _ := flags.GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = flags.GetBool("pretty")
		return nil
	}
}
