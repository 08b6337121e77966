package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/diceroller/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "diceroller",
	Short: "Terminal dice roller",
	Long:  "diceroller: roll d2 through d100 in the terminal, with critical flashes, sound cues and a roll history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addAppFlags(rootCmd)

	rootCmd.AddCommand(newRollCmd())
	rootCmd.AddCommand(diceCmd)
	rootCmd.AddCommand(versionCmd)
}

// addAppFlags registers the TUI flags that map onto config.Config.
func addAppFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Bool("history", true, "Keep a scrollable roll history (overrides DICEROLLER_HISTORY)")
	flags.Bool("no-history", false, "Disable the roll history")
	flags.Bool("no-splash", false, "Skip the welcome animation")
	flags.Uint64("seed", 0, "Seed for reproducible rolls (overrides DICEROLLER_SEED)")
	flags.String("audio", "", "Audio mode: auto, bell, command or silent (overrides DICEROLLER_AUDIO)")
	flags.String("assets", "", "Directory holding dice-roll and thunder-melody sound files")
	flags.String("log-file", "", "Path to the log file (overrides DICEROLLER_LOG_FILE)")
}

// resolveConfig loads DICEROLLER_* env vars, then applies any flag the user
// set explicitly. Flags win over the environment.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	return applyFlags(cmd, cfg)
}

func applyFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("history") {
		cfg.History, _ = flags.GetBool("history")
	}
	if off, _ := flags.GetBool("no-history"); off {
		cfg.History = false
	}
	if off, _ := flags.GetBool("no-splash"); off {
		cfg.Splash = false
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("audio") {
		cfg.Audio, _ = flags.GetString("audio")
	}
	if flags.Changed("assets") {
		cfg.AssetDir, _ = flags.GetString("assets")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return cfg, cfg.Validate()
}
