package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizapp/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizapp",
	Short: "Build and review video quizzes in the terminal",
	Long:  "QuizApp: create, edit and browse multiple-choice quizzes attached to a video. Quizzes live in memory for the lifetime of the process.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("match", "", `How edits keep question and answer ids: "position" or "id" (overrides QUIZAPP_MATCH)`)
	rootCmd.PersistentFlags().Int64("id-seed", 0, "Starting value for generated ids; 0 uses the clock (overrides QUIZAPP_ID_SEED)")
	rootCmd.PersistentFlags().Bool("no-seed", false, "Start with an empty quiz list instead of the example quiz")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every applied change to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers flags (highest priority) over QUIZAPP_* env vars
// over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.ConfigFromEnv()
	flags := cmd.Flags()

	if flags.Changed("match") {
		cfg.Match, _ = flags.GetString("match")
	}
	if flags.Changed("id-seed") {
		cfg.IDSeed, _ = flags.GetInt64("id-seed")
	}
	if flags.Changed("no-seed") {
		noSeed, _ := flags.GetBool("no-seed")
		cfg.Seed = !noSeed
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}

	return cfg, cfg.Validate()
}
