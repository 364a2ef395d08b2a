// crossing is a lane-crossing arcade game for the terminal.
//
// Usage:
//
//	crossing play            - Play in this terminal
//	crossing serve           - Start SSH server for remote play
//	crossing bonuses         - Show the bonus table
//
// Global flags:
//
//	--fps <rate>          - Set tick request rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossing/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - get across the road in your terminal",
	Long: `Bug Crossing is a terminal arcade game: walk from the grass to the
water without getting hit by the bugs on the stone lanes. Gems, hearts and
keys on the way pay out when you reach the water.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  bonuses  - Show what each bonus is worth

Examples:
  crossing play
  crossing play --difficulty hard
  crossing serve --ssh :2222
  crossing bonuses`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick request rate (the simulation itself is capped at max_tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bonusesCmd)
}

// loadGameConfig resolves the game config from --config and --difficulty.
func loadGameConfig() (config.CrossingConfig, error) {
	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyCrossingPreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}
