package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wanderplan",
	Short: "Rule-based conversational travel itinerary planner",
	Long: `Wanderplan plans trips through conversation: it extracts destination,
duration, budget, and interests from chat messages and synthesizes a
day-by-day itinerary with budget breakdowns from its built-in travel
catalog. Run it as an HTTP API or chat with it in the terminal.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".wanderplan.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
