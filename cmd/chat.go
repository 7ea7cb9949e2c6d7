package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/internal/assistant"
	"github.com/wanderplan/wanderplan/internal/catalog"
	"github.com/wanderplan/wanderplan/internal/config"
	"github.com/wanderplan/wanderplan/internal/weather"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Plan a trip interactively in the terminal",
	Long: `Starts an interactive planning session against a single local session.
Type your trip ideas; ask for "create itinerary" once destination,
duration, and budget are known. Type "reset" to start over, "exit" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		cat := catalog.New()
		if cfg.CatalogFile != "" {
			if err := cat.LoadOverlay(cfg.CatalogFile); err != nil {
				return fmt.Errorf("loading catalog overlay: %w", err)
			}
		}

		agent := newAgent(cfg, cat, weather.New())
		sess := &assistant.Session{ID: "local", Context: &assistant.Context{}}

		fmt.Println("Wanderplan travel planner. Where would you like to go?")

		prompt := promptui.Prompt{Label: "you"}
		for {
			input, err := prompt.Run()
			if err != nil {
				// Ctrl-C / Ctrl-D end the session.
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					fmt.Println("Safe travels!")
					return nil
				}
				return fmt.Errorf("reading input: %w", err)
			}

			switch strings.ToLower(strings.TrimSpace(input)) {
			case "":
				continue
			case "exit", "quit":
				fmt.Println("Safe travels!")
				return nil
			case "reset":
				sess.Context = &assistant.Context{}
				sess.History = nil
				fmt.Println("Starting fresh. Where to?")
				continue
			}

			reply := agent.Chat(cmd.Context(), sess, input)
			fmt.Printf("\n%s\n\n", reply)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
