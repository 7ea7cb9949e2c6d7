package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wanderplan/wanderplan/internal/assistant"
	"github.com/wanderplan/wanderplan/internal/catalog"
	"github.com/wanderplan/wanderplan/internal/config"
	"github.com/wanderplan/wanderplan/internal/planner"
	"github.com/wanderplan/wanderplan/internal/server"
	"github.com/wanderplan/wanderplan/internal/weather"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wanderplan HTTP API",
	Long:  `Starts the planner API with chat, catalog, budget, and weather endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		cat := catalog.New()
		if cfg.CatalogFile != "" {
			if err := cat.LoadOverlay(cfg.CatalogFile); err != nil {
				return fmt.Errorf("loading catalog overlay: %w", err)
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "catalog overlay loaded from %s\n", cfg.CatalogFile)
			}
		}

		wx := weather.New()
		agent := newAgent(cfg, cat, wx)
		store := assistant.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		})

		r := srv.Router()
		catalog.RegisterRoutes(r, cat)
		weather.RegisterRoutes(r, wx)
		planner.RegisterRoutes(r, cat, planner.NewRandomFlightEstimator(time.Now().UnixNano()))
		assistant.RegisterRoutes(r, agent, store)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "wanderplan v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Destinations: %d\n", len(cat.Keys()))
		if cfg.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "  LLM phrasing: %s\n", cfg.LLM.Model)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
