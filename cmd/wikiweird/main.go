package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"wikiweird/internal/app"
	"wikiweird/internal/config"
	"wikiweird/internal/logging"
)

var version = "0.1.0"

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "wikiweird",
		Short: "Geographic attribution of unusual Wikipedia articles",
		Long: `wikiweird extracts the "unusual articles" lists from Wikipedia,
attributes each article to a country or territory using textual signals,
and serves the enriched dataset through a small read API.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	var maxPerRegion int
	var sourceName string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run one extraction and persist the snapshot",
		Long: `Fetch the source page, parse its region sections, attribute every
article to a country, and persist the resulting snapshot.

Example:
  wikiweird extract
  wikiweird extract --max-per-region 5 --source html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if maxPerRegion > 0 {
				cfg.Extract.MaxPerRegion = maxPerRegion
			}
			if sourceName != "" {
				cfg.Extract.Source = sourceName
			}

			ctx := signalContext()
			application, err := app.New(ctx, cfg, logging.New(cfg.Logging.Level))
			if err != nil {
				return err
			}
			return application.Extract(ctx)
		},
	}

	cmd.Flags().IntVar(&maxPerRegion, "max-per-region", 0, "cap articles per region (0 = no cap)")
	cmd.Flags().StringVar(&sourceName, "source", "", "section source strategy: wikitext or html")
	return cmd
}

func serveCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read API over the persisted snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if listen != "" {
				cfg.Listen = listen
			}

			ctx := signalContext()
			application, err := app.New(ctx, cfg, logging.New(cfg.Logging.Level))
			if err != nil {
				return err
			}
			return application.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return cmd
}

func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()
	return ctx
}
