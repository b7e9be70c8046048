// Package cli defines the command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stockpulse/stockpulse/config"
	"github.com/stockpulse/stockpulse/internal/ai"
	"github.com/stockpulse/stockpulse/internal/debug"
	"github.com/stockpulse/stockpulse/internal/market"
	"github.com/stockpulse/stockpulse/internal/server"
	"github.com/stockpulse/stockpulse/internal/service"
	"github.com/stockpulse/stockpulse/internal/storage"
)

const version = "1.0.0"

// NewRootCmd creates the root command. Running it without a subcommand
// starts the API server.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stockpulse",
		Short: "StockPulse - NSE stock quotes and AI earnings analysis",
		Long: `StockPulse serves NSE stock quotes, historical prices and fundamentals
proxied from Yahoo Finance, plus LLM-generated earnings-call transcripts
and sentiment analysis, over a JSON HTTP API.`,
		RunE: runServe,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stockpulse %s\n", version)
		},
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()
	if err := debug.NewEinoDebugger(cfg, log).Initialize(ctx); err != nil {
		log.WithError(err).Warn("eino debug plugin unavailable")
	}

	llm, err := ai.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	var provider market.Provider
	switch cfg.MarketProvider {
	case "remote":
		provider = market.NewRemoteProvider(cfg.SidecarURL)
	default:
		provider = market.NewYahooProvider(cfg.HistoryDailyOnly)
	}

	store := storage.NewMemoryStore()
	svc := service.New(store, provider, llm, log, cfg.QuoteTTL, cfg.FundamentalsTTL)

	log.WithFields(logrus.Fields{
		"market_provider": provider.Name(),
		"llm_provider":    cfg.LLMProvider,
		"llm_model":       cfg.LLMModel,
	}).Info("stockpulse configured")

	return server.NewAPI(cfg, svc, log).Start()
}
