package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	// stdout carries the stdio MCP transport; logs must never mix into it.
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	var (
		host      string
		port      int
		transport string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:           "weather",
		Short:         "MCP server exposing live weather and forecasts from the Gaode (Amap) API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			// Flags win over environment, matching the original CLI behavior.
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			logger, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer logger.Sync()

			client := NewGaodeClient(cfg, logger)
			server := NewWeatherServer(client, logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting weather MCP server",
				zap.String("transport", transport),
				zap.String("base_url", cfg.BaseURL))
			return RunServer(ctx, server, cfg, transport, logger)
		},
	}

	rootCmd.Flags().StringVar(&host, "host", defaultHost, "bind address for the sse/http transports")
	rootCmd.Flags().IntVar(&port, "port", defaultPort, "bind port for the sse/http transports")
	rootCmd.Flags().StringVar(&transport, "transport", "stdio", "MCP transport: stdio, sse, or http")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
