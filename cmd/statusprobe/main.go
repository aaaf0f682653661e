package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hamed0406/statusprobe/internal/config"
	"github.com/hamed0406/statusprobe/internal/logging"
	"github.com/hamed0406/statusprobe/internal/probe"
	"github.com/hamed0406/statusprobe/internal/report"
	"github.com/hamed0406/statusprobe/internal/runner"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	logger, err := logging.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer logger.Sync()

	printer := report.NewPrinter(os.Stdout, !cfg.NoColor)
	printer.Banner(cfg.BaseURL)

	logger.Debug("config",
		zap.String("base_url", cfg.BaseURL),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("client_name", cfg.ClientName),
		zap.String("origin", cfg.Origin),
	)

	ledger := runner.New(logger, os.Stdout, probe.Suite(cfg, logger)...).Run(context.Background())
	printer.Summary(ledger)
	return ledger.ExitCode()
}
