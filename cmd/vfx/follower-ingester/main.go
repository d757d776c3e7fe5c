// Package main runs the follower ingester, which keeps the ledger at the node's tip.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/vfxledger/cmd/vfx/internal/bootstrap"
	"github.com/goodnatureofminers/vfxledger/internal/metrics"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/service/ingester"
	"github.com/jessevdk/go-flags"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

type config struct {
	Common  bootstrap.Options `group:"Ledger options" env-namespace:"VFX_INGESTER"`
	Workers int               `long:"workers" env:"VFX_INGESTER_WORKERS" description:"heights synced concurrently, 1 keeps strict height order" default:"1"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("vfx follower ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", string(cfg.Common.Network)))
	bootstrap.StartMetricsServer(ctx, cfg.Common.MetricsAddr, logger)

	stack, err := bootstrap.Build(ctx, cfg.Common, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stack.Close(); err != nil {
			logger.Error("failed to close components", zap.Error(err))
		}
	}()

	driver, err := stack.SyncDriver()
	if err != nil {
		return fmt.Errorf("init sync driver: %w", err)
	}
	defer driver.Close()

	svc, err := ingester.NewFollowerIngesterService(
		stack.Store,
		stack.Node,
		driver,
		metrics.NewFollowerIngester(cfg.Common.Network),
		cfg.Workers,
		logger.Named("follower"),
	)
	if err != nil {
		return err
	}

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
