// Package main runs a one-shot backfill over a height range, or repairs gaps with --missing.
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
	Common    bootstrap.Options `group:"Ledger options" env-namespace:"VFX_BACKFILL"`
	Start     *uint64           `long:"start" env:"VFX_BACKFILL_START" description:"first height, defaults to the height after the local tip (0 with --missing)"`
	End       *uint64           `long:"end" env:"VFX_BACKFILL_END" description:"last height, defaults to the node tip"`
	Missing   bool              `long:"missing" env:"VFX_BACKFILL_MISSING" description:"only sync heights absent from the ledger"`
	ChunkSize uint64            `long:"chunk-size" env:"VFX_BACKFILL_CHUNK_SIZE" description:"heights per pass" default:"1000"`
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
		logger.Fatal("vfx backfill ingester failed", zap.Error(err))
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

	svc, err := ingester.NewBackfillIngesterService(
		stack.Store,
		stack.Node,
		driver,
		metrics.NewBackfillIngester(cfg.Common.Network),
		ingester.BackfillOptions{
			Start:     cfg.Start,
			End:       cfg.End,
			Missing:   cfg.Missing,
			ChunkSize: cfg.ChunkSize,
		},
		logger.Named("backfill"),
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}
