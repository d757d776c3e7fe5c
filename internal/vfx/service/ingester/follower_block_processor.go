package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/pkg/workerpool"
	"go.uber.org/zap"
)

type followerBlockProcessor struct {
	workerCount int
	syncer      Syncer
	metrics     FollowerIngesterMetrics
	logger      *zap.Logger
}

func (p *followerBlockProcessor) Process(ctx context.Context, heights []uint64) error {
	return workerpool.Process(ctx, p.workerCount, heights, p.processHeight)
}

func (p *followerBlockProcessor) processHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessHeight(err, height, started)
	}()

	if err = p.syncer.Sync(ctx, height); err != nil {
		p.logger.Error("sync block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("sync block height %d: %w", height, err)
	}
	return nil
}
