package ingester

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/clock"
	"go.uber.org/zap"
)

// FollowerIngesterService keeps the ledger at the node's tip.
type FollowerIngesterService struct {
	logger            *zap.Logger
	metrics           FollowerIngesterMetrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
}

// NewFollowerIngesterService builds a FollowerIngesterService. workerCount below one
// means sequential ingestion.
func NewFollowerIngesterService(
	local LocalHeights,
	source NodeSource,
	syncer Syncer,
	metrics FollowerIngesterMetrics,
	workerCount int,
	logger *zap.Logger,
) (*FollowerIngesterService, error) {
	if metrics == nil {
		return nil, errors.New("follower ingester metrics is required")
	}
	if local == nil || source == nil || syncer == nil {
		return nil, errors.New("local heights, node source and syncer are required")
	}
	if workerCount < 1 {
		workerCount = defaultFollowerWorkerCount
	}

	return &FollowerIngesterService{
		logger:            logger,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		heightFetcher: &followerHeightFetcher{
			local:  local,
			source: source,
			limit:  followerHeightLimit,
		},
		blockProcessor: &followerBlockProcessor{
			workerCount: workerCount,
			syncer:      syncer,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
	}, nil
}

// Run follows the chain until the context is canceled.
func (s *FollowerIngesterService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *FollowerIngesterService) run(ctx context.Context) error {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchMissing(err, started)
	if err != nil {
		s.logger.Error("fetch follower heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("at chain tip; sleeping", zap.Duration("sleep", s.longSleepDuration))
		return s.sleep(ctx, s.longSleepDuration)
	}

	s.logger.Info("syncing heights",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]))
	started = time.Now()
	if err = s.blockProcessor.Process(ctx, heights); err != nil {
		s.metrics.ObserveProcessBatch(err, len(heights), started)
		return err
	}
	s.metrics.ObserveProcessBatch(nil, len(heights), started)

	if uint64(len(heights)) >= followerHeightLimit {
		return nil
	}
	return s.sleep(ctx, s.sleepDuration)
}
