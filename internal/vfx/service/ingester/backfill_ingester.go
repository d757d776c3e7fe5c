package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/vfxledger/pkg/safe"
	"go.uber.org/zap"
)

// BackfillOptions selects the range of a backfill pass. A nil Start means the height
// after the local maximum, or zero when repairing gaps. A nil End means the remote tip.
type BackfillOptions struct {
	Start     *uint64
	End       *uint64
	Missing   bool
	ChunkSize uint64
}

// BackfillIngesterService syncs a bounded height range once.
type BackfillIngesterService struct {
	logger  *zap.Logger
	metrics BackfillIngesterMetrics
	local   LocalHeights
	source  NodeSource
	syncer  RangeSyncer
	opts    BackfillOptions
}

func NewBackfillIngesterService(
	local LocalHeights,
	source NodeSource,
	syncer RangeSyncer,
	metrics BackfillIngesterMetrics,
	opts BackfillOptions,
	logger *zap.Logger,
) (*BackfillIngesterService, error) {
	if metrics == nil {
		return nil, errors.New("backfill ingester metrics is required")
	}
	if local == nil || source == nil || syncer == nil {
		return nil, errors.New("local heights, node source and syncer are required")
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = backfillChunkSize
	}

	return &BackfillIngesterService{
		logger:  logger,
		metrics: metrics,
		local:   local,
		source:  source,
		syncer:  syncer,
		opts:    opts,
	}, nil
}

// Run performs one pass over the configured range.
func (s *BackfillIngesterService) Run(ctx context.Context) error {
	started := time.Now()
	start, end, err := s.bounds(ctx)
	s.metrics.ObserveFetchMissing(err, started)
	if err != nil {
		return fmt.Errorf("resolve backfill range: %w", err)
	}
	if start > end {
		s.logger.Info("nothing to backfill", zap.Uint64("start", start), zap.Uint64("end", end))
		return nil
	}

	s.logger.Info("backfill started",
		zap.Uint64("start", start),
		zap.Uint64("end", end),
		zap.Bool("missing_only", s.opts.Missing))

	for lo := start; ; {
		if err := ctx.Err(); err != nil {
			return err
		}

		hi := end
		if end-lo >= s.opts.ChunkSize {
			hi = lo + s.opts.ChunkSize - 1
		}

		started = time.Now()
		synced, err := s.chunk(ctx, lo, hi)
		s.metrics.ObserveProcessBatch(err, synced, started)
		if err != nil {
			s.logger.Error("backfill chunk failed", zap.Uint64("from", lo), zap.Uint64("to", hi), zap.Error(err))
			return err
		}
		s.logger.Info("backfill chunk done",
			zap.Uint64("from", lo),
			zap.Uint64("to", hi),
			zap.Int("synced", synced),
			zap.Duration("elapsed", time.Since(started)))

		if hi == end {
			return nil
		}
		lo = hi + 1
	}
}

func (s *BackfillIngesterService) chunk(ctx context.Context, lo, hi uint64) (int, error) {
	if s.opts.Missing {
		return s.syncer.SyncMissing(ctx, lo, hi)
	}
	if err := s.syncer.Backfill(ctx, lo, hi); err != nil {
		return 0, err
	}
	return safe.Int(hi - lo + 1)
}

func (s *BackfillIngesterService) bounds(ctx context.Context) (uint64, uint64, error) {
	var start, end uint64

	switch {
	case s.opts.Start != nil:
		start = *s.opts.Start
	case !s.opts.Missing:
		local, ok, err := s.local.MaxBlockHeight(ctx)
		if err != nil {
			return 0, 0, err
		}
		if ok {
			start = local + 1
		}
	}

	if s.opts.End != nil {
		end = *s.opts.End
	} else {
		remote, err := s.source.LatestHeight(ctx)
		if err != nil {
			return 0, 0, err
		}
		end = remote
	}
	return start, end, nil
}
