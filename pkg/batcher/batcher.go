// Package batcher groups queued items into batches and hands them to a flush func.
// A batch goes out when it reaches Options.Size or when Options.Interval elapses.
// Flush failures are logged and the failed batch is dropped.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// FlushFunc writes one batch. The slice is reused after the call returns.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Options control batch size, flush cadence and the flush rate.
type Options struct {
	Size     int
	Interval time.Duration
	RPS      int
}

// Batcher queues items and flushes them from a single background loop.
type Batcher[T any] struct {
	flush  FlushFunc[T]
	opts   Options
	queue  chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}
}

// New returns a Batcher. Call Start before adding items.
func New[T any](logger *zap.Logger, flush FlushFunc[T], opts Options) *Batcher[T] {
	return &Batcher[T]{
		flush:   flush,
		opts:    opts,
		queue:   make(chan T, opts.Size*2),
		rl:      ratelimit.New(opts.RPS),
		logger:  logger,
		stopped: make(chan struct{}),
	}
}

// Start runs the flush loop until ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.loop(ctx)
}

// Stop ends the loop after flushing everything already queued. Safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stopped) })
	b.wg.Wait()
}

// Add queues item. It returns context.Canceled once the batcher is stopped.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stopped:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stopped:
		return context.Canceled
	case b.queue <- item:
		return nil
	}
}

type buffer[T any] struct {
	items []T
	size  int
}

func (buf *buffer[T]) push(item T) (full bool) {
	buf.items = append(buf.items, item)
	return len(buf.items) >= buf.size
}

func (b *Batcher[T]) loop(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.Interval)
	defer ticker.Stop()

	buf := &buffer[T]{items: make([]T, 0, b.opts.Size), size: b.opts.Size}

	for {
		select {
		case <-ctx.Done():
			b.finish(ctx, buf)
			return
		case <-b.stopped:
			b.finish(ctx, buf)
			return
		case item := <-b.queue:
			if buf.push(item) {
				b.write(ctx, buf)
			}
		case <-ticker.C:
			b.write(ctx, buf)
		}
	}
}

// finish moves whatever is still queued into batches and writes them.
func (b *Batcher[T]) finish(ctx context.Context, buf *buffer[T]) {
	for {
		select {
		case item := <-b.queue:
			if buf.push(item) {
				b.write(ctx, buf)
			}
		default:
			b.write(ctx, buf)
			return
		}
	}
}

func (b *Batcher[T]) write(ctx context.Context, buf *buffer[T]) {
	if len(buf.items) == 0 {
		return
	}

	b.rl.Take()
	if err := b.flush(ctx, buf.items); err != nil {
		b.logger.Error("batch dropped", zap.Int("size", len(buf.items)), zap.Error(err))
	} else {
		b.logger.Debug("batch written", zap.Int("size", len(buf.items)))
	}
	buf.items = buf.items[:0]
}
