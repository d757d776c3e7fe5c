// Package bootstrap wires the ledger store, node client, dispatcher and event sinks
// shared by the vfx binaries.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/metrics"
	"github.com/goodnatureofminers/vfxledger/internal/notify"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/dispatcher"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/node"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/clickhouse"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/repository/ledgerdb"
	"github.com/goodnatureofminers/vfxledger/internal/vfx/service/ingester"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options are the settings every binary shares. Binaries embed them in a group with
// their own env-namespace.
type Options struct {
	Network       model.Network `long:"network" env:"NETWORK" description:"chain network (mainnet or testnet)" default:"mainnet"`
	LedgerDriver  string        `long:"ledger-driver" env:"LEDGER_DRIVER" description:"ledger database driver" choice:"postgres" choice:"sqlite" default:"postgres"`
	LedgerDSN     string        `long:"ledger-dsn" env:"LEDGER_DSN" description:"ledger database DSN" default:""`
	NodeURL       string        `long:"node-url" env:"NODE_URL" description:"chain node API base URL" default:"http://127.0.0.1:7292"`
	ContractURL   string        `long:"contract-url" env:"CONTRACT_URL" description:"smart contract API base URL, the node URL when empty" default:""`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	NodeRPS       int           `long:"node-rps" env:"NODE_RPS" description:"node requests per second, 0 disables pacing" default:"0"`
	AMQPURL       string        `long:"amqp-url" env:"AMQP_URL" description:"AMQP broker URL, events are dropped when empty" default:""`
	AMQPExchange  string        `long:"amqp-exchange" env:"AMQP_EXCHANGE" description:"AMQP topic exchange" default:"vfxledger"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"ClickHouse DSN, the archive is disabled when empty" default:""`
	MetricsAddr   string        `long:"metrics-addr" env:"METRICS_ADDR" description:"address for metrics server, disabled when empty" default:":2112"`
}

// Events is the sink for everything the ledger announces to downstream consumers.
type Events interface {
	dispatcher.Shop
	dispatcher.Notifier
	dispatcher.IconUploader
	ingester.BlockNotifier
}

// Stack holds the wired components. Close releases them in reverse order.
type Stack struct {
	Network     model.Network
	Store       *ledgerdb.Store
	Node        *node.ObservedClient
	Dispatcher  *dispatcher.Dispatcher
	Events      Events
	ArchiveRepo *clickhouse.Repository
	Archive     *clickhouse.Archive

	logger  *zap.Logger
	closers []func() error
}

// Build wires the stack. The archive flush loops, if any, are bound to ctx.
func Build(ctx context.Context, opts Options, logger *zap.Logger) (_ *Stack, err error) {
	if !opts.Network.Valid() {
		return nil, fmt.Errorf("unsupported network %q", opts.Network)
	}
	if opts.LedgerDSN == "" {
		return nil, errors.New("ledger dsn is required")
	}

	s := &Stack{Network: opts.Network, logger: logger}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	s.Store, err = ledgerdb.Open(opts.LedgerDriver, opts.LedgerDSN, metrics.NewLedgerRepository(opts.LedgerDriver), logger)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	s.closers = append(s.closers, s.Store.Close)

	client, err := node.NewClient(node.Config{
		BaseURL:           opts.NodeURL,
		ContractBaseURL:   opts.ContractURL,
		Timeout:           opts.HTTPTimeout,
		RequestsPerSecond: opts.NodeRPS,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("init node client: %w", err)
	}
	s.Node = node.NewObservedClient(client, metrics.NewNodeClient(opts.Network))

	if opts.AMQPURL == "" {
		logger.Warn("amqp url not set, ledger events are dropped")
		s.Events = notify.Noop{}
	} else {
		publisher, err := notify.Dial(opts.AMQPURL, opts.AMQPExchange, opts.Network, metrics.NewNotifier(), logger)
		if err != nil {
			return nil, fmt.Errorf("dial amqp: %w", err)
		}
		s.closers = append(s.closers, publisher.Close)
		s.Events = publisher
	}

	s.Dispatcher, err = dispatcher.New(opts.Network, s.Node, s.Events, s.Events, s.Events, metrics.NewSyncDriver(opts.Network), logger)
	if err != nil {
		return nil, fmt.Errorf("init dispatcher: %w", err)
	}

	if opts.ClickhouseDSN != "" {
		s.ArchiveRepo, err = clickhouse.NewRepository(opts.ClickhouseDSN, opts.Network, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init clickhouse archive: %w", err)
		}
		s.closers = append(s.closers, s.ArchiveRepo.Close)

		s.Archive = clickhouse.NewArchive(s.ArchiveRepo, clickhouse.ArchiveOptions{}, logger)
		s.Archive.Start(ctx)
		s.closers = append(s.closers, func() error {
			s.Archive.Stop()
			return nil
		})
	}

	return s, nil
}

// SyncDriver builds a sync driver over the stack. The caller closes it.
func (s *Stack) SyncDriver() (*ingester.SyncDriver, error) {
	var archive ingester.Archive
	if s.Archive != nil {
		archive = s.Archive
	}
	return ingester.NewSyncDriver(s.Store, s.Node, s.Dispatcher, s.Events, archive, metrics.NewSyncDriver(s.Network), s.Network, s.logger)
}

// Close releases the components in reverse order of construction.
func (s *Stack) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// StartMetricsServer serves /metrics on addr until ctx is done. An empty addr disables it.
func StartMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
