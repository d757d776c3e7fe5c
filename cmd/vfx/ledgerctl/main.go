// Package main is the operator CLI for ledger queries and maintenance jobs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/goodnatureofminers/vfxledger/cmd/vfx/internal/bootstrap"
	"github.com/jessevdk/go-flags"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
)

type options struct {
	Common bootstrap.Options `group:"Ledger options" env-namespace:"VFX_LEDGERCTL"`
}

// runner is implemented by every subcommand. The returned value is printed as JSON.
type runner interface {
	run(ctx context.Context, stack *bootstrap.Stack, logger *zap.Logger) (any, error)
}

// command gives subcommands the Execute method go-flags requires. The parser's
// CommandHandler runs them instead.
type command struct{}

func (command) Execute([]string) error {
	return errors.New("command handler not installed")
}

type app struct {
	opts   options
	logger *zap.Logger
	out    io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	a := &app{logger: logger, out: os.Stdout}

	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	if err := addCommands(parser); err != nil {
		logger.Fatal("failed to register commands", zap.Error(err))
	}
	parser.CommandHandler = func(cmd flags.Commander, _ []string) error {
		r, ok := cmd.(runner)
		if !ok {
			return fmt.Errorf("unsupported command %T", cmd)
		}
		return a.execute(ctx, r)
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, ferr.Message)
			return
		}
		logger.Fatal("ledgerctl failed", zap.Error(err))
	}
}

func (a *app) execute(ctx context.Context, r runner) error {
	logger := a.logger.With(zap.String("network", string(a.opts.Common.Network)))

	stack, err := bootstrap.Build(ctx, a.opts.Common, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stack.Close(); err != nil {
			logger.Error("failed to close components", zap.Error(err))
		}
	}()

	result, err := r.run(ctx, stack, logger)
	if err != nil {
		return err
	}
	return a.print(result)
}

func (a *app) print(result any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
