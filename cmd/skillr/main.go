// Command skillr rates pairwise matches from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	service "github.com/okian/skillr/internal/app"
	"github.com/okian/skillr/internal/config"
	"github.com/okian/skillr/pkg/logger"
	"github.com/okian/skillr/pkg/metrics"
)

// runContext is bound into every command's Run method.
type runContext struct {
	ctx     context.Context
	svc     *service.Service
	metrics *metrics.Manager
	out     io.Writer
}

type cli struct {
	Metrics bool `help:"Print the collected metrics after the command."`

	Rate   rateCmd   `cmd:"" help:"Update two ratings after one match."`
	Probs  probsCmd  `cmd:"" help:"Show win, draw and loss probabilities for a pairing."`
	Replay replayCmd `cmd:"" help:"Rate a sequence of matches between the same two competitors."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "skillr:", err)
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging and metrics and executes one command.
// Logs go to errOut so out carries only the command's output.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	if err := logger.InitWithWriter(errOut); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Named("skillr")
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	var c cli
	parser, err := kong.New(&c,
		kong.Name("skillr"),
		kong.Description("Bayesian skill ratings for pairwise matches."),
		kong.UsageOnError(),
		kong.Writers(out, errOut),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m := metrics.NewManager(metrics.WithMetricsEnabled(cfg.MetricsEnabled))
	svc := service.New(
		service.WithLogger(log),
		service.WithModel(cfg.Model()),
		service.WithValidation(cfg.Validate),
		service.WithMetrics(m),
	)
	log.Debug(ctx, "configuration loaded",
		logger.Bool("validate", cfg.Validate),
		logger.Bool("metrics_enabled", cfg.MetricsEnabled),
		logger.Any("model", cfg.Model()),
	)

	rc := &runContext{ctx: ctx, svc: svc, metrics: m, out: out}
	if err := kctx.Run(rc); err != nil {
		return err
	}
	if c.Metrics {
		return renderMetrics(rc)
	}
	return nil
}
