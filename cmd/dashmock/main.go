package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"pkg.jsn.cam/dashmock/internal/archive"
	"pkg.jsn.cam/dashmock/internal/config"
	"pkg.jsn.cam/dashmock/internal/logger"
	"pkg.jsn.cam/dashmock/internal/metrics"
	"pkg.jsn.cam/dashmock/internal/pipeline"
	"pkg.jsn.cam/dashmock/internal/sink"
	"pkg.jsn.cam/dashmock/pkg/dataset"
)

func main() {
	envFile := os.Getenv("DASHMOCK_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg.RegisterFlags(flag.CommandLine)
	list := flag.Bool("list", false, "List datasets and exit")
	flag.Parse()

	if *list {
		printDatasets(os.Stdout)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Environment: cfg.Environment})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("dashmock failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	out, err := newSink(ctx, cfg)
	if err != nil {
		return err
	}

	end, err := cfg.EndMonth(time.Now())
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Seed:        cfg.Seed,
		Months:      cfg.Months,
		EndMonth:    end,
		Only:        cfg.Only,
		Sink:        out,
		MetricsFile: cfg.MetricsFile,
		Logger:      log,
	}
	if cfg.Progress && cfg.Schedule == "" {
		opts.Progress = os.Stderr
	}
	if cfg.MetricsFile != "" {
		opts.Metrics = metrics.NewRecorder()
	}
	if cfg.ArchivePath != "" {
		arc, err := archive.Open(cfg.ArchivePath)
		if err != nil {
			return err
		}
		defer arc.Close()
		opts.Archive = arc
	}

	runner, err := pipeline.NewRunner(opts)
	if err != nil {
		return err
	}

	if cfg.Schedule != "" {
		return pipeline.Schedule(ctx, cfg.Schedule, runner, func(s pipeline.Summary) {
			_ = pipeline.PrintSummary(os.Stdout, s)
		})
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}
	return pipeline.PrintSummary(os.Stdout, summary)
}

func newSink(ctx context.Context, cfg config.Config) (sink.Sink, error) {
	driver, err := sink.ParseDriver(cfg.Sink)
	if err != nil {
		return nil, err
	}
	switch driver {
	case sink.DriverS3:
		return sink.NewS3(ctx, sink.S3Config{
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
	case sink.DriverMemory:
		return sink.NewMemory(), nil
	default:
		return sink.NewFS(cfg.OutputDir), nil
	}
}

func printDatasets(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, g := range dataset.Registry {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Name(), g.Path(), g.Description())
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\n", pipeline.LookupName, dataset.SuppliersLookupPath, "Static supplier id to name table")
	_ = tw.Flush()
}
