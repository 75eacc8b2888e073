// Package pipeline runs one generation pass: build the month range, draw every
// dataset from one seeded stream, then write, archive and report.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"pkg.jsn.cam/dashmock/internal/archive"
	"pkg.jsn.cam/dashmock/internal/metrics"
	"pkg.jsn.cam/dashmock/internal/sink"
	"pkg.jsn.cam/dashmock/pkg/dataset"
)

// LookupName is the summary name of the supplier lookup document.
const LookupName = "suppliers_lookup"

// Options configures a Runner. Sink is required; everything else is optional.
type Options struct {
	Seed   uint64
	Months int
	// EndMonth's calendar month is the last generated month; zero means Now()
	EndMonth time.Time
	// Only restricts which datasets are written. All datasets are still
	// generated so each one is independent of the selection.
	Only []string

	Sink        sink.Sink
	Archive     *archive.Archive
	Metrics     *metrics.Recorder
	MetricsFile string

	// Progress receives a progress bar while writing; nil disables it
	Progress io.Writer
	Logger   *zap.Logger
	Now      func() time.Time
}

// DatasetSummary describes one written file.
type DatasetSummary struct {
	Name     string
	Path     string
	Location string
	Records  int
	Bytes    int64
}

// Summary describes a completed run.
type Summary struct {
	RunID    string
	Seed     uint64
	Months   []string
	Datasets []DatasetSummary
	Lookup   DatasetSummary
	Total    int
	Duration time.Duration
}

// Runner performs generation passes with fixed Options. A Runner is reused
// across scheduled runs but never runs concurrently with itself.
type Runner struct {
	opts Options
	log  *zap.Logger
}

// NewRunner validates opts and fills in defaults for Months, Now and Logger.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Sink == nil {
		return nil, errors.New("pipeline: sink required")
	}
	if opts.Months == 0 {
		opts.Months = dataset.DefaultMonths
	}
	for _, name := range opts.Only {
		if _, err := dataset.Get(name); err != nil {
			return nil, err
		}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{opts: opts, log: opts.Logger.Named("pipeline")}, nil
}

func (r *Runner) selected(name string) bool {
	return len(r.opts.Only) == 0 || slices.Contains(r.opts.Only, name)
}

// Run generates and writes every dataset. A write error aborts the run and
// leaves files already written in place.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := r.opts.Now()

	end := r.opts.EndMonth
	if end.IsZero() {
		end = start
	}
	months, err := dataset.LastMonths(end, r.opts.Months)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{RunID: uuid.NewString(), Seed: r.opts.Seed, Months: months}
	log := r.log.With(zap.String("run_id", summary.RunID))
	log.Info("generating datasets",
		zap.Uint64("seed", r.opts.Seed),
		zap.String("from", months[0]),
		zap.String("to", months[len(months)-1]))

	datasets := dataset.GenerateAll(dataset.NewSampler(r.opts.Seed), months)
	for _, ds := range datasets {
		log.Debug("generated", zap.String("dataset", ds.Name), zap.Int("records", len(ds.Records)))
	}

	var toWrite []dataset.Dataset
	for _, ds := range datasets {
		if r.selected(ds.Name) {
			toWrite = append(toWrite, ds)
		}
	}

	bar := r.newBar(len(toWrite) + 1)
	payloads := make(map[string][]byte, len(toWrite))

	for _, ds := range toWrite {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		bar.Describe(ds.Name)

		buf, err := sink.JSONL(ds.Records)
		if err != nil {
			return summary, fmt.Errorf("encode %s: %w", ds.Name, err)
		}
		payload := buf.Bytes()

		info, err := r.opts.Sink.Put(ctx, ds.Path, bytes.NewReader(payload), sink.PutOptions{
			ContentType: sink.ContentTypeJSONL,
			Metadata:    r.metadata(summary.RunID, ds.Name),
		})
		if err != nil {
			return summary, fmt.Errorf("write %s: %w", ds.Name, err)
		}
		payloads[ds.Name] = payload

		summary.Datasets = append(summary.Datasets, DatasetSummary{
			Name: ds.Name, Path: ds.Path, Location: info.Location, Records: len(ds.Records), Bytes: info.Size,
		})
		summary.Total += len(ds.Records)
		if r.opts.Metrics != nil {
			r.opts.Metrics.ObserveDataset(ds.Name, len(ds.Records), info.Size)
		}
		_ = bar.Add(1)
	}

	bar.Describe(LookupName)
	lookup, err := sink.JSON(dataset.Suppliers)
	if err != nil {
		return summary, fmt.Errorf("encode %s: %w", LookupName, err)
	}
	info, err := r.opts.Sink.Put(ctx, dataset.SuppliersLookupPath, lookup, sink.PutOptions{
		ContentType: sink.ContentTypeJSON,
		Metadata:    r.metadata(summary.RunID, LookupName),
	})
	if err != nil {
		return summary, fmt.Errorf("write %s: %w", LookupName, err)
	}
	summary.Lookup = DatasetSummary{
		Name: LookupName, Path: dataset.SuppliersLookupPath, Location: info.Location, Records: len(dataset.Suppliers), Bytes: info.Size,
	}
	_ = bar.Finish()

	finished := r.opts.Now()
	summary.Duration = finished.Sub(start)

	if r.opts.Archive != nil {
		if err := r.opts.Archive.Save(r.manifest(summary, finished), payloads); err != nil {
			return summary, fmt.Errorf("archive run: %w", err)
		}
		log.Debug("archived run")
	}

	if r.opts.Metrics != nil {
		r.opts.Metrics.ObserveRun(finished, summary.Duration)
		if r.opts.MetricsFile != "" {
			if err := r.opts.Metrics.WriteTextfile(r.opts.MetricsFile); err != nil {
				return summary, err
			}
		}
	}

	log.Info("run complete",
		zap.Int("datasets", len(summary.Datasets)),
		zap.Int("records", summary.Total),
		zap.Duration("took", summary.Duration))
	return summary, nil
}

// metadata tags a written object with the run that produced it.
func (r *Runner) metadata(runID, name string) map[string]string {
	return map[string]string{
		"run-id":  runID,
		"seed":    strconv.FormatUint(r.opts.Seed, 10),
		"dataset": name,
	}
}

func (r *Runner) manifest(s Summary, at time.Time) archive.Manifest {
	m := archive.Manifest{
		RunID:     s.RunID,
		Seed:      s.Seed,
		Months:    s.Months,
		Counts:    make(map[string]int, len(s.Datasets)),
		Paths:     make(map[string]string, len(s.Datasets)),
		CreatedAt: at.UTC(),
	}
	for _, ds := range s.Datasets {
		m.Counts[ds.Name] = ds.Records
		m.Paths[ds.Name] = ds.Path
	}
	return m
}

func (r *Runner) newBar(steps int) *progressbar.ProgressBar {
	if r.opts.Progress == nil {
		return progressbar.DefaultSilent(int64(steps))
	}
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(r.opts.Progress),
		progressbar.OptionSetDescription("writing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}
