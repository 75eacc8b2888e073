// Package config resolves run settings from defaults, an optional .env file,
// DASHMOCK_* environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cast"

	"pkg.jsn.cam/dashmock/internal/sink"
	"pkg.jsn.cam/dashmock/pkg/dataset"
)

var ErrInvalidConfig = errors.New("invalid config")

// S3 holds the S3 sink settings.
type S3 struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	PathStyle bool
}

// Config holds every run setting of the command.
type Config struct {
	OutputDir string
	Seed      uint64
	Months    int
	AsOf      string // YYYY-MM, empty means the current month
	Only      []string

	Sink string
	S3   S3

	ArchivePath string
	MetricsFile string
	Schedule    string
	Progress    bool

	LogLevel    string
	Environment string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		OutputDir:   "data",
		Seed:        dataset.DefaultSeed,
		Months:      dataset.DefaultMonths,
		Sink:        string(sink.DriverFilesystem),
		Progress:    true,
		LogLevel:    "info",
		Environment: "development",
	}
}

// Load reads envFile (a missing file is not an error) and applies DASHMOCK_*
// variables on top of the defaults. Variables already set in the process
// environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var errs []error
	str := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	conv := func(key string, apply func(string) error) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			if err := apply(v); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
			}
		}
	}

	str(&cfg.OutputDir, "DASHMOCK_OUTPUT_DIR")
	conv("DASHMOCK_SEED", func(v string) (err error) { cfg.Seed, err = cast.ToUint64E(v); return })
	conv("DASHMOCK_MONTHS", func(v string) (err error) { cfg.Months, err = cast.ToIntE(v); return })
	str(&cfg.AsOf, "DASHMOCK_AS_OF")
	conv("DASHMOCK_ONLY", func(v string) error { cfg.Only = splitList(v); return nil })
	str(&cfg.Sink, "DASHMOCK_SINK")
	str(&cfg.S3.Bucket, "DASHMOCK_S3_BUCKET")
	str(&cfg.S3.Prefix, "DASHMOCK_S3_PREFIX")
	str(&cfg.S3.Region, "DASHMOCK_S3_REGION")
	str(&cfg.S3.Endpoint, "DASHMOCK_S3_ENDPOINT")
	conv("DASHMOCK_S3_PATH_STYLE", func(v string) (err error) { cfg.S3.PathStyle, err = cast.ToBoolE(v); return })
	str(&cfg.ArchivePath, "DASHMOCK_ARCHIVE")
	str(&cfg.MetricsFile, "DASHMOCK_METRICS_FILE")
	str(&cfg.Schedule, "DASHMOCK_SCHEDULE")
	conv("DASHMOCK_PROGRESS", func(v string) (err error) { cfg.Progress, err = cast.ToBoolE(v); return })
	str(&cfg.LogLevel, "DASHMOCK_LOG_LEVEL")
	str(&cfg.Environment, "DASHMOCK_ENV")

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return cfg, nil
}

// RegisterFlags binds flags to cfg using its current values as defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.OutputDir, "out", c.OutputDir, "Output root directory (fs sink)")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed; equal seeds and months give identical output")
	flags.IntVar(&c.Months, "months", c.Months, "Number of months to generate, ending at -as-of")
	flags.StringVar(&c.AsOf, "as-of", c.AsOf, "Last month to generate (YYYY-MM), default current UTC month")
	flags.Func("only", "Comma-separated datasets to write (default all)", func(v string) error {
		c.Only = splitList(v)
		return nil
	})
	flags.StringVar(&c.Sink, "sink", c.Sink, "Output sink: fs, s3 or memory")
	flags.StringVar(&c.S3.Bucket, "s3-bucket", c.S3.Bucket, "S3 bucket (s3 sink)")
	flags.StringVar(&c.S3.Prefix, "s3-prefix", c.S3.Prefix, "Key prefix inside the bucket")
	flags.StringVar(&c.S3.Region, "s3-region", c.S3.Region, "S3 region (default us-east-1)")
	flags.StringVar(&c.S3.Endpoint, "s3-endpoint", c.S3.Endpoint, "Custom S3 endpoint, e.g. MinIO")
	flags.BoolVar(&c.S3.PathStyle, "s3-path-style", c.S3.PathStyle, "Use path-style S3 addressing")
	flags.StringVar(&c.ArchivePath, "archive", c.ArchivePath, "bbolt file to archive each run into (optional)")
	flags.StringVar(&c.MetricsFile, "metrics-file", c.MetricsFile, "Prometheus textfile to write after each run (optional)")
	flags.StringVar(&c.Schedule, "schedule", c.Schedule, "Cron spec to regenerate on; empty runs once")
	flags.BoolVar(&c.Progress, "progress", c.Progress, "Show a progress bar while writing")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	flags.StringVar(&c.Environment, "env", c.Environment, "development or production (log format)")
}

// Validate checks every setting that would otherwise fail mid-run.
func (c Config) Validate() error {
	var errs []error

	if c.Months <= 0 {
		errs = append(errs, fmt.Errorf("months must be positive, got %d", c.Months))
	}
	if c.AsOf != "" {
		if _, err := dataset.ParseMonth(c.AsOf); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range c.Only {
		if _, err := dataset.Get(name); err != nil {
			errs = append(errs, err)
		}
	}
	driver, err := sink.ParseDriver(c.Sink)
	if err != nil {
		errs = append(errs, err)
	}
	if driver == sink.DriverFilesystem && strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output directory required for fs sink"))
	}
	if driver == sink.DriverS3 && c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3 bucket required for s3 sink"))
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("schedule %q: %w", c.Schedule, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// EndMonth returns the instant whose month ends the generated range.
func (c Config) EndMonth(now time.Time) (time.Time, error) {
	if c.AsOf == "" {
		return now.UTC(), nil
	}
	return dataset.ParseMonth(c.AsOf)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
