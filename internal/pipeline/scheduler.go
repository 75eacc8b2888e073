package pipeline

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}

// Schedule runs the runner once immediately and then on every tick of spec
// (standard five-field cron or a descriptor such as "@hourly") until ctx is
// cancelled. Ticks that arrive while a run is in progress are skipped. A
// failed run is logged and does not stop the schedule.
func Schedule(ctx context.Context, spec string, runner *Runner, onRun func(Summary)) error {
	log := runner.log.Named("scheduler")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: log.Sugar()})))

	job := func() {
		s, err := runner.Run(ctx)
		if err != nil {
			log.Error("scheduled run failed", zap.Error(err))
			return
		}
		if onRun != nil {
			onRun(s)
		}
	}

	id, err := c.AddFunc(spec, job)
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	job()
	c.Start()
	log.Info("scheduler started", zap.String("spec", spec), zap.Time("next", c.Entry(id).Next))

	<-ctx.Done()
	// wait for an in-flight run to notice cancellation
	<-c.Stop().Done()
	log.Info("scheduler stopped")
	return nil
}
