package service

import (
	"context"
	"time"

	"github.com/MimeLyc/bilingual-sub-muxer/pkg/icron"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/log"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"
)

// Runner is what the service drives; satisfied by *pipeline.Pipeline.
type Runner interface {
	Run(ctx context.Context) error
}

type muxService struct {
	runner   Runner
	cronExpr string
	cron     *cron.Cron
}

// NewMuxService wraps a pipeline for one-shot or scheduled execution.
// cronExpr may be empty, in which case only RunOnce is usable.
func NewMuxService(runner Runner, cronExpr string, cron *cron.Cron) muxService {
	return muxService{
		runner:   runner,
		cronExpr: cronExpr,
		cron:     cron,
	}
}

var singleflightGroup singleflight.Group

// RunOnce executes one full pass over the working directory.
func (s muxService) RunOnce(ctx context.Context) error {
	return s.runner.Run(ctx)
}

// Schedule registers the pipeline on the cron schedule and starts it.
// Overlapping triggers collapse into the already-running pass. Blocks until
// ctx is done.
func (s muxService) Schedule(ctx context.Context) error {
	log.Info("Run MuxService on schedule %q", s.cronExpr)

	runFunc := func() {
		_, _, _ = singleflightGroup.Do("run", func() (any, error) {
			if err := s.runner.Run(ctx); err != nil {
				log.Error("Scheduled run failed: %v", err)
			}
			s.logNextTrigger()
			return nil, nil
		})
	}
	if _, err := s.cron.AddFunc(s.cronExpr, runFunc); err != nil {
		return err
	}

	s.logNextTrigger()
	s.cron.Start()
	defer s.cron.Stop()

	<-ctx.Done()
	return ctx.Err()
}

func (s muxService) logNextTrigger() {
	next, err := icron.NextTrigger(s.cronExpr, time.Now())
	if err != nil {
		return
	}
	log.Info("Next scheduled run at %s", next.Format(time.RFC3339))
}
