package cli

import (
	"context"
	"fmt"

	"github.com/MimeLyc/bilingual-sub-muxer/internal/config"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/persistence"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/pipeline"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/service"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/translate"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/log"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, cfg *config.Config) error {
	level := log.LevelInfo
	if cfg.Debug {
		level = log.LevelDebug
	}
	log.InitLogger(level)

	// One shared client for the whole run; it holds no per-job state.
	client, err := translate.NewClient(&translate.Config{
		Endpoint:   cfg.Azure.Endpoint,
		APIKey:     cfg.Azure.APIKey,
		Region:     cfg.Azure.Region,
		SourceLang: cfg.SourceLanguage.String(),
		TargetLang: []string{cfg.TargetLanguage.String()},
		Timeout:    cfg.Azure.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator client: %w", err)
	}

	opts := []pipeline.Option{}
	if cfg.StateDB != "" {
		store, err := persistence.NewSQLiteStore(cfg.StateDB)
		if err != nil {
			return fmt.Errorf("failed to open state database: %w", err)
		}
		defer store.Close()
		opts = append(opts, pipeline.WithStore(store))
	}

	p := pipeline.New(cfg, client, opts...)
	svc := service.NewMuxService(p, cfg.CronExpr, cron.New())

	ctx := cmd.Context()
	if cfg.CronExpr != "" {
		if err := svc.Schedule(ctx); err != nil && err != context.Canceled {
			return fmt.Errorf("scheduler stopped: %w", err)
		}
		return nil
	}

	return svc.RunOnce(ctx)
}
