package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/MimeLyc/bilingual-sub-muxer/internal/config"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/media"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/persistence"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/subtitle"
	"github.com/MimeLyc/bilingual-sub-muxer/internal/translate"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/file"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/log"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Pipeline drives one run over the working directory: discover inputs,
// then per file convert, normalize, translate, combine and mux. Jobs run
// strictly one after another.
type Pipeline struct {
	cfg        *config.Config
	converter  media.Converter
	prober     media.Prober
	muxer      media.Muxer
	translator translate.Translator
	reader     subtitle.Reader
	writer     subtitle.Writer
	store      persistence.Store

	sourceLabel   string
	targetLabel   string
	combinedLabel string
}

// Option overrides a pipeline collaborator.
type Option func(*Pipeline)

func WithConverter(c media.Converter) Option {
	return func(p *Pipeline) { p.converter = c }
}

func WithProber(pr media.Prober) Option {
	return func(p *Pipeline) { p.prober = pr }
}

func WithMuxer(m media.Muxer) Option {
	return func(p *Pipeline) { p.muxer = m }
}

func WithStore(s persistence.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// New creates a pipeline over the shared translator handle. The translator
// holds no per-job state and is reused across every job of the run.
func New(cfg *config.Config, translator translate.Translator, opts ...Option) *Pipeline {
	// Track display names are rendered in the source language, the way a
	// native speaker would pick tracks in a player ("Deutsch", "Englisch").
	namer := display.Tags(cfg.SourceLanguage)
	sourceLabel := namer.Name(cfg.SourceLanguage)
	targetLabel := namer.Name(cfg.TargetLanguage)

	p := &Pipeline{
		cfg:           cfg,
		converter:     media.NewConverter(),
		prober:        media.NewProber(),
		muxer:         media.NewMuxer(),
		translator:    translator,
		reader:        subtitle.NewReader(),
		writer:        subtitle.NewWriter(),
		sourceLabel:   sourceLabel,
		targetLabel:   targetLabel,
		combinedLabel: sourceLabel + " + " + targetLabel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Discover lists the input videos of the working directory in sorted order.
func (p *Pipeline) Discover() ([]string, error) {
	return file.FindByExt(p.cfg.WorkingDir, p.cfg.VideoFormat)
}

// Run processes every discovered input sequentially. Per-file failures are
// logged and recorded; they never abort the run.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := os.MkdirAll(p.cfg.OutputDir(), 0o755); err != nil {
		return WrapError(err, ErrFileWrite, "failed to create output directory")
	}

	inputs, err := p.Discover()
	if err != nil {
		return WrapError(err, ErrFileRead, "failed to list input videos")
	}
	log.Info("Found %d video file(s) in %s", len(inputs), p.cfg.WorkingDir)

	runID := uuid.NewString()
	var done, skipped, failed int

	for _, input := range inputs {
		job := NewJob(p.cfg, input)
		startedAt := time.Now()

		if file.Exists(job.OutputPath) {
			log.Debug("Skipping %s: output already exists", job.Name)
			skipped++
			p.recordOutcome(ctx, job, runID, persistence.StatusSkipped, nil, startedAt)
			continue
		}

		if err := p.Process(ctx, job); err != nil {
			failed++
			log.Error("Job %s failed for %s: %v", job.ID, job.Name, err)
			p.recordOutcome(ctx, job, runID, persistence.StatusFailed, err, startedAt)
			continue
		}

		done++
		p.recordOutcome(ctx, job, runID, persistence.StatusDone, nil, startedAt)
	}

	log.Info("Run complete: %d done, %d skipped, %d failed", done, skipped, failed)
	return nil
}

func (p *Pipeline) recordOutcome(
	ctx context.Context,
	job Job,
	runID string,
	status persistence.Status,
	jobErr error,
	startedAt time.Time,
) {
	if p.store == nil {
		return
	}

	outcome := persistence.Outcome{
		JobID:      job.ID,
		RunID:      runID,
		Input:      job.Input,
		Status:     status,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if jobErr != nil {
		outcome.Error = jobErr.Error()
	}
	if err := p.store.RecordOutcome(ctx, outcome); err != nil {
		log.Warn("Failed to record outcome for %s: %v", job.Name, err)
	}
}

// Process runs the whole per-file pipeline for one job. The final output
// existing beforehand is the idempotence marker: such jobs are skipped
// without touching any intermediate file.
func (p *Pipeline) Process(ctx context.Context, job Job) error {
	if file.Exists(job.OutputPath) {
		log.Debug("Skipping %s: output already exists", job.Name)
		return nil
	}

	log.Info("- Started operations on file %s", job.Name)

	if job.NeedsConversion() {
		if err := p.converter.Convert(ctx, job.Input, job.IntermediatePath); err != nil {
			// Reported, not fatal: later steps fail on their own terms
			// when the intermediate is missing.
			log.Error("Conversion failed for %s: %v", job.Name, classifyToolError(err, ErrConversion, "conversion failed"))
		} else {
			log.Info("Conversion successful: %s", job.IntermediatePath)
		}
	}

	streams, err := p.prober.Probe(ctx, job.IntermediatePath)
	if err != nil {
		return classifyToolError(err, ErrParse, "failed to read container streams").WithContext("path", job.IntermediatePath)
	}
	audioStreams := media.AudioStreams(streams)

	subs, err := p.buildSubtitleTracks(ctx, job)
	if err != nil {
		return err
	}

	if err := p.muxer.Mux(ctx, job.IntermediatePath, job.OutputPath, p.sourceLabel, audioStreams, subs); err != nil {
		return classifyToolError(err, ErrMux, "failed to mux output").WithContext("output", job.OutputPath)
	}

	log.Info("Finished operations on file %s", job.Name)
	return nil
}

// buildSubtitleTracks normalizes the source captions in place, translates
// them as one batch and writes the target and combined SRT files. Returns
// the three tracks to attach, in source, target, combined order.
func (p *Pipeline) buildSubtitleTracks(ctx context.Context, job Job) ([]media.SubtitleTrack, error) {
	source, err := p.reader.Read(job.SourceSubPath)
	if err != nil {
		return nil, WrapError(err, ErrFileRead, "failed to read source subtitles").WithContext("path", job.SourceSubPath)
	}

	if detected := source.Language; detected != "und" && detected != baseCode(p.cfg.SourceLanguage) {
		log.Warn("Subtitle %s looks like %q, configured source language is %q",
			job.SourceSubPath, detected, baseCode(p.cfg.SourceLanguage))
	}

	subtitle.Normalize(source)
	if err := p.writer.Write(job.SourceSubPath, source); err != nil {
		return nil, WrapError(err, ErrFileWrite, "failed to write normalized subtitles").WithContext("path", job.SourceSubPath)
	}

	translated, err := p.translator.Translate(ctx, source.Texts())
	if err != nil {
		return nil, WrapError(err, ErrTranslation, "translation failed").WithContext("lines", len(source.Lines))
	}

	target, err := source.WithTexts(translated)
	if err != nil {
		return nil, WrapError(err, ErrTranslation, "translated track cannot be aligned")
	}
	if err := p.writer.Write(job.TargetSubPath, target); err != nil {
		return nil, WrapError(err, ErrFileWrite, "failed to write translated subtitles").WithContext("path", job.TargetSubPath)
	}

	combined, err := subtitle.Combine(source, target)
	if err != nil {
		return nil, WrapError(err, ErrTranslation, "failed to combine tracks")
	}
	if err := p.writer.Write(job.CombinedSubPath, combined); err != nil {
		return nil, WrapError(err, ErrFileWrite, "failed to write combined subtitles").WithContext("path", job.CombinedSubPath)
	}

	subs := []media.SubtitleTrack{
		{Path: job.SourceSubPath, Name: p.sourceLabel, Language: iso3Code(p.cfg.SourceLanguage)},
		{Path: job.TargetSubPath, Name: p.targetLabel, Language: iso3Code(p.cfg.TargetLanguage)},
		{Path: job.CombinedSubPath, Name: p.combinedLabel},
	}
	return subs, nil
}

func baseCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

func iso3Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.ISO3()
}
