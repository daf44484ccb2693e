package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/MimeLyc/bilingual-sub-muxer/internal/config"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/file"
	"github.com/google/uuid"
)

// Job is one input video and the artifacts derived from it. Every path is a
// pure function of the input's base name, the working directory and the
// output directory.
type Job struct {
	ID    string
	Input string
	Name  string

	// Intermediate MKV container; equals Input when no conversion is needed.
	IntermediatePath string

	SourceSubPath   string
	TargetSubPath   string
	CombinedSubPath string

	OutputPath string
}

// NewJob derives all artifact paths for one input file.
func NewJob(cfg *config.Config, input string) Job {
	name := file.BaseName(input)
	workingDir := cfg.WorkingDir

	targetCode := cfg.TargetLanguage.String()

	return Job{
		ID:               uuid.NewString(),
		Input:            input,
		Name:             name,
		IntermediatePath: file.ReplaceExt(input, "mkv"),
		SourceSubPath:    filepath.Join(workingDir, name+".srt"),
		TargetSubPath:    filepath.Join(workingDir, fmt.Sprintf("%s_%s.srt", name, targetCode)),
		CombinedSubPath:  filepath.Join(workingDir, name+"_combined.srt"),
		OutputPath:       filepath.Join(cfg.OutputDir(), name+".mkv"),
	}
}

// NeedsConversion reports whether the input container differs from MKV.
func (j Job) NeedsConversion() bool {
	return filepath.Ext(j.Input) != ".mkv"
}
