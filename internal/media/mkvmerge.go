package media

import (
	"context"
	"fmt"

	"github.com/MimeLyc/bilingual-sub-muxer/pkg/file"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/log"
)

// mkvmerge exit codes: 0 success, 1 completed with warnings, 2 error.
const mkvmergeWarningExit = 1

type mkvmerge struct {
	cmd    string
	runner Runner
}

// NewMkvmerge creates a muxer backed by the mkvmerge binary on the PATH.
func NewMkvmerge(runner Runner) mkvmerge {
	return mkvmerge{
		cmd:    "mkvmerge",
		runner: runner,
	}
}

// Mux writes output from the input container and the given subtitle files.
// Every audio stream of the input gets audioLabel as its display name; each
// subtitle track carries its own name and language tag.
func (m mkvmerge) Mux(
	ctx context.Context,
	input string,
	output string,
	audioLabel string,
	audioStreams []Stream,
	subtitles []SubtitleTrack,
) error {
	if !file.Exists(input) {
		return &MissingInputError{Path: input}
	}

	out, exitCode, err := m.runner.Run(ctx, m.cmd, m.muxArgs(input, output, audioLabel, audioStreams, subtitles)...)
	if err != nil {
		return err
	}

	switch {
	case exitCode == 0:
		return nil
	case exitCode == mkvmergeWarningExit:
		log.Warn("mkvmerge finished with warnings: %s", tail(out))
		return nil
	default:
		return &ToolFailedError{Tool: m.cmd, ExitCode: exitCode, Output: tail(out)}
	}
}

func (m mkvmerge) muxArgs(
	input string,
	output string,
	audioLabel string,
	audioStreams []Stream,
	subtitles []SubtitleTrack,
) []string {
	args := []string{"-o", output}

	for _, stream := range audioStreams {
		args = append(args, "--track-name", fmt.Sprintf("%d:%s", stream.Index, audioLabel))
	}
	args = append(args, input)

	// Each subtitle file contributes a single track, addressed as track 0.
	for _, sub := range subtitles {
		if sub.Language != "" {
			args = append(args, "--language", "0:"+sub.Language)
		}
		args = append(args, "--track-name", "0:"+sub.Name, sub.Path)
	}

	return args
}
