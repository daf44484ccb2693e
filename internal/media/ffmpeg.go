package media

import (
	"context"
	"encoding/json"
	"runtime"
	"strconv"
	"strings"

	"github.com/MimeLyc/bilingual-sub-muxer/pkg/file"
	"github.com/MimeLyc/bilingual-sub-muxer/pkg/log"
)

type ffmpeg struct {
	ffmpegCmd  string
	ffprobeCmd string
	runner     Runner
}

// NewFfmpeg creates a converter/prober backed by the ffmpeg and ffprobe
// binaries found on the PATH.
func NewFfmpeg(runner Runner) ffmpeg {
	return ffmpeg{
		ffmpegCmd:  "ffmpeg",
		ffprobeCmd: "ffprobe",
		runner:     runner,
	}
}

// Convert repackages input into output with stream copy, no re-encoding.
// The external process uses all available cores for its own work.
func (ff ffmpeg) Convert(ctx context.Context, input, output string) error {
	if !file.Exists(input) {
		return &MissingInputError{Path: input}
	}

	args := []string{
		"-i", input,
		"-c", "copy",
		"-threads", strconv.Itoa(runtime.NumCPU()),
		"-y",
		output,
	}

	out, exitCode, err := ff.runner.Run(ctx, ff.ffmpegCmd, args...)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &ToolFailedError{Tool: ff.ffmpegCmd, ExitCode: exitCode, Output: tail(out)}
	}

	return nil
}

// Stream describes one stream of a media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	Tags      struct {
		Language string `json:"language"`
		Title    string `json:"title"`
	} `json:"tags"`
}

// Probe lists the streams of a media file via ffprobe.
func (ff ffmpeg) Probe(ctx context.Context, path string) ([]Stream, error) {
	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		path,
	}

	output, exitCode, err := ff.runner.Run(ctx, ff.ffprobeCmd, args...)
	if err != nil {
		log.Error("Failed to run ffprobe: %v", err)
		return nil, err
	}
	if exitCode != 0 {
		return nil, &ToolFailedError{Tool: ff.ffprobeCmd, ExitCode: exitCode, Output: tail(output)}
	}

	var probeResult struct {
		Streams []Stream `json:"streams"`
	}
	if err := json.Unmarshal(output, &probeResult); err != nil {
		log.Error("Failed to parse ffprobe output: %v", err)
		return nil, err
	}

	return probeResult.Streams, nil
}

// AudioStreams filters a probe result down to its audio streams.
func AudioStreams(streams []Stream) []Stream {
	audio := make([]Stream, 0)
	for _, s := range streams {
		if s.CodecType == "audio" {
			audio = append(audio, s)
		}
	}
	return audio
}

// tail keeps the last few lines of tool output for error messages.
func tail(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, "\n")
}
