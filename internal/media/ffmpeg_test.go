package media

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and plays back a scripted result.
type fakeRunner struct {
	name     string
	args     []string
	output   []byte
	exitCode int
	err      error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, int, error) {
	f.name = name
	f.args = args
	return f.output, f.exitCode, f.err
}

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestConvertArgs(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, filepath.Join(dir, "movie.mp4"))
	output := filepath.Join(dir, "movie.mkv")

	runner := &fakeRunner{}
	ff := NewFfmpeg(runner)

	require.NoError(t, ff.Convert(context.Background(), input, output))

	assert.Equal(t, "ffmpeg", runner.name)
	assert.Equal(t, []string{
		"-i", input,
		"-c", "copy",
		"-threads", strconv.Itoa(runtime.NumCPU()),
		"-y",
		output,
	}, runner.args)
}

func TestConvertMissingInput(t *testing.T) {
	runner := &fakeRunner{}
	ff := NewFfmpeg(runner)

	err := ff.Convert(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"), "out.mkv")
	require.Error(t, err)

	var missing *MissingInputError
	assert.ErrorAs(t, err, &missing)
	assert.Empty(t, runner.name, "ffmpeg must not be invoked for a missing input")
}

func TestConvertToolFailure(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, filepath.Join(dir, "movie.mp4"))

	runner := &fakeRunner{exitCode: 1, output: []byte("movie.mp4: Invalid data found")}
	ff := NewFfmpeg(runner)

	err := ff.Convert(context.Background(), input, filepath.Join(dir, "movie.mkv"))
	require.Error(t, err)

	var failed *ToolFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.ExitCode)
	assert.Contains(t, failed.Output, "Invalid data")
}

func TestConvertToolNotAvailable(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, filepath.Join(dir, "movie.mp4"))

	runner := &fakeRunner{err: &ToolNotAvailableError{Tool: "ffmpeg"}}
	ff := NewFfmpeg(runner)

	err := ff.Convert(context.Background(), input, filepath.Join(dir, "movie.mkv"))
	var notAvailable *ToolNotAvailableError
	assert.ErrorAs(t, err, &notAvailable)
}

func TestProbe(t *testing.T) {
	runner := &fakeRunner{output: []byte(`{
		"streams": [
			{"index": 0, "codec_type": "video", "codec_name": "h264"},
			{"index": 1, "codec_type": "audio", "codec_name": "aac", "tags": {"language": "ger"}},
			{"index": 2, "codec_type": "audio", "codec_name": "ac3"},
			{"index": 3, "codec_type": "subtitle", "codec_name": "subrip"}
		]
	}`)}
	ff := NewFfmpeg(runner)

	streams, err := ff.Probe(context.Background(), "movie.mkv")
	require.NoError(t, err)
	require.Len(t, streams, 4)
	assert.Equal(t, "ffprobe", runner.name)
	assert.Equal(t, "ger", streams[1].Tags.Language)

	audio := AudioStreams(streams)
	require.Len(t, audio, 2)
	assert.Equal(t, 1, audio[0].Index)
	assert.Equal(t, 2, audio[1].Index)
}
