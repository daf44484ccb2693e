package media

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMuxArgs(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, filepath.Join(dir, "movie.mkv"))
	output := filepath.Join(dir, "output", "movie.mkv")

	runner := &fakeRunner{}
	m := NewMkvmerge(runner)

	audio := []Stream{{Index: 1, CodecType: "audio"}}
	subs := []SubtitleTrack{
		{Path: "movie.srt", Name: "Deutsch", Language: "ger"},
		{Path: "movie_en.srt", Name: "Englisch", Language: "eng"},
		{Path: "movie_combined.srt", Name: "Deutsch + Englisch"},
	}

	require.NoError(t, m.Mux(context.Background(), input, output, "Deutsch", audio, subs))

	assert.Equal(t, "mkvmerge", runner.name)
	assert.Equal(t, []string{
		"-o", output,
		"--track-name", "1:Deutsch",
		input,
		"--language", "0:ger", "--track-name", "0:Deutsch", "movie.srt",
		"--language", "0:eng", "--track-name", "0:Englisch", "movie_en.srt",
		"--track-name", "0:Deutsch + Englisch", "movie_combined.srt",
	}, runner.args)
}

func TestMuxWarningsAreNotFatal(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, filepath.Join(dir, "movie.mkv"))

	runner := &fakeRunner{exitCode: 1, output: []byte("Warning: unknown tag")}
	m := NewMkvmerge(runner)

	assert.NoError(t, m.Mux(context.Background(), input, filepath.Join(dir, "out.mkv"), "Deutsch", nil, nil))
}

func TestMuxFailure(t *testing.T) {
	dir := t.TempDir()
	input := touch(t, filepath.Join(dir, "movie.mkv"))

	runner := &fakeRunner{exitCode: 2, output: []byte("Error: could not open")}
	m := NewMkvmerge(runner)

	err := m.Mux(context.Background(), input, filepath.Join(dir, "out.mkv"), "Deutsch", nil, nil)
	var failed *ToolFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 2, failed.ExitCode)
}

func TestMuxMissingInput(t *testing.T) {
	runner := &fakeRunner{}
	m := NewMkvmerge(runner)

	err := m.Mux(context.Background(), filepath.Join(t.TempDir(), "missing.mkv"), "out.mkv", "Deutsch", nil, nil)
	var missing *MissingInputError
	assert.ErrorAs(t, err, &missing)
}
