package cli

import (
	"testing"

	"github.com/MimeLyc/bilingual-sub-muxer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersFlags(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{
		"working-directory",
		"video-format",
		"azure-translator-endpoint",
		"azure-api-key",
		"azure-region",
		"source-language",
		"target-language",
		"cron",
		"state-db",
		"debug",
	} {
		assert.NotNil(t, root.Flags().Lookup(name), "flag %s missing", name)
	}
}

func TestRootCommandParsesIntoConfig(t *testing.T) {
	root := newRootCommand()
	require.NoError(t, root.ParseFlags([]string{
		"--working-directory", "/videos",
		"--video-format", "mp4",
		"--azure-translator-endpoint", "https://xyz.cognitiveservices.azure.com",
		"--azure-api-key", "secret",
		"--debug",
	}))

	cfg, err := config.FromFlags(root.Flags())
	require.NoError(t, err)
	assert.Equal(t, "/videos", cfg.WorkingDir)
	assert.Equal(t, "mp4", cfg.VideoFormat)
	assert.True(t, cfg.Debug)
}

func TestRootCommandRejectsPositionalArgs(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"extra"})

	err := root.Execute()
	require.Error(t, err)
}
