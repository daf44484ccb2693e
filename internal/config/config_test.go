package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func baseArgs() []string {
	return []string{
		"--working-directory", "/videos",
		"--video-format", "mp4",
		"--azure-translator-endpoint", "https://xyz.cognitiveservices.azure.com",
		"--azure-api-key", "secret",
	}
}

func TestNewFromFlags(t *testing.T) {
	cfg, err := New(baseArgs())
	require.NoError(t, err)

	assert.Equal(t, "/videos", cfg.WorkingDir)
	assert.Equal(t, "mp4", cfg.VideoFormat)
	assert.Equal(t, "https://xyz.cognitiveservices.azure.com", cfg.Azure.Endpoint)
	assert.Equal(t, "secret", cfg.Azure.APIKey)
	assert.Equal(t, language.German, cfg.SourceLanguage)
	assert.Equal(t, language.English, cfg.TargetLanguage)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "/videos/output", cfg.OutputDir())
}

func TestNewLanguageOverrides(t *testing.T) {
	args := append(baseArgs(), "--source-language", "fr", "--target-language", "es", "--debug")
	cfg, err := New(args)
	require.NoError(t, err)

	assert.Equal(t, language.French, cfg.SourceLanguage)
	assert.Equal(t, language.Spanish, cfg.TargetLanguage)
	assert.True(t, cfg.Debug)
}

func TestNewEnvFallback(t *testing.T) {
	t.Setenv("WORKING_DIRECTORY", "/env-videos")
	t.Setenv("VIDEO_FORMAT", "mkv")
	t.Setenv("AZURE_TRANSLATOR_ENDPOINT", "https://env.example.com")
	t.Setenv("AZURE_API_KEY", "env-key")

	cfg, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "/env-videos", cfg.WorkingDir)
	assert.Equal(t, "mkv", cfg.VideoFormat)
}

func TestNewMissingRequired(t *testing.T) {
	_, err := New([]string{"--working-directory", "/videos"})
	require.Error(t, err)
}

func TestNewInvalidLanguage(t *testing.T) {
	_, err := New(append(baseArgs(), "--source-language", "not-a-language"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid source language")
}
