package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// Config holds all application configuration
// Values come from CLI flags with environment-variable fallbacks
//
// Environment Variables:
// - WORKING_DIRECTORY: Directory containing the video files
// - VIDEO_FORMAT: Extension of the input videos, e.g. mp4 or mkv
// - AZURE_TRANSLATOR_ENDPOINT: Base URL of the Azure Translator resource
// - AZURE_API_KEY: Key of the Azure Translator resource
// - AZURE_REGION: Region of the Azure Translator resource (optional)
// - SOURCE_LANGUAGE: Language of the input subtitles (default: de)
// - TARGET_LANGUAGE: Language to translate into (default: en)
// - TRANSLATOR_TIMEOUT: Translation request timeout in seconds (default: 0, no timeout)
// - CRON_EXPR: When set, re-run the pipeline on this cron schedule
// - STATE_DB: When set, record per-file outcomes in this SQLite database
type Config struct {
	WorkingDir  string
	VideoFormat string

	Azure AzureConfig

	SourceLanguage language.Tag
	TargetLanguage language.Tag

	CronExpr string
	StateDB  string
	Debug    bool
}

// AzureConfig holds the configuration for the Azure Translator service
type AzureConfig struct {
	Endpoint string
	APIKey   string
	Region   string
	Timeout  int
}

// RegisterFlags binds the configuration flags onto fs, with environment
// variables providing the defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("working-directory", getEnvString("WORKING_DIRECTORY", ""), "Directory containing the video files")
	fs.String("video-format", getEnvString("VIDEO_FORMAT", ""), "Format of the video files. eg. mp4, mkv")
	fs.String("azure-translator-endpoint", getEnvString("AZURE_TRANSLATOR_ENDPOINT", ""), "Endpoint for the Azure Translator API eg. https://xyz.cognitiveservices.azure.com")
	fs.String("azure-api-key", getEnvString("AZURE_API_KEY", ""), "Key for the Azure Translator API")
	fs.String("azure-region", getEnvString("AZURE_REGION", ""), "Region of the Azure Translator resource")
	fs.String("source-language", getEnvString("SOURCE_LANGUAGE", "de"), "Language of the input subtitles")
	fs.String("target-language", getEnvString("TARGET_LANGUAGE", "en"), "Language to translate the subtitles into")
	fs.String("cron", getEnvString("CRON_EXPR", ""), "Re-run the pipeline on this cron schedule instead of once")
	fs.String("state-db", getEnvString("STATE_DB", ""), "Record per-file outcomes in this SQLite database")
	fs.Bool("debug", false, "Set the log level to debug")
}

// FromFlags reads the parsed flags into a validated Config.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	workingDir, _ := fs.GetString("working-directory")
	videoFormat, _ := fs.GetString("video-format")
	endpoint, _ := fs.GetString("azure-translator-endpoint")
	apiKey, _ := fs.GetString("azure-api-key")
	region, _ := fs.GetString("azure-region")
	sourceLang, _ := fs.GetString("source-language")
	targetLang, _ := fs.GetString("target-language")
	cronExpr, _ := fs.GetString("cron")
	stateDB, _ := fs.GetString("state-db")
	debug, _ := fs.GetBool("debug")

	source, err := language.Parse(sourceLang)
	if err != nil {
		return nil, fmt.Errorf("invalid source language %q: %w", sourceLang, err)
	}
	target, err := language.Parse(targetLang)
	if err != nil {
		return nil, fmt.Errorf("invalid target language %q: %w", targetLang, err)
	}

	config := &Config{
		WorkingDir:  workingDir,
		VideoFormat: videoFormat,
		Azure: AzureConfig{
			Endpoint: endpoint,
			APIKey:   apiKey,
			Region:   region,
			Timeout:  getEnvInt("TRANSLATOR_TIMEOUT", 0),
		},
		SourceLanguage: source,
		TargetLanguage: target,
		CronExpr:       cronExpr,
		StateDB:        stateDB,
		Debug:          debug,
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// New parses the given CLI arguments into a Config, falling back to
// environment variables for unset flags.
func New(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("bilingual-sub-muxer", pflag.ContinueOnError)
	RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return FromFlags(fs)
}

// OutputDir is where the final muxed containers are written.
func (c *Config) OutputDir() string {
	return filepath.Join(c.WorkingDir, "output")
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.WorkingDir == "" {
		return fmt.Errorf("working directory is required")
	}
	if c.VideoFormat == "" {
		return fmt.Errorf("video format is required")
	}
	if c.Azure.Endpoint == "" {
		return fmt.Errorf("azure translator endpoint is required")
	}
	if c.Azure.APIKey == "" {
		return fmt.Errorf("azure API key is required")
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
