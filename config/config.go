// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// TokenizeConfig is settings for k-mer tokenization.
type TokenizeConfig struct {
	// the width of each k-mer token
	Ngram int `mapstructure:"ngram"`

	// the number of bases skipped between the end of one
	// k-mer window and the start of the next
	Skip int `mapstructure:"skip"`

	// the number of sequences tokenized per worker batch
	Chunksize int `mapstructure:"chunksize"`

	// the number of tokenization workers
	Workers int `mapstructure:"workers"`
}

// VocabConfig is settings for vocabulary creation.
type VocabConfig struct {
	// the maximum number of tokens kept in the vocabulary
	MaxVocab int `mapstructure:"max-vocab"`

	// the minimum number of occurrences for a token to be kept
	MinFreq int `mapstructure:"min-freq"`
}

// BunchConfig is settings for assembling batched datasets.
type BunchConfig struct {
	// the number of sequences per batch
	BatchSize int `mapstructure:"batch-size"`

	// whether to prepend a beginning-of-sequence token to each record
	IncludeBOS bool `mapstructure:"include-bos"`

	// whether to append an end-of-sequence token to each record
	IncludeEOS bool `mapstructure:"include-eos"`
}

// EmbedConfig is settings for pretrained k-mer embeddings.
type EmbedConfig struct {
	// path to a word2vec-format multi-k embedding model
	ModelPath string `mapstructure:"model"`

	// how per-token vectors are aggregated per sequence: sum, mean or none
	Agg string `mapstructure:"agg"`
}

// DownloadConfig is settings for fetching remote sequence files.
type DownloadConfig struct {
	// the maximum number of files downloaded from a URL list
	MaxFiles int `mapstructure:"max-files"`

	// the number of concurrent downloads
	Workers int `mapstructure:"workers"`

	// per-request timeout in seconds
	TimeoutSeconds int `mapstructure:"timeout"`
}

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line.
type Config struct {
	// Tokenize settings
	Tokenize TokenizeConfig

	// Vocab settings
	Vocab VocabConfig

	// Bunch settings
	Bunch BunchConfig

	// Embed settings
	Embed EmbedConfig

	// Download settings
	Download DownloadConfig

	// Verbose logs pipeline progress to stderr
	Verbose bool
}

// New returns a new Config populated by Viper settings: package defaults,
// overridden by an optional settings file (--settings), overridden by
// bound command line flags.
func New() *Config {
	setDefaults()

	if file := viper.GetString("settings"); file != "" {
		if _, err := os.Stat(file); err == nil {
			viper.SetConfigFile(file)
			if err := viper.ReadInConfig(); err != nil {
				log.Fatalf("failed to read settings file %s: %v", file, err)
			}
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		log.Fatalf("failed to decode settings: %v", err)
	}

	return c
}

// setDefaults mirrors the defaults of the original genomic dataloaders.
func setDefaults() {
	viper.SetDefault("tokenize.ngram", 8)
	viper.SetDefault("tokenize.skip", 0)
	viper.SetDefault("tokenize.chunksize", 10000)
	viper.SetDefault("tokenize.workers", 1)
	viper.SetDefault("vocab.max-vocab", 70000)
	viper.SetDefault("vocab.min-freq", 2)
	viper.SetDefault("bunch.batch-size", 64)
	viper.SetDefault("bunch.include-bos", true)
	viper.SetDefault("bunch.include-eos", false)
	viper.SetDefault("embed.agg", "sum")
	viper.SetDefault("download.max-files", 1000)
	viper.SetDefault("download.workers", 8)
	viper.SetDefault("download.timeout", 4)
}
