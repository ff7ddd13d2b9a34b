package cmd

import (
	"github.com/AntonVopilov/fastai-genomic/internal/genomic"
	"github.com/spf13/cobra"
)

// vocabCmd is for building a k-mer vocabulary from a folder of sequence files
var vocabCmd = &cobra.Command{
	Use:                        "vocab",
	Short:                      "Build a k-mer vocabulary from a folder of sequence files",
	Run:                        genomic.VocabCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Tokenize every record under a folder and keep the most frequent k-mers.

Tokens are ranked by frequency; at most max-vocab tokens with at least
min-freq occurrences are kept, after the reserved pad/unk/xxbos/xxeos
tokens. The vocabulary is written as JSON for later bunch builds.`,
}

// set flags
func init() {
	vocabCmd.Flags().StringP("in", "i", "", "input folder of FASTA/FASTQ files")
	vocabCmd.Flags().StringP("out", "o", "vocab.json", "output vocabulary file")
	vocabCmd.Flags().IntP("max-vocab", "m", 70000, "maximum number of tokens kept")
	vocabCmd.Flags().IntP("min-freq", "f", 2, "minimum occurrences for a token to be kept")
	vocabCmd.Flags().IntP("ngram", "n", 8, "k-mer window width")
	vocabCmd.Flags().IntP("skip", "k", 0, "bases skipped between windows")

	RootCmd.AddCommand(vocabCmd)
}
