package cmd

import (
	"github.com/AntonVopilov/fastai-genomic/internal/genomic"
	"github.com/spf13/cobra"
)

// tokenizeCmd is for splitting a sequence file into k-mer tokens
var tokenizeCmd = &cobra.Command{
	Use:                        "tokenize",
	Short:                      "Tokenize a FASTA/FASTQ file into k-mer windows",
	Run:                        genomic.TokenizeCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Split each record of a FASTA/FASTQ file into k-mer tokens and print them.

Windows are "ngram" bases wide and start every ngram+skip bases. An ngram
of 1 emits per-base tokens, keeping every skip-th base when skip is set.`,
	Aliases: []string{"tok"},
}

// set flags
func init() {
	tokenizeCmd.Flags().StringP("in", "i", "", "input FASTA/FASTQ file")
	tokenizeCmd.Flags().IntP("ngram", "n", 8, "k-mer window width")
	tokenizeCmd.Flags().IntP("skip", "k", 0, "bases skipped between windows")

	RootCmd.AddCommand(tokenizeCmd)
}
