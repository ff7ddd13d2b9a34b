package cmd

import (
	"github.com/AntonVopilov/fastai-genomic/internal/genomic"
	"github.com/spf13/cobra"
)

// embedCmd is for assembling a dataset of pretrained k-mer embedding vectors
var embedCmd = &cobra.Command{
	Use:                        "embed",
	Short:                      "Assemble a dataset of pretrained k-mer embeddings",
	Run:                        genomic.EmbedCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Build a batched dataset whose records are pretrained embedding vectors.

Each record is tokenized into k-mers, ambiguous k-mers are dropped, and
the rest are looked up in a dna2vec-style word2vec model covering several
k-mer lengths. Vectors are summed or averaged per record (--agg), or kept
as a full matrix with --agg none.`,
}

// set flags
func init() {
	embedCmd.Flags().StringP("in", "i", "", "input folder with train/valid(/test) subfolders")
	embedCmd.Flags().StringP("out", "o", "bunch.gob", "output bunch file")
	embedCmd.Flags().StringP("model", "m", "", "word2vec-format multi-k embedding model")
	embedCmd.Flags().StringP("agg", "g", "sum", "per-record aggregation: sum, mean or none")
	embedCmd.Flags().StringP("filter", "r", "", filterHelp)
	embedCmd.Flags().StringP("attr", "a", "description", attrHelp)
	embedCmd.Flags().IntP("ngram", "n", 8, "k-mer window width")
	embedCmd.Flags().IntP("skip", "k", 0, "bases skipped between windows")

	RootCmd.AddCommand(embedCmd)
}
