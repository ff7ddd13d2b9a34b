package cmd

import (
	"github.com/AntonVopilov/fastai-genomic/internal/genomic"
	"github.com/spf13/cobra"
)

var (
	filterHelp = `keep only records whose attribute matches this regular expression.
The attribute checked is chosen with --attr.`

	attrHelp = `record attribute the --filter regexp runs against:
"description", "id" or "name".`
)

// bunchCmd is for assembling a numericalized dataset from a folder of splits
var bunchCmd = &cobra.Command{
	Use:                        "bunch",
	Short:                      "Assemble a numericalized dataset from train/valid folders",
	Run:                        genomic.BunchCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Build a batched dataset from the train/, valid/ and (optional) test/
subfolders of a path.

Every record is read, tokenized into k-mers and numericalized against a
vocabulary built from the training split (or one passed with --vocab).
The result is gob-encoded with a YAML manifest written alongside.`,
}

// set flags
func init() {
	bunchCmd.Flags().StringP("in", "i", "", "input folder with train/valid(/test) subfolders")
	bunchCmd.Flags().StringP("out", "o", "bunch.gob", "output bunch file")
	bunchCmd.Flags().StringP("vocab", "c", "", "vocabulary JSON to reuse instead of building one")
	bunchCmd.Flags().StringP("filter", "r", "", filterHelp)
	bunchCmd.Flags().StringP("attr", "a", "description", attrHelp)
	bunchCmd.Flags().IntP("ngram", "n", 8, "k-mer window width")
	bunchCmd.Flags().IntP("skip", "k", 0, "bases skipped between windows")
	bunchCmd.Flags().IntP("batch-size", "b", 64, "sequences per batch")

	RootCmd.AddCommand(bunchCmd)
}
