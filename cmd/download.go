package cmd

import (
	"github.com/AntonVopilov/fastai-genomic/internal/genomic"
	"github.com/spf13/cobra"
)

// downloadCmd is for fetching remote sequence files from a URL list
var downloadCmd = &cobra.Command{
	Use:                        "download",
	Short:                      "Download the sequence files named in a URL list",
	Run:                        genomic.DownloadCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Fetch sequence files listed (one URL per line) in a text file.

Files are downloaded concurrently and written to the output folder as
00000000.fa, 00000001.fa, ... with the extension taken from each URL.
URLs that fail are logged and skipped.`,
	Aliases: []string{"fetch"},
}

// set flags
func init() {
	downloadCmd.Flags().StringP("in", "i", "", "text file with one URL per line")
	downloadCmd.Flags().StringP("out", "o", ".", "output folder")

	RootCmd.AddCommand(downloadCmd)
}
