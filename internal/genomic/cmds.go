package genomic

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AntonVopilov/fastai-genomic/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// newConfig gathers settings for a command, overrides them with any
// flags the user actually set, and flips on verbose logging when asked.
func newConfig(cmd *cobra.Command) *config.Config {
	c := config.New()

	if cmd.Flags().Changed("ngram") {
		c.Tokenize.Ngram, _ = cmd.Flags().GetInt("ngram")
	}
	if cmd.Flags().Changed("skip") {
		c.Tokenize.Skip, _ = cmd.Flags().GetInt("skip")
	}
	if cmd.Flags().Changed("max-vocab") {
		c.Vocab.MaxVocab, _ = cmd.Flags().GetInt("max-vocab")
	}
	if cmd.Flags().Changed("min-freq") {
		c.Vocab.MinFreq, _ = cmd.Flags().GetInt("min-freq")
	}
	if cmd.Flags().Changed("batch-size") {
		c.Bunch.BatchSize, _ = cmd.Flags().GetInt("batch-size")
	}

	if c.Verbose {
		Verbose()
	}
	return c
}

// TokenizeCmd reads a sequence file and prints each record's k-mer
// tokens, one record per line.
func TokenizeCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno input file passed")
	}
	c := newConfig(cmd)

	records, err := ReadFile(in)
	if err != nil {
		stderr.Fatal(err)
	}

	tok := NewTokenizer(c.Tokenize.Ngram, c.Tokenize.Skip)
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "id\ttokens\t\n")
	for _, rec := range records {
		fmt.Fprintf(writer, "%s\t%s\t\n", rec.ID, strings.Join(tok.Tokenize(rec.Seq), " "))
	}
	writer.Flush()
}

// VocabCmd builds a vocabulary from the sequence files under a folder
// and saves it as JSON.
func VocabCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno input folder passed")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = "vocab.json"
	}
	c := newConfig(cmd)

	files, err := FindFiles(in, true, true)
	if err != nil {
		stderr.Fatal(err)
	}
	if len(files) == 0 {
		stderr.Fatalf("failed to find any sequence files under %s", in)
	}

	var seqs []string
	for _, file := range files {
		records, err := ReadFile(file)
		if err != nil {
			stderr.Fatal(err)
		}
		for _, rec := range records {
			seqs = append(seqs, rec.Seq)
		}
	}

	tok := NewTokenizer(c.Tokenize.Ngram, c.Tokenize.Skip)
	tokens := tok.TokenizeAll(seqs, c.Tokenize.Chunksize, c.Tokenize.Workers)

	vocab := NewVocab(tokens, c.Vocab.MaxVocab, c.Vocab.MinFreq)
	if err := vocab.Save(out); err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("wrote %d tokens to %s\n", vocab.Size(), out)
}

// BunchCmd assembles a numericalized DataBunch from a folder with
// train/valid(/test) subfolders and saves it.
func BunchCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno input folder passed")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = "bunch.gob"
	}
	regex, _ := cmd.Flags().GetString("filter")
	attr, _ := cmd.Flags().GetString("attr")
	vocabPath, _ := cmd.Flags().GetString("vocab")
	c := newConfig(cmd)

	var vocab *Vocab
	if vocabPath != "" {
		if vocab, err = LoadVocab(vocabPath); err != nil {
			stderr.Fatal(err)
		}
	}

	bunch, err := FromFolder(in, regex, attr, vocab, c)
	if err != nil {
		stderr.Fatal(err)
	}
	if err := bunch.Save(out); err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("wrote bunch with %d train / %d valid / %d test records to %s\n",
		len(bunch.Train.Items), len(bunch.Valid.Items), len(bunch.Test.Items), out)
}

// EmbedCmd assembles a DataBunch of pretrained embedding vectors from a
// folder with train/valid(/test) subfolders and saves it.
func EmbedCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno input folder passed")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = "bunch.gob"
	}
	regex, _ := cmd.Flags().GetString("filter")
	attr, _ := cmd.Flags().GetString("attr")
	c := newConfig(cmd)

	modelPath, _ := cmd.Flags().GetString("model")
	if modelPath == "" {
		modelPath = c.Embed.ModelPath
	}
	if modelPath == "" {
		cmd.Help()
		stderr.Fatal("\nno embedding model passed")
	}

	aggName, _ := cmd.Flags().GetString("agg")
	if aggName == "" {
		aggName = c.Embed.Agg
	}
	agg, err := ParseAgg(aggName)
	if err != nil {
		stderr.Fatal(err)
	}

	model, err := LoadMultiK(modelPath)
	if err != nil {
		stderr.Fatal(err)
	}

	bunch, err := FromFolderEmbedded(in, regex, attr, model, agg, c)
	if err != nil {
		stderr.Fatal(err)
	}
	if err := bunch.Save(out); err != nil {
		stderr.Fatal(err)
	}

	fmt.Printf("wrote embedded bunch with %d train / %d valid / %d test records to %s\n",
		len(bunch.Train.Items), len(bunch.Valid.Items), len(bunch.Test.Items), out)
}

// DownloadCmd fetches the sequence files named in a URL list file.
func DownloadCmd(cmd *cobra.Command, args []string) {
	in, err := cmd.Flags().GetString("in")
	if in == "" || err != nil {
		cmd.Help()
		stderr.Fatal("\nno URL list passed")
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = "."
	}
	c := newConfig(cmd)

	count, err := DownloadAll(in, out, c.Download)
	if err != nil {
		stderr.Fatal(err)
	}
	if count == 0 {
		stderr.Fatal("failed to download any sequence files")
	}

	fmt.Printf("downloaded %d sequence files to %s\n", count, out)
}
