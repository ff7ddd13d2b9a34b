package genomic

import "fmt"

// errNoStage flags a pipeline stage running before its input stage.
func errNoStage(stage, needs string) error {
	return fmt.Errorf("failed to %s: the %s stage hasn't run", stage, needs)
}

// Processor is one stage of the dataset pipeline. Stages run in order
// over an ItemList, each filling in the artifacts the next one needs:
// file reading fills Seqs, tokenization fills Tokens, numericalization
// fills IDs and embedding fills Vectors.
type Processor interface {
	// Name of the stage, for progress logs
	Name() string

	// Process runs the stage over the whole list
	Process(ds *ItemList) error
}

// FileProcessor resolves each item to its sequence. The cached reader
// parses every referenced file only once however many of its records
// are listed.
type FileProcessor struct {
	Reader *Reader
}

// NewFileProcessor makes a file processor with a fresh record cache.
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{Reader: NewReader()}
}

// Name implements Processor.
func (p *FileProcessor) Name() string { return "read" }

// Process looks up the sequence of every item in the list.
func (p *FileProcessor) Process(ds *ItemList) error {
	seqs := make([]string, len(ds.Items))
	for i, item := range ds.Items {
		seq, err := p.Reader.Lookup(item.File, item.ID)
		if err != nil {
			return err
		}
		seqs[i] = seq
	}

	ds.Seqs = seqs
	return nil
}

// TokenizeProcessor tokenizes the sequences of an ItemList in chunks
// across a worker fan-out.
type TokenizeProcessor struct {
	Tokenizer *Tokenizer
	Chunksize int
	Workers   int
}

// Name implements Processor.
func (p *TokenizeProcessor) Name() string { return "tokenize" }

// Process tokenizes every sequence in the list.
func (p *TokenizeProcessor) Process(ds *ItemList) error {
	if ds.Seqs == nil {
		return errNoStage("tokenize", "read")
	}

	ds.Tokens = p.Tokenizer.TokenizeAll(ds.Seqs, p.Chunksize, p.Workers)
	ds.Ngram, ds.Skip = p.Tokenizer.Ngram, p.Tokenizer.Skip
	return nil
}

// NumericalizeProcessor converts tokens to vocabulary ids. When no
// vocabulary is passed one is created from the list itself, so the
// training split builds the vocabulary the other splits share.
type NumericalizeProcessor struct {
	Vocab    *Vocab
	MaxVocab int
	MinFreq  int
}

// Name implements Processor.
func (p *NumericalizeProcessor) Name() string { return "numericalize" }

// Process numericalizes every tokenized record in the list.
func (p *NumericalizeProcessor) Process(ds *ItemList) error {
	if ds.Tokens == nil {
		return errNoStage("numericalize", "tokenize")
	}

	if p.Vocab == nil {
		p.Vocab = NewVocab(ds.Tokens, p.MaxVocab, p.MinFreq)
		logger.Infow("created vocabulary", "tokens", p.Vocab.Size(), "maxVocab", p.MaxVocab, "minFreq", p.MinFreq)
	}
	ds.Vocab = p.Vocab

	ds.IDs = make([][]int64, len(ds.Tokens))
	for i, toks := range ds.Tokens {
		ds.IDs[i] = p.Vocab.Numericalize(toks)
	}
	return nil
}

// EmbedProcessor swaps each record's tokens for pretrained embedding
// vectors, optionally aggregated to a single row per record.
type EmbedProcessor struct {
	Model *MultiKModel
	Agg   Agg
}

// Name implements Processor.
func (p *EmbedProcessor) Name() string { return "embed" }

// Process embeds every tokenized record in the list.
func (p *EmbedProcessor) Process(ds *ItemList) error {
	if ds.Tokens == nil {
		return errNoStage("embed", "tokenize")
	}

	ds.Vectors = make([][][]float64, len(ds.Tokens))
	for i, toks := range ds.Tokens {
		ds.Vectors[i] = p.Model.Embed(toks, p.Agg)
	}
	return nil
}
