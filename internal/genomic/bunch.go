package genomic

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AntonVopilov/fastai-genomic/config"
	"gopkg.in/yaml.v2"
)

// Item references one sequence record before processing.
type Item struct {
	File        string
	ID          string
	Name        string
	Description string
}

// ItemList is a split's records plus the artifacts the processor
// pipeline fills in over them.
type ItemList struct {
	// Path of the folder this list was built from
	Path string

	// Items references the records of every discovered file
	Items []*Item

	// Seqs holds one sequence per item, after the read stage
	Seqs []string

	// Tokens holds each record's k-mer tokens, after tokenization
	Tokens [][]string

	// IDs holds each record's vocabulary ids, after numericalization
	IDs [][]int64

	// Vectors holds each record's embedding rows (a single row when
	// aggregated), after embedding
	Vectors [][][]float64

	// Vocab used to numericalize this list
	Vocab *Vocab

	// Ngram and Skip record the tokenizer that produced Tokens
	Ngram int
	Skip  int
}

// NewItemList lists the records of every sequence file in a folder.
// A non-empty regex keeps only records whose attr ("id", "name" or
// "description") matches it. A missing folder yields an empty list so
// optional valid/test splits don't have to exist.
func NewItemList(dir, regex, attr string) (*ItemList, error) {
	list := &ItemList{Path: dir}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return list, nil
	}

	files, err := FindFiles(dir, true, true)
	if err != nil {
		return nil, err
	}

	var filter *regexp.Regexp
	if regex != "" {
		if filter, err = regexp.Compile(regex); err != nil {
			return nil, fmt.Errorf("failed to compile record filter %q: %v", regex, err)
		}
	}

	for _, file := range files {
		records, err := ReadFile(file)
		if err != nil {
			return nil, err
		}

		for _, rec := range records {
			if filter != nil && !filter.MatchString(rec.Attr(attr)) {
				continue
			}
			list.Items = append(list.Items, &Item{
				File:        rec.File,
				ID:          rec.ID,
				Name:        rec.Name,
				Description: rec.Description,
			})
		}
	}

	logger.Infow("listed records", "dir", dir, "files", len(files), "records", len(list.Items))

	return list, nil
}

// Process runs pipeline stages over the list in order.
func (l *ItemList) Process(procs ...Processor) error {
	for _, proc := range procs {
		if err := proc.Process(l); err != nil {
			return fmt.Errorf("failed to process %s: %v", l.Path, err)
		}
		logger.Infow("processed stage", "stage", proc.Name(), "dir", l.Path, "records", len(l.Items))
	}
	return nil
}

// DataBunch is a folder of genomic sequences processed into train,
// valid and optional test splits, ready to batch for a trainer.
type DataBunch struct {
	// Train, Valid and Test splits. Valid and Test may be empty.
	Train *ItemList
	Valid *ItemList
	Test  *ItemList

	// Vocab shared by the numericalized splits
	Vocab *Vocab

	// BatchSize used by Batches
	BatchSize int

	// IncludeBOS and IncludeEOS wrap each record when batching
	IncludeBOS bool
	IncludeEOS bool
}

// FromFolder builds a numericalized DataBunch from the train/, valid/
// and (optionally) test/ subfolders of a path. The vocabulary is built
// from the training split unless one is passed in.
func FromFolder(path, regex, attr string, vocab *Vocab, c *config.Config) (*DataBunch, error) {
	tokenize := &TokenizeProcessor{
		Tokenizer: NewTokenizer(c.Tokenize.Ngram, c.Tokenize.Skip),
		Chunksize: c.Tokenize.Chunksize,
		Workers:   c.Tokenize.Workers,
	}
	numericalize := &NumericalizeProcessor{
		Vocab:    vocab,
		MaxVocab: c.Vocab.MaxVocab,
		MinFreq:  c.Vocab.MinFreq,
	}

	bunch, err := fromFolder(path, regex, attr, []Processor{NewFileProcessor(), tokenize, numericalize}, c)
	if err != nil {
		return nil, err
	}

	bunch.Vocab = numericalize.Vocab
	return bunch, nil
}

// FromFolderEmbedded builds a DataBunch whose records are pretrained
// embedding vectors instead of vocabulary ids.
func FromFolderEmbedded(path, regex, attr string, model *MultiKModel, agg Agg, c *config.Config) (*DataBunch, error) {
	tokenize := &TokenizeProcessor{
		Tokenizer: NewTokenizer(c.Tokenize.Ngram, c.Tokenize.Skip),
		Chunksize: c.Tokenize.Chunksize,
		Workers:   c.Tokenize.Workers,
	}
	embed := &EmbedProcessor{Model: model, Agg: agg}

	return fromFolder(path, regex, attr, []Processor{NewFileProcessor(), tokenize, embed}, c)
}

// fromFolder lists and processes each split with the passed pipeline.
func fromFolder(path, regex, attr string, procs []Processor, c *config.Config) (*DataBunch, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create path to data folder: %v", err)
	}

	bunch := &DataBunch{
		BatchSize:  c.Bunch.BatchSize,
		IncludeBOS: c.Bunch.IncludeBOS,
		IncludeEOS: c.Bunch.IncludeEOS,
	}

	splits := []struct {
		name string
		dest **ItemList
	}{
		{"train", &bunch.Train},
		{"valid", &bunch.Valid},
		{"test", &bunch.Test},
	}
	for _, split := range splits {
		list, err := NewItemList(filepath.Join(abs, split.name), regex, attr)
		if err != nil {
			return nil, err
		}
		if len(list.Items) > 0 {
			if err = list.Process(procs...); err != nil {
				return nil, err
			}
		}
		*split.dest = list
	}

	if len(bunch.Train.Items) == 0 {
		return nil, fmt.Errorf("failed to find any records under %s", filepath.Join(abs, "train"))
	}

	return bunch, nil
}

// Batch is one padded batch of numericalized records.
type Batch struct {
	// IDs is a BatchSize-by-longest matrix, short rows padded with PadIdx
	IDs [][]int64

	// Lens holds each row's unpadded length
	Lens []int
}

// Batches cuts a split into fixed-size padded batches, optionally
// wrapping each record in BOS/EOS. The final short batch is kept.
func (b *DataBunch) Batches(l *ItemList) ([]Batch, error) {
	if l.IDs == nil {
		return nil, fmt.Errorf("failed to batch %s: the split isn't numericalized", l.Path)
	}

	size := b.BatchSize
	if size < 1 {
		size = 1
	}

	var batches []Batch
	for start := 0; start < len(l.IDs); start += size {
		end := min(start+size, len(l.IDs))

		rows := make([][]int64, 0, end-start)
		lens := make([]int, 0, end-start)
		longest := 0
		for _, ids := range l.IDs[start:end] {
			row := make([]int64, 0, len(ids)+2)
			if b.IncludeBOS {
				row = append(row, BosIdx)
			}
			row = append(row, ids...)
			if b.IncludeEOS {
				row = append(row, EosIdx)
			}

			rows = append(rows, row)
			lens = append(lens, len(row))
			longest = max(longest, len(row))
		}

		for i, row := range rows {
			for len(row) < longest {
				row = append(row, PadIdx)
			}
			rows[i] = row
		}

		batches = append(batches, Batch{IDs: rows, Lens: lens})
	}

	return batches, nil
}

// Manifest summarizes a saved bunch. Written in YAML next to the gob
// file so a bunch on disk is inspectable without decoding it.
type Manifest struct {
	Train     int `yaml:"train"`
	Valid     int `yaml:"valid"`
	Test      int `yaml:"test"`
	VocabSize int `yaml:"vocab-size"`
	Ngram     int `yaml:"ngram"`
	Skip      int `yaml:"skip"`
	BatchSize int `yaml:"batch-size"`
}

// Save gob-encodes the bunch and writes its YAML manifest alongside.
func (b *DataBunch) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create bunch file: %v", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(b); err != nil {
		return fmt.Errorf("failed to encode bunch: %v", err)
	}

	manifest := Manifest{
		Train:     len(b.Train.Items),
		Valid:     len(b.Valid.Items),
		Test:      len(b.Test.Items),
		Ngram:     b.Train.Ngram,
		Skip:      b.Train.Skip,
		BatchSize: b.BatchSize,
	}
	if b.Vocab != nil {
		manifest.VocabSize = b.Vocab.Size()
	}

	contents, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode bunch manifest: %v", err)
	}
	if err := os.WriteFile(manifestPath(path), contents, 0644); err != nil {
		return fmt.Errorf("failed to write bunch manifest: %v", err)
	}

	logger.Infow("saved bunch", "path", path,
		"train", manifest.Train, "valid", manifest.Valid, "test", manifest.Test)

	return nil
}

// LoadBunch decodes a bunch saved with Save.
func LoadBunch(path string) (*DataBunch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bunch file: %v", err)
	}
	defer f.Close()

	bunch := &DataBunch{}
	if err := gob.NewDecoder(f).Decode(bunch); err != nil {
		return nil, fmt.Errorf("failed to decode bunch from %s: %v", path, err)
	}

	return bunch, nil
}

// manifestPath swaps a bunch path's extension for .yaml.
func manifestPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".yaml"
}
