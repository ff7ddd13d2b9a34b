package test

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/AntonVopilov/fastai-genomic/config"
	"github.com/AntonVopilov/fastai-genomic/internal/genomic"
)

// the full pipeline: read fixtures, tokenize, numericalize, batch,
// save and reload.
func Test_Bunch(t *testing.T) {
	root := t.TempDir()
	train := filepath.Join(root, "train")
	valid := filepath.Join(root, "valid")
	for _, dir := range []string{train, valid} {
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	fixtures := []struct {
		src  string
		dest string
	}{
		{path.Join("input", "phix.fa"), filepath.Join(train, "phix.fa")},
		{path.Join("input", "reads.fastq"), filepath.Join(valid, "reads.fastq")},
	}
	for _, f := range fixtures {
		contents, err := os.ReadFile(f.src)
		if err != nil {
			t.Fatal(err)
		}
		if err = os.WriteFile(f.dest, contents, 0644); err != nil {
			t.Fatal(err)
		}
	}

	c := &config.Config{
		Tokenize: config.TokenizeConfig{Ngram: 3, Skip: 0, Chunksize: 100, Workers: 2},
		Vocab:    config.VocabConfig{MaxVocab: 1000, MinFreq: 1},
		Bunch:    config.BunchConfig{BatchSize: 2, IncludeBOS: true},
	}

	bunch, err := genomic.FromFolder(root, "", "description", nil, c)
	if err != nil {
		t.Fatal(err)
	}

	if len(bunch.Train.Items) != 2 {
		t.Fatalf("train records = %d, want 2 from phix.fa", len(bunch.Train.Items))
	}
	if len(bunch.Valid.Items) != 2 {
		t.Fatalf("valid records = %d, want 2 from reads.fastq", len(bunch.Valid.Items))
	}

	batches, err := bunch.Batches(bunch.Train)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(batches))
	}
	rows := batches[0].IDs
	if len(rows) != 2 || len(rows[0]) != len(rows[1]) {
		t.Errorf("batch isn't rectangular: %v", rows)
	}
	if rows[0][0] != genomic.BosIdx {
		t.Errorf("rows don't start with BOS: %v", rows[0])
	}

	out := filepath.Join(t.TempDir(), "bunch.gob")
	if err := bunch.Save(out); err != nil {
		t.Fatal(err)
	}
	loaded, err := genomic.LoadBunch(out)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Vocab.Size() != bunch.Vocab.Size() {
		t.Errorf("loaded vocab size = %d, want %d", loaded.Vocab.Size(), bunch.Vocab.Size())
	}
}
