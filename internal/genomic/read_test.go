package genomic

import (
	"os"
	"path"
	"path/filepath"
	"testing"
)

func TestReadFile_fasta(t *testing.T) {
	records, err := ReadFile(path.Join("..", "..", "test", "input", "phix.fa"))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("parsed %d records, want 2", len(records))
	}

	gene1 := records[0]
	if gene1.ID != "gene1" {
		t.Errorf("ID = %q, want gene1", gene1.ID)
	}
	if gene1.Description != "gene1 capsid protein example" {
		t.Errorf("Description = %q", gene1.Description)
	}
	// multi-line sequences are joined
	if len(gene1.Seq) != 36 {
		t.Errorf("len(Seq) = %d, want 36", len(gene1.Seq))
	}

	gene2 := records[1]
	if gene2.Seq != "AAAACCCCGGGGTTTT" {
		t.Errorf("Seq = %q", gene2.Seq)
	}
}

func TestReadFile_fastq(t *testing.T) {
	records, err := ReadFile(path.Join("..", "..", "test", "input", "reads.fastq"))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("parsed %d records, want 2", len(records))
	}
	if records[0].ID != "read1" {
		t.Errorf("ID = %q, want read1", records[0].ID)
	}
	if records[0].Seq != "ATGCATGCATGC" {
		t.Errorf("Seq = %q", records[0].Seq)
	}
	if records[1].Seq != "TTTTGGGGCCCC" {
		t.Errorf("Seq = %q", records[1].Seq)
	}
}

func TestReadFile_sniff(t *testing.T) {
	// a fasta file behind an unrecognized extension still parses
	contents := ">mystery some sequence\nATGCATGC\n"
	p := filepath.Join(t.TempDir(), "mystery.txt")
	if err := os.WriteFile(p, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != "mystery" {
		t.Errorf("records = %+v", records)
	}
}

func TestReadFile_errors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(empty); err == nil {
		t.Error("expected an error for an empty file")
	}

	junk := filepath.Join(t.TempDir(), "junk.txt")
	if err := os.WriteFile(junk, []byte("not a sequence file"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(junk); err == nil {
		t.Error("expected an error for an unrecognized file")
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestReader_Lookup(t *testing.T) {
	r := NewReader()
	fixture := path.Join("..", "..", "test", "input", "phix.fa")

	seq, err := r.Lookup(fixture, "gene2")
	if err != nil {
		t.Fatal(err)
	}
	if seq != "AAAACCCCGGGGTTTT" {
		t.Errorf("Lookup(gene2) = %q", seq)
	}

	// second lookup hits the cache; same result either way
	again, err := r.Lookup(fixture, "gene2")
	if err != nil {
		t.Fatal(err)
	}
	if again != seq {
		t.Errorf("cached lookup = %q, want %q", again, seq)
	}

	if _, err := r.Lookup(fixture, "nope"); err == nil {
		t.Error("expected an error for a missing record ID")
	}
}
