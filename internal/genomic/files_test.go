package genomic

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.fa", "b.fastq", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(">x\nATGC\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.fna"), []byte(">y\nATGC\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		recurse  bool
		checkExt bool
		want     int
	}{
		{"flat, sequence files only", false, true, 2},
		{"flat, all files", false, false, 3},
		{"recursive, sequence files only", true, true, 3},
		{"recursive, all files", true, false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := FindFiles(dir, tt.recurse, tt.checkExt)
			if err != nil {
				t.Fatal(err)
			}
			if len(paths) != tt.want {
				t.Errorf("found %d files %v, want %d", len(paths), paths, tt.want)
			}
		})
	}
}

func TestIsSeqFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"genome.fasta", true},
		{"genome.FA", true},
		{"reads.fq", true},
		{"proteins.faa", true},
		{"notes.txt", false},
		{"genome", false},
	}

	for _, tt := range tests {
		if got := IsSeqFile(tt.path); got != tt.want {
			t.Errorf("IsSeqFile(%q) = %t, want %t", tt.path, got, tt.want)
		}
	}
}
