package genomic

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeModel writes a small word2vec text-format model with 3-mers and
// 4-mers sharing a dimension of 4.
func writeModel(t *testing.T) string {
	t.Helper()

	contents := `5 4
ATG 1.0 0.0 0.0 0.0
GGG 0.0 1.0 0.0 0.0
CCC 0.0 0.0 1.0 0.0
TTT 0.0 0.0 0.0 1.0
ATGC 0.5 0.5 0.5 0.5
`
	path := filepath.Join(t.TempDir(), "model.w2v")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadMultiK(t *testing.T) {
	m, err := LoadMultiK(writeModel(t))
	if err != nil {
		t.Fatal(err)
	}

	if m.Dim != 4 {
		t.Errorf("Dim = %d, want 4", m.Dim)
	}
	if m.KLow != 3 || m.KHigh != 4 {
		t.Errorf("k range = %d..%d, want 3..4", m.KLow, m.KHigh)
	}

	v, err := m.Vector("ATGC")
	if err != nil {
		t.Fatal(err)
	}
	for i := range v {
		if v[i] != 0.5 {
			t.Errorf("Vector(ATGC) = %v", v)
			break
		}
	}

	// lowercase queries hit the same vectors
	if _, err = m.Vector("atg"); err != nil {
		t.Errorf("lowercase lookup failed: %v", err)
	}

	if _, err = m.Vector("AAAAAAAA"); err == nil {
		t.Error("expected an error for an uncovered k-mer length")
	}
	if _, err = m.Vector("AAA"); err == nil {
		t.Error("expected an error for a k-mer missing from its submodel")
	}
}

func TestLoadMultiK_malformed(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty file", ""},
		{"bad header", "not a header\n"},
		{"short row", "1 4\nATG 1.0 2.0\n"},
		{"bad value", "1 4\nATG 1.0 2.0 3.0 x\n"},
		{"fewer rows than promised", "2 4\nATG 1.0 2.0 3.0 4.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.w2v")
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadMultiK(path); err == nil {
				t.Error("expected a parse error")
			}
		})
	}
}

func TestMultiKModel_Embed(t *testing.T) {
	m, err := LoadMultiK(writeModel(t))
	if err != nil {
		t.Fatal(err)
	}

	// ATG + GGG with the ambiguous token and the uncovered k-mer dropped
	tokens := []string{"ATG", "NNN", "AAA", "GGG"}

	sum := m.Embed(tokens, AggSum)
	if len(sum) != 1 {
		t.Fatalf("sum rows = %d, want 1", len(sum))
	}
	if sum[0][0] != 1.0 || sum[0][1] != 1.0 || sum[0][2] != 0.0 {
		t.Errorf("sum = %v", sum[0])
	}

	mean := m.Embed(tokens, AggMean)
	if math.Abs(mean[0][0]-0.5) > 1e-9 || math.Abs(mean[0][1]-0.5) > 1e-9 {
		t.Errorf("mean = %v", mean[0])
	}

	matrix := m.Embed(tokens, AggNone)
	if len(matrix) != 2 {
		t.Errorf("matrix rows = %d, want 2", len(matrix))
	}
}

func TestMultiKModel_Embed_zeroFallback(t *testing.T) {
	m, err := LoadMultiK(writeModel(t))
	if err != nil {
		t.Fatal(err)
	}

	// nothing survives the ACGT filter: a pair of zero rows stands in
	rows := m.Embed([]string{"NNN", "ANG"}, AggNone)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if len(row) != m.Dim {
			t.Fatalf("row width = %d, want %d", len(row), m.Dim)
		}
		for _, val := range row {
			if val != 0 {
				t.Errorf("fallback row = %v, want zeros", row)
				break
			}
		}
	}
}

func TestParseAgg(t *testing.T) {
	tests := []struct {
		name    string
		want    Agg
		wantErr bool
	}{
		{"sum", AggSum, false},
		{"mean", AggMean, false},
		{"none", AggNone, false},
		{"", AggNone, false},
		{"median", AggNone, true},
	}

	for _, tt := range tests {
		got, err := ParseAgg(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAgg(%q) err = %v, wantErr %t", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseAgg(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
