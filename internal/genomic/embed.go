package genomic

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Agg is how per-token embedding vectors are combined per sequence.
type Agg int

const (
	// AggNone keeps the full token-by-dimension matrix
	AggNone Agg = iota

	// AggSum adds the token vectors into one row
	AggSum

	// AggMean averages the token vectors into one row
	AggMean
)

// ParseAgg converts an aggregation name from the CLI or settings file.
func ParseAgg(name string) (Agg, error) {
	switch name {
	case "none", "":
		return AggNone, nil
	case "sum":
		return AggSum, nil
	case "mean":
		return AggMean, nil
	}

	return AggNone, fmt.Errorf("failed to recognize aggregation %q: want sum, mean or none", name)
}

// MultiKModel is a pretrained k-mer embedding in the style of dna2vec:
// one word2vec submodel per k-mer length, all sharing a dimension.
type MultiKModel struct {
	// Dim is the embedding dimension shared by every submodel
	Dim int

	// KLow and KHigh bound the k-mer lengths the model covers
	KLow, KHigh int

	// vectors per k-mer, bucketed by k-mer length
	models map[int]map[string][]float64
}

// LoadMultiK parses a word2vec text-format embedding file. The first line
// holds the vector count and dimension; each following line is a k-mer and
// its vector. K-mers of different lengths are bucketed into submodels.
func LoadMultiK(path string) (*MultiKModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedding model: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("failed to parse %s: empty embedding file", path)
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("failed to parse %s: malformed word2vec header", path)
	}
	count, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: bad vector count: %v", path, err)
	}
	dim, err := strconv.Atoi(header[1])
	if err != nil || dim < 1 {
		return nil, fmt.Errorf("failed to parse %s: bad vector dimension", path)
	}

	m := &MultiKModel{
		Dim:    dim,
		models: map[int]map[string][]float64{},
	}

	read := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != dim+1 {
			return nil, fmt.Errorf("failed to parse %s: row %q has %d values, want %d", path, fields[0], len(fields)-1, dim)
		}

		token := strings.ToUpper(fields[0])
		vector := make([]float64, dim)
		for i, field := range fields[1:] {
			if vector[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("failed to parse %s: bad value in row %q: %v", path, token, err)
			}
		}

		k := len(token)
		if m.models[k] == nil {
			m.models[k] = map[string][]float64{}
		}
		m.models[k][token] = vector

		if m.KLow == 0 || k < m.KLow {
			m.KLow = k
		}
		if k > m.KHigh {
			m.KHigh = k
		}
		read++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	if read < count {
		return nil, fmt.Errorf("failed to parse %s: read %d vectors, header promised %d", path, read, count)
	}

	logger.Infow("loaded embedding model", "path", path, "vectors", read, "dim", dim, "kLow", m.KLow, "kHigh", m.KHigh)

	return m, nil
}

// Vector returns the embedding row of one k-mer.
func (m *MultiKModel) Vector(token string) ([]float64, error) {
	token = strings.ToUpper(token)
	sub, ok := m.models[len(token)]
	if !ok {
		return nil, fmt.Errorf("failed to embed %q: no %d-mer submodel (have k=%d..%d)", token, len(token), m.KLow, m.KHigh)
	}

	vector, ok := sub[token]
	if !ok {
		return nil, fmt.Errorf("failed to embed %q: not in the %d-mer submodel", token, len(token))
	}

	return vector, nil
}

// Embed looks up and aggregates the vectors of a record's tokens.
// Tokens with ambiguous bases and k-mers the model doesn't cover are
// dropped first. If nothing survives, a pair of zero rows stands in so
// downstream shapes stay rectangular.
func (m *MultiKModel) Embed(tokens []string, agg Agg) [][]float64 {
	var rows [][]float64
	for _, tok := range tokens {
		if !OnlyACGT(tok) {
			continue
		}
		row, err := m.Vector(tok)
		if err != nil {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return [][]float64{make([]float64, m.Dim), make([]float64, m.Dim)}
	}

	if agg == AggNone {
		return rows
	}

	acc := make([]float64, m.Dim)
	for _, row := range rows {
		floats.Add(acc, row)
	}
	if agg == AggMean {
		floats.Scale(1/float64(len(rows)), acc)
	}

	return [][]float64{acc}
}
