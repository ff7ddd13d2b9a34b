package genomic

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/karlseguin/ccache/v2"
)

// format of a sequence file.
type format int

const (
	formatUnknown format = iota
	formatFasta
	formatFastq
)

// formats maps recognized sequence file extensions to their format.
// see: https://en.wikipedia.org/wiki/FASTA_format
var formats = map[string]format{
	".fasta": formatFasta,
	".fa":    formatFasta,
	".fna":   formatFasta,
	".ffn":   formatFasta,
	".faa":   formatFasta,
	".frn":   formatFasta,
	".fastq": formatFastq,
	".fq":    formatFastq,
}

// ReadFile parses all the records in a FASTA or FASTQ file. The format
// is chosen by file extension, falling back to sniffing the first byte.
func ReadFile(path string) ([]*Record, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %v", err)
		}
		path = abs
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := bufio.NewReader(f)

	ft := formats[strings.ToLower(filepath.Ext(path))]
	if ft == formatUnknown {
		if ft, err = sniff(buf); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %v", path, err)
		}
	}

	var sc *seqio.Scanner
	switch ft {
	case formatFasta:
		sc = seqio.NewScanner(fasta.NewReader(buf, linear.NewSeq("", nil, alphabet.DNAredundant)))
	case formatFastq:
		sc = seqio.NewScanner(fastq.NewReader(buf, linear.NewQSeq("", nil, alphabet.DNAredundant, alphabet.Sanger)))
	}

	var records []*Record
	for sc.Next() {
		records = append(records, newRecord(path, sc.Seq()))
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse any records from %s", path)
	}

	return records, nil
}

// sniff guesses a sequence file's format from its first byte.
func sniff(r *bufio.Reader) (format, error) {
	first, err := r.Peek(1)
	if err != nil {
		return formatUnknown, fmt.Errorf("empty file")
	}

	switch first[0] {
	case '>':
		return formatFasta, nil
	case '@':
		return formatFastq, nil
	}

	return formatUnknown, fmt.Errorf("unrecognized file type")
}

// newRecord converts a parsed biogo sequence to a Record. The FASTA
// reader splits the header into name and description at the first
// space but the FASTQ reader doesn't, so the split is normalized here.
func newRecord(path string, s seq.Sequence) *Record {
	letters := make([]byte, s.Len())
	for i := 0; i < s.Len(); i++ {
		letters[i] = byte(s.At(i).L)
	}

	id, desc := s.Name(), s.Description()
	if i := strings.IndexAny(id, " \t"); i >= 0 {
		if desc == "" {
			desc = strings.TrimSpace(id[i+1:])
		}
		id = id[:i]
	}

	return &Record{
		File:        path,
		ID:          id,
		Name:        id,
		Description: strings.TrimSpace(id + " " + desc),
		Seq:         strings.ToUpper(string(letters)),
	}
}

// Reader reads records out of sequence files, caching parsed files so
// repeated lookups against the same multi-FASTA only parse it once.
type Reader struct {
	cache *ccache.Cache
}

// NewReader makes a record reader with a parsed-file cache.
func NewReader() *Reader {
	return &Reader{
		cache: ccache.New(ccache.Configure().MaxSize(128)),
	}
}

// ReadFile returns all the records in a file, from cache if it was
// already parsed.
func (r *Reader) ReadFile(path string) ([]*Record, error) {
	if item := r.cache.Get(path); item != nil && !item.Expired() {
		return item.Value().([]*Record), nil
	}

	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	r.cache.Set(path, records, time.Hour)

	return records, nil
}

// Lookup returns the sequence of the record with the passed ID.
func (r *Reader) Lookup(path, id string) (string, error) {
	records, err := r.ReadFile(path)
	if err != nil {
		return "", err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec.Seq, nil
		}
	}

	return "", fmt.Errorf("failed to find record %s in %s", id, path)
}
