// Package genomic adapts FASTA/FASTQ sequence files into tokenized,
// numericalized or embedded datasets for training genomic language models.
package genomic

import "strings"

// Record is a single sequence record read from a FASTA or FASTQ file.
type Record struct {
	// File is the path of the file the record was read from
	File string

	// ID is the first whitespace-delimited field of the header
	ID string

	// Name of the record (same as ID for FASTA/FASTQ input)
	Name string

	// Description is the full header line
	Description string

	// Seq is the uppercased sequence
	Seq string
}

// Attr returns the value of one of the record's header attributes.
// Used when filtering item lists by a regexp over "id", "name" or
// "description".
func (r *Record) Attr(attr string) string {
	switch attr {
	case "id":
		return r.ID
	case "name":
		return r.Name
	default:
		return r.Description
	}
}

// complement maps each IUPAC nucleotide code to its complement.
var complement = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

// RevComp returns the reverse complement of a sequence. Characters
// outside the IUPAC codes become 'N'.
func RevComp(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if c, ok := complement[b]; ok {
			out[i] = c
		} else {
			out[i] = 'N'
		}
	}
	return string(out)
}

// OnlyACGT reports whether a token consists solely of the unambiguous
// bases A, C, G and T. Pretrained k-mer embeddings only carry vectors
// for unambiguous k-mers.
func OnlyACGT(token string) bool {
	if token == "" {
		return false
	}
	return strings.IndexFunc(token, func(r rune) bool {
		return r != 'A' && r != 'C' && r != 'G' && r != 'T'
	}) < 0
}
