package genomic

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Reserved vocabulary tokens. Padding and unknown ids are distinct so a
// padded batch can still be masked apart from out-of-vocabulary k-mers.
const (
	PadToken = "pad"
	UnkToken = "unk"
	BosToken = "xxbos"
	EosToken = "xxeos"
)

// Indexes of the reserved tokens.
const (
	PadIdx int64 = iota
	UnkIdx
	BosIdx
	EosIdx
)

var reserved = []string{PadToken, UnkToken, BosToken, EosToken}

// Vocab maps k-mer tokens to int64 ids and back.
type Vocab struct {
	// Itos lists tokens by id, most frequent first after the reserved tokens
	Itos []string

	// Stoi maps each token to its id
	Stoi map[string]int64
}

// NewVocab counts the tokens of a tokenized corpus and keeps the maxVocab
// most frequent with at least minFreq occurrences. Frequency ties are
// broken by token order so creation is deterministic.
func NewVocab(tokens [][]string, maxVocab, minFreq int) *Vocab {
	freq := map[string]int{}
	for _, toks := range tokens {
		for _, tok := range toks {
			freq[tok]++
		}
	}

	kept := make([]string, 0, len(freq))
	for tok, count := range freq {
		if count >= minFreq {
			kept = append(kept, tok)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if freq[kept[i]] != freq[kept[j]] {
			return freq[kept[i]] > freq[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if len(kept) > maxVocab {
		kept = kept[:maxVocab]
	}

	return newVocab(append(append([]string{}, reserved...), kept...))
}

// newVocab builds the token index from an itos list.
func newVocab(itos []string) *Vocab {
	stoi := make(map[string]int64, len(itos))
	for i, tok := range itos {
		stoi[tok] = int64(i)
	}

	return &Vocab{Itos: itos, Stoi: stoi}
}

// Size is the number of tokens in the vocabulary, reserved included.
func (v *Vocab) Size() int {
	return len(v.Itos)
}

// Numericalize converts tokens to their ids. Tokens outside the
// vocabulary become UnkIdx.
func (v *Vocab) Numericalize(tokens []string) []int64 {
	ids := make([]int64, len(tokens))
	for i, tok := range tokens {
		if id, ok := v.Stoi[tok]; ok {
			ids[i] = id
		} else {
			ids[i] = UnkIdx
		}
	}
	return ids
}

// Textify converts ids back to their tokens.
func (v *Vocab) Textify(ids []int64) ([]string, error) {
	tokens := make([]string, len(ids))
	for i, id := range ids {
		if id < 0 || id >= int64(len(v.Itos)) {
			return nil, fmt.Errorf("failed to textify: id %d outside vocabulary of %d tokens", id, len(v.Itos))
		}
		tokens[i] = v.Itos[id]
	}
	return tokens, nil
}

// vocabFile is the on-disk JSON layout of a vocabulary.
type vocabFile struct {
	Itos []string `json:"itos"`
}

// Save writes the vocabulary to a JSON file.
func (v *Vocab) Save(path string) error {
	contents, err := json.MarshalIndent(vocabFile{Itos: v.Itos}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, contents, 0644)
}

// LoadVocab reads a vocabulary back from its JSON file.
func LoadVocab(path string) (*Vocab, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocab file: %v", err)
	}

	var file vocabFile
	if err := json.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocab file %s: %v", path, err)
	}
	if len(file.Itos) < len(reserved) {
		return nil, fmt.Errorf("failed to parse vocab file %s: too few tokens", path)
	}

	return newVocab(file.Itos), nil
}
