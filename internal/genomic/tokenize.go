package genomic

import "sync"

// Tokenizer splits sequences into k-mer tokens.
type Tokenizer struct {
	// Ngram is the k-mer width. An Ngram of 1 yields per-base tokens.
	Ngram int

	// Skip is the number of bases dropped between windows. With an
	// Ngram of 1 a Skip of s keeps every s-th base (every 2nd for s=1).
	Skip int
}

// NewTokenizer makes a k-mer tokenizer.
func NewTokenizer(ngram, skip int) *Tokenizer {
	return &Tokenizer{Ngram: ngram, Skip: skip}
}

// Tokenize splits one sequence into k-mer tokens. Windows of Ngram bases
// start every Ngram+Skip bases. A window whose end would touch or pass
// the end of the sequence is dropped, matching the upstream dataloaders
// this mirrors.
func (t *Tokenizer) Tokenize(seq string) []string {
	if t.Ngram == 1 {
		step := 1
		if t.Skip == 1 {
			step = 2
		} else if t.Skip > 1 {
			step = t.Skip
		}

		toks := make([]string, 0, len(seq)/step+1)
		for i := 0; i < len(seq); i += step {
			toks = append(toks, seq[i:i+1])
		}
		return toks
	}

	var toks []string
	for i := 0; i+t.Ngram < len(seq); i += t.Ngram + t.Skip {
		toks = append(toks, seq[i:i+t.Ngram])
	}
	return toks
}

// TokenizeAll tokenizes a list of sequences, fanning chunks of chunksize
// sequences out to the passed number of workers.
func (t *Tokenizer) TokenizeAll(seqs []string, chunksize, workers int) [][]string {
	if chunksize < 1 {
		chunksize = 1
	}

	tokens := make([][]string, len(seqs))
	if workers <= 1 {
		for i, s := range seqs {
			tokens[i] = t.Tokenize(s)
		}
		return tokens
	}

	type chunk struct {
		start int
		seqs  []string
	}
	chunks := make(chan chunk)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunks {
				for j, s := range c.seqs {
					tokens[c.start+j] = t.Tokenize(s)
				}
			}
		}()
	}

	for i := 0; i < len(seqs); i += chunksize {
		end := min(i+chunksize, len(seqs))
		chunks <- chunk{start: i, seqs: seqs[i:end]}
	}
	close(chunks)
	wg.Wait()

	return tokens
}
