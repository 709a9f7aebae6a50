package lexical

import (
	"math"
	"slices"

	"github.com/hupe1980/searchpool/model"
	"github.com/hupe1980/searchpool/tokenizer"
)

// Options contains configuration options for the BM25 ranking function.
type Options struct {
	// K1 controls term-frequency saturation. Typical range: 1.2-2.0.
	K1 float64

	// B controls document-length normalization. Typical value: 0.75.
	B float64
}

// DefaultOptions contains the default BM25 hyperparameters.
var DefaultOptions = Options{
	K1: 1.5,
	B:  0.75,
}

type posting struct {
	id model.DocumentID
	// count is the term frequency of the term within the document.
	count int
}

// Index is an in-memory inverted index with BM25 scoring.
type Index struct {
	tok  tokenizer.Tokenizer
	opts Options

	// inverted maps a term to its posting list. Ids are appended in
	// insertion order, so posting lists are sorted ascending by id and
	// contain one entry per distinct document: df(term) == len(postings).
	inverted   map[string][]posting
	docLengths map[model.DocumentID]int

	totalDocs int
	avgDocLen float64
}

// New creates a new empty index using the given tokenizer.
func New(tok tokenizer.Tokenizer, optFns ...func(o *Options)) *Index {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if tok == nil {
		tok = tokenizer.Default
	}

	return &Index{
		tok:        tok,
		opts:       opts,
		inverted:   make(map[string][]posting),
		docLengths: make(map[model.DocumentID]int),
	}
}

// Add indexes the text of a new document. The id must be greater than
// every previously added id; the engine's monotonic id assignment
// guarantees this. Corpus statistics are not updated until
// RecomputeStats is called for the batch.
func (idx *Index) Add(id model.DocumentID, text string) {
	tokens := idx.tok.Tokenize(text)

	// Token count includes duplicates.
	idx.docLengths[id] = len(tokens)

	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}

	// One posting per distinct term keeps df(term) == len(inverted[term]).
	for t, count := range tf {
		idx.inverted[t] = append(idx.inverted[t], posting{id: id, count: count})
	}
}

// RecomputeStats recomputes the corpus statistics over the whole index.
// It must be called after every ingestion batch so that avgDocLen stays
// consistent with the current document count.
func (idx *Index) RecomputeStats() {
	idx.totalDocs = len(idx.docLengths)
	if idx.totalDocs == 0 {
		idx.avgDocLen = 0
		return
	}

	var sum int
	for _, l := range idx.docLengths {
		sum += l
	}
	idx.avgDocLen = float64(sum) / float64(idx.totalDocs)
}

// Search ranks documents against the query text using BM25 and returns
// at most limit candidates, sorted by score descending with ties broken
// by ascending document id. Excluded ids are dropped during scoring,
// before truncation, so the returned count is min(limit, matching
// documents not excluded). A candidate's 1-based rank is its position in
// the returned slice plus one.
//
// Query terms absent from the index contribute nothing; an empty token
// sequence or an empty corpus yields an empty result.
func (idx *Index) Search(text string, limit int, exclude *model.IDSet) []model.Candidate {
	if limit <= 0 || idx.totalDocs == 0 {
		return nil
	}

	tokens := idx.tok.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	scores := make(map[model.DocumentID]float64)

	for _, t := range tokens {
		postings, ok := idx.inverted[t]
		if !ok {
			continue
		}

		idf := idx.computeIDF(len(postings))

		for _, p := range postings {
			if exclude.Contains(p.id) {
				continue
			}

			tf := float64(p.count)
			docLen := float64(idx.docLengths[p.id])

			num := tf * (idx.opts.K1 + 1)
			denom := tf + idx.opts.K1*(1-idx.opts.B+idx.opts.B*docLen/idx.avgDocLen)

			scores[p.id] += idf * (num / denom)
		}
	}

	if len(scores) == 0 {
		return nil
	}

	candidates := make([]model.Candidate, 0, len(scores))
	for id, score := range scores {
		candidates = append(candidates, model.Candidate{ID: id, Score: score})
	}

	slices.SortFunc(candidates, model.CompareCandidates)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates
}

// computeIDF returns ln((N - df + 0.5) / (df + 0.5) + 1).
func (idx *Index) computeIDF(df int) float64 {
	n := float64(idx.totalDocs)
	d := float64(df)
	return math.Log((n-d+0.5)/(d+0.5) + 1)
}

// DocCount returns the number of indexed documents as of the last
// RecomputeStats call.
func (idx *Index) DocCount() int { return idx.totalDocs }

// AvgDocLength returns the average token length as of the last
// RecomputeStats call.
func (idx *Index) AvgDocLength() float64 { return idx.avgDocLen }

// VocabularySize returns the number of distinct terms in the index.
func (idx *Index) VocabularySize() int { return len(idx.inverted) }

// DocFrequency returns the document frequency of a term.
func (idx *Index) DocFrequency(term string) int { return len(idx.inverted[term]) }
