package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/searchpool/model"
)

func buildIndex(t *testing.T, texts ...string) *Index {
	t.Helper()

	idx := New(nil)
	for i, text := range texts {
		idx.Add(model.DocumentID(i+1), text)
	}
	idx.RecomputeStats()
	return idx
}

func TestIndex_Basic(t *testing.T) {
	idx := buildIndex(t,
		"the quick brown fox",
		"jumped over the lazy dog",
		"quick brown dogs",
		"fox and dog",
	)

	results := idx.Search("fox", 10, nil)
	require.Len(t, results, 2)

	found := make(map[model.DocumentID]bool)
	for _, c := range results {
		found[c.ID] = true
		assert.Greater(t, c.Score, 0.0)
	}
	assert.True(t, found[1])
	assert.True(t, found[4])

	// Scores must be sorted descending.
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestIndex_EmptyCorpus(t *testing.T) {
	idx := New(nil)
	idx.RecomputeStats()

	// Must short-circuit instead of dividing by zero.
	assert.Nil(t, idx.Search("anything", 5, nil))
	assert.Equal(t, 0, idx.DocCount())
	assert.Equal(t, 0.0, idx.AvgDocLength())
}

func TestIndex_EmptyQuery(t *testing.T) {
	idx := buildIndex(t, "some content")

	assert.Nil(t, idx.Search("", 5, nil))
	assert.Nil(t, idx.Search("   \t ", 5, nil))
}

func TestIndex_UnknownToken(t *testing.T) {
	idx := buildIndex(t, "alpha beta", "beta gamma")

	// A token absent from the index contributes nothing; it is not an error.
	assert.Nil(t, idx.Search("zeta", 5, nil))

	results := idx.Search("alpha zeta", 5, nil)
	require.Len(t, results, 1)
	assert.Equal(t, model.DocumentID(1), results[0].ID)
}

func TestIndex_InvalidLimit(t *testing.T) {
	idx := buildIndex(t, "alpha beta")

	assert.Nil(t, idx.Search("alpha", 0, nil))
	assert.Nil(t, idx.Search("alpha", -3, nil))
}

func TestIndex_DocFrequencyInvariant(t *testing.T) {
	idx := buildIndex(t,
		"apple banana apple",
		"banana cherry",
		"apple cherry cherry",
	)

	// df(term) == number of distinct documents containing it, regardless
	// of how often the term repeats within a document.
	assert.Equal(t, 2, idx.DocFrequency("apple"))
	assert.Equal(t, 2, idx.DocFrequency("banana"))
	assert.Equal(t, 2, idx.DocFrequency("cherry"))
	assert.Equal(t, 0, idx.DocFrequency("durian"))
}

func TestIndex_StatsRecomputedPerBatch(t *testing.T) {
	idx := New(nil)
	idx.Add(1, "one two three four")
	idx.Add(2, "one two")

	// Stats lag behind until the batch boundary.
	assert.Equal(t, 0, idx.DocCount())

	idx.RecomputeStats()
	assert.Equal(t, 2, idx.DocCount())
	assert.InDelta(t, 3.0, idx.AvgDocLength(), 1e-9)

	idx.Add(3, "one two three four five six")
	idx.RecomputeStats()
	assert.Equal(t, 3, idx.DocCount())
	assert.InDelta(t, 4.0, idx.AvgDocLength(), 1e-9)
}

func TestIndex_TermFrequencyMonotonicity(t *testing.T) {
	// Same document length, increasing frequency of the matched term.
	idx := buildIndex(t,
		"apple pear plum cherry",
		"apple apple plum cherry",
		"apple apple apple cherry",
	)

	results := idx.Search("apple", 3, nil)
	require.Len(t, results, 3)

	// Higher tf must never decrease the score, everything else constant.
	assert.Equal(t, model.DocumentID(3), results[0].ID)
	assert.Equal(t, model.DocumentID(2), results[1].ID)
	assert.Equal(t, model.DocumentID(1), results[2].ID)
	assert.Greater(t, results[0].Score, results[1].Score)
	assert.Greater(t, results[1].Score, results[2].Score)
}

func TestIndex_LengthNormalization(t *testing.T) {
	// Same term frequency; the shorter document ranks higher.
	idx := buildIndex(t,
		"needle filler filler filler filler filler filler filler",
		"needle filler",
	)

	results := idx.Search("needle", 2, nil)
	require.Len(t, results, 2)
	assert.Equal(t, model.DocumentID(2), results[0].ID)
	assert.Equal(t, model.DocumentID(1), results[1].ID)
}

func TestIndex_ExclusionBeforeTruncation(t *testing.T) {
	idx := buildIndex(t,
		"target one",
		"target two",
		"target three",
		"target four",
		"target five",
	)

	full := idx.Search("target", 2, nil)
	require.Len(t, full, 2)

	// Excluding the two current winners must still fill the limit from
	// the remaining candidates, not return a short page.
	exclude := model.NewIDSet(full[0].ID, full[1].ID)
	excluded := idx.Search("target", 2, exclude)
	require.Len(t, excluded, 2)
	for _, c := range excluded {
		assert.False(t, exclude.Contains(c.ID))
	}
}

func TestIndex_DeterministicTieBreak(t *testing.T) {
	// Identical documents tie exactly; order falls back to ascending id.
	idx := buildIndex(t,
		"same words here",
		"same words here",
		"same words here",
	)

	results := idx.Search("same words", 3, nil)
	require.Len(t, results, 3)
	assert.Equal(t, model.DocumentID(1), results[0].ID)
	assert.Equal(t, model.DocumentID(2), results[1].ID)
	assert.Equal(t, model.DocumentID(3), results[2].ID)

	again := idx.Search("same words", 3, nil)
	assert.Equal(t, results, again)
}

func TestIndex_DuplicateQueryTokensAccumulate(t *testing.T) {
	idx := buildIndex(t, "apple banana", "banana cherry")

	once := idx.Search("apple", 5, nil)
	twice := idx.Search("apple apple", 5, nil)
	require.Len(t, once, 1)
	require.Len(t, twice, 1)

	// Each query token occurrence accumulates independently.
	assert.InDelta(t, 2*once[0].Score, twice[0].Score, 1e-9)
}

func TestIndex_CustomParameters(t *testing.T) {
	// b=0 disables length normalization entirely.
	idx := New(nil, func(o *Options) {
		o.K1 = 1.2
		o.B = 0
	})
	idx.Add(1, "needle filler filler filler filler filler filler filler")
	idx.Add(2, "needle filler")
	idx.RecomputeStats()

	results := idx.Search("needle", 2, nil)
	require.Len(t, results, 2)
	assert.InDelta(t, results[0].Score, results[1].Score, 1e-9)
}
