package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload_Clone(t *testing.T) {
	p := Payload{"title": "a", "content": "b"}
	c := p.Clone()
	c["title"] = "mutated"

	assert.Equal(t, "a", p["title"])

	var nilPayload Payload
	assert.Nil(t, nilPayload.Clone())
}

func TestCompareCandidates(t *testing.T) {
	cands := []Candidate{
		{ID: 4, Score: 0.5},
		{ID: 2, Score: 0.5},
		{ID: 1, Score: 0.1},
		{ID: 3, Score: 0.9},
	}

	slices.SortFunc(cands, CompareCandidates)

	// Score descending, ties broken by ascending id.
	assert.Equal(t, []Candidate{
		{ID: 3, Score: 0.9},
		{ID: 2, Score: 0.5},
		{ID: 4, Score: 0.5},
		{ID: 1, Score: 0.1},
	}, cands)
}
