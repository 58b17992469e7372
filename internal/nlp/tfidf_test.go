package nlp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildModel_VocabularyAndDocFreq(t *testing.T) {
	docs := [][]string{
		{"i", "like", "coffee", "coffee"},
		{"i", "like", "tea"},
		{"morning", "coffee"},
	}

	m := BuildModel(docs)

	assert.Equal(t, 3, m.N)
	assert.Len(t, m.Vocabulary, 5)
	assert.Equal(t, map[string]int{"i": 2, "like": 2, "coffee": 2, "tea": 1, "morning": 1}, m.DocFreq)

	seen := make(map[int]bool)
	for _, doc := range docs {
		for _, token := range doc {
			idx, ok := m.Vocabulary[token]
			require.True(t, ok, "token %q missing from vocabulary", token)
			assert.LessOrEqual(t, m.DocFreq[token], m.N)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, len(m.Vocabulary), "indices must be unique")
}

func TestBuildModel_DeterministicIndices(t *testing.T) {
	docs := [][]string{{"b", "a"}, {"c", "a"}}
	first := BuildModel(docs)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Vocabulary, BuildModel(docs).Vocabulary)
	}
	assert.Equal(t, 0, first.Vocabulary["b"])
	assert.Equal(t, 1, first.Vocabulary["a"])
	assert.Equal(t, 2, first.Vocabulary["c"])
}

func TestBuildModel_Empty(t *testing.T) {
	m := BuildModel(nil)
	assert.Equal(t, 0, m.N)
	assert.Empty(t, m.Vocabulary)
	assert.Empty(t, m.Vectorize([]string{"anything"}))
}

func TestVectorize(t *testing.T) {
	m := BuildModel([][]string{{"coffee", "tea"}, {"coffee"}})

	vec := m.Vectorize([]string{"coffee", "coffee", "tea", "unknown"})

	require.Len(t, vec, 2)
	// coffee is in every document: ln(3/3)+1 = 1, counted twice.
	assert.InDelta(t, 2.0, vec["coffee"], 1e-9)
	assert.InDelta(t, math.Log(3.0/2.0)+1, vec["tea"], 1e-9)
	assert.NotContains(t, vec, "unknown")

	assert.Empty(t, m.Vectorize(nil))
}

func TestCosineSimilarity(t *testing.T) {
	v := Vector{"coffee": 1.5, "morning": 0.7}

	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity(v, Vector{}))
	assert.Equal(t, 0.0, CosineSimilarity(Vector{}, v))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity(v, Vector{"tea": 2}))
	assert.Equal(t, 0.0, CosineSimilarity(Vector{"a": 0}, Vector{"a": 0}))

	s := CosineSimilarity(v, Vector{"coffee": 1})
	assert.Greater(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)
}

func TestIndex_Best(t *testing.T) {
	idx := NewIndex([]string{"I like coffee in the morning"})

	match, ok := idx.Best("coffee")
	require.True(t, ok)
	assert.Equal(t, 0, match.Index)
	assert.Greater(t, match.Score, 0.0)
}

func TestIndex_BestPicksClosest(t *testing.T) {
	idx := NewIndex([]string{
		"what is your name",
		"what can you do",
		"who made you",
	})

	match, ok := idx.Best("What can you do for me?")
	require.True(t, ok)
	assert.Equal(t, 1, match.Index)

	_, ok = idx.Best("zebra")
	assert.False(t, ok)

	_, ok = NewIndex(nil).Best("anything")
	assert.False(t, ok)
}
