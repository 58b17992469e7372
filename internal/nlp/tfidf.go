package nlp

import "math"

// Vector is a sparse TF-IDF vector keyed by token.
type Vector map[string]float64

// Model is the vocabulary and document-frequency table of one corpus.
// It must only vectorize token lists against the corpus it was built from.
type Model struct {
	Vocabulary map[string]int
	DocFreq    map[string]int
	N          int
}

// BuildModel counts every distinct token once per document. Vocabulary
// indices follow first-sight order.
func BuildModel(docs [][]string) *Model {
	m := &Model{
		Vocabulary: make(map[string]int),
		DocFreq:    make(map[string]int),
		N:          len(docs),
	}

	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, token := range doc {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}

			if _, ok := m.Vocabulary[token]; !ok {
				m.Vocabulary[token] = len(m.Vocabulary)
			}
			m.DocFreq[token]++
		}
	}

	return m
}

// IDF is the smoothed inverse document frequency ln((N+1)/(df+1)) + 1.
func (m *Model) IDF(token string) float64 {
	return math.Log(float64(m.N+1)/float64(m.DocFreq[token]+1)) + 1
}

// Vectorize weights raw term counts by IDF. Out-of-vocabulary tokens are
// dropped.
func (m *Model) Vectorize(tokens []string) Vector {
	tf := make(map[string]int, len(tokens))
	for _, token := range tokens {
		tf[token]++
	}

	vec := make(Vector, len(tf))
	for token, count := range tf {
		if _, ok := m.Vocabulary[token]; !ok {
			continue
		}
		vec[token] = float64(count) * m.IDF(token)
	}
	return vec
}

func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// CosineSimilarity returns 0 when either vector is empty or has a zero norm.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	var dot float64
	for token, w := range small {
		if other, ok := large[token]; ok {
			dot += w * other
		}
	}

	normA, normB := a.Norm(), b.Norm()
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

// Match is the best-scoring document of a corpus search.
type Match struct {
	Index int
	Score float64
}

// Index is a corpus tokenized and vectorized against its own model.
type Index struct {
	model   *Model
	vectors []Vector
}

func NewIndex(texts []string) *Index {
	docs := make([][]string, len(texts))
	for i, text := range texts {
		docs[i] = Tokenize(text)
	}

	model := BuildModel(docs)
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = model.Vectorize(doc)
	}

	return &Index{model: model, vectors: vectors}
}

func (idx *Index) Len() int {
	return len(idx.vectors)
}

// Best returns the first document with the highest strictly positive
// similarity to query. ok is false when nothing scores above zero.
func (idx *Index) Best(query string) (Match, bool) {
	qvec := idx.model.Vectorize(Tokenize(query))

	best := Match{Index: -1}
	for i, vec := range idx.vectors {
		if s := CosineSimilarity(qvec, vec); s > best.Score {
			best = Match{Index: i, Score: s}
		}
	}
	return best, best.Index >= 0
}
