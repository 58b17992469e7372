package reply

import (
	"context"
	"strings"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/nlp"
)

// Turn is one inbound message in the forms the stages need.
type Turn struct {
	Text   string
	Folded string
	Words  []string

	repo     core.MemoryRepository
	memories []core.Memory
	loaded   bool
}

func newTurn(text string, repo core.MemoryRepository) *Turn {
	text = strings.TrimSpace(text)
	folded := nlp.Fold(text)
	return &Turn{
		Text:   text,
		Folded: folded,
		Words:  nlp.Tokenize(folded),
		repo:   repo,
	}
}

// Memories loads the memory corpus once per turn.
func (t *Turn) Memories(ctx context.Context) ([]core.Memory, error) {
	if t.loaded {
		return t.memories, nil
	}
	memories, err := t.repo.SearchMemories(ctx)
	if err != nil {
		return nil, err
	}
	t.memories, t.loaded = memories, true
	return memories, nil
}

// hasWords reports whether phrase occurs in words as a run of whole words.
func hasWords(words []string, phrase string) bool {
	needle := nlp.Tokenize(phrase)
	if len(needle) == 0 {
		return false
	}

	for i := 0; i+len(needle) <= len(words); i++ {
		match := true
		for j, w := range needle {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// containsAny reports whether text, padded with one space on each side,
// contains any of keys.
func containsAny(text string, keys []string) bool {
	padded := " " + text + " "
	for _, k := range keys {
		if strings.Contains(padded, k) {
			return true
		}
	}
	return false
}

// sharedWords counts distinct normalized words present in both texts.
func sharedWords(a, b string) int {
	seen := make(map[string]struct{})
	for _, w := range nlp.Tokenize(nlp.Fold(a)) {
		seen[w] = struct{}{}
	}

	shared := 0
	for _, w := range nlp.Tokenize(nlp.Fold(b)) {
		if _, ok := seen[w]; ok {
			shared++
			delete(seen, w)
		}
	}
	return shared
}
