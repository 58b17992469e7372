// Package knowledge holds the fixed question/answer base and its TF-IDF
// index. The base is loaded once and never mutated.
package knowledge

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/nlp"
	"github.com/sandevgo/bodai/pkg/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.json
var embedded embed.FS

type Base struct {
	items []core.KnowledgeItem
	index *nlp.Index
}

// New indexes the questions of items.
func New(items []core.KnowledgeItem) *Base {
	questions := make([]string, len(items))
	for i, item := range items {
		questions[i] = item.Question
	}

	return &Base{
		items: items,
		index: nlp.NewIndex(questions),
	}
}

// Load reads the base from path (JSON, or YAML by extension). An empty
// path selects the built-in base for language.
func Load(ctx context.Context, path, language string) (*Base, error) {
	var (
		items []core.KnowledgeItem
		err   error
	)

	if path == "" {
		items, err = loadEmbedded(language)
	} else {
		items, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Info().
		Int("count", len(items)).
		Str("source", sourceName(path, language)).
		Msg("knowledge base loaded")

	return New(items), nil
}

func (b *Base) Len() int {
	return len(b.items)
}

// Lookup returns the answer whose question best matches query and the
// cosine similarity behind it.
func (b *Base) Lookup(query string) (core.KnowledgeItem, float64, bool) {
	match, ok := b.index.Best(query)
	if !ok {
		return core.KnowledgeItem{}, 0, false
	}
	return b.items[match.Index], match.Score, true
}

func loadEmbedded(language string) ([]core.KnowledgeItem, error) {
	data, err := embedded.ReadFile(fmt.Sprintf("data/knowledge_%s.json", language))
	if err != nil {
		return nil, fmt.Errorf("no built-in knowledge base for language %q: %w", language, err)
	}
	return decode(data, ".json")
}

func loadFile(path string) ([]core.KnowledgeItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge base: %w", err)
	}
	return decode(data, strings.ToLower(filepath.Ext(path)))
}

func decode(data []byte, ext string) ([]core.KnowledgeItem, error) {
	var items []core.KnowledgeItem

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse knowledge yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse knowledge json: %w", err)
		}
	}

	for i, item := range items {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			return nil, fmt.Errorf("knowledge entry %d: question and answer are required", i)
		}
	}

	return items, nil
}

func sourceName(path, language string) string {
	if path == "" {
		return "builtin:" + language
	}
	return path
}
