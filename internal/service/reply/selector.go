// Package reply turns a user message into a bot reply by running an
// ordered chain of stages and returning the first one that answers.
package reply

import (
	"context"
	"math/rand/v2"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/service/knowledge"
	"github.com/sandevgo/bodai/pkg/log"
)

const (
	MemorySimilarityThreshold    = 0.05
	KnowledgeSimilarityThreshold = 0.15
	FuzzyRecallThreshold         = 50
	FuzzyHedgeThreshold          = 60
	FuzzyConfidentThreshold      = 70
)

// Stage names, in chain order.
const (
	StageMemorize     = "memorize"
	StageProfileLearn = "profile_learn"
	StageForget       = "forget"
	StagePattern      = "pattern"
	StageCanned       = "canned"
	StageProfileQuery = "profile_query"
	StageMemoryTFIDF  = "memory_tfidf"
	StageMemoryFuzzy  = "memory_fuzzy"
	StageKnowledge    = "knowledge"
	StageFallback     = "fallback"
)

// Stage answers a turn or passes it on. Errors abort the chain.
type Stage interface {
	Name() string
	Reply(ctx context.Context, turn *Turn) (string, bool, error)
}

type stageFunc struct {
	name string
	fn   func(ctx context.Context, turn *Turn) (string, bool, error)
}

func (s stageFunc) Name() string { return s.name }

func (s stageFunc) Reply(ctx context.Context, turn *Turn) (string, bool, error) {
	return s.fn(ctx, turn)
}

type Reply struct {
	Text  string
	Stage string
}

type Option func(*Selector)

// WithPicker replaces the random choice among pattern responses.
func WithPicker(pick func(n int) int) Option {
	return func(s *Selector) {
		s.pick = pick
	}
}

type Selector struct {
	lex      *Lexicon
	memories core.MemoryRepository
	profile  core.ProfileRepository
	kb       *knowledge.Base
	pick     func(n int) int
	stages   []Stage
}

func NewSelector(
	lex *Lexicon,
	memories core.MemoryRepository,
	profile core.ProfileRepository,
	kb *knowledge.Base,
	opts ...Option,
) *Selector {
	s := &Selector{
		lex:      lex,
		memories: memories,
		profile:  profile,
		kb:       kb,
		pick:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.stages = []Stage{
		stageFunc{StageMemorize, s.memorize},
		stageFunc{StageProfileLearn, s.learnProfile},
		stageFunc{StageForget, s.forget},
		stageFunc{StagePattern, s.matchPattern},
		stageFunc{StageCanned, s.canned},
		stageFunc{StageProfileQuery, s.describeProfile},
		stageFunc{StageMemoryTFIDF, s.recallBySimilarity},
		stageFunc{StageMemoryFuzzy, s.recallByFuzzy},
		stageFunc{StageKnowledge, s.lookupKnowledge},
		stageFunc{StageFallback, s.fallback},
	}
	return s
}

// Stages lists the chain in evaluation order.
func (s *Selector) Stages() []Stage {
	return s.stages
}

// Select runs the chain. The fallback stage always answers, so a nil
// error means a non-empty reply.
func (s *Selector) Select(ctx context.Context, text string) (Reply, error) {
	turn := newTurn(text, s.memories)
	logger := log.FromCtx(ctx)

	for _, stage := range s.stages {
		answer, ok, err := stage.Reply(ctx, turn)
		if err != nil {
			return Reply{}, err
		}
		if ok {
			logger.Debug().Str("stage", stage.Name()).Msg("reply selected")
			return Reply{Text: answer, Stage: stage.Name()}, nil
		}
	}

	// unreachable while fallback is the last stage
	return Reply{Text: s.stillLearning(), Stage: StageFallback}, nil
}
