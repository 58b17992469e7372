package reply

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/nlp"
	"github.com/sandevgo/bodai/pkg/log"
)

func (s *Selector) memorize(ctx context.Context, turn *Turn) (string, bool, error) {
	for _, trigger := range s.lex.MemorizeTriggers {
		if !strings.HasPrefix(turn.Folded, trigger.Phrase) {
			continue
		}

		info, _ := nlp.After(turn.Text, trigger.Keyword)
		if info == "" {
			return s.lex.MemorizeEmpty, true, nil
		}

		if _, err := s.memories.AddMemory(ctx, info); err != nil {
			return "", false, fmt.Errorf("memorize: %w", err)
		}
		return fmt.Sprintf(s.lex.MemorizeDone, info), true, nil
	}
	return "", false, nil
}

func (s *Selector) learnProfile(ctx context.Context, turn *Turn) (string, bool, error) {
	for _, trigger := range s.lex.ProfileTriggers {
		if !strings.Contains(turn.Folded, trigger.Phrase) {
			continue
		}

		info, _ := nlp.After(turn.Text, trigger.Phrase)
		if info == "" {
			continue
		}

		if _, err := s.profile.AddFact(ctx, trigger.Category, info); err != nil {
			return "", false, fmt.Errorf("learn profile: %w", err)
		}
		return fmt.Sprintf(s.lex.ProfileNoted, trigger.Phrase, info), true, nil
	}
	return "", false, nil
}

func (s *Selector) forget(ctx context.Context, turn *Turn) (string, bool, error) {
	trigger := s.lex.ForgetTrigger
	if !strings.HasPrefix(turn.Folded, trigger.Phrase) {
		return "", false, nil
	}

	info, _ := nlp.After(turn.Text, trigger.Keyword)
	if info == "" {
		return s.lex.ForgetEmpty, true, nil
	}

	memories, err := turn.Memories(ctx)
	if err != nil {
		return "", false, fmt.Errorf("forget: %w", err)
	}

	var forgotten []string
	for _, m := range memories {
		if nlp.PartialRatio(info, m.Text) <= FuzzyConfidentThreshold {
			continue
		}
		if err := s.memories.DeleteMemory(ctx, m.ID); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				continue
			}
			return "", false, fmt.Errorf("forget memory %d: %w", m.ID, err)
		}
		forgotten = append(forgotten, m.Text)
	}

	if len(forgotten) == 0 {
		return s.lex.ForgetNone, true, nil
	}
	return fmt.Sprintf(s.lex.ForgetDone, strings.Join(forgotten, ", ")), true, nil
}

func (s *Selector) matchPattern(ctx context.Context, turn *Turn) (string, bool, error) {
	for _, p := range s.lex.Patterns {
		if p.Regexp.MatchString(turn.Folded) && len(p.Responses) > 0 {
			return p.Responses[s.pick(len(p.Responses))], true, nil
		}
	}
	return "", false, nil
}

func (s *Selector) canned(ctx context.Context, turn *Turn) (string, bool, error) {
	for _, c := range s.lex.Canned {
		if strings.Contains(turn.Folded, c.Key) {
			return c.Response, true, nil
		}
	}
	return "", false, nil
}

func (s *Selector) describeProfile(ctx context.Context, turn *Turn) (string, bool, error) {
	asked := false
	for _, q := range s.lex.ProfileQueries {
		if strings.Contains(turn.Folded, q) {
			asked = true
			break
		}
	}
	if !asked {
		return "", false, nil
	}

	facts := s.listFacts(ctx)

	clauses := make([]string, 0, len(facts))
	for _, f := range facts {
		if tmpl, ok := s.lex.ProfileClauses[f.Category]; ok {
			clauses = append(clauses, fmt.Sprintf(tmpl, f.Info))
		}
	}

	if len(clauses) == 0 {
		return s.lex.ProfileEmpty, true, nil
	}
	return fmt.Sprintf(s.lex.ProfileSummary, strings.Join(clauses, s.lex.ClauseJoiner)), true, nil
}

func (s *Selector) recallBySimilarity(ctx context.Context, turn *Turn) (string, bool, error) {
	memories := s.loadMemories(ctx, turn)
	if len(memories) == 0 {
		return "", false, nil
	}

	texts := make([]string, len(memories))
	for i, m := range memories {
		texts[i] = m.Text
	}

	// the memory corpus changes between requests, so its model is never reused
	match, ok := nlp.NewIndex(texts).Best(turn.Text)
	log.FromCtx(ctx).Debug().Float64("score", match.Score).Msg("memory tf-idf")

	if !ok || match.Score <= MemorySimilarityThreshold {
		return "", false, nil
	}
	return s.recall(turn, memories[match.Index].Text, nil), true, nil
}

func (s *Selector) recallByFuzzy(ctx context.Context, turn *Turn) (string, bool, error) {
	memories := s.loadMemories(ctx, turn)
	if len(memories) == 0 {
		return "", false, nil
	}

	personal := containsAny(turn.Folded, s.lex.PersonalQueries)
	candidates := memories
	if personal {
		candidates = candidates[:0:0]
		for _, m := range memories {
			if containsAny(nlp.Fold(m.Text), s.lex.PersonalMarkers) {
				candidates = append(candidates, m)
			}
		}
	}

	bestIdx, bestScore := -1, 0.0
	query := strings.ToLower(turn.Text)
	for i, m := range candidates {
		if score := nlp.PartialRatio(query, m.Text); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	log.FromCtx(ctx).Debug().
		Float64("score", bestScore).
		Bool("personal", personal).
		Msg("memory fuzzy")

	if bestIdx < 0 || bestScore <= FuzzyRecallThreshold {
		return "", false, nil
	}
	return s.recall(turn, candidates[bestIdx].Text, &bestScore), true, nil
}

func (s *Selector) lookupKnowledge(ctx context.Context, turn *Turn) (string, bool, error) {
	if s.kb == nil {
		return "", false, nil
	}

	item, score, ok := s.kb.Lookup(turn.Text)
	log.FromCtx(ctx).Debug().Float64("score", score).Msg("knowledge tf-idf")

	if !ok || score <= KnowledgeSimilarityThreshold {
		return "", false, nil
	}
	return item.Answer, true, nil
}

// loadMemories degrades a failed read to an empty corpus.
func (s *Selector) loadMemories(ctx context.Context, turn *Turn) []core.Memory {
	memories, err := turn.Memories(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to load memories, skipping recall")
		return nil
	}
	return memories
}

func (s *Selector) listFacts(ctx context.Context) []core.ProfileFact {
	facts, err := s.profile.ListFacts(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to load profile")
		return nil
	}
	return facts
}
