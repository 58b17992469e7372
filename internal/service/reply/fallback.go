package reply

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/nlp"
)

// fallback always answers: mood first, then small talk, then the generic
// still-learning line.
func (s *Selector) fallback(ctx context.Context, turn *Turn) (string, bool, error) {
	if answer, ok := s.mood(ctx, turn); ok {
		return answer, true, nil
	}

	for _, p := range s.lex.SmallTalk {
		if hasWords(turn.Words, p.Key) {
			return p.Response, true, nil
		}
	}

	return s.stillLearning(), true, nil
}

func (s *Selector) mood(ctx context.Context, turn *Turn) (string, bool) {
	positive := firstWord(turn.Words, s.lex.PositiveMoods)
	negative := firstWord(turn.Words, s.lex.NegativeMoods)
	if !positive && !negative {
		return "", false
	}

	likes, place := s.personalize(ctx)

	if positive {
		if len(likes) > 0 {
			return fmt.Sprintf(s.lex.PositiveWithLike, likes[0]), true
		}
		return s.lex.Positive, true
	}

	switch {
	case strings.Contains(nlp.Fold(strings.Join(likes, " ")), s.lex.ComfortItem):
		return s.lex.NegativeComfort, true
	case place != "":
		return fmt.Sprintf(s.lex.NegativeWithPlace, place), true
	}
	return s.lex.Negative, true
}

// personalize returns liked things (hobbies and preferences, newest first)
// and the most recent location.
func (s *Selector) personalize(ctx context.Context) ([]string, string) {
	var likes []string
	var place string

	for _, f := range s.listFacts(ctx) {
		switch f.Category {
		case core.CategoryHobby, core.CategoryPreference:
			likes = append(likes, f.Info)
		case core.CategoryLocation:
			if place == "" {
				place = f.Info
			}
		}
	}
	return likes, place
}

func (s *Selector) stillLearning() string {
	return fmt.Sprintf(s.lex.StillLearning, s.lex.Personality)
}

func firstWord(words []string, keys []string) bool {
	for _, k := range keys {
		if hasWords(words, k) {
			return true
		}
	}
	return false
}
