package reply

import (
	"fmt"
	"strings"

	"github.com/sandevgo/bodai/internal/nlp"
)

// recall phrases a reply around a matched memory. fuzzy is nil when the
// match came from TF-IDF.
func (s *Selector) recall(turn *Turn, memory string, fuzzy *float64) string {
	score := 0.0
	if fuzzy != nil {
		score = *fuzzy
	}

	if sharedWords(turn.Text, memory) < 2 && score < FuzzyConfidentThreshold {
		return s.lex.RecallUnclear
	}

	folded := nlp.Fold(memory)
	switch {
	case containsMarker(folded, s.lex.LikingMarkers):
		return fmt.Sprintf(s.lex.RecallLiking, memory)
	case containsMarker(folded, s.lex.OutingMarkers):
		return fmt.Sprintf(s.lex.RecallOuting, memory)
	case containsMarker(folded, s.lex.EatingMarkers):
		return fmt.Sprintf(s.lex.RecallEating, memory)
	case fuzzy != nil && *fuzzy > FuzzyHedgeThreshold:
		return fmt.Sprintf(s.lex.RecallHedge, memory)
	}
	return fmt.Sprintf(s.lex.RecallPlain, memory)
}

func containsMarker(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
