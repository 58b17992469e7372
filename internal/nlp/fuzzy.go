package nlp

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// PartialRatio scores in [0,100] how well the shorter string matches its
// best-aligned window inside the longer one. Both sides are lowercased.
//
// Each window is scored with the Indel ratio 2*LCS/(len(a)+len(b)). Besides
// the full-length windows, the shorter prefixes and suffixes of the longer
// string are tried, so a needle hanging off either edge still aligns.
func PartialRatio(a, b string) float64 {
	s, l := []rune(strings.ToLower(a)), []rune(strings.ToLower(b))
	if len(s) > len(l) {
		s, l = l, s
	}
	if len(s) == 0 {
		return 0
	}

	m := newMatcher(s)
	best := m.best(l)
	if best < 100 && len(s) == len(l) {
		if swapped := newMatcher(l).best(s); swapped > best {
			best = swapped
		}
	}
	return best
}

type matcher struct {
	needle []rune
	text   string
	chars  map[rune]struct{}
	dmp    *diffmatchpatch.DiffMatchPatch
}

func newMatcher(needle []rune) *matcher {
	chars := make(map[rune]struct{}, len(needle))
	for _, r := range needle {
		chars[r] = struct{}{}
	}

	dmp := diffmatchpatch.New()
	// no deadline keeps the diff minimal, so its equal runs form an LCS
	dmp.DiffTimeout = 0

	return &matcher{needle: needle, text: string(needle), chars: chars, dmp: dmp}
}

func (m *matcher) has(r rune) bool {
	_, ok := m.chars[r]
	return ok
}

// best slides the needle over hay, skipping windows whose open edge holds a
// rune the needle lacks.
func (m *matcher) best(hay []rune) float64 {
	n, h := len(m.needle), len(hay)
	best := 0.0
	try := func(window []rune) bool {
		if score := m.ratio(window); score > best {
			best = score
		}
		return best == 100
	}

	for i := 1; i < n; i++ {
		if m.has(hay[i-1]) && try(hay[:i]) {
			return best
		}
	}
	for i := 0; i+n <= h; i++ {
		if m.has(hay[i+n-1]) && try(hay[i:i+n]) {
			return best
		}
	}
	for i := h - n + 1; i < h; i++ {
		if m.has(hay[i]) && try(hay[i:]) {
			return best
		}
	}
	return best
}

func (m *matcher) ratio(window []rune) float64 {
	total := len(m.needle) + len(window)

	lcs := 0
	for _, d := range m.dmp.DiffMain(m.text, string(window), false) {
		if d.Type == diffmatchpatch.DiffEqual {
			lcs += utf8.RuneCountInString(d.Text)
		}
	}
	return 100 * float64(2*lcs) / float64(total)
}
