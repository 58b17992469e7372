package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "plain ascii", input: "hello world", expected: "hello world"},
		{name: "lowercase", input: "îmi place cafeaua și ceaiul", expected: "imi place cafeaua si ceaiul"},
		{name: "uppercase", input: "ĂÂÎȘŞȚŢ", expected: "AAISSTT"},
		{name: "cedilla variants", input: "şţ", expected: "st"},
		{name: "other accents untouched", input: "café", expected: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveDiacritics(tt.input))
		})
	}
}

func TestRemoveDiacritics_Idempotent(t *testing.T) {
	inputs := []string{"Știu că îți place ceaiul", "ŢARĂ", "nothing to do", ""}
	for _, in := range inputs {
		once := RemoveDiacritics(in)
		assert.Equal(t, once, RemoveDiacritics(once), "input %q", in)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple", input: "I like coffee", expected: []string{"i", "like", "coffee"}},
		{name: "punctuation", input: "Hello, world! How are you?", expected: []string{"hello", "world", "how", "are", "you"}},
		{name: "digits kept", input: "room 101", expected: []string{"room", "101"}},
		{name: "romanian diacritics kept", input: "Cum te numești?", expected: []string{"cum", "te", "numești"}},
		{name: "uppercase diacritics lowered", input: "ȘTIU", expected: []string{"știu"}},
		{name: "apostrophe splits", input: "what's up", expected: []string{"what", "s", "up"}},
		{name: "whitespace only", input: "  \t\n ", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(tt.expected) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenize_OnlyMarksAndPunctuation(t *testing.T) {
	assert.Empty(t, Tokenize("´ ¨ ˘ ˆ ¸ ... !? -- ̦́"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "tine minte ca imi place", Fold("Ține minte că îmi place"))
	assert.Equal(t, len([]rune("ȘȚĂ abc")), len([]rune(Fold("ȘȚĂ abc"))))
}

func TestAfter(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   string
		ok     bool
	}{
		{name: "english", text: "remember that I like hiking", marker: "that", want: "I like hiking", ok: true},
		{name: "case insensitive", text: "Remember THAT I like hiking", marker: "that", want: "I like hiking", ok: true},
		{name: "diacritic insensitive", text: "Ține minte că mâine plec", marker: "ca", want: "mâine plec", ok: true},
		{name: "first occurrence", text: "note that that is fine", marker: "that", want: "that is fine", ok: true},
		{name: "nothing after", text: "remember that", marker: "that", want: "", ok: true},
		{name: "missing marker", text: "hello there", marker: "that", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := After(tt.text, tt.marker)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
