package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "i like hiking", b: "i like hiking", want: 100},
		{name: "substring", a: "hiking", b: "I like hiking in the mountains", want: 100},
		{name: "case insensitive", a: "HIKING", b: "i like hiking", want: 100},
		{name: "order independent", a: "I like hiking in the mountains", b: "hiking", want: 100},
		{name: "diacritics kept", a: "cafeaua", b: "Îmi place cafeaua", want: 100},
		// "like hiking" is a prefix window: 2*11/(13+11)
		{name: "prefix window", a: "like hiking a lot", b: "I like hiking", want: 91.67},
		// "b" against "ab": 2*1/(2+1)
		{name: "swapped pair", a: "ab", b: "ba", want: 66.67},
		// "bcd" against "abcd": 2*3/(4+3)
		{name: "equal length uses edges", a: "abcd", b: "bcda", want: 85.71},
		// "hiking" against "hikimg": 2*5/12
		{name: "one typo", a: "hikimg", b: "i like hiking", want: 83.33},
		{name: "dropped letter", a: "tuesdy", b: "The meeting is on Tuesday", want: 83.33},
		// "seaside" against "sexxxde": 2*4/14
		{name: "weak overlap", a: "sexxxde", b: "I went to the seaside", want: 57.14},
		{name: "unrelated", a: "zzzz", b: "i like hiking", want: 0},
		{name: "empty", a: "", b: "i like hiking", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PartialRatio(tt.a, tt.b), 0.01)
		})
	}
}

func TestPartialRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"like hiking a lot", "I like hiking"},
		{"ab", "ba"},
		{"forget the dentist", "dentist on friday"},
	}

	for _, p := range pairs {
		assert.InDelta(t, PartialRatio(p[0], p[1]), PartialRatio(p[1], p[0]), 1e-9, p[0])
	}
}
