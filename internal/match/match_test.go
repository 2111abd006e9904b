package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"easyinit:generate", "easyinit:genrate", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"easyinit:generate", "other:generate"}

	got, ok := Closest("easyinit:generat", candidates, 2)
	assert.True(t, ok)
	assert.Equal(t, "easyinit:generate", got)

	_, ok = Closest("go:generate", candidates, 2)
	assert.False(t, ok)

	_, ok = Closest("anything", nil, 2)
	assert.False(t, ok)
}

func TestSuspectMarker(t *testing.T) {
	markers := []string{"easyinit:generate"}

	tests := []struct {
		body    string
		want    string
		suspect bool
	}{
		{"easyinit:generate", "", false},
		{"easyinit:generate  ", "", false},
		{"easyinit:generate member", "easyinit:generate", true},
		{"easyinit:generate\tmember", "easyinit:generate", true},
		{"easyinit:genrate", "easyinit:generate", true},
		{"easyInit:generate", "easyinit:generate", true},
		{" easyinit:generate", "", false},
		{"go:generate go run ./cmd", "", false},
		{"nolint:errcheck", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, ok := SuspectMarker(tt.body, markers)
			assert.Equal(t, tt.suspect, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
