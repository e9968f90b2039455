package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("kitten", "kitten"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 5, levenshtein("", "abcde"))
	assert.Equal(t, 5, levenshtein("abcde", ""))
	assert.Equal(t, 1, levenshtein("cs101", "cs102"))
}

func TestEditRatio(t *testing.T) {
	assert.Equal(t, 1.0, editRatio("cs101", "cs101"))
	assert.InDelta(t, 0.8, editRatio("cs101", "cs102"), 1e-9)
	assert.Equal(t, 0.0, editRatio("", ""))
	assert.Equal(t, 0.0, editRatio("ab", "xy"))
}

func TestTokenSetRatioOrderInsensitive(t *testing.T) {
	a := tokenSetRatio("intro to programming", "programming to intro")
	assert.InDelta(t, 1.0, a, 1e-9)

	partial := tokenSetRatio("data structures", "data structures and algorithms")
	assert.Greater(t, partial, 0.6)
	assert.Less(t, partial, 1.0)

	assert.Equal(t, 0.0, tokenSetRatio("", "anything"))
}

func TestBigramDice(t *testing.T) {
	assert.InDelta(t, 1.0, bigramDice("programming", "programming"), 1e-9)
	assert.Equal(t, 0.0, bigramDice("ab", "xy"))
	assert.Equal(t, 0.0, bigramDice("", "abc"))

	near := bigramDice("programming 1", "programming 2")
	assert.Greater(t, near, 0.8)
}

func TestCosineSimilarity(t *testing.T) {
	a := termVector("CS101", "Intro to Programming")
	b := termVector("CS102", "Intro to Programming II")
	c := termVector("ACC101", "Basic Accounting")

	assert.Greater(t, cosineSimilarity(a, b), cosineSimilarity(a, c))
	assert.InDelta(t, 1.0, cosineSimilarity(a, a), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity(a, termVector("")))
}

func TestTermVectorDropsNoiseTokens(t *testing.T) {
	vec := termVector("Intro to Programming 1")
	assert.Contains(t, vec, "intro")
	assert.Contains(t, vec, "programming")
	assert.Contains(t, vec, "to")
	assert.NotContains(t, vec, "1")
}
