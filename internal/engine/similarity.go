package engine

import (
	"math"
	"strings"
)

// levenshtein computes the edit distance between two strings using two
// rolling rows.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// editRatio maps edit distance onto [0,1], 1 meaning identical.
func editRatio(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// tokenSetRatio aligns each token of one string with its best match in
// the other and averages both directions, so word order and filler
// tokens matter less than shared vocabulary.
func tokenSetRatio(a, b string) float64 {
	ta, tb := strings.Fields(a), strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	return (directionalTokenRatio(ta, tb) + directionalTokenRatio(tb, ta)) / 2
}

func directionalTokenRatio(from, to []string) float64 {
	var total float64
	for _, tok := range from {
		best := 0.0
		for _, other := range to {
			if r := editRatio(tok, other); r > best {
				best = r
			}
		}
		total += best
	}
	return total / float64(len(from))
}

// bigramDice computes the Dice coefficient over character bigrams.
func bigramDice(a, b string) float64 {
	ba, bb := charBigrams(a), charBigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}
	overlap := 0
	for gram, n := range ba {
		if m, ok := bb[gram]; ok {
			overlap += min(n, m)
		}
	}
	total := 0
	for _, n := range ba {
		total += n
	}
	for _, n := range bb {
		total += n
	}
	return 2 * float64(overlap) / float64(total)
}

func charBigrams(s string) map[string]int {
	runes := []rune(strings.Join(strings.Fields(s), " "))
	grams := make(map[string]int)
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])]++
	}
	return grams
}

// cosineSimilarity computes the cosine of two term-frequency vectors.
func cosineSimilarity(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for term, av := range a {
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
		normA += av * av
	}
	for _, bv := range b {
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// termVector tokenizes text into a frequency vector, dropping
// single-character noise tokens.
func termVector(texts ...string) map[string]float64 {
	vec := make(map[string]float64)
	for _, text := range texts {
		for _, tok := range strings.Fields(NormalizeTitle(text)) {
			if len(tok) < 2 {
				continue
			}
			vec[tok]++
		}
	}
	return vec
}
