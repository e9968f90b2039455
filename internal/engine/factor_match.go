package engine

import (
	"math"
	"strings"

	"github.com/schedcore/courseload-engine/internal/models"
)

// matchScore rates how close the candidate course sits to anything the
// faculty has taught. An exact normalized-code hit short-circuits to a
// perfect score; otherwise the best historical course wins on a blend
// of token-level fuzzy similarity, character-bigram overlap and topic
// cosine. Weak blends floor at the neutral 0.5 and everything above is
// rescaled into [0.5,1]. Teaching the exact same code three or more
// times draws a small anti-over-specialization discount.
func (s *Scorer) matchScore(cand models.CandidateAssignment, history []historySlot) float64 {
	if len(history) == 0 {
		return 0.5
	}
	candCode := NormalizeCode(cand.CourseCode)

	repeats := 0
	best := 0.0
	exact := false
	for _, slot := range history {
		recCode := NormalizeCode(slot.rec.CourseCode)
		if candCode != "" && recCode == candCode {
			exact = true
			repeats++
			continue
		}
		if sim := courseSimilarity(cand.CourseCode, cand.CourseTitle, slot.rec.CourseCode, slot.rec.CourseTitle); sim > best {
			best = sim
		}
	}

	var score float64
	switch {
	case exact:
		score = 1.0
	case best <= s.cfg.WeakMatchThreshold:
		score = 0.5
	default:
		score = 0.5 + 0.5*(best-s.cfg.WeakMatchThreshold)/(1-s.cfg.WeakMatchThreshold)
	}

	if repeats >= 3 {
		score *= 1 - math.Min(0.15, 0.05*float64(repeats-2))
	}
	return clamp01(score)
}

// courseSimilarity blends fuzzy string similarity with topic cosine.
// Codes carrying digits are trusted more than free-text titles, so the
// code leg weighs 88% against 82% for digitless codes.
func courseSimilarity(candCode, candTitle, recCode, recTitle string) float64 {
	codeA := NormalizeTitle(candCode)
	codeB := NormalizeTitle(recCode)
	titleA := NormalizeTitle(candTitle)
	titleB := NormalizeTitle(recTitle)

	codeWeight := 0.82
	if strings.ContainsAny(candCode, "0123456789") {
		codeWeight = 0.88
	}
	tokenSim := codeWeight*tokenSetRatio(codeA, codeB) + (1-codeWeight)*tokenSetRatio(titleA, titleB)
	dice := bigramDice(codeA+" "+titleA, codeB+" "+titleB)
	fuzzy := 0.75*tokenSim + 0.25*dice

	cos := cosineSimilarity(termVector(candCode, candTitle), termVector(recCode, recTitle))
	return 0.6*fuzzy + 0.4*cos
}
