package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedcore/courseload-engine/internal/models"
)

func TestDegreeScoreLevels(t *testing.T) {
	phd := degreeScore(models.FacultyProfile{Name: "Cruz, Juan, PhD"})
	masters := degreeScore(models.FacultyProfile{Name: "Reyes, Maria", Education: "MS Computer Science"})
	bachelor := degreeScore(models.FacultyProfile{Name: "Santos, Pedro", Education: "BS Information Technology"})
	blank := degreeScore(models.FacultyProfile{Name: "Lim, Ana"})

	assert.InDelta(t, 1-math.Exp(-1.1), phd, 1e-9)
	assert.InDelta(t, 1-math.Exp(-0.35), masters, 1e-9)
	assert.Equal(t, 0.2, bachelor)
	assert.Equal(t, 0.25, blank)
	assert.Greater(t, phd, masters)
	assert.Greater(t, masters, blank)
}

func TestDegreeScoreCredentialSources(t *testing.T) {
	// Credentials mined from the suffix, the credentials field and the
	// education field all count.
	fromSuffix := degreeScore(models.FacultyProfile{Name: "Reyes, Maria PhD"})
	fromField := degreeScore(models.FacultyProfile{Name: "Reyes, Maria", Credentials: "Ph.D."})
	assert.Equal(t, fromSuffix, fromField)
}

func TestDegreeScoreProfessionalBonuses(t *testing.T) {
	cpa := degreeScore(models.FacultyProfile{Name: "Cruz, Juan", Credentials: "CPA"})
	assert.InDelta(t, 1-math.Exp(-0.45), cpa, 1e-9)

	atty := degreeScore(models.FacultyProfile{Name: "Cruz, Juan", Credentials: "Atty., JD"})
	assert.Greater(t, atty, cpa)

	// Stacked credentials keep climbing but with diminishing returns.
	stacked := degreeScore(models.FacultyProfile{Name: "Cruz, Juan, PhD", Credentials: "CPA", Education: "MBA"})
	assert.Greater(t, stacked, degreeScore(models.FacultyProfile{Name: "Cruz, Juan, PhD"}))
	assert.Less(t, stacked, 1.0)
}

func TestDegreeScoreDottedAbbreviation(t *testing.T) {
	// "Ph.D." splits into PH D, which still reads as doctoral.
	score := degreeScore(models.FacultyProfile{Name: "Reyes, Maria", Education: "Ph.D. in Education"})
	assert.InDelta(t, 1-math.Exp(-1.1), score, 1e-9)
}
