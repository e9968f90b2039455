package engine

import (
	"math"
	"strings"

	"github.com/schedcore/courseload-engine/internal/models"
)

// Credential token weights. Counts feed a diminishing-returns curve, so
// a second doctorate helps far less than the first.
const (
	doctoralTokenWeight = 1.1
	mastersTokenWeight  = 0.35
	licenseTokenWeight  = 0.12

	attorneyBonus = 0.5
	cpaBonus      = 0.45
	engineerBonus = 0.4
)

var doctoralTokens = []string{"PHD", "PH D", "EDD", "ED D", "DBA", "MD", "DSC", "DIT", "DPA", "DOCTOR", "DOCTORATE", "DR"}

var mastersTokens = []string{"MA", "MS", "MSC", "MBA", "MSIT", "MIT", "MAED", "MAE", "MPA", "MAN", "MED", "MM", "MASTER", "MASTERS"}

var licenseTokens = []string{"LPT", "RN", "LICENSED", "LICENSURE", "BOARD PASSER", "LET", "RME", "REE", "ECE", "RPM", "REGISTERED"}

var bachelorTokens = []string{"BS", "BA", "AB", "BSIT", "BSED", "BEED", "BACHELOR"}

// degreeScore mines credential tokens from the faculty's name suffixes
// and free-text credential fields, then maps the weighted count sum
// through 1-exp(-sum). A profile showing only bachelor-level study
// lands at 0.2; a profile with no credential signal at all sits at a
// 0.25 baseline rather than zero.
func degreeScore(profile models.FacultyProfile) float64 {
	text := credentialCorpus(profile)

	var sum float64
	sum += doctoralTokenWeight * float64(countTokenHits(text, doctoralTokens))
	sum += mastersTokenWeight * float64(countTokenHits(text, mastersTokens))
	sum += licenseTokenWeight * float64(countTokenHits(text, licenseTokens))

	if strings.Contains(text, " ATTY ") || containsToken(text, "JD") || strings.Contains(text, " ATTORNEY ") {
		sum += attorneyBonus
	}
	if containsToken(text, "CPA") {
		sum += cpaBonus
	}
	if containsToken(text, "ENGR") || strings.Contains(text, " ENGINEER ") || containsToken(text, "AR") || strings.Contains(text, " ARCHITECT ") {
		sum += engineerBonus
	}

	if sum > 0 {
		return 1 - math.Exp(-sum)
	}
	if countTokenHits(text, bachelorTokens) > 0 {
		return 0.2
	}
	return 0.25
}

// credentialCorpus builds one padded, uppercased token stream from the
// name suffixes and the free-text credential fields.
func credentialCorpus(profile models.FacultyProfile) string {
	tokens := TokenizeName(profile.Name)
	parts := []string{tokens.CredentialText(), profile.Credentials, profile.Education}
	var b strings.Builder
	b.WriteByte(' ')
	for _, part := range parts {
		for _, word := range strings.FieldsFunc(strings.ToUpper(part), func(r rune) bool {
			return !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
		}) {
			b.WriteString(word)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func containsToken(corpus, token string) bool {
	return strings.Contains(corpus, " "+token+" ")
}

func countTokenHits(corpus string, tokens []string) int {
	count := 0
	for _, tok := range tokens {
		count += strings.Count(corpus, " "+tok+" ")
	}
	return count
}
