package engine

import (
	"regexp"
	"strconv"

	"github.com/schedcore/courseload-engine/internal/models"
)

// historySlot is one historical record with its parsed time and day
// views, computed once per scoring call.
type historySlot struct {
	rec     models.ScheduleRecord
	tr      *models.TimeRange
	days    DaySet
	termOrd int
}

var schoolYearRe = regexp.MustCompile(`\d{4}`)

// termOrdinal places a school-year/term pair on a single monotone axis
// so "term-order steps" between periods are simple differences. Each
// school year spans three steps: 1st, 2nd, then the semestral period.
func termOrdinal(schoolYear, term string) int {
	year := 0
	if m := schoolYearRe.FindString(schoolYear); m != "" {
		year, _ = strconv.Atoi(m)
	}
	idx := 0
	switch NormalizeTerm(term) {
	case "2nd":
		idx = 1
	case "sem":
		idx = 2
	}
	return year*3 + idx
}

// buildHistory parses the faculty's records once. The slice order
// follows the identity index, which is already sorted by record id.
func buildHistory(records []models.ScheduleRecord) []historySlot {
	slots := make([]historySlot, 0, len(records))
	for _, rec := range records {
		slots = append(slots, historySlot{
			rec:     rec,
			tr:      ParseTimeBlock(rec.Time),
			days:    ParseDaySet(rec.Day),
			termOrd: termOrdinal(rec.SchoolYear, rec.Term),
		})
	}
	return slots
}

// referenceOrdinal anchors recency on the candidate's period when it is
// known, otherwise on the most recent period seen in the history.
func referenceOrdinal(cand models.CandidateAssignment, history []historySlot) int {
	if cand.SchoolYear != "" || cand.Term != "" {
		if ord := termOrdinal(cand.SchoolYear, cand.Term); ord > 2 {
			return ord
		}
	}
	ref := 0
	for _, slot := range history {
		if slot.termOrd > ref {
			ref = slot.termOrd
		}
	}
	return ref
}

// stepsBack returns how many term-order steps a record sits behind the
// reference period, never negative.
func stepsBack(ref, termOrd int) int {
	if termOrd >= ref {
		return 0
	}
	return ref - termOrd
}
