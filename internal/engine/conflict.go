package engine

import (
	"sort"
	"strings"

	"github.com/schedcore/courseload-engine/internal/models"
)

// Course keywords marking offerings that are routinely left unscheduled
// (labs, physical education, civic training). A candidate matching one
// of these with a placeholder day or time is exempt from double-booking
// checks.
var unscheduledCourseKeywords = []string{
	"LAB",
	"LABORATORY",
	"PE ",
	"P.E",
	"PATHFIT",
	"NSTP",
	"CWTS",
	"ROTC",
	"DEFENSE TACTICS",
}

func isUnscheduledTolerant(code, title string) bool {
	probe := strings.ToUpper(code) + " " + strings.ToUpper(title) + " "
	for _, kw := range unscheduledCourseKeywords {
		if strings.Contains(probe, kw) {
			return true
		}
	}
	return false
}

// DetectConflicts decides whether the candidate collides with the
// snapshot. Double-booking of the same faculty identity is checked
// first, then duplicate courses within the candidate's section. The
// verdict and detail list are invariant under permutation of the
// snapshot. Pass the record under edit through CandidateAssignment.
// ExcludeID so it never conflicts with itself.
func DetectConflicts(cand models.CandidateAssignment, idx *ScheduleIndex) models.ConflictReport {
	var details []models.ConflictDetail

	skipDoubleBooking := isUnscheduledTolerant(cand.CourseCode, cand.CourseTitle) &&
		(IsPlaceholder(cand.Day) || IsPlaceholder(cand.Time))

	if !skipDoubleBooking {
		details = append(details, doubleBookings(cand, idx)...)
	}
	details = append(details, duplicateCourses(cand, idx)...)

	return models.ConflictReport{Conflict: len(details) > 0, Details: details}
}

func doubleBookings(cand models.CandidateAssignment, idx *ScheduleIndex) []models.ConflictDetail {
	candTerm := NormalizeTerm(cand.Term)
	candDays := ParseDaySet(cand.Day)
	candRange := ParseTimeBlock(cand.Time)
	candKey := TimeKey(cand.Time)

	var details []models.ConflictDetail
	for _, rec := range idx.FacultyRecords(cand.FacultyID, cand.FacultyName) {
		if rec.ID != "" && rec.ID == cand.ExcludeID {
			continue
		}
		if NormalizeTerm(rec.Term) != candTerm {
			continue
		}
		if !candDays.Intersects(ParseDaySet(rec.Day)) {
			continue
		}
		if !timesOverlap(candRange, candKey, rec.Time) {
			continue
		}
		details = append(details, models.ConflictDetail{Reason: models.ReasonDoubleBooked, Item: rec})
	}
	sortDetails(details)
	return details
}

// timesOverlap applies the half-open interval test when both sides
// parse. When either side lacks numeric bounds the check degrades to
// exact canonical-key equality, so two identically written but
// unparseable blocks still collide while everything else passes.
func timesOverlap(candRange *models.TimeRange, candKey, recTime string) bool {
	recRange := ParseTimeBlock(recTime)
	if candRange != nil && recRange != nil {
		return max(candRange.Start, recRange.Start) < min(candRange.End, recRange.End)
	}
	recKey := TimeKey(recTime)
	return candKey != "" && candKey == recKey
}

func duplicateCourses(cand models.CandidateAssignment, idx *ScheduleIndex) []models.ConflictDetail {
	candCode := NormalizeCode(cand.CourseCode)
	candTitle := NormalizeTitle(cand.CourseTitle)

	var details []models.ConflictDetail
	for _, rec := range idx.SectionRecords(cand.Section, cand.Term) {
		if rec.ID != "" && rec.ID == cand.ExcludeID {
			continue
		}
		sameCode := candCode != "" && NormalizeCode(rec.CourseCode) == candCode
		sameTitle := candTitle != "" && NormalizeTitle(rec.CourseTitle) == candTitle
		if !sameCode && !sameTitle {
			continue
		}
		details = append(details, models.ConflictDetail{Reason: models.ReasonDuplicateCourse, Item: rec})
	}
	sortDetails(details)
	return details
}

func sortDetails(details []models.ConflictDetail) {
	sort.Slice(details, func(i, j int) bool {
		if details[i].Item.ID != details[j].Item.ID {
			return details[i].Item.ID < details[j].Item.ID
		}
		return details[i].Item.CourseCode < details[j].Item.CourseCode
	})
}
