package models

// Term labels used across schedule records.
const (
	TermFirst     = "1st"
	TermSecond    = "2nd"
	TermSemestral = "Sem"
)

// ScheduleRecord is the canonical shape of one existing offering in the
// schedule snapshot. Upstream rows carry many optional field aliases;
// the adapter package resolves them so the engine only ever sees this
// type. Records are immutable inputs and never persisted by the engine.
type ScheduleRecord struct {
	ID           string  `json:"id"`
	FacultyID    string  `json:"faculty_id"`
	FacultyName  string  `json:"faculty_name"`
	CourseCode   string  `json:"course_code"`
	CourseTitle  string  `json:"course_title"`
	Section      string  `json:"section"`
	Term         string  `json:"term"`
	Day          string  `json:"day"`
	Time         string  `json:"time"`
	SchoolYear   string  `json:"school_year"`
	Units        float64 `json:"units"`
	Program      string  `json:"program"`
	Department   string  `json:"department"`
	GradesStatus string  `json:"grades_status,omitempty"`
	Locked       bool    `json:"locked"`
}

// CandidateAssignment is the proposed faculty/time/section assignment
// under evaluation. The caller owns construction and minimal
// completeness; the engine treats it as read-only.
type CandidateAssignment struct {
	FacultyID   string `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
	Term        string `json:"term"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	Section     string `json:"section"`
	CourseCode  string `json:"course_code"`
	CourseTitle string `json:"course_title"`
	Program     string `json:"program"`
	Department  string `json:"department"`
	Session     string `json:"session,omitempty"`
	SchoolYear  string `json:"school_year,omitempty"`
	ExcludeID   string `json:"exclude_id,omitempty"`
}

// TimeRange holds parsed minute offsets from midnight for a time block.
// Start <= End always holds for a parsed range; unparseable or
// placeholder inputs yield a nil *TimeRange instead.
type TimeRange struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Key   string `json:"key"`
}

// Midpoint returns the center of the range in minutes from midnight.
func (r *TimeRange) Midpoint() float64 {
	return float64(r.Start+r.End) / 2
}

// Duration returns the block length in minutes.
func (r *TimeRange) Duration() int {
	return r.End - r.Start
}
