package models

// Employment type labels recognised by the suitability scorer.
const (
	EmploymentFullTime = "full-time"
	EmploymentPartTime = "part-time"
	EmploymentKNP      = "knp"
)

// FacultyProfile is the canonical directory entry for one instructor.
type FacultyProfile struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Department       string  `json:"department"`
	EmploymentType   string  `json:"employment_type"`
	Credentials      string  `json:"credentials,omitempty"`
	Education        string  `json:"education,omitempty"`
	LoadReleaseUnits float64 `json:"load_release_units"`
}

// LoadStats aggregates the deduplicated teaching load for one faculty.
type LoadStats struct {
	FacultyID   string  `json:"faculty_id"`
	Load        float64 `json:"load"`
	Release     float64 `json:"release"`
	Overload    float64 `json:"overload"`
	CourseCount int     `json:"course_count"`
}

// AttendanceSummary is the optional attendance aggregate supplied by an
// external collaborator, keyed by faculty id.
type AttendanceSummary struct {
	Total   int `json:"total"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}

// GradeTimelinessSummary counts grade submissions by timeliness for the
// same term, supplied by an external collaborator.
type GradeTimelinessSummary struct {
	Early  int `json:"early"`
	OnTime int `json:"on_time"`
	Late   int `json:"late"`
}
