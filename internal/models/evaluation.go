package models

// Conflict reasons are matched by substring downstream (resolution UI
// offers fixes per reason), so these exact strings are load-bearing.
const (
	ReasonDoubleBooked    = "Double-booked: same faculty"
	ReasonDuplicateCourse = "duplicate course in block"
)

// ConflictDetail names one existing record that collides with the
// candidate and why.
type ConflictDetail struct {
	Reason string         `json:"reason"`
	Item   ScheduleRecord `json:"item"`
}

// ConflictReport is the detector verdict for a candidate assignment.
type ConflictReport struct {
	Conflict bool             `json:"conflict"`
	Details  []ConflictDetail `json:"details,omitempty"`
}

// FactorBreakdown carries the normalised sub-scores behind a suitability
// score. Every value lies in [0,1]; modifiers lie in [0.7,1.05].
type FactorBreakdown struct {
	Dept             float64 `json:"dept"`
	Employment       float64 `json:"employment"`
	Degree           float64 `json:"degree"`
	Time             float64 `json:"time"`
	Load             float64 `json:"load"`
	Overload         float64 `json:"overload"`
	TermExp          float64 `json:"term_exp"`
	Match            float64 `json:"match"`
	AttendanceFactor float64 `json:"attendance_factor"`
	GradesFactor     float64 `json:"grades_factor"`
}

// FacultyScore is one ranked suitability result. Score lies in [1,10].
type FacultyScore struct {
	FacultyID   string          `json:"faculty_id"`
	FacultyName string          `json:"faculty_name"`
	Score       float64         `json:"score"`
	Factors     FactorBreakdown `json:"factors"`
}
