package adapter

import (
	"strconv"
	"strings"

	"github.com/schedcore/courseload-engine/internal/models"
)

// RawScheduleRow mirrors the loosely typed schedule rows produced by
// the legacy admin tool, where the same field travels under several
// aliases depending on which screen exported it. The adapter collapses
// them into the canonical ScheduleRecord; the engine never sees this
// type.
type RawScheduleRow struct {
	ID          string `json:"id" csv:"id"`
	FacultyID   string `json:"facultyId" csv:"faculty_id"`
	Faculty     string `json:"faculty" csv:"faculty"`
	FacultyName string `json:"facultyName" csv:"faculty_name"`
	Instructor  string `json:"instructor" csv:"instructor"`
	Prof        string `json:"prof" csv:"prof"`

	CourseCode string `json:"courseCode" csv:"course_code"`
	Code       string `json:"code" csv:"code"`
	Subject    string `json:"subject" csv:"subject"`

	CourseTitle string `json:"courseTitle" csv:"course_title"`
	CourseName  string `json:"courseName" csv:"course_name"`
	Title       string `json:"title" csv:"title"`

	Section string `json:"section" csv:"section"`
	Block   string `json:"block" csv:"block"`

	Term     string `json:"term" csv:"term"`
	Sem      string `json:"sem" csv:"sem"`
	Semester string `json:"semester" csv:"semester"`

	Day      string `json:"day" csv:"day"`
	Days     string `json:"days" csv:"days"`
	Time     string `json:"time" csv:"time"`
	Sched    string `json:"sched" csv:"sched"`
	Schedule string `json:"schedule" csv:"schedule"`

	SchoolYear string `json:"schoolYear" csv:"school_year"`
	SY         string `json:"sy" csv:"sy"`

	Units string `json:"units" csv:"units"`
	Unit  string `json:"unit" csv:"unit"`

	Program    string `json:"program" csv:"program"`
	Course     string `json:"course" csv:"course"`
	Department string `json:"department" csv:"department"`
	Dept       string `json:"dept" csv:"dept"`

	GradesStatus string `json:"gradesStatus" csv:"grades_status"`
	Locked       string `json:"locked" csv:"locked"`
}

// ToScheduleRecord resolves the alias fields in priority order and
// returns the canonical record.
func (r RawScheduleRow) ToScheduleRecord() models.ScheduleRecord {
	return models.ScheduleRecord{
		ID:           strings.TrimSpace(r.ID),
		FacultyID:    strings.TrimSpace(r.FacultyID),
		FacultyName:  firstNonEmpty(r.FacultyName, r.Faculty, r.Instructor, r.Prof),
		CourseCode:   firstNonEmpty(r.CourseCode, r.Code, r.Subject),
		CourseTitle:  firstNonEmpty(r.CourseTitle, r.CourseName, r.Title),
		Section:      firstNonEmpty(r.Section, r.Block),
		Term:         firstNonEmpty(r.Term, r.Sem, r.Semester),
		Day:          firstNonEmpty(r.Day, r.Days),
		Time:         firstNonEmpty(r.Time, r.Sched, r.Schedule),
		SchoolYear:   firstNonEmpty(r.SchoolYear, r.SY),
		Units:        parseUnits(firstNonEmpty(r.Units, r.Unit)),
		Program:      firstNonEmpty(r.Program, r.Course),
		Department:   firstNonEmpty(r.Department, r.Dept),
		GradesStatus: strings.TrimSpace(r.GradesStatus),
		Locked:       parseBool(r.Locked),
	}
}

// RawFacultyRow mirrors the legacy faculty directory export.
type RawFacultyRow struct {
	ID             string `json:"id" csv:"id"`
	Name           string `json:"name" csv:"name"`
	FullName       string `json:"fullName" csv:"full_name"`
	Department     string `json:"department" csv:"department"`
	Dept           string `json:"dept" csv:"dept"`
	EmploymentType string `json:"employmentType" csv:"employment_type"`
	Status         string `json:"status" csv:"status"`
	Credentials    string `json:"credentials" csv:"credentials"`
	Degree         string `json:"degree" csv:"degree"`
	Education      string `json:"education" csv:"education"`
	LoadRelease    string `json:"loadRelease" csv:"load_release"`
}

// ToFacultyProfile resolves aliases into the canonical profile.
func (r RawFacultyRow) ToFacultyProfile() models.FacultyProfile {
	return models.FacultyProfile{
		ID:               strings.TrimSpace(r.ID),
		Name:             firstNonEmpty(r.Name, r.FullName),
		Department:       firstNonEmpty(r.Department, r.Dept),
		EmploymentType:   firstNonEmpty(r.EmploymentType, r.Status),
		Credentials:      firstNonEmpty(r.Credentials, r.Degree),
		Education:        strings.TrimSpace(r.Education),
		LoadReleaseUnits: parseUnits(r.LoadRelease),
	}
}

// ScheduleRecords converts a batch of raw rows.
func ScheduleRecords(rows []RawScheduleRow) []models.ScheduleRecord {
	records := make([]models.ScheduleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.ToScheduleRecord())
	}
	return records
}

// FacultyProfiles converts a batch of raw directory rows.
func FacultyProfiles(rows []RawFacultyRow) []models.FacultyProfile {
	profiles := make([]models.FacultyProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.ToFacultyProfile())
	}
	return profiles
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func parseUnits(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "locked":
		return true
	}
	return false
}
