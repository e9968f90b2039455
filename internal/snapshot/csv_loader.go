package snapshot

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/schedcore/courseload-engine/internal/adapter"
	"github.com/schedcore/courseload-engine/internal/engine"
	"github.com/schedcore/courseload-engine/internal/models"
)

// Loader reads read-only CSV snapshot exports from the legacy admin
// tool and serves them through the evaluator's provider interfaces.
// It is ingestion at the boundary, not persistence: nothing is ever
// written back.
type Loader struct {
	records    []models.ScheduleRecord
	faculty    []models.FacultyProfile
	attendance map[string]models.AttendanceSummary
	grades     map[string]models.GradeTimelinessSummary
}

// Files names the snapshot inputs. Attendance and grades are optional.
type Files struct {
	Schedules  string
	Faculty    string
	Attendance string
	Grades     string
	Delimiter  rune
}

type attendanceRow struct {
	FacultyID string `csv:"faculty_id"`
	Total     int    `csv:"total"`
	Absent    int    `csv:"absent"`
	Late      int    `csv:"late"`
	Excused   int    `csv:"excused"`
}

type gradesRow struct {
	FacultyID string `csv:"faculty_id"`
	Early     int    `csv:"early"`
	OnTime    int    `csv:"on_time"`
	Late      int    `csv:"late"`
}

// Load reads every configured file into memory.
func Load(files Files) (*Loader, error) {
	if files.Delimiter != 0 && files.Delimiter != ',' {
		gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
			r := csv.NewReader(in)
			r.Comma = files.Delimiter
			return r
		})
	}

	loader := &Loader{
		attendance: make(map[string]models.AttendanceSummary),
		grades:     make(map[string]models.GradeTimelinessSummary),
	}

	var rawSchedules []adapter.RawScheduleRow
	if err := readCSV(files.Schedules, &rawSchedules); err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}
	loader.records = adapter.ScheduleRecords(rawSchedules)

	var rawFaculty []adapter.RawFacultyRow
	if err := readCSV(files.Faculty, &rawFaculty); err != nil {
		return nil, fmt.Errorf("load faculty: %w", err)
	}
	loader.faculty = adapter.FacultyProfiles(rawFaculty)

	if files.Attendance != "" {
		var rows []attendanceRow
		if err := readCSV(files.Attendance, &rows); err != nil {
			return nil, fmt.Errorf("load attendance: %w", err)
		}
		for _, row := range rows {
			loader.attendance[row.FacultyID] = models.AttendanceSummary{
				Total:   row.Total,
				Absent:  row.Absent,
				Late:    row.Late,
				Excused: row.Excused,
			}
		}
	}

	if files.Grades != "" {
		var rows []gradesRow
		if err := readCSV(files.Grades, &rows); err != nil {
			return nil, fmt.Errorf("load grades: %w", err)
		}
		for _, row := range rows {
			loader.grades[row.FacultyID] = models.GradeTimelinessSummary{
				Early:  row.Early,
				OnTime: row.OnTime,
				Late:   row.Late,
			}
		}
	}

	return loader, nil
}

func readCSV(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gocsv.UnmarshalFile(f, out)
}

// ListByPeriod filters the loaded schedule snapshot by school year and
// term. Empty filter parts match everything, so callers without a
// school year still get the full term slice.
func (l *Loader) ListByPeriod(_ context.Context, schoolYear, term string) ([]models.ScheduleRecord, error) {
	normTerm := engine.NormalizeTerm(term)
	year := strings.TrimSpace(schoolYear)
	var out []models.ScheduleRecord
	for _, rec := range l.records {
		if year != "" && rec.SchoolYear != "" && rec.SchoolYear != year {
			continue
		}
		if normTerm != "" && engine.NormalizeTerm(rec.Term) != normTerm {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// ListHistory returns the full loaded snapshot across periods.
func (l *Loader) ListHistory(_ context.Context) ([]models.ScheduleRecord, error) {
	return l.records, nil
}

// List returns every loaded faculty profile.
func (l *Loader) List(_ context.Context) ([]models.FacultyProfile, error) {
	return l.faculty, nil
}

// SummaryByFaculty returns the loaded attendance aggregates.
func (l *Loader) SummaryByFaculty(_ context.Context, _, _ string) (map[string]models.AttendanceSummary, error) {
	return l.attendance, nil
}

// TimelinessByFaculty returns the loaded grade timeliness aggregates.
func (l *Loader) TimelinessByFaculty(_ context.Context, _, _ string) (map[string]models.GradeTimelinessSummary, error) {
	return l.grades, nil
}
