package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcore/courseload-engine/internal/models"
)

func TestBuildScheduleIndexIdentityKeys(t *testing.T) {
	records := []models.ScheduleRecord{
		{ID: "r1", FacultyID: "7", FacultyName: "Dela Cruz, Juan", CourseCode: "CS101", Section: "BSIT-1A", Term: "1st"},
		{ID: "r2", FacultyName: "Dela Cruz, Juan", CourseCode: "CS102", Section: "BSIT-1B", Term: "1st"},
		{ID: "r3", FacultyID: "9", CourseCode: "IT201", Section: "BSIT-2A", Term: "2nd"},
	}
	idx := BuildScheduleIndex(records)

	// Lookup by id alone sees only rows carrying the id.
	byID := idx.FacultyRecords("7", "")
	require.Len(t, byID, 1)
	assert.Equal(t, "r1", byID[0].ID)

	// Lookup by name alone sees every row filed under the name.
	byName := idx.FacultyRecords("", "delacruz, JUAN")
	require.Len(t, byName, 2)

	// Merged lookup deduplicates rows present under both keys.
	merged := idx.FacultyRecords("7", "Dela Cruz, Juan")
	require.Len(t, merged, 2)
	assert.Equal(t, "r1", merged[0].ID)
	assert.Equal(t, "r2", merged[1].ID)
}

func TestBuildScheduleIndexSectionTerm(t *testing.T) {
	records := []models.ScheduleRecord{
		{ID: "r1", FacultyID: "7", CourseCode: "CS101", Section: "BSIT-1A", Term: "1st"},
		{ID: "r2", FacultyID: "8", CourseCode: "GE1", Section: "bsit 1a", Term: "First"},
		{ID: "r3", FacultyID: "9", CourseCode: "CS101", Section: "BSIT-1A", Term: "2nd"},
	}
	idx := BuildScheduleIndex(records)

	firstTerm := idx.SectionRecords("BSIT-1A", "1st")
	require.Len(t, firstTerm, 2, "section and term aliases normalize together")
	assert.Equal(t, "r1", firstTerm[0].ID)
	assert.Equal(t, "r2", firstTerm[1].ID)

	assert.Len(t, idx.SectionRecords("BSIT-1A", "2nd"), 1)
	assert.Empty(t, idx.SectionRecords("", "1st"))
}

func TestFacultyRecordsIgnoresMissingIdentity(t *testing.T) {
	records := []models.ScheduleRecord{
		{ID: "r1", CourseCode: "CS101", Section: "A", Term: "1st"},
	}
	idx := BuildScheduleIndex(records)
	assert.Empty(t, idx.FacultyRecords("", ""))
	assert.Len(t, idx.SectionRecords("A", "1st"), 1, "identity-less rows still index by section")
}

func TestIndexOrderIndependence(t *testing.T) {
	records := []models.ScheduleRecord{
		{ID: "b", FacultyID: "7", CourseCode: "CS102", Section: "A", Term: "1st"},
		{ID: "a", FacultyID: "7", CourseCode: "CS101", Section: "A", Term: "1st"},
		{ID: "c", FacultyID: "7", CourseCode: "CS103", Section: "A", Term: "1st"},
	}
	reversed := []models.ScheduleRecord{records[2], records[0], records[1]}

	left := BuildScheduleIndex(records).FacultyRecords("7", "")
	right := BuildScheduleIndex(reversed).FacultyRecords("7", "")
	assert.Equal(t, left, right)
}
