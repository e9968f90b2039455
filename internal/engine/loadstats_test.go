package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcore/courseload-engine/internal/models"
)

func TestComputeLoadStatsDeduplicates(t *testing.T) {
	faculty := []models.FacultyProfile{
		{ID: "7", Name: "Dela Cruz, Juan", LoadReleaseUnits: 3},
	}
	records := []models.ScheduleRecord{
		// Same offering filed once under the id and once under the name.
		{ID: "r1", FacultyID: "7", CourseCode: "CS101", Section: "A", Term: "1st", Time: "8-9AM", Units: 3},
		{ID: "r2", FacultyName: "Dela Cruz, Juan", CourseCode: "cs 101", Section: "a", Term: "First", Time: "08:00-09:00", Units: 3},
		{ID: "r3", FacultyID: "7", CourseCode: "CS102", Section: "A", Term: "1st", Time: "9-10AM", Units: 5},
	}
	stats := ComputeLoadStats(faculty, BuildScheduleIndex(records), 24)

	s, ok := stats["7"]
	require.True(t, ok)
	assert.Equal(t, 8.0, s.Load, "duplicate offering counted once")
	assert.Equal(t, 2, s.CourseCount)
	assert.Equal(t, 3.0, s.Release)
	assert.Equal(t, 0.0, s.Overload)
}

func TestComputeLoadStatsOverload(t *testing.T) {
	faculty := []models.FacultyProfile{{ID: "7", Name: "Reyes, Maria"}}
	records := []models.ScheduleRecord{
		{ID: "r1", FacultyID: "7", CourseCode: "CS101", Section: "A", Term: "1st", Time: "8-9AM", Units: 15},
		{ID: "r2", FacultyID: "7", CourseCode: "CS102", Section: "B", Term: "1st", Time: "9-10AM", Units: 15},
	}
	stats := ComputeLoadStats(faculty, BuildScheduleIndex(records), 24)
	assert.Equal(t, 30.0, stats["7"].Load)
	assert.Equal(t, 6.0, stats["7"].Overload)
}

func TestComputeLoadStatsEmptyHistory(t *testing.T) {
	faculty := []models.FacultyProfile{{ID: "7", Name: "Reyes, Maria", LoadReleaseUnits: 6}}
	stats := ComputeLoadStats(faculty, BuildScheduleIndex(nil), 24)
	assert.Equal(t, 0.0, stats["7"].Load)
	assert.Equal(t, 0, stats["7"].CourseCount)
	assert.Equal(t, 6.0, stats["7"].Release)
}
