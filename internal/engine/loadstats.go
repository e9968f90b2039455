package engine

import (
	"math"

	"github.com/schedcore/courseload-engine/internal/models"
)

// ComputeLoadStats derives the deduplicated unit load, distinct course
// count and overload for every faculty in the catalog. Records are
// gathered through both identity keys and deduplicated on the composite
// (code, section, term, time) key so the same logical offering filed
// twice never double-counts.
func ComputeLoadStats(faculties []models.FacultyProfile, idx *ScheduleIndex, baseline float64) map[string]models.LoadStats {
	stats := make(map[string]models.LoadStats, len(faculties))
	for _, fac := range faculties {
		records := idx.FacultyRecords(fac.ID, fac.Name)
		seen := make(map[string]bool, len(records))
		var load float64
		count := 0
		for _, rec := range records {
			key := NormalizeCode(rec.CourseCode) + "|" + NormalizeSection(rec.Section) + "|" + NormalizeTerm(rec.Term) + "|" + TimeKey(rec.Time)
			if seen[key] {
				continue
			}
			seen[key] = true
			load += rec.Units
			count++
		}
		stats[fac.ID] = models.LoadStats{
			FacultyID:   fac.ID,
			Load:        load,
			Release:     fac.LoadReleaseUnits,
			Overload:    math.Max(0, load-baseline),
			CourseCount: count,
		}
	}
	return stats
}
