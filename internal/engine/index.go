package engine

import (
	"sort"

	"github.com/schedcore/courseload-engine/internal/models"
)

// ScheduleIndex provides O(1) lookups over a schedule snapshot, keyed by
// faculty identity and by section+term. Build it once per request and
// share it between the conflict detector and the scorer; it is
// read-only after construction.
type ScheduleIndex struct {
	byFacultyIdentity map[string][]models.ScheduleRecord
	bySectionTerm     map[string][]models.ScheduleRecord
}

// BuildScheduleIndex indexes the snapshot. Each record is filed under
// both its id key and its normalized-name key when available, so later
// lookups succeed whether the caller holds an id or only a display
// name. Records lacking any faculty identity are skipped for identity
// lookups but still indexed by section+term. Record lists are sorted so
// results do not depend on snapshot ordering.
func BuildScheduleIndex(records []models.ScheduleRecord) *ScheduleIndex {
	idx := &ScheduleIndex{
		byFacultyIdentity: make(map[string][]models.ScheduleRecord),
		bySectionTerm:     make(map[string][]models.ScheduleRecord),
	}
	for _, rec := range records {
		if rec.FacultyID != "" {
			key := "id:" + rec.FacultyID
			idx.byFacultyIdentity[key] = append(idx.byFacultyIdentity[key], rec)
		}
		if nm := NormalizeName(rec.FacultyName); nm != "" {
			key := "nm:" + nm
			idx.byFacultyIdentity[key] = append(idx.byFacultyIdentity[key], rec)
		}
		if sec := NormalizeSection(rec.Section); sec != "" {
			key := sec + "|" + NormalizeTerm(rec.Term)
			idx.bySectionTerm[key] = append(idx.bySectionTerm[key], rec)
		}
	}
	for _, m := range []map[string][]models.ScheduleRecord{idx.byFacultyIdentity, idx.bySectionTerm} {
		for _, list := range m {
			sort.Slice(list, func(i, j int) bool {
				if list[i].ID != list[j].ID {
					return list[i].ID < list[j].ID
				}
				return list[i].CourseCode < list[j].CourseCode
			})
		}
	}
	return idx
}

// FacultyRecords merges the id and name views of one faculty identity,
// deduplicating records that appear under both keys.
func (idx *ScheduleIndex) FacultyRecords(facultyID, facultyName string) []models.ScheduleRecord {
	var merged []models.ScheduleRecord
	seen := make(map[string]bool)
	appendList := func(list []models.ScheduleRecord) {
		for _, rec := range list {
			key := rec.ID
			if key == "" {
				key = NormalizeCode(rec.CourseCode) + "|" + NormalizeSection(rec.Section) + "|" + NormalizeTerm(rec.Term) + "|" + TimeKey(rec.Time)
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, rec)
		}
	}
	if facultyID != "" {
		appendList(idx.byFacultyIdentity["id:"+facultyID])
	}
	if nm := NormalizeName(facultyName); nm != "" {
		appendList(idx.byFacultyIdentity["nm:"+nm])
	}
	return merged
}

// SectionRecords returns records sharing the candidate's section and
// term.
func (idx *ScheduleIndex) SectionRecords(section, term string) []models.ScheduleRecord {
	sec := NormalizeSection(section)
	if sec == "" {
		return nil
	}
	return idx.bySectionTerm[sec+"|"+NormalizeTerm(term)]
}
