package engine

import (
	"math"
	"sort"

	"github.com/schedcore/courseload-engine/internal/models"
)

// Scorer ranks candidate faculty by multi-factor suitability. It is
// stateless apart from its configuration; every call allocates fresh
// results and identical inputs always produce identical output.
type Scorer struct {
	cfg ScoringConfig
}

// NewScorer builds a scorer, filling a zero config with the defaults.
func NewScorer(cfg ScoringConfig) *Scorer {
	if cfg.Weights.Sum() == 0 {
		cfg = DefaultScoringConfig()
	}
	return &Scorer{cfg: cfg}
}

// RankInput bundles one ranking request. Index and Stats are built once
// per request by the caller and reused across candidate evaluations.
type RankInput struct {
	Candidate  models.CandidateAssignment
	Faculty    []models.FacultyProfile
	Index      *ScheduleIndex
	Stats      map[string]models.LoadStats
	Attendance map[string]models.AttendanceSummary
	Grades     map[string]models.GradeTimelinessSummary
}

// Rank scores every faculty and orders them best first. Ranking sorts
// on the score rounded to two decimals, breaking ties alphabetically by
// display name, so presentation order is stable across runs and input
// permutations.
func (s *Scorer) Rank(in RankInput) []models.FacultyScore {
	scores := make([]models.FacultyScore, 0, len(in.Faculty))
	for _, profile := range in.Faculty {
		scores = append(scores, s.ScoreOne(in, profile))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		a := round2(scores[i].Score)
		b := round2(scores[j].Score)
		if a != b {
			return a > b
		}
		return scores[i].FacultyName < scores[j].FacultyName
	})
	return scores
}

// ScoreOne evaluates a single faculty against the candidate.
func (s *Scorer) ScoreOne(in RankInput, profile models.FacultyProfile) models.FacultyScore {
	history := buildHistory(in.Index.FacultyRecords(profile.ID, profile.Name))
	ref := referenceOrdinal(in.Candidate, history)
	stats := in.Stats[profile.ID]

	factors := models.FactorBreakdown{
		Dept:       s.deptScore(in.Candidate, profile, history, ref),
		Employment: s.employmentScore(profile, stats),
		Degree:     degreeScore(profile),
		Time:       s.timeScore(in.Candidate, history),
		Load:       s.loadScore(stats),
		Overload:   s.overloadScore(stats),
		TermExp:    s.termExpScore(in.Candidate, history, ref),
		Match:      s.matchScore(in.Candidate, history),
	}

	var att *models.AttendanceSummary
	if summary, ok := in.Attendance[profile.ID]; ok {
		att = &summary
	}
	var grades *models.GradeTimelinessSummary
	if summary, ok := in.Grades[profile.ID]; ok {
		grades = &summary
	}
	factors.AttendanceFactor = attendanceFactor(att)
	factors.GradesFactor = gradesFactor(grades)

	w := s.cfg.Weights
	weighted := w.Dept*factors.Dept +
		w.Employment*factors.Employment +
		w.Degree*factors.Degree +
		w.Time*factors.Time +
		w.Load*factors.Load +
		w.Overload*factors.Overload +
		w.TermExp*factors.TermExp +
		w.Match*factors.Match

	score := 10 * weighted * factors.AttendanceFactor * factors.GradesFactor
	score = clampRange(score, 1, 10)

	return models.FacultyScore{
		FacultyID:   profile.ID,
		FacultyName: profile.Name,
		Score:       score,
		Factors:     factors,
	}
}

// Config exposes the active configuration.
func (s *Scorer) Config() ScoringConfig {
	return s.cfg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
