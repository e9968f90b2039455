package engine

import (
	"math"
	"strings"

	"github.com/schedcore/courseload-engine/internal/models"
)

// deptScore blends how often the faculty has taught under the
// candidate's program code, discounted geometrically by term age, with
// a direct department-string affinity. History dominates when present;
// otherwise the affinity stands alone.
func (s *Scorer) deptScore(cand models.CandidateAssignment, profile models.FacultyProfile, history []historySlot, ref int) float64 {
	affinity := departmentAffinity(profile.Department, cand.Department)
	if len(history) == 0 {
		return affinity
	}

	program := NormalizeCode(cand.Program)
	var matched, total float64
	for _, slot := range history {
		discount := math.Max(s.cfg.DeptRecencyFloor, math.Pow(s.cfg.DeptRecencyDecay, float64(stepsBack(ref, slot.termOrd))))
		weight := discount * unitWeight(slot.rec.Units)
		total += weight
		if program != "" && NormalizeCode(slot.rec.Program) == program {
			matched += weight
		}
	}
	if total == 0 {
		return affinity
	}
	return clamp01(0.65*(matched/total) + 0.35*affinity)
}

// unitWeight keeps heavier offerings from dominating the frequency;
// a 3-unit lecture counts as 1, larger loads grow sub-linearly.
func unitWeight(units float64) float64 {
	if units <= 0 {
		return 1
	}
	return math.Sqrt(units / 3)
}

// departmentAffinity compares department strings: containment either
// way scores full marks, sharing a significant word scores 0.85, and
// anything else falls to the 0.6 baseline.
func departmentAffinity(facultyDept, candidateDept string) float64 {
	a := NormalizeTitle(facultyDept)
	b := NormalizeTitle(candidateDept)
	if a == "" || b == "" {
		return 0.6
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 1.0
	}
	for _, tok := range strings.Fields(a) {
		if len(tok) < 3 {
			continue
		}
		if strings.Contains(" "+b+" ", " "+tok+" ") {
			return 0.85
		}
	}
	return 0.6
}

// employmentScore rates contract types and throttles faculty already
// past full load, so part-timers and overloaded full-timers both yield
// ground to colleagues with headroom.
func (s *Scorer) employmentScore(profile models.FacultyProfile, stats models.LoadStats) float64 {
	et := strings.ToLower(strings.TrimSpace(profile.EmploymentType))
	base := 0.6
	switch {
	case strings.Contains(et, "full"):
		base = 1.0
	case strings.Contains(et, "knp"):
		base = 0.85
	case strings.Contains(et, "part"):
		base = 0.7
	}

	ratio := stats.Load / s.cfg.LoadBaseline
	if ratio > 1 {
		// Fairness throttle: up to 30% off, fully applied once the
		// ratio reaches 1.5.
		penalty := math.Min(0.3, 0.3*(ratio-1)/0.5)
		base *= 1 - penalty
	}
	return clamp01(base)
}

// loadScore is the logistic load-balance curve over the current load
// ratio.
func (s *Scorer) loadScore(stats models.LoadStats) float64 {
	ratio := stats.Load / s.cfg.LoadBaseline
	return 1 / (1 + math.Exp(s.cfg.LogisticSlope*(ratio-s.cfg.LogisticCenter)))
}

// overloadScore decays linearly from 1 to 0 over the forgiveness span.
func (s *Scorer) overloadScore(stats models.LoadStats) float64 {
	return math.Max(0, 1-stats.Overload/s.cfg.OverloadForgivenessUnits)
}

// termExpScore measures experience with the candidate's term label:
// recency-weighted frequency of prior same-label terms plus a small
// breadth component over distinct course codes.
func (s *Scorer) termExpScore(cand models.CandidateAssignment, history []historySlot, ref int) float64 {
	term := NormalizeTerm(cand.Term)
	var freq float64
	codes := make(map[string]bool)
	for _, slot := range history {
		if code := NormalizeCode(slot.rec.CourseCode); code != "" {
			codes[code] = true
		}
		if NormalizeTerm(slot.rec.Term) != term {
			continue
		}
		freq += math.Pow(s.cfg.TermRecencyDecay, float64(stepsBack(ref, slot.termOrd)))
	}
	freqPart := math.Min(freq, s.cfg.TermSaturation) / s.cfg.TermSaturation
	breadthPart := math.Min(float64(len(codes)), s.cfg.TermSaturation) / s.cfg.TermSaturation
	return 0.85*freqPart + 0.15*breadthPart
}

// attendanceFactor converts absence proportions into a multiplicative
// modifier in [0.7,1.05]; missing data is neutral.
func attendanceFactor(summary *models.AttendanceSummary) float64 {
	if summary == nil || summary.Total <= 0 {
		return 1.0
	}
	weighted := float64(summary.Absent) + 0.5*float64(summary.Late) + 0.25*float64(summary.Excused)
	rate := weighted / float64(summary.Total)
	return clampRange(1.05-0.35*rate, 0.7, 1.05)
}

// gradesFactor rewards early grade submission and punishes chronic
// lateness, again within [0.7,1.05].
func gradesFactor(summary *models.GradeTimelinessSummary) float64 {
	if summary == nil {
		return 1.0
	}
	total := summary.Early + summary.OnTime + summary.Late
	if total <= 0 {
		return 1.0
	}
	early := float64(summary.Early) / float64(total)
	late := float64(summary.Late) / float64(total)
	return clampRange(1+0.05*early-0.3*late, 0.7, 1.05)
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
