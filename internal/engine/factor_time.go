package engine

import (
	"math"

	"github.com/schedcore/courseload-engine/internal/models"
)

// Session bands by block midpoint.
const (
	SessionAM  = "AM"
	SessionPM  = "PM"
	SessionEVE = "EVE"
)

func sessionOf(midpoint float64) string {
	switch {
	case midpoint < 12*60:
		return SessionAM
	case midpoint < 18*60:
		return SessionPM
	default:
		return SessionEVE
	}
}

// timeScore estimates how well the candidate's time slot fits the
// faculty's historical teaching pattern. It blends a kernel density
// over past midpoints, a Gaussian fit on the closest cohort with
// enough samples, proximity to the nearest same-term slot, and the
// share of history in the candidate's session band. Unparseable
// candidate times fall back to 0.6 and empty histories to 0.5, per the
// insufficient-data rule.
func (s *Scorer) timeScore(cand models.CandidateAssignment, history []historySlot) float64 {
	candRange := ParseTimeBlock(cand.Time)
	if candRange == nil {
		return 0.6
	}
	if len(history) == 0 {
		return 0.5
	}
	candDays := ParseDaySet(cand.Day)
	candMid := candRange.Midpoint()
	session := cand.Session
	if session == "" {
		session = sessionOf(candMid)
	}

	timed := make([]historySlot, 0, len(history))
	for _, slot := range history {
		if slot.tr != nil {
			timed = append(timed, slot)
		}
	}
	if len(timed) == 0 {
		return 0.6
	}

	density := s.kernelDensity(candMid, candDays, timed)
	gauss := s.gaussianFit(candMid, candDays, session, timed)
	nearest := s.nearestSlotScore(candMid, cand.Term, timed)
	occupancy := sessionOccupancy(session, timed)

	score := 0.3*density + 0.3*gauss + 0.2*nearest + 0.2*occupancy

	if modal := modalDay(history); modal != 0 && candDays.Contains(modal) {
		score += 0.05
	}

	score *= s.edgeHourPenalty(candRange, timed)
	return clamp01(score)
}

// kernelDensity averages Gaussian kernels centred on historical
// midpoints sharing a day with the candidate, widening to the whole
// history when no day matches.
func (s *Scorer) kernelDensity(candMid float64, candDays DaySet, timed []historySlot) float64 {
	var sum float64
	n := 0
	for _, slot := range timed {
		if !candDays.Intersects(slot.days) {
			continue
		}
		d := (slot.tr.Midpoint() - candMid) / s.cfg.KernelBandwidthMinutes
		sum += math.Exp(-0.5 * d * d)
		n++
	}
	if n == 0 {
		for _, slot := range timed {
			d := (slot.tr.Midpoint() - candMid) / s.cfg.KernelBandwidthMinutes
			sum += math.Exp(-0.5 * d * d)
			n++
		}
	}
	return sum / float64(n)
}

// gaussianFit evaluates the candidate midpoint against the mean and
// floored sigma of the most specific cohort holding at least two
// samples: day+session, then day, then everything.
func (s *Scorer) gaussianFit(candMid float64, candDays DaySet, session string, timed []historySlot) float64 {
	cohorts := [][]float64{nil, nil, nil}
	for _, slot := range timed {
		mid := slot.tr.Midpoint()
		sameDay := candDays.Intersects(slot.days)
		if sameDay && sessionOf(mid) == session {
			cohorts[0] = append(cohorts[0], mid)
		}
		if sameDay {
			cohorts[1] = append(cohorts[1], mid)
		}
		cohorts[2] = append(cohorts[2], mid)
	}
	for _, cohort := range cohorts {
		if len(cohort) < 2 {
			continue
		}
		mean, sigma := meanStddev(cohort)
		sigma = math.Max(sigma, s.cfg.SigmaFloorMinutes)
		d := (candMid - mean) / sigma
		return math.Exp(-0.5 * d * d)
	}
	// Single observation: distance through the floored sigma.
	mean := cohorts[2][0]
	d := (candMid - mean) / s.cfg.SigmaFloorMinutes
	return math.Exp(-0.5 * d * d)
}

func meanStddev(values []float64) (mean, stddev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// nearestSlotScore decays linearly with the distance to the closest
// same-term historical slot, reaching zero at the decay horizon.
func (s *Scorer) nearestSlotScore(candMid float64, candTerm string, timed []historySlot) float64 {
	term := NormalizeTerm(candTerm)
	best := math.Inf(1)
	for _, slot := range timed {
		if NormalizeTerm(slot.rec.Term) != term {
			continue
		}
		if d := math.Abs(slot.tr.Midpoint() - candMid); d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return 0.5
	}
	return math.Max(0, 1-best/s.cfg.NearestSlotDecayMinutes)
}

// sessionOccupancy is the share of timed history in the candidate's
// session band.
func sessionOccupancy(session string, timed []historySlot) float64 {
	matches := 0
	for _, slot := range timed {
		if sessionOf(slot.tr.Midpoint()) == session {
			matches++
		}
	}
	return float64(matches) / float64(len(timed))
}

// modalDay finds the faculty's most frequent concrete teaching day.
// Ties resolve to the earliest weekday so results stay deterministic.
func modalDay(history []historySlot) DaySet {
	counts := make(map[DaySet]int)
	for _, slot := range history {
		for _, day := range slot.days.Days() {
			counts[day]++
		}
	}
	var modal DaySet
	best := 0
	for _, day := range dayOrder {
		if counts[day] > best {
			best = counts[day]
			modal = day
		}
	}
	return modal
}

// edgeHourPenalty discounts early-morning and evening candidates for
// faculty already carrying two or more such slots: 5% per edge slot,
// capped at 15%.
func (s *Scorer) edgeHourPenalty(candRange *models.TimeRange, timed []historySlot) float64 {
	if candRange.Start >= s.cfg.EdgeStartMinutes && candRange.End <= s.cfg.EdgeEndMinutes {
		return 1
	}
	edges := 0
	for _, slot := range timed {
		if slot.tr.Start < s.cfg.EdgeStartMinutes || slot.tr.End > s.cfg.EdgeEndMinutes {
			edges++
		}
	}
	if edges < 2 {
		return 1
	}
	return 1 - math.Min(0.15, 0.05*float64(edges))
}
