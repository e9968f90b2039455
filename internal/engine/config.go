package engine

import (
	"fmt"
	"math"
)

// FactorWeights holds the relative weight of each suitability factor.
// Weights must sum to 1.
type FactorWeights struct {
	Dept       float64 `json:"dept"`
	Employment float64 `json:"employment"`
	Degree     float64 `json:"degree"`
	Time       float64 `json:"time"`
	Load       float64 `json:"load"`
	Overload   float64 `json:"overload"`
	TermExp    float64 `json:"term_exp"`
	Match      float64 `json:"match"`
}

// Sum returns the total weight.
func (w FactorWeights) Sum() float64 {
	return w.Dept + w.Employment + w.Degree + w.Time + w.Load + w.Overload + w.TermExp + w.Match
}

// ScoringConfig carries every tunable constant used by the detector and
// scorer. The values are empirically chosen; treat them as data, not as
// derived quantities.
type ScoringConfig struct {
	Weights FactorWeights `json:"weights"`

	// LoadBaseline is the nominal full-load unit count.
	LoadBaseline float64 `json:"load_baseline"`

	// DeptRecencyDecay discounts older program assignments per
	// term-order step, floored at DeptRecencyFloor.
	DeptRecencyDecay float64 `json:"dept_recency_decay"`
	DeptRecencyFloor float64 `json:"dept_recency_floor"`

	// TermRecencyDecay discounts older same-term-label experience.
	TermRecencyDecay float64 `json:"term_recency_decay"`
	// TermSaturation caps the recency-weighted term experience sum and
	// the distinct-course breadth count.
	TermSaturation float64 `json:"term_saturation"`

	// LogisticCenter and LogisticSlope shape the load-balance curve
	// 1/(1+e^(slope*(ratio-center))).
	LogisticCenter float64 `json:"logistic_center"`
	LogisticSlope  float64 `json:"logistic_slope"`

	// OverloadForgivenessUnits is the overload span over which the
	// overload factor decays from 1 to 0.
	OverloadForgivenessUnits float64 `json:"overload_forgiveness_units"`

	// Time-factor tuning, all in minutes.
	KernelBandwidthMinutes  float64 `json:"kernel_bandwidth_minutes"`
	SigmaFloorMinutes       float64 `json:"sigma_floor_minutes"`
	NearestSlotDecayMinutes float64 `json:"nearest_slot_decay_minutes"`
	EdgeStartMinutes        int     `json:"edge_start_minutes"`
	EdgeEndMinutes          int     `json:"edge_end_minutes"`

	// WeakMatchThreshold floors weak course similarity to neutral.
	WeakMatchThreshold float64 `json:"weak_match_threshold"`
}

// DefaultScoringConfig returns the production constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: FactorWeights{
			Dept:       0.15,
			Employment: 0.05,
			Degree:     0.22,
			Time:       0.18,
			Load:       0.10,
			Overload:   0.04,
			TermExp:    0.08,
			Match:      0.18,
		},
		LoadBaseline:             24,
		DeptRecencyDecay:         0.75,
		DeptRecencyFloor:         0.25,
		TermRecencyDecay:         0.8,
		TermSaturation:           6,
		LogisticCenter:           0.8,
		LogisticSlope:            8,
		OverloadForgivenessUnits: 6,
		KernelBandwidthMinutes:   60,
		SigmaFloorMinutes:        45,
		NearestSlotDecayMinutes:  240,
		EdgeStartMinutes:         9 * 60,
		EdgeEndMinutes:           18 * 60,
		WeakMatchThreshold:       0.5,
	}
}

// Validate rejects configurations the scorer cannot interpret.
func (c ScoringConfig) Validate() error {
	if math.Abs(c.Weights.Sum()-1) > 1e-6 {
		return fmt.Errorf("factor weights must sum to 1, got %.4f", c.Weights.Sum())
	}
	if c.LoadBaseline <= 0 {
		return fmt.Errorf("load baseline must be positive, got %.2f", c.LoadBaseline)
	}
	if c.KernelBandwidthMinutes <= 0 || c.SigmaFloorMinutes <= 0 || c.NearestSlotDecayMinutes <= 0 {
		return fmt.Errorf("time-factor minute constants must be positive")
	}
	if c.WeakMatchThreshold < 0 || c.WeakMatchThreshold >= 1 {
		return fmt.Errorf("weak match threshold must lie in [0,1), got %.2f", c.WeakMatchThreshold)
	}
	return nil
}
