package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/schedcore/courseload-engine/internal/models"
)

// Placeholder time/day values mean the offering is intentionally
// unscheduled. They parse to nil rather than erroring.
var placeholders = map[string]bool{
	"":    true,
	"TBA": true,
	"NA":  true,
	"N/A": true,
}

// IsPlaceholder reports whether a raw time or day string is one of the
// recognised "to be arranged" markers.
func IsPlaceholder(raw string) bool {
	return placeholders[strings.ToUpper(strings.TrimSpace(raw))]
}

var timeBoundRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM|NN)?$`)

// ParseTimeBlock parses a human time-range string into minute offsets
// from midnight. Supported forms are h[:mm]-h[:mm]{AM|PM|NN} with a
// single trailing suffix covering both bounds, per-bound suffixes such
// as "11:30AM-1:00PM", and 24-hour "HH:MM-HH:MM". Placeholder and
// malformed inputs return nil; a non-nil result always has Start <= End.
func ParseTimeBlock(text string) *models.TimeRange {
	raw := strings.ToUpper(strings.TrimSpace(text))
	if placeholders[raw] {
		return nil
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil
	}
	lh, lm, ls, ok := parseTimeBound(parts[0])
	if !ok {
		return nil
	}
	rh, rm, rs, ok := parseTimeBound(parts[1])
	if !ok {
		return nil
	}

	// A lone trailing suffix governs both bounds. NN pins the end at
	// noon and leaves the start in the morning unless it says otherwise.
	if ls == "" && rs != "" && rs != "NN" {
		ls = rs
	}

	start, ok := boundMinutes(lh, lm, ls)
	if !ok {
		return nil
	}
	var end int
	if rs == "NN" {
		end = 12 * 60
	} else {
		end, ok = boundMinutes(rh, rm, rs)
		if !ok {
			return nil
		}
	}

	// "11-1PM" reads as 11AM-1PM: shifting the start back twelve hours
	// is accepted whenever it restores the ordering.
	if start > end && start >= 12*60 {
		start -= 12 * 60
	}
	if start > end {
		return nil
	}
	return &models.TimeRange{Start: start, End: end, Key: CanonicalKey(start, end)}
}

func parseTimeBound(raw string) (hour, minute int, suffix string, ok bool) {
	m := timeBoundRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, 0, "", false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if minute > 59 {
		return 0, 0, "", false
	}
	return hour, minute, m[3], true
}

func boundMinutes(hour, minute int, suffix string) (int, bool) {
	switch suffix {
	case "AM", "NN":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		return hour%12*60 + minute, true
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		return hour%12*60 + 12*60 + minute, true
	default:
		if hour > 24 || (hour == 24 && minute > 0) {
			return 0, false
		}
		return hour*60 + minute, true
	}
}

// CanonicalKey formats minute offsets as a zero-padded HH:MM-HH:MM
// string, so "8-9AM" and "08:00-09:00" compare equal by key.
func CanonicalKey(start, end int) string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", start/60, start%60, end/60, end%60)
}

// TimeKey returns the canonical key for parseable inputs, the empty
// string for placeholders, and a whitespace-collapsed uppercase copy of
// anything else so that equal raw strings still compare equal.
func TimeKey(text string) string {
	if tr := ParseTimeBlock(text); tr != nil {
		return tr.Key
	}
	raw := strings.ToUpper(strings.TrimSpace(text))
	if placeholders[raw] {
		return ""
	}
	return strings.Join(strings.Fields(raw), "")
}
