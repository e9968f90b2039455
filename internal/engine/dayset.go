package engine

import "strings"

// DaySet is a bitmask of weekdays, Monday = bit 0 through Sunday =
// bit 6. The zero value means "any day": placeholder day specs overlap
// everything.
type DaySet uint8

// Day bits.
const (
	Monday DaySet = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = map[string]DaySet{
	"M": Monday, "MON": Monday, "MONDAY": Monday,
	"T": Tuesday, "TUE": Tuesday, "TUES": Tuesday, "TUESDAY": Tuesday,
	"W": Wednesday, "WED": Wednesday, "WEDNESDAY": Wednesday,
	"TH": Thursday, "THU": Thursday, "THUR": Thursday, "THURS": Thursday, "THURSDAY": Thursday,
	"F": Friday, "FRI": Friday, "FRIDAY": Friday,
	"S": Saturday, "SAT": Saturday, "SATURDAY": Saturday,
	"SU": Sunday, "SUN": Sunday, "SUNDAY": Sunday,
}

var dayOrder = []DaySet{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLabels = []string{"M", "T", "W", "TH", "F", "S", "SU"}

// ParseDaySet expands a day-spec string ("MWF", "TTH", "MON-FRI",
// "T/TH", "Mon, Wed") into a DaySet. Placeholders, "ANY" and "DAILY"
// return the zero set, which intersects all days.
func ParseDaySet(text string) DaySet {
	raw := strings.ToUpper(strings.TrimSpace(text))
	if placeholders[raw] || raw == "ANY" || raw == "DAILY" || raw == "EVERYDAY" {
		return 0
	}
	var set DaySet
	for _, token := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/' || r == '&'
	}) {
		set |= parseDayToken(token)
	}
	return set
}

func parseDayToken(token string) DaySet {
	if bit, ok := dayNames[token]; ok {
		return bit
	}
	if from, to, ok := strings.Cut(token, "-"); ok {
		return expandDayRange(from, to)
	}
	return scanCompactDays(token)
}

// expandDayRange handles "MON-FRI" style spans, wrapping through Sunday
// when the endpoints are reversed.
func expandDayRange(from, to string) DaySet {
	lo, okLo := dayNames[from]
	hi, okHi := dayNames[to]
	if !okLo || !okHi {
		return 0
	}
	var set DaySet
	active := false
	for i := 0; i < 2*len(dayOrder); i++ {
		bit := dayOrder[i%len(dayOrder)]
		if bit == lo {
			active = true
		}
		if active {
			set |= bit
			if bit == hi {
				break
			}
		}
	}
	return set
}

// scanCompactDays reads glued single-letter specs like "MWF" or
// "TTHS", preferring the two-letter TH and SU tokens over T and S.
func scanCompactDays(token string) DaySet {
	var set DaySet
	for i := 0; i < len(token); {
		if i+1 < len(token) {
			if bit, ok := dayNames[token[i:i+2]]; ok && (token[i:i+2] == "TH" || token[i:i+2] == "SU") {
				set |= bit
				i += 2
				continue
			}
		}
		if bit, ok := dayNames[token[i:i+1]]; ok {
			set |= bit
		}
		i++
	}
	return set
}

// Intersects reports whether two day sets share a day. An empty set
// stands for "any day" and overlaps everything.
func (s DaySet) Intersects(other DaySet) bool {
	if s == 0 || other == 0 {
		return true
	}
	return s&other != 0
}

// Contains reports whether the set includes the given day bit.
func (s DaySet) Contains(day DaySet) bool {
	return s&day != 0
}

// Days returns the individual day bits present, Monday first. An empty
// set yields nothing: "any day" has no concrete members to count.
func (s DaySet) Days() []DaySet {
	var days []DaySet
	for _, bit := range dayOrder {
		if s&bit != 0 {
			days = append(days, bit)
		}
	}
	return days
}

func (s DaySet) String() string {
	if s == 0 {
		return "ANY"
	}
	var b strings.Builder
	for i, bit := range dayOrder {
		if s&bit != 0 {
			b.WriteString(dayLabels[i])
		}
	}
	return b.String()
}
