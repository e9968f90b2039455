package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDaySet(t *testing.T) {
	cases := []struct {
		input string
		want  DaySet
	}{
		{"MWF", Monday | Wednesday | Friday},
		{"TTH", Tuesday | Thursday},
		{"TTHS", Tuesday | Thursday | Saturday},
		{"MON-FRI", Monday | Tuesday | Wednesday | Thursday | Friday},
		{"SAT-SUN", Saturday | Sunday},
		{"M", Monday},
		{"T/TH", Tuesday | Thursday},
		{"Mon, Wed", Monday | Wednesday},
		{"mtwthf", Monday | Tuesday | Wednesday | Thursday | Friday},
		{"SU", Sunday},
		{"", 0},
		{"TBA", 0},
		{"ANY", 0},
		{"DAILY", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDaySet(tc.input), "input %q", tc.input)
	}
}

func TestDaySetIntersects(t *testing.T) {
	mwf := ParseDaySet("MWF")
	tth := ParseDaySet("TTH")
	any := ParseDaySet("TBA")

	assert.False(t, mwf.Intersects(tth))
	assert.True(t, mwf.Intersects(ParseDaySet("WED")))
	assert.True(t, any.Intersects(mwf), "placeholder day overlaps everything")
	assert.True(t, mwf.Intersects(any))
	assert.True(t, any.Intersects(any))
}

func TestDaySetDaysAndString(t *testing.T) {
	mwf := ParseDaySet("MWF")
	assert.Equal(t, []DaySet{Monday, Wednesday, Friday}, mwf.Days())
	assert.Equal(t, "MWF", mwf.String())
	assert.Equal(t, "ANY", DaySet(0).String())
	assert.Empty(t, DaySet(0).Days())
}
