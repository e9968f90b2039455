package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeBlockForms(t *testing.T) {
	cases := []struct {
		name  string
		input string
		start int
		end   int
	}{
		{"trailing AM suffix", "8-9AM", 8 * 60, 9 * 60},
		{"trailing PM suffix", "1-2PM", 13 * 60, 14 * 60},
		{"minutes with suffix", "8:30-9:30AM", 8*60 + 30, 9*60 + 30},
		{"24 hour", "08:00-09:00", 8 * 60, 9 * 60},
		{"24 hour afternoon", "13:00-14:30", 13 * 60, 14*60 + 30},
		{"per-bound suffixes", "11:30AM-1:00PM", 11*60 + 30, 13 * 60},
		{"noon marker", "10-12NN", 10 * 60, 12 * 60},
		{"cross-noon with trailing PM", "11-1PM", 11 * 60, 13 * 60},
		{"evening", "7-8PM", 19 * 60, 20 * 60},
		{"bare hours", "8-9", 8 * 60, 9 * 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := ParseTimeBlock(tc.input)
			require.NotNil(t, tr, "expected %q to parse", tc.input)
			assert.Equal(t, tc.start, tr.Start)
			assert.Equal(t, tc.end, tr.End)
			assert.LessOrEqual(t, tr.Start, tr.End)
		})
	}
}

func TestParseTimeBlockPlaceholdersAndGarbage(t *testing.T) {
	for _, input := range []string{"", "TBA", "tba", "NA", "N/A", "  n/a  ", "whenever", "25:00-26:00", "8:75-9:00", "9-8"} {
		assert.Nil(t, ParseTimeBlock(input), "expected %q not to parse", input)
	}
}

func TestCanonicalKeyEquivalence(t *testing.T) {
	a := ParseTimeBlock("8-9AM")
	b := ParseTimeBlock("08:00-09:00")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, "08:00-09:00", a.Key)
	assert.Equal(t, a.Key, b.Key)

	c := ParseTimeBlock("1:30-3PM")
	require.NotNil(t, c)
	assert.Equal(t, "13:30-15:00", c.Key)
}

func TestTimeKeyFallbacks(t *testing.T) {
	assert.Equal(t, "08:00-09:00", TimeKey("8-9AM"))
	assert.Equal(t, "", TimeKey("TBA"))
	assert.Equal(t, "", TimeKey(""))
	// Unparseable but identical raw strings still key identically.
	assert.Equal(t, TimeKey("MWF 8ISH"), TimeKey("  mwf   8ish "))
	assert.NotEqual(t, TimeKey("MWF 8ISH"), TimeKey("TTH 8ISH"))
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder("TBA"))
	assert.True(t, IsPlaceholder(" n/a "))
	assert.True(t, IsPlaceholder(""))
	assert.False(t, IsPlaceholder("8-9AM"))
}

func TestParseTimeBlockMidpoint(t *testing.T) {
	tr := ParseTimeBlock("8-10AM")
	require.NotNil(t, tr)
	assert.InDelta(t, 9*60, tr.Midpoint(), 0.001)
	assert.Equal(t, 120, tr.Duration())
}
