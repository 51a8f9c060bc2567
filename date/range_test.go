package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Contains(t *testing.T) {
	r := NewRange(New(2025, 1, 31), New(2025, 1, 1))
	assert.Equal(t, New(2025, 1, 1), r.From, "bounds are swapped")
	assert.True(t, r.Contains(New(2025, 1, 1)), "lower bound included")
	assert.True(t, r.Contains(New(2025, 1, 31)), "upper bound included")
	assert.False(t, r.Contains(New(2025, 2, 1)))
	assert.Equal(t, 31, r.Days())
}

func TestParseMonth(t *testing.T) {
	r, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}, r)
	assert.Equal(t, "2024-02", r.Identifier())

	_, err = ParseMonth("February")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	_, err := ParseRange("2025-01-01", "nope")
	assert.ErrorContains(t, err, "range end")

	r, err := ParseRange("2025-01-31", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, Range{From: New(2025, 1, 31), To: New(2025, 1, 1)}, r, "bounds are not swapped")
	assert.False(t, r.Contains(New(2025, 1, 15)))
	assert.False(t, r.Contains(New(2025, 1, 1)))
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		in   Range
		want string
	}{
		{Daily.Range(New(2025, 1, 6)), "2025-01-06"},
		{Weekly.Range(New(2025, 1, 8)), "2025-W02"},
		{Monthly.Range(New(2025, 1, 8)), "2025-01"},
		{Yearly.Range(New(2025, 1, 8)), "2025"},
		{NewRange(New(2025, 1, 2), New(2025, 1, 5)), "2025-01-02_2025-01-05"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.in.Identifier())
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("Month")
	require.NoError(t, err)
	assert.Equal(t, Monthly, p)

	p, err = ParsePeriod("week")
	require.NoError(t, err)
	assert.Equal(t, Weekly, p)

	_, err = ParsePeriod("fortnight")
	assert.Error(t, err)
}
