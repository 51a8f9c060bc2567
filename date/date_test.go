package date

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Normalizes(t *testing.T) {
	assert.Equal(t, New(2025, time.February, 1), New(2025, time.January, 32))
	assert.Equal(t, New(2024, time.December, 31), New(2025, time.January, 0))
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-15", want: New(2025, time.January, 15)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: " 2025-07-01 ", want: New(2025, time.July, 1)},
		{in: "2025-07-01T10:30:00Z", want: New(2025, time.July, 1)},
		{in: "yesterday", wantErr: true},
		{in: "2025-13-01", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a, b := New(2025, 3, 1), New(2025, 3, 2)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(New(2025, 2, 29)), "2025-02-29 normalizes to 2025-03-01")
	assert.True(t, Date{}.IsZero())
}

func TestDate_JSON(t *testing.T) {
	out, err := json.Marshal(New(2025, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02"`, string(out))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-1-2"`), &d))
	assert.Equal(t, New(2025, 1, 2), d)

	assert.Error(t, json.Unmarshal([]byte(`"2 Jan"`), &d))
}

func TestStartEndOf(t *testing.T) {
	wednesday := New(2025, time.September, 10)
	testCases := []struct {
		period    Period
		in        Date
		wantStart Date
		wantEnd   Date
	}{
		{Daily, wednesday, wednesday, wednesday},
		{Weekly, wednesday, New(2025, time.September, 8), New(2025, time.September, 14)},
		{Weekly, New(2025, time.September, 14), New(2025, time.September, 8), New(2025, time.September, 14)},
		{Monthly, New(2024, time.February, 15), New(2024, time.February, 1), New(2024, time.February, 29)},
		{Quarterly, New(2025, time.May, 5), New(2025, time.April, 1), New(2025, time.June, 30)},
		{Yearly, wednesday, New(2025, time.January, 1), New(2025, time.December, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String()+"/"+tc.in.String(), func(t *testing.T) {
			assert.Equal(t, tc.wantStart, tc.in.StartOf(tc.period))
			assert.Equal(t, tc.wantEnd, tc.in.EndOf(tc.period))
		})
	}
}
