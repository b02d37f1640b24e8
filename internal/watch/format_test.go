package watch

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip24Hour(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"13:33:23", "13:33:23"},
		{"5:3:9", "05:03:09"},
		{"7", "07:00:00"},
		{"23:59", "23:59:00"},
		{"0", "00:00:00"},
		{" 12:00:01 ", "12:00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, err := Parse(tt.input, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.String())

			again, err := Parse(w.String(), false)
			require.NoError(t, err)
			assert.Equal(t, w, again)
		})
	}
}

func TestTwelveHourMapping(t *testing.T) {
	tests := []struct {
		input    string
		wantHour int
		want     string
	}{
		{"12:00 AM", 0, "12:00:00 AM"},
		{"12:00 PM", 12, "12:00:00 PM"},
		{"1:00 PM", 13, "01:00:00 PM"},
		{"11:59:59 AM", 11, "11:59:59 AM"},
		{"00:30", 0, "12:30:00 AM"},
		{"23:05", 23, "11:05:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, err := New(tt.input, true)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, w.Hours())
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestFormatIgnoresDisplayFlag(t *testing.T) {
	w := MustParse("21:07:00", false)
	w.AddSeconds(secondsPerDay)
	assert.Equal(t, "09:07:00 PM +1 days", w.Format(true))
	assert.Equal(t, "21:07:00 +1 days", w.Format(false))
	assert.Equal(t, "21:07:00", w.Clock())
}

func TestDaySuffix(t *testing.T) {
	assert.Equal(t, "", DaySuffix(0))
	assert.Equal(t, " +1 days", DaySuffix(1))
	assert.Equal(t, " -1157 days", DaySuffix(-1157))
	assert.Equal(t, " -9223372036854775808 days", DaySuffix(math.MinInt64))
}

func TestMarshalText(t *testing.T) {
	w := MustParse("13:34", true)
	w.AddSeconds(4343)

	out, err := json.Marshal(map[string]Watch{"end": w})
	require.NoError(t, err)
	assert.JSONEq(t, `{"end":"02:46:23 PM"}`, string(out))
}
