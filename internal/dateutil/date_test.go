package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", d.String())
	require.Equal(t, 2024, d.Year())
	require.Equal(t, time.February, d.Month())
	require.Equal(t, 29, d.Day())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "2024-02-30", "01/02/2024", "2024-2-1", "not a date"} {
		_, err := Parse(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestBeforeAndEqual(t *testing.T) {
	a := MustParse("2024-01-31")
	b := MustParse("2024-02-01")
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.False(t, a.Before(a))
	require.True(t, a.Equal(MustParse("2024-01-31")))
}

func TestSameMonth(t *testing.T) {
	require.True(t, MustParse("2024-02-01").SameMonth(MustParse("2024-02-29")))
	require.False(t, MustParse("2024-02-01").SameMonth(MustParse("2023-02-01")))
	require.False(t, MustParse("2024-02-01").SameMonth(MustParse("2024-03-01")))
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("2024-05")
	require.NoError(t, err)
	require.Equal(t, 2024, y)
	require.Equal(t, time.May, m)

	_, _, err = ParseMonth("2024-5")
	require.Error(t, err)
}

func TestMonthLabel(t *testing.T) {
	require.Equal(t, "Jan '24", MonthLabel(2024, time.January))
	require.Equal(t, "Dec '09", MonthLabel(2009, time.December))
}
