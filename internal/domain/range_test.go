package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func accidentOn(t time.Time, borough string) Accident {
	return Accident{CrashDate: t, DateValid: true, Latitude: 40.7, Longitude: -74.0, Borough: borough}
}

func TestNewDateRange_TruncatesToDay(t *testing.T) {
	r, err := NewDateRange(
		time.Date(2023, 1, 1, 13, 45, 0, 0, time.UTC),
		time.Date(2023, 1, 5, 2, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, day(2023, 1, 1), r.Start)
	assert.Equal(t, day(2023, 1, 5), r.End)
}

func TestNewDateRange_RejectsInverted(t *testing.T) {
	_, err := NewDateRange(day(2023, 1, 5), day(2023, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewDateRange_SingleDay(t *testing.T) {
	r, err := NewDateRange(day(2023, 1, 1), day(2023, 1, 1))
	require.NoError(t, err)
	assert.True(t, r.Contains(day(2023, 1, 1)))
	assert.False(t, r.Contains(day(2023, 1, 2)))
}

func TestFilterByRange_InclusiveBounds(t *testing.T) {
	ds := Dataset{
		accidentOn(day(2022, 12, 31), "QUEENS"),
		accidentOn(day(2023, 1, 1), "BROOKLYN"),
		accidentOn(time.Date(2023, 1, 3, 23, 59, 0, 0, time.UTC), "BRONX"),
		accidentOn(day(2023, 1, 5), "MANHATTAN"),
		accidentOn(day(2023, 1, 6), "QUEENS"),
	}

	r, err := NewDateRange(day(2023, 1, 1), day(2023, 1, 5))
	require.NoError(t, err)

	filtered := FilterByRange(ds, r)
	require.Len(t, filtered, 3)

	// Every output record is in range and in the input (subset property).
	for _, a := range filtered {
		assert.True(t, r.Contains(a.CrashDate))
		assert.Contains(t, ds, a)
	}
}

func TestFilterByRange_SkipsInvalidDates(t *testing.T) {
	ds := Dataset{
		{DateValid: false, Latitude: 40.7, Longitude: -74.0, Borough: "QUEENS"},
		accidentOn(day(2023, 1, 2), "QUEENS"),
	}

	r, err := NewDateRange(day(2023, 1, 1), day(2023, 1, 5))
	require.NoError(t, err)

	filtered := FilterByRange(ds, r)
	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].DateValid)
}

func TestFilterByRange_OutsideSpanIsEmpty(t *testing.T) {
	ds := Dataset{
		accidentOn(day(2023, 1, 1), "BROOKLYN"),
		accidentOn(day(2023, 1, 2), "BROOKLYN"),
	}

	r, err := NewDateRange(day(2020, 6, 1), day(2020, 6, 30))
	require.NoError(t, err)

	assert.Empty(t, FilterByRange(ds, r))
}

func TestFilterByRange_PreservesOrder(t *testing.T) {
	ds := Dataset{
		accidentOn(day(2023, 1, 3), "QUEENS"),
		accidentOn(day(2023, 1, 1), "BRONX"),
		accidentOn(day(2023, 1, 2), "BROOKLYN"),
	}

	r, err := NewDateRange(day(2023, 1, 1), day(2023, 1, 3))
	require.NoError(t, err)

	filtered := FilterByRange(ds, r)
	require.Len(t, filtered, 3)
	assert.Equal(t, "QUEENS", filtered[0].Borough)
	assert.Equal(t, "BRONX", filtered[1].Borough)
	assert.Equal(t, "BROOKLYN", filtered[2].Borough)
}
