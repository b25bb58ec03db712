// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsalin/api/pkg/pointer"
)

func realPoint(salary float64) SeriesPoint {
	return SeriesPoint{Salary: salary, PositionName: "Software Engineer"}
}

func TestSyntheticPointsInclusiveStepping(t *testing.T) {
	points := SyntheticPoints(1_000_000, 1_400_000)

	require.Len(t, points, 3)
	assert.Equal(t, 1_000_000.0, points[0].Salary)
	assert.Equal(t, 1_200_000.0, points[1].Salary)
	assert.Equal(t, 1_400_000.0, points[2].Salary)
	for _, p := range points {
		assert.True(t, p.IsSynthetic)
		assert.Nil(t, p.Level, "synthetic points carry no level")
	}
}

func TestSyntheticPointsDegenerateBounds(t *testing.T) {
	assert.Empty(t, SyntheticPoints(-200_000, 1_000_000))
	assert.Empty(t, SyntheticPoints(2_000_000, 1_000_000))

	// Equal bounds produce the single boundary point.
	points := SyntheticPoints(1_000_000, 1_000_000)
	require.Len(t, points, 1)
	assert.Equal(t, 1_000_000.0, points[0].Salary)
}

func TestSyntheticPointsZeroFloor(t *testing.T) {
	// A configured minimum of zero still yields a series.
	points := SyntheticPoints(0, 400_000)

	require.Len(t, points, 3)
	assert.Equal(t, 0.0, points[0].Salary)
	assert.Equal(t, 200_000.0, points[1].Salary)
	assert.Equal(t, 400_000.0, points[2].Salary)
}

func TestBuildSeriesSortsBySalary(t *testing.T) {
	real := []SeriesPoint{realPoint(900_000), realPoint(1_500_000)}
	synthetic := SyntheticPoints(1_000_000, 1_400_000)
	user := UserPoint(1_100_000, pointer.To(5), nil)

	series := BuildSeries(real, synthetic, &user)

	require.Len(t, series, 6)
	for i := 1; i < len(series); i++ {
		assert.LessOrEqual(t, series[i-1].Salary, series[i].Salary)
	}

	// The user's point lands between the surrounding synthetic steps.
	assert.True(t, series[2].IsUser)
	assert.Equal(t, 1_100_000.0, series[2].Salary)
}

func TestActualStatsIgnoresSyntheticAndUserPoints(t *testing.T) {
	real := []SeriesPoint{realPoint(1_000_000), realPoint(2_000_000), realPoint(3_000_000)}
	synthetic := SyntheticPoints(500_000, 9_500_000)
	user := UserPoint(50_000_000, nil, pointer.To(4))

	series := BuildSeries(real, synthetic, &user)
	min, max, avg := ActualStats(series)

	require.NotNil(t, min)
	require.NotNil(t, max)
	require.NotNil(t, avg)
	assert.Equal(t, 1_000_000.0, *min)
	assert.Equal(t, 3_000_000.0, *max)
	assert.Equal(t, 2_000_000.0, *avg)
}

func TestActualStatsNullOnNoRealPoints(t *testing.T) {
	user := UserPoint(1_000_000, nil, nil)
	series := BuildSeries(nil, SyntheticPoints(1_000_000, 2_000_000), &user)

	min, max, avg := ActualStats(series)
	assert.Nil(t, min)
	assert.Nil(t, max)
	assert.Nil(t, avg)
}

func TestActualStatsRoundsToNearestInteger(t *testing.T) {
	series := []SeriesPoint{realPoint(1_000_000), realPoint(1_000_001)}

	_, _, avg := ActualStats(series)
	require.NotNil(t, avg)
	assert.Equal(t, 1_000_001.0, *avg, "halves round away from zero")
}
