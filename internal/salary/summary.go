// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"math"
	"sort"

	"github.com/tsalin/api/pkg/pointer"
)

// SyntheticStep is the fixed interpolation increment, in MNT, between
// synthetic distribution points. Real observation density is sparse for
// many industries; the synthetic curve exists purely for chart
// continuity and is never blended into computed statistics.
const SyntheticStep = 200_000

// SyntheticPoints generates interpolated points from min to max
// inclusive, stepping by [SyntheticStep]. A zero minimum is a valid
// floor; no points are generated for negative or reversed bounds.
func SyntheticPoints(min, max float64) []SeriesPoint {
	if min < 0 || max < min {
		return nil
	}

	points := make([]SeriesPoint, 0, int((max-min)/SyntheticStep)+1)
	for salary := min; salary <= max; salary += SyntheticStep {
		points = append(points, SeriesPoint{
			Salary:      salary,
			IsSynthetic: true,
		})
	}
	return points
}

// UserPoint builds the querying user's own point for injection into the
// series. Level preference: the explicit level if given, else the
// classifier over experience, else null.
func UserPoint(salary float64, level *int, experienceYears *int) SeriesPoint {
	return SeriesPoint{
		Salary:          salary,
		Level:           level,
		ExperienceYears: experienceYears,
		IsUser:          true,
	}
}

// BuildSeries concatenates real, synthetic and user points and re-sorts
// the combined list ascending by salary. The sort is stable: ties keep
// their insertion order, so real points (already salary-sorted) stay in
// store order relative to each other.
func BuildSeries(real, synthetic []SeriesPoint, user *SeriesPoint) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(real)+len(synthetic)+1)
	series = append(series, real...)
	series = append(series, synthetic...)
	if user != nil {
		series = append(series, *user)
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Salary < series[j].Salary
	})
	return series
}

// ActualStats computes min/max/avg over the real observations in a
// series, rounding each to the nearest whole amount. Synthetic and user
// points are excluded no matter how many were generated. All three are
// nil when the series holds no real point.
func ActualStats(series []SeriesPoint) (min, max, avg *float64) {
	sum := 0.0
	count := 0

	for _, point := range series {
		if point.IsSynthetic || point.IsUser {
			continue
		}
		if count == 0 || point.Salary < *min {
			min = pointer.To(point.Salary)
		}
		if count == 0 || point.Salary > *max {
			max = pointer.To(point.Salary)
		}
		sum += point.Salary
		count++
	}

	if count == 0 {
		return nil, nil, nil
	}

	min = pointer.To(math.Round(*min))
	max = pointer.To(math.Round(*max))
	avg = pointer.To(math.Round(sum / float64(count)))
	return min, max, avg
}
