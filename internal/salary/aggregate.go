// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import "sort"

// Overall computes avg/min/max/count over a set of observations.
// It returns nil on an empty set — "no data" is a valid answer, not an
// error, and the response encodes it as a null field.
func Overall(posts []*Post) *Aggregate {
	if len(posts) == 0 {
		return nil
	}

	aggregate := &Aggregate{
		MinSalary: posts[0].Salary,
		MaxSalary: posts[0].Salary,
		Count:     len(posts),
	}

	sum := 0.0
	for _, post := range posts {
		sum += post.Salary
		if post.Salary < aggregate.MinSalary {
			aggregate.MinSalary = post.Salary
		}
		if post.Salary > aggregate.MaxSalary {
			aggregate.MaxSalary = post.Salary
		}
	}

	// Simple arithmetic mean over raw values, no weighting.
	aggregate.AvgSalary = sum / float64(len(posts))
	return aggregate
}

// ByLevel groups observations by professional level and aggregates each
// group independently, ordered by ascending level. An empty input yields
// an empty slice, never nil, so responses encode it as [].
func ByLevel(posts []*Post) []LevelAggregate {
	groups := make(map[int][]*Post)
	for _, post := range posts {
		groups[post.Level] = append(groups[post.Level], post)
	}

	levels := make([]int, 0, len(groups))
	for level := range groups {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	aggregates := make([]LevelAggregate, 0, len(levels))
	for _, level := range levels {
		overall := Overall(groups[level])
		aggregates = append(aggregates, LevelAggregate{
			Level:     level,
			AvgSalary: overall.AvgSalary,
			MinSalary: overall.MinSalary,
			MaxSalary: overall.MaxSalary,
			Count:     overall.Count,
		})
	}

	return aggregates
}

// ForLevel aggregates only the observations at the given level,
// returning nil when none exist.
func ForLevel(posts []*Post, level int) *Aggregate {
	matching := make([]*Post, 0)
	for _, post := range posts {
		if post.Level == level {
			matching = append(matching, post)
		}
	}
	return Overall(matching)
}
