// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package market

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsalin/api/internal/platform/database/schema"
	"github.com/tsalin/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) PositionsPerIndustry(ctx context.Context) ([]*IndustryPositions, error) {
	industry := schema.CatalogIndustry
	position := schema.CatalogPosition
	post := schema.SalaryPost

	// One row per active position with its observation count; grouping
	// into industries happens in-process.
	query := fmt.Sprintf(`
		SELECT
			i.%s, i.%s, i.%s, i.%s,
			p.%s, p.%s, p.%s,
			COUNT(s.%s) FILTER (WHERE s.%s = true) AS observation_count
		FROM %s p
		JOIN %s i ON i.%s = p.%s
		LEFT JOIN %s s ON s.%s = p.%s
		WHERE p.%s = true
		GROUP BY i.%s, i.%s, i.%s, i.%s, p.%s, p.%s, p.%s, p.%s
		ORDER BY i.%s ASC, p.%s ASC
	`,
		industry.ID, industry.NameMN, industry.NameEN, industry.SortOrder,
		position.ID, position.NameMN, position.NameEN,
		post.ID, post.IsActive,
		position.Table,
		industry.Table, industry.ID, position.IndustryID,
		post.Table, post.PositionID, position.ID,
		position.IsActive,
		industry.ID, industry.NameMN, industry.NameEN, industry.SortOrder,
		position.ID, position.NameMN, position.NameEN, position.SortOrder,
		industry.SortOrder, position.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "market_positions_per_industry")
	}
	defer rows.Close()

	grouped := make(map[string]*IndustryPositions)
	order := make([]string, 0)

	for rows.Next() {
		var industryID, industryMN, industryEN string
		var sortOrder int
		var entry PositionCount

		err := rows.Scan(
			&industryID, &industryMN, &industryEN, &sortOrder,
			&entry.PositionID, &entry.NameMN, &entry.NameEN,
			&entry.ObservationCount,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_market_position")
		}

		group, found := grouped[industryID]
		if !found {
			group = &IndustryPositions{
				IndustryID: industryID,
				NameMN:     industryMN,
				NameEN:     industryEN,
				SortOrder:  sortOrder,
			}
			grouped[industryID] = group
			order = append(order, industryID)
		}
		group.Positions = append(group.Positions, entry)
		group.PositionCount++
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "market_positions_per_industry")
	}

	overview := make([]*IndustryPositions, 0, len(order))
	for _, id := range order {
		overview = append(overview, grouped[id])
	}

	sort.SliceStable(overview, func(i, j int) bool {
		if overview[i].PositionCount != overview[j].PositionCount {
			return overview[i].PositionCount > overview[j].PositionCount
		}
		return overview[i].SortOrder < overview[j].SortOrder
	})

	return overview, nil
}

func (repository *PostgresRepository) IndustryTallies(ctx context.Context) ([]*IndustryTally, error) {
	industry := schema.CatalogIndustry
	position := schema.CatalogPosition

	query := fmt.Sprintf(`
		SELECT
			i.%s, i.%s, i.%s, i.%s,
			COUNT(p.%s) FILTER (WHERE p.%s = true) AS position_count
		FROM %s i
		LEFT JOIN %s p ON p.%s = i.%s
		GROUP BY i.%s, i.%s, i.%s, i.%s
		ORDER BY position_count DESC, i.%s ASC
	`,
		industry.ID, industry.NameMN, industry.NameEN, industry.SortOrder,
		position.ID, position.IsActive,
		industry.Table,
		position.Table, position.IndustryID, industry.ID,
		industry.ID, industry.NameMN, industry.NameEN, industry.SortOrder,
		industry.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "market_industry_tallies")
	}
	defer rows.Close()

	tallies := make([]*IndustryTally, 0)
	for rows.Next() {
		tally := &IndustryTally{}
		err := rows.Scan(&tally.IndustryID, &tally.NameMN, &tally.NameEN, &tally.SortOrder, &tally.PositionCount)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_market_tally")
		}
		tallies = append(tallies, tally)
	}

	return tallies, rows.Err()
}

func (repository *PostgresRepository) ObservedPositions(ctx context.Context) ([]*ObservedPositions, error) {
	industry := schema.CatalogIndustry
	post := schema.SalaryPost

	query := fmt.Sprintf(`
		SELECT
			i.%s, i.%s, i.%s, i.%s,
			COUNT(DISTINCT s.%s) FILTER (WHERE s.%s = true) AS distinct_positions
		FROM %s i
		LEFT JOIN %s s ON s.%s = i.%s
		GROUP BY i.%s, i.%s, i.%s, i.%s
		ORDER BY distinct_positions DESC, i.%s ASC
	`,
		industry.ID, industry.NameMN, industry.NameEN, industry.SortOrder,
		post.PositionID, post.IsActive,
		industry.Table,
		post.Table, post.IndustryID, industry.ID,
		industry.ID, industry.NameMN, industry.NameEN, industry.SortOrder,
		industry.SortOrder,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "market_observed_positions")
	}
	defer rows.Close()

	observed := make([]*ObservedPositions, 0)
	for rows.Next() {
		entry := &ObservedPositions{}
		err := rows.Scan(&entry.IndustryID, &entry.NameMN, &entry.NameEN, &entry.SortOrder, &entry.DistinctPositions)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_market_observed")
		}
		observed = append(observed, entry)
	}

	return observed, rows.Err()
}
