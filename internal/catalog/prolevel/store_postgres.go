// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package prolevel

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
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

func proLevelColumns() string {
	t := schema.CatalogProLevel
	return strings.Join([]string{
		t.ID, t.Level, t.NameMN, t.NameEN,
		t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}, ", ")
}

func scanProLevel(row pgx.Row) (*ProLevel, error) {
	level := &ProLevel{}
	err := row.Scan(
		&level.ID, &level.Level, &level.NameMN, &level.NameEN,
		&level.SortOrder, &level.IsActive, &level.CreatedAt, &level.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return level, nil
}

func (repository *PostgresRepository) List(ctx context.Context, onlyActive bool) ([]*ProLevel, error) {
	t := schema.CatalogProLevel

	query := fmt.Sprintf(`SELECT %s FROM %s`, proLevelColumns(), t.Table)
	if onlyActive {
		query += fmt.Sprintf(" WHERE %s = true", t.IsActive)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", t.Level)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pro_levels")
	}
	defer rows.Close()

	levels := make([]*ProLevel, 0)
	for rows.Next() {
		level, err := scanProLevel(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_pro_level")
		}
		levels = append(levels, level)
	}

	return levels, rows.Err()
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*ProLevel, error) {
	t := schema.CatalogProLevel
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, proLevelColumns(), t.Table, t.ID)

	level, err := scanProLevel(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_pro_level_by_id")
	}
	return level, nil
}

func (repository *PostgresRepository) GetByNumber(ctx context.Context, levelNumber int) (*ProLevel, error) {
	t := schema.CatalogProLevel
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, proLevelColumns(), t.Table, t.Level)

	level, err := scanProLevel(repository.db.QueryRow(ctx, query, levelNumber))
	if err != nil {
		return nil, dberr.Wrap(err, "get_pro_level_by_number")
	}
	return level, nil
}

func (repository *PostgresRepository) Insert(ctx context.Context, level *ProLevel) error {
	t := schema.CatalogProLevel
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.Table, proLevelColumns())

	_, err := repository.db.Exec(ctx, query, proLevelArgs(level)...)
	return dberr.Wrap(err, "insert_pro_level")
}

func (repository *PostgresRepository) InsertMany(ctx context.Context, levels []*ProLevel) error {
	batch := &pgx.Batch{}
	t := schema.CatalogProLevel
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.Table, proLevelColumns())

	for _, level := range levels {
		batch.Queue(query, proLevelArgs(level)...)
	}

	results := repository.db.SendBatch(ctx, batch)
	defer results.Close()

	for range levels {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "bulk_insert_pro_levels")
		}
	}
	return nil
}

func proLevelArgs(level *ProLevel) []any {
	return []any{
		level.ID, level.Level, level.NameMN, level.NameEN,
		level.SortOrder, level.IsActive, level.CreatedAt, level.UpdatedAt,
	}
}
