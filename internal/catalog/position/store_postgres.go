// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package position

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

func positionColumns() string {
	t := schema.CatalogPosition
	return strings.Join([]string{
		t.ID, t.IndustryID, t.IndustrySortOrder, t.IndustryNameMN, t.IndustryNameEN,
		t.NameMN, t.NameEN, t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}, ", ")
}

func scanPosition(row pgx.Row) (*Position, error) {
	position := &Position{}
	err := row.Scan(
		&position.ID, &position.IndustryID, &position.IndustrySortOrder,
		&position.IndustryNameMN, &position.IndustryNameEN,
		&position.NameMN, &position.NameEN, &position.SortOrder, &position.IsActive,
		&position.CreatedAt, &position.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return position, nil
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Position, error) {
	t := schema.CatalogPosition

	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE true`, positionColumns(), t.Table))
	if filter.IndustryID != "" {
		args = append(args, filter.IndustryID)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.IndustryID, len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.IsActive, len(args)))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC", t.IndustrySortOrder, t.SortOrder))

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_positions")
	}
	defer rows.Close()

	positions := make([]*Position, 0)
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_position")
		}
		positions = append(positions, position)
	}

	return positions, rows.Err()
}

func (repository *PostgresRepository) CountByIndustry(ctx context.Context, industryID string) (int, error) {
	t := schema.CatalogPosition
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`, t.Table, t.IndustryID)

	var count int
	if err := repository.db.QueryRow(ctx, query, industryID).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_positions_by_industry")
	}
	return count, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Position, error) {
	t := schema.CatalogPosition
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, positionColumns(), t.Table, t.ID)

	position, err := scanPosition(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_position_by_id")
	}
	return position, nil
}

func (repository *PostgresRepository) Insert(ctx context.Context, position *Position) error {
	t := schema.CatalogPosition
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, t.Table, positionColumns())

	_, err := repository.db.Exec(ctx, query, positionArgs(position)...)
	return dberr.Wrap(err, "insert_position")
}

func (repository *PostgresRepository) InsertMany(ctx context.Context, positions []*Position) error {
	batch := &pgx.Batch{}
	t := schema.CatalogPosition
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, t.Table, positionColumns())

	for _, position := range positions {
		batch.Queue(query, positionArgs(position)...)
	}

	results := repository.db.SendBatch(ctx, batch)
	defer results.Close()

	for range positions {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "bulk_insert_positions")
		}
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, position *Position) error {
	t := schema.CatalogPosition
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`, t.Table,
		t.NameMN, t.NameEN, t.SortOrder, t.IsActive, t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		position.ID,
		position.NameMN, position.NameEN, position.SortOrder, position.IsActive, position.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_position")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	t := schema.CatalogPosition
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_position")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func positionArgs(position *Position) []any {
	return []any{
		position.ID, position.IndustryID, position.IndustrySortOrder,
		position.IndustryNameMN, position.IndustryNameEN,
		position.NameMN, position.NameEN, position.SortOrder, position.IsActive,
		position.CreatedAt, position.UpdatedAt,
	}
}
