// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package major

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

func majorColumns() string {
	t := schema.CatalogMajor
	return strings.Join([]string{
		t.ID, t.IndustryID, t.NameMN, t.NameEN, t.Synonyms,
		t.SortOrder, t.IsActive, t.Source, t.CreatedAt, t.UpdatedAt,
	}, ", ")
}

func scanMajor(row pgx.Row) (*Major, error) {
	major := &Major{}
	err := row.Scan(
		&major.ID, &major.IndustryID, &major.NameMN, &major.NameEN, &major.Synonyms,
		&major.SortOrder, &major.IsActive, &major.Source, &major.CreatedAt, &major.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return major, nil
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Major, error) {
	t := schema.CatalogMajor

	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE true`, majorColumns(), t.Table))
	if filter.IndustryID != "" {
		args = append(args, filter.IndustryID)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.IndustryID, len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.IsActive, len(args)))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC", t.SortOrder, t.NameEN))

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_majors")
	}
	defer rows.Close()

	majors := make([]*Major, 0)
	for rows.Next() {
		major, err := scanMajor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_major")
		}
		majors = append(majors, major)
	}

	return majors, rows.Err()
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Major, error) {
	t := schema.CatalogMajor
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, majorColumns(), t.Table, t.ID)

	major, err := scanMajor(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_major_by_id")
	}
	return major, nil
}

func (repository *PostgresRepository) Insert(ctx context.Context, major *Major) error {
	t := schema.CatalogMajor
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, t.Table, majorColumns())

	_, err := repository.db.Exec(ctx, query, majorArgs(major)...)
	return dberr.Wrap(err, "insert_major")
}

func (repository *PostgresRepository) InsertMany(ctx context.Context, majors []*Major) error {
	batch := &pgx.Batch{}
	t := schema.CatalogMajor
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, t.Table, majorColumns())

	for _, major := range majors {
		batch.Queue(query, majorArgs(major)...)
	}

	results := repository.db.SendBatch(ctx, batch)
	defer results.Close()

	for range majors {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "bulk_insert_majors")
		}
	}
	return nil
}

func majorArgs(major *Major) []any {
	return []any{
		major.ID, major.IndustryID, major.NameMN, major.NameEN, major.Synonyms,
		major.SortOrder, major.IsActive, major.Source, major.CreatedAt, major.UpdatedAt,
	}
}
