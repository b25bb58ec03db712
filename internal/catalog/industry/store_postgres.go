// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package industry

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

// industryColumns is the canonical SELECT column list, shared by every query.
func industryColumns() string {
	t := schema.CatalogIndustry
	return strings.Join([]string{
		t.ID, t.NameMN, t.NameEN, t.Description, t.AverageSalary,
		t.AvgSalaryAverage, t.AvgSalaryJunior, t.AvgSalaryMid, t.AvgSalarySenior,
		t.AvgSalaryMin, t.AvgSalaryMax,
		t.SortOrder, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}, ", ")
}

func scanIndustry(row pgx.Row) (*Industry, error) {
	industry := &Industry{}
	err := row.Scan(
		&industry.ID, &industry.NameMN, &industry.NameEN, &industry.Description, &industry.AverageSalary,
		&industry.SalaryBands.Average, &industry.SalaryBands.Junior, &industry.SalaryBands.Mid, &industry.SalaryBands.Senior,
		&industry.MinSalaryMNT, &industry.MaxSalaryMNT,
		&industry.SortOrder, &industry.IsActive, &industry.CreatedAt, &industry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return industry, nil
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Industry, error) {
	t := schema.CatalogIndustry

	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE true`, industryColumns(), t.Table))
	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $1", t.IsActive))
		args = append(args, *filter.IsActive)
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", t.SortOrder))

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_industries")
	}
	defer rows.Close()

	industries := make([]*Industry, 0)
	for rows.Next() {
		industry, err := scanIndustry(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_industry")
		}
		industries = append(industries, industry)
	}

	return industries, rows.Err()
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Industry, error) {
	t := schema.CatalogIndustry
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, industryColumns(), t.Table, t.ID)

	industry, err := scanIndustry(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_industry_by_id")
	}
	return industry, nil
}

func (repository *PostgresRepository) GetByNameEN(ctx context.Context, nameEN string) (*Industry, error) {
	t := schema.CatalogIndustry
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`, industryColumns(), t.Table, t.NameEN)

	industry, err := scanIndustry(repository.db.QueryRow(ctx, query, nameEN))
	if err != nil {
		return nil, dberr.Wrap(err, "get_industry_by_name")
	}
	return industry, nil
}

func (repository *PostgresRepository) Insert(ctx context.Context, industry *Industry) error {
	t := schema.CatalogIndustry
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, t.Table, industryColumns())

	_, err := repository.db.Exec(ctx, query, insertArgs(industry)...)
	return dberr.Wrap(err, "insert_industry")
}

func (repository *PostgresRepository) InsertMany(ctx context.Context, industries []*Industry) error {
	batch := &pgx.Batch{}
	t := schema.CatalogIndustry
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, t.Table, industryColumns())

	for _, industry := range industries {
		batch.Queue(query, insertArgs(industry)...)
	}

	results := repository.db.SendBatch(ctx, batch)
	defer results.Close()

	for range industries {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "bulk_insert_industries")
		}
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, industry *Industry) error {
	t := schema.CatalogIndustry
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5,
			%s = $6, %s = $7, %s = $8, %s = $9,
			%s = $10, %s = $11, %s = $12, %s = $13, %s = $14
		WHERE %s = $1
	`, t.Table,
		t.NameMN, t.NameEN, t.Description, t.AverageSalary,
		t.AvgSalaryAverage, t.AvgSalaryJunior, t.AvgSalaryMid, t.AvgSalarySenior,
		t.AvgSalaryMin, t.AvgSalaryMax, t.SortOrder, t.IsActive, t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		industry.ID,
		industry.NameMN, industry.NameEN, industry.Description, industry.AverageSalary,
		industry.SalaryBands.Average, industry.SalaryBands.Junior, industry.SalaryBands.Mid, industry.SalaryBands.Senior,
		industry.MinSalaryMNT, industry.MaxSalaryMNT, industry.SortOrder, industry.IsActive, industry.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_industry")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	t := schema.CatalogIndustry
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_industry")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func insertArgs(industry *Industry) []any {
	return []any{
		industry.ID, industry.NameMN, industry.NameEN, industry.Description, industry.AverageSalary,
		industry.SalaryBands.Average, industry.SalaryBands.Junior, industry.SalaryBands.Mid, industry.SalaryBands.Senior,
		industry.MinSalaryMNT, industry.MaxSalaryMNT,
		industry.SortOrder, industry.IsActive, industry.CreatedAt, industry.UpdatedAt,
	}
}
