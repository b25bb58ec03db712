// Copyright (c) 2026 Tsalin. All rights reserved.
// Author: dev@tsalin.mn

package salary

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsalin/api/internal/platform/database/schema"
	"github.com/tsalin/api/internal/platform/dberr"
	"github.com/tsalin/api/pkg/pagination"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func postColumns(prefix string) string {
	t := schema.SalaryPost
	columns := []string{
		t.ID, t.IndustryID, t.PositionID, t.Source, t.Salary, t.Level,
		t.LevelNameMN, t.LevelNameEN, t.ExperienceYears,
		t.IsVerified, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
	for i, column := range columns {
		columns[i] = prefix + "." + column
	}
	return strings.Join(columns, ", ")
}

func scanPost(row pgx.Row) (*Post, error) {
	post := &Post{}
	err := row.Scan(
		&post.ID, &post.IndustryID, &post.PositionID, &post.Source, &post.Salary, &post.Level,
		&post.LevelNameMN, &post.LevelNameEN, &post.ExperienceYears,
		&post.IsVerified, &post.IsActive, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func scanPostWithNames(row pgx.Row) (*WithNames, error) {
	post := &WithNames{}
	err := row.Scan(
		&post.ID, &post.IndustryID, &post.PositionID, &post.Source, &post.Salary, &post.Level,
		&post.LevelNameMN, &post.LevelNameEN, &post.ExperienceYears,
		&post.IsVerified, &post.IsActive, &post.CreatedAt, &post.UpdatedAt,
		&post.IndustryNameMN, &post.IndustryNameEN,
		&post.PositionNameMN, &post.PositionNameEN,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// buildWhere translates the optional-filter struct into a WHERE clause.
// Each set field adds exactly one predicate; unset fields add none.
func buildWhere(filter Filter) (string, []any) {
	t := schema.SalaryPost

	var predicates []string
	var args []any

	add := func(column, operator string, value any) {
		args = append(args, value)
		predicates = append(predicates, fmt.Sprintf("p.%s %s $%d", column, operator, len(args)))
	}

	if filter.IndustryID != "" {
		add(t.IndustryID, "=", filter.IndustryID)
	}
	if filter.PositionID != "" {
		add(t.PositionID, "=", filter.PositionID)
	}
	if filter.Level != nil {
		add(t.Level, "=", *filter.Level)
	}
	if filter.ExperienceYears != nil {
		add(t.ExperienceYears, "=", *filter.ExperienceYears)
	}
	if filter.IsVerified != nil {
		add(t.IsVerified, "=", *filter.IsVerified)
	}
	if filter.IsActive != nil {
		add(t.IsActive, "=", *filter.IsActive)
	}
	if filter.MinSalary != nil {
		add(t.Salary, ">=", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		add(t.Salary, "<=", *filter.MaxSalary)
	}

	if len(predicates) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(predicates, " AND "), args
}

// namedSelect is the observation query joined to the catalog for display
// names. Observations reference the catalog by convention only, so the
// joins are LEFT and missing rows yield empty names.
func namedSelect() string {
	t := schema.SalaryPost
	industry := schema.CatalogIndustry
	position := schema.CatalogPosition

	return fmt.Sprintf(`
		SELECT %s,
			COALESCE(i.%s, ''), COALESCE(i.%s, ''),
			COALESCE(pos.%s, ''), COALESCE(pos.%s, '')
		FROM %s p
		LEFT JOIN %s i ON i.%s = p.%s
		LEFT JOIN %s pos ON pos.%s = p.%s
	`,
		postColumns("p"),
		industry.NameMN, industry.NameEN,
		position.NameMN, position.NameEN,
		t.Table,
		industry.Table, industry.ID, t.IndustryID,
		position.Table, position.ID, t.PositionID,
	)
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter, params pagination.Params) ([]*WithNames, int, error) {
	t := schema.SalaryPost
	where, args := buildWhere(filter)

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s p%s`, t.Table, where)
	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_salary_posts")
	}

	query := namedSelect() + where +
		fmt.Sprintf(" ORDER BY p.%s DESC LIMIT %d OFFSET %d", t.CreatedAt, params.Limit, params.Offset())

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_salary_posts")
	}
	defer rows.Close()

	posts := make([]*WithNames, 0)
	for rows.Next() {
		post, err := scanPostWithNames(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_salary_post")
		}
		posts = append(posts, post)
	}

	return posts, total, rows.Err()
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id string) (*Post, error) {
	t := schema.SalaryPost
	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.%s = $1`, postColumns("p"), t.Table, t.ID)

	post, err := scanPost(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_salary_post_by_id")
	}
	return post, nil
}

func (repository *PostgresRepository) Insert(ctx context.Context, post *Post) error {
	_, err := repository.db.Exec(ctx, insertQuery(), postArgs(post)...)
	return dberr.Wrap(err, "insert_salary_post")
}

func (repository *PostgresRepository) InsertMany(ctx context.Context, posts []*Post) error {
	batch := &pgx.Batch{}
	for _, post := range posts {
		batch.Queue(insertQuery(), postArgs(post)...)
	}

	results := repository.db.SendBatch(ctx, batch)
	defer results.Close()

	for range posts {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "bulk_insert_salary_posts")
		}
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, post *Post) error {
	t := schema.SalaryPost
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1
	`, t.Table,
		t.Source, t.Salary, t.Level, t.LevelNameMN, t.LevelNameEN,
		t.ExperienceYears, t.IsVerified, t.IsActive, t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(ctx, query,
		post.ID,
		post.Source, post.Salary, post.Level, post.LevelNameMN, post.LevelNameEN,
		post.ExperienceYears, post.IsVerified, post.IsActive, post.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_salary_post")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id string) error {
	t := schema.SalaryPost
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_salary_post")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListForPair(ctx context.Context, industryID, positionID string) ([]*Post, error) {
	t := schema.SalaryPost
	query := fmt.Sprintf(`
		SELECT %s FROM %s p
		WHERE p.%s = $1 AND p.%s = $2 AND p.%s = true
	`, postColumns("p"), t.Table, t.IndustryID, t.PositionID, t.IsActive)

	rows, err := repository.db.Query(ctx, query, industryID, positionID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_salary_posts_for_pair")
	}
	defer rows.Close()

	posts := make([]*Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_salary_post")
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (repository *PostgresRepository) ListByPositions(ctx context.Context, industryID string, positionIDs []string, params pagination.Params) ([]*WithNames, int, error) {
	t := schema.SalaryPost

	where := fmt.Sprintf(" WHERE p.%s = $1 AND p.%s = ANY($2) AND p.%s = true",
		t.IndustryID, t.PositionID, t.IsActive)
	args := []any{industryID, positionIDs}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s p%s`, t.Table, where)
	var total int
	if err := repository.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_salary_posts_by_positions")
	}

	query := namedSelect() + where +
		fmt.Sprintf(" ORDER BY p.%s DESC LIMIT %d OFFSET %d", t.CreatedAt, params.Limit, params.Offset())

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_salary_posts_by_positions")
	}
	defer rows.Close()

	posts := make([]*WithNames, 0)
	for rows.Next() {
		post, err := scanPostWithNames(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_salary_post")
		}
		posts = append(posts, post)
	}

	return posts, total, rows.Err()
}

func (repository *PostgresRepository) ListActiveByIndustry(ctx context.Context, industryID string) ([]*WithNames, error) {
	t := schema.SalaryPost

	query := namedSelect() +
		fmt.Sprintf(" WHERE p.%s = $1 AND p.%s = true ORDER BY p.%s ASC",
			t.IndustryID, t.IsActive, t.Salary)

	rows, err := repository.db.Query(ctx, query, industryID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_salary_posts_by_industry")
	}
	defer rows.Close()

	posts := make([]*WithNames, 0)
	for rows.Next() {
		post, err := scanPostWithNames(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_salary_post")
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func insertQuery() string {
	t := schema.SalaryPost
	columns := strings.Join([]string{
		t.ID, t.IndustryID, t.PositionID, t.Source, t.Salary, t.Level,
		t.LevelNameMN, t.LevelNameEN, t.ExperienceYears,
		t.IsVerified, t.IsActive, t.CreatedAt, t.UpdatedAt,
	}, ", ")

	return fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, t.Table, columns)
}

func postArgs(post *Post) []any {
	return []any{
		post.ID, post.IndustryID, post.PositionID, post.Source, post.Salary, post.Level,
		post.LevelNameMN, post.LevelNameEN, post.ExperienceYears,
		post.IsVerified, post.IsActive, post.CreatedAt, post.UpdatedAt,
	}
}
