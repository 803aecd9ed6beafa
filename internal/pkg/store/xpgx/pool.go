package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool wraps pgxpool with squirrel-aware helpers so store code never touches
// raw SQL strings.
type Pool struct {
	*pgxpool.Pool
}

func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{Pool: pool}
}

// Execx builds and executes a squirrel statement.
func (p *Pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return p.Exec(ctx, sql, args...)
}

// Select runs the query and scans all rows into T by column name.
func Select[T any](ctx context.Context, p *Pool, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Get runs the query and scans exactly one row into T.
func Get[T any](ctx context.Context, p *Pool, query squirrel.Sqlizer) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
}

// SelectScalar runs the query and scans a single-column result set.
func SelectScalar[T any](ctx context.Context, p *Pool, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowTo[T])
}
