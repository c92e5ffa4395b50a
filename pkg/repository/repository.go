// Package repository provides generic helpers for SQL repositories: scanning,
// single-row exec checks, and translation of driver errors into domain errors.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// ErrNoRowsAffected indicates an exec statement matched no rows.
var ErrNoRowsAffected = errors.New("no rows affected")

// Scanner abstracts sql.Row and sql.Rows for shared scan functions.
type Scanner interface {
	Scan(dest ...any) error
}

// Queryer abstracts sql.DB and sql.Tx so repository helpers work inside and
// outside transactions.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryOne executes a query expected to return a single row and scans it.
func QueryOne[T any](ctx context.Context, q Queryer, query string, args []any, scan func(Scanner) (T, error)) (T, error) {
	return scan(q.QueryRowContext(ctx, query, args...))
}

// QueryMany executes a query and scans all returned rows.
func QueryMany[T any](ctx context.Context, q Queryer, query string, args []any, scan func(Scanner) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		result, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// ExecExpectOne executes a statement and returns ErrNoRowsAffected if it
// matched no rows.
func ExecExpectOne(ctx context.Context, q Queryer, query string, args ...any) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// MapError translates driver-level errors into domain errors: sql.ErrNoRows
// and ErrNoRowsAffected map to notFound, unique violations map to duplicate.
// Nil targets and all other errors pass through unchanged.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}

	if notFound != nil && (errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNoRowsAffected)) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if duplicate != nil && errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return duplicate
	}

	return err
}
