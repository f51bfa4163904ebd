package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Knetic/go-namedParameterQuery"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jmoiron/sqlx"
)

// bind expands :named parameters and slices into positional args in the
// connection's bindvar style.
func bind(conn dependency.DB, query string, params map[string]any) (string, []any, error) {
	queryNamed := namedParameterQuery.NewNamedParameterQuery(query)
	queryNamed.SetValuesFromMap(params)
	query, args, err := sqlx.In(queryNamed.GetParsedQuery(), queryNamed.GetParsedParameters()...)
	if err != nil {
		return "", nil, fmt.Errorf("sqlx in: %w", err)
	}
	return conn.Rebind(query), args, nil
}

func QueryListNamed[T any](
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) ([]T, error) {
	query, args, err := bind(conn, query, params)
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var target []T
	for rows.Next() {
		var t T
		if err := rows.StructScan(&t); err != nil {
			return nil, fmt.Errorf("struct scan: %w", err)
		}
		target = append(target, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return target, nil
}

func QueryNamedOne[T any](ctx context.Context, conn dependency.DB, query string, params map[string]any) (T, error) {
	var target T
	query, args, err := bind(conn, query, params)
	if err != nil {
		return target, err
	}

	row := conn.QueryRowxContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		return target, fmt.Errorf("query row: %w", err)
	}

	if err := row.StructScan(&target); err != nil {
		return target, fmt.Errorf("struct scan: %w", err)
	}
	return target, nil
}

// nolint: interfacer
func ExecNamed(
	ctx context.Context,
	conn dependency.DB,
	query string,
	params map[string]any,
) error {
	query, args, err := bind(conn, query, params)
	if err != nil {
		return err
	}
	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ExecContext: %w", err)
	}
	return nil
}

// BulkInsert performs a bulk insert operation
func BulkInsert(ctx context.Context, conn dependency.DB, tableName string, rows []map[string]any) error {
	if len(rows) == 0 {
		return nil
	}

	// Columns come from the first map, all maps are assumed to share them
	columns := make([]string, 0, len(rows[0]))
	for column := range rows[0] {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	valueStrings := make([]string, 0, len(rows))
	values := make([]any, 0, len(rows)*len(columns))
	for _, row := range rows {
		placeholders := make([]string, 0, len(columns))
		for _, column := range columns {
			placeholders = append(placeholders, "?")
			values = append(values, row[column])
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ", ")+")")
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(valueStrings, ", "),
	)

	_, err := conn.ExecContext(ctx, conn.Rebind(query), values...)
	if err != nil {
		return fmt.Errorf("BulkInsert failed: %w", err)
	}

	return nil
}

// tx runs f in a transaction, rolling it back if f returns an error.
func (ms *SQLStore) tx(ctx context.Context, f func(dependency.DB) error) error {
	tx, err := ms.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := f(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
