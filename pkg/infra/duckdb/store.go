package duckdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
)

// Store is a local table store backed by DuckDB. A TableRef maps to schema Dataset and table
// Table; Project is ignored because the database file plays that role.
type Store struct {
	db *sql.DB
}

var _ interfaces.TableStore = (*Store)(nil)

var ErrTableNotFound = goerr.New("table not found")

// New opens or creates a DuckDB database. An empty path opens an in-memory database.
func New(path string) (*Store, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory").With("path", path)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open DuckDB").With("path", path)
	}

	return &Store{db: db}, nil
}

func (x *Store) Close() error {
	return x.db.Close()
}

// CreateTable creates the readings table if it does not exist yet.
func (x *Store) CreateTable(ctx context.Context, ref model.TableRef) error {
	stmts := []string{
		"CREATE SCHEMA IF NOT EXISTS " + quoteIdent(ref.Dataset),
		"CREATE TABLE IF NOT EXISTS " + tableName(ref) + ` (
			name VARCHAR,
			temperature DOUBLE,
			heart_rate BIGINT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := x.db.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to create table").With("table", ref.String())
		}
	}

	return nil
}

func (x *Store) Insert(ctx context.Context, ref model.TableRef, rows []model.Reading) ([]model.RowError, error) {
	var n int
	if err := x.db.QueryRowContext(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_schema = ? AND table_name = ?`,
		ref.Dataset, ref.Table,
	).Scan(&n); err != nil {
		return nil, goerr.Wrap(err, "failed to look up table").With("table", ref.String())
	}
	if n == 0 {
		return nil, goerr.Wrap(ErrTableNotFound).With("table", ref.String())
	}

	query := "INSERT INTO " + tableName(ref) + " (name, temperature, heart_rate) VALUES (?, ?, ?)"

	var rowErrs []model.RowError
	for i, row := range rows {
		if _, err := x.db.ExecContext(ctx, query, row.Name, row.Temperature, row.HeartRate); err != nil {
			rowErrs = append(rowErrs, model.RowError{Index: i, Reason: err.Error()})
		}
	}

	return rowErrs, nil
}

// Count returns the number of rows in the table.
func (x *Store) Count(ctx context.Context, ref model.TableRef) (int, error) {
	var n int
	if err := x.db.QueryRowContext(ctx, "SELECT count(*) FROM "+tableName(ref)).Scan(&n); err != nil {
		return 0, goerr.Wrap(err, "failed to count rows").With("table", ref.String())
	}
	return n, nil
}

func tableName(ref model.TableRef) string {
	return quoteIdent(ref.Dataset) + "." + quoteIdent(ref.Table)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
