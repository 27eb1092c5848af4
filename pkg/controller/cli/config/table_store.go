package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/infra/bq"
	"github.com/m-mizutani/vitalsink/pkg/infra/duckdb"
	"github.com/m-mizutani/vitalsink/pkg/utils/logging"
	"github.com/urfave/cli/v2"
)

type TableStore struct {
	table             string
	bigqueryProject   string
	duckdbPath        string
	duckdbCreateTable bool
}

func (x *TableStore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "table",
			Usage:       "Target table as project.dataset.table",
			Aliases:     []string{"t"},
			EnvVars:     []string{"VITALSINK_TABLE"},
			Destination: &x.table,
			Value:       types.DefaultTable,
		},
		&cli.StringFlag{
			Name:        "bigquery-project",
			Usage:       "Project ID for the BigQuery client (default: project of --table)",
			EnvVars:     []string{"VITALSINK_BIGQUERY_PROJECT"},
			Destination: &x.bigqueryProject,
		},
		&cli.StringFlag{
			Name:        "duckdb-path",
			Usage:       "Write rows to a local DuckDB file instead of BigQuery",
			EnvVars:     []string{"VITALSINK_DUCKDB_PATH"},
			Destination: &x.duckdbPath,
		},
		&cli.BoolFlag{
			Name:        "duckdb-create-table",
			Usage:       "Create the target table in DuckDB if it does not exist",
			EnvVars:     []string{"VITALSINK_DUCKDB_CREATE_TABLE"},
			Destination: &x.duckdbCreateTable,
		},
	}
}

func (x *TableStore) Table() (model.TableRef, error) {
	return model.ParseTableRef(x.table)
}

// Configure opens the table store. The returned function releases it.
func (x *TableStore) Configure(ctx context.Context) (interfaces.TableStore, func(), error) {
	ref, err := x.Table()
	if err != nil {
		return nil, nil, err
	}

	if x.duckdbPath != "" {
		store, err := duckdb.New(x.duckdbPath)
		if err != nil {
			return nil, nil, err
		}
		if x.duckdbCreateTable {
			if err := store.CreateTable(ctx, ref); err != nil {
				store.Close()
				return nil, nil, err
			}
		}

		logging.Default().Info("Use DuckDB table store", "path", x.duckdbPath, "table", ref.String())
		return store, closer(store.Close), nil
	}

	projectID := x.bigqueryProject
	if projectID == "" {
		projectID = ref.Project
	}

	client, err := bq.New(ctx, projectID)
	if err != nil {
		return nil, nil, goerr.Wrap(err).With("table", ref.String())
	}

	logging.Default().Info("Use BigQuery table store", "project_id", projectID, "table", ref.String())
	return client, closer(client.Close), nil
}

func (x *TableStore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("table", x.table),
		slog.String("bigquery_project", x.bigqueryProject),
		slog.String("duckdb_path", x.duckdbPath),
		slog.Bool("duckdb_create_table", x.duckdbCreateTable),
	)
}

func closer(fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			logging.Default().Warn("failed to close table store", "error", err)
		}
	}
}
