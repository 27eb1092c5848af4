package bq

import (
	"context"
	"errors"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"google.golang.org/api/googleapi"
)

type Client struct {
	client *bigquery.Client
}

var _ interfaces.TableStore = (*Client)(nil)

var ErrTableNotFound = goerr.New("table not found")

// New creates a BigQuery client with ambient credentials. projectID is the project jobs are
// billed to; it does not have to own the target table.
func New(ctx context.Context, projectID string) (*Client, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client").With("project_id", projectID)
	}

	return &Client{client: client}, nil
}

func (x *Client) Close() error {
	return x.client.Close()
}

func (x *Client) Insert(ctx context.Context, ref model.TableRef, rows []model.Reading) ([]model.RowError, error) {
	table := x.client.DatasetInProject(ref.Project, ref.Dataset).Table(ref.Table)

	if _, err := table.Metadata(ctx); err != nil {
		var gapiErr *googleapi.Error
		if errors.As(err, &gapiErr) && gapiErr.Code == http.StatusNotFound {
			return nil, goerr.Wrap(ErrTableNotFound).With("table", ref.String())
		}
		return nil, goerr.Wrap(err, "failed to get table metadata").With("table", ref.String())
	}

	savers := make([]*readingSaver, len(rows))
	for i := range rows {
		savers[i] = &readingSaver{reading: rows[i]}
	}

	if err := table.Inserter().Put(ctx, savers); err != nil {
		return toRowErrors(err, len(rows)), nil
	}

	return nil, nil
}

type readingSaver struct {
	reading model.Reading
}

// Save implements bigquery.ValueSaver. Rows carry no insert ID, so a redelivered reading is
// appended again.
func (x *readingSaver) Save() (map[string]bigquery.Value, string, error) {
	return map[string]bigquery.Value{
		"name":        x.reading.Name,
		"temperature": x.reading.Temperature,
		"heart_rate":  x.reading.HeartRate,
	}, bigquery.NoDedupeID, nil
}

// toRowErrors flattens the error of Inserter.Put. Errors not tied to a row reject every row.
func toRowErrors(err error, n int) []model.RowError {
	var multiErr bigquery.PutMultiError
	if errors.As(err, &multiErr) {
		rowErrs := make([]model.RowError, 0, len(multiErr))
		for _, rowErr := range multiErr {
			rowErrs = append(rowErrs, model.RowError{
				Index:  rowErr.RowIndex,
				Reason: rowErr.Errors.Error(),
			})
		}
		return rowErrs
	}

	rowErrs := make([]model.RowError, n)
	for i := range rowErrs {
		rowErrs[i] = model.RowError{Index: i, Reason: err.Error()}
	}
	return rowErrs
}
