package bq_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/infra/bq"
	"github.com/m-mizutani/vitalsink/pkg/utils/testutil"
)

func TestToRowErrors(t *testing.T) {
	t.Run("PutMultiError", func(t *testing.T) {
		err := bigquery.PutMultiError{
			{
				RowIndex: 1,
				Errors:   bigquery.MultiError{errors.New("no such field: pulse")},
			},
		}

		rowErrs := bq.ToRowErrors(err, 2)
		gt.A(t, rowErrs).Length(1)
		gt.Equal(t, rowErrs[0].Index, 1)
		gt.S(t, rowErrs[0].Reason).Contains("no such field: pulse")
	})

	t.Run("request error rejects all rows", func(t *testing.T) {
		rowErrs := bq.ToRowErrors(errors.New("connection reset"), 3)
		gt.A(t, rowErrs).Length(3)
		gt.Equal(t, rowErrs[2], model.RowError{Index: 2, Reason: "connection reset"})
	})
}

func TestInsert(t *testing.T) {
	ref := testutil.LoadTableRef(t, "TEST_BIGQUERY_TABLE")

	ctx := context.Background()
	client := gt.R1(bq.New(ctx, ref.Project)).NoError(t)
	defer client.Close()

	rowErrs := gt.R1(client.Insert(ctx, ref, []model.Reading{
		{Name: "De Rong", Temperature: 36.1, HeartRate: 62},
	})).NoError(t)
	gt.A(t, rowErrs).Length(0)
}

func TestInsertTableNotFound(t *testing.T) {
	ref := testutil.LoadTableRef(t, "TEST_BIGQUERY_TABLE")
	ref.Table = "no_such_table_for_vitalsink_test"

	ctx := context.Background()
	client := gt.R1(bq.New(ctx, ref.Project)).NoError(t)
	defer client.Close()

	_, err := client.Insert(ctx, ref, []model.Reading{{Name: "A", Temperature: 1, HeartRate: 1}})
	gt.True(t, errors.Is(err, bq.ErrTableNotFound))
}
