package duckdb_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/infra/duckdb"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
)

var testTable = model.TableRef{Project: "gcp-iot-tut", Dataset: "device", Table: "data"}

func newStore(t *testing.T) *duckdb.Store {
	t.Helper()
	store := gt.R1(duckdb.New(filepath.Join(t.TempDir(), "vitalsink.duckdb"))).NoError(t)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInsert(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	gt.NoError(t, store.CreateTable(ctx, testTable))

	rowErrs := gt.R1(store.Insert(ctx, testTable, []model.Reading{
		{Name: "De Rong", Temperature: 36.1, HeartRate: 62},
		{Name: "Alice", Temperature: 37.0, HeartRate: 70},
	})).NoError(t)
	gt.A(t, rowErrs).Length(0)
	gt.Equal(t, gt.R1(store.Count(ctx, testTable)).NoError(t), 2)
}

func TestInsertTableNotFound(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := store.Insert(ctx, testTable, []model.Reading{{Name: "A", Temperature: 1, HeartRate: 1}})
	gt.True(t, errors.Is(err, duckdb.ErrTableNotFound))
}

func TestCreateTableIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	gt.NoError(t, store.CreateTable(ctx, testTable))
	gt.NoError(t, store.CreateTable(ctx, testTable))
}

func TestHandleMessageWithStore(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	gt.NoError(t, store.CreateTable(ctx, testTable))

	uc := usecase.New(
		usecase.WithTableStore(store),
		usecase.WithTable(testTable),
	)

	t.Run("redelivery appends a duplicate row", func(t *testing.T) {
		msg := model.NewPubSubMessage([]byte("De Rong,36.1,62"))
		gt.NoError(t, uc.HandleMessage(ctx, msg))
		gt.NoError(t, uc.HandleMessage(ctx, msg))
		gt.Equal(t, gt.R1(store.Count(ctx, testTable)).NoError(t), 2)
	})

	t.Run("missing table inserts nothing", func(t *testing.T) {
		missing := model.TableRef{Project: "gcp-iot-tut", Dataset: "device", Table: "missing"}
		uc := usecase.New(
			usecase.WithTableStore(store),
			usecase.WithTable(missing),
		)
		err := uc.HandleMessage(ctx, model.NewPubSubMessage([]byte("De Rong,36.1,62")))
		gt.True(t, errors.Is(err, types.ErrResolution))
		gt.Equal(t, gt.R1(store.Count(ctx, testTable)).NoError(t), 2)
	})
}
