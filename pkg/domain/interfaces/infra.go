package interfaces

import (
	"context"

	"github.com/m-mizutani/vitalsink/pkg/domain/model"
)

//go:generate moq -out ../mock/infra.go -pkg mock . TableStore Publisher

// TableStore appends rows to an analytical table. The returned error means the table could
// not be resolved and nothing was written; row rejections are reported in the slice.
type TableStore interface {
	Insert(ctx context.Context, ref model.TableRef, rows []model.Reading) ([]model.RowError, error)
}

type Publisher interface {
	Publish(ctx context.Context, data []byte, attrs map[string]string) (string, error)
}
