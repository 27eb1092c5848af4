package usecase

import (
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
)

type UseCases struct {
	tableStore interfaces.TableStore
	publisher  interfaces.Publisher
	table      model.TableRef
}

func New(options ...Option) *UseCases {
	uc := &UseCases{}
	for _, option := range options {
		option(uc)
	}

	return uc
}

type Option func(*UseCases)

func WithTableStore(tableStore interfaces.TableStore) Option {
	return func(uc *UseCases) {
		uc.tableStore = tableStore
	}
}

func WithPublisher(publisher interfaces.Publisher) Option {
	return func(uc *UseCases) {
		uc.publisher = publisher
	}
}

// WithTable sets the table readings are appended to.
func WithTable(table model.TableRef) Option {
	return func(uc *UseCases) {
		uc.table = table
	}
}
