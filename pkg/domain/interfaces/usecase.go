package interfaces

import (
	"context"

	"github.com/m-mizutani/vitalsink/pkg/domain/model"
)

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCases

type UseCases interface {
	HandleMessage(ctx context.Context, msg *model.PubSubMessage) error
	PublishReading(ctx context.Context, reading model.Reading) (string, error)
}
