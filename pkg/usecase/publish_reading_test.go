package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vitalsink/pkg/domain/mock"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
)

func TestPublishReading(t *testing.T) {
	publisher := &mock.PublisherMock{
		PublishFunc: func(ctx context.Context, data []byte, attrs map[string]string) (string, error) {
			return "msg-1", nil
		},
	}
	uc := usecase.New(usecase.WithPublisher(publisher))

	reading := model.Reading{Name: "De Rong", Temperature: 36.1, HeartRate: 62}
	msgID := gt.R1(uc.PublishReading(context.Background(), reading)).NoError(t)
	gt.Equal(t, msgID, "msg-1")

	calls := publisher.PublishCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, string(calls[0].Data), "De Rong,36.1,62")
}

func TestPublishReadingFailure(t *testing.T) {
	publisher := &mock.PublisherMock{
		PublishFunc: func(ctx context.Context, data []byte, attrs map[string]string) (string, error) {
			return "", goerr.New("topic not found")
		},
	}
	uc := usecase.New(usecase.WithPublisher(publisher))

	_, err := uc.PublishReading(context.Background(), model.Reading{Name: "A"})
	gt.Error(t, err)
}

func TestPublishReadingNameWithComma(t *testing.T) {
	publisher := &mock.PublisherMock{}
	uc := usecase.New(usecase.WithPublisher(publisher))

	_, err := uc.PublishReading(context.Background(), model.Reading{Name: "Rong, De", Temperature: 36.1, HeartRate: 62})
	gt.Error(t, err)
	gt.A(t, publisher.PublishCalls()).Length(0)
}

// A published reading is accepted unchanged by the ingestion side.
func TestPublishThenHandle(t *testing.T) {
	var published []byte
	publisher := &mock.PublisherMock{
		PublishFunc: func(ctx context.Context, data []byte, attrs map[string]string) (string, error) {
			published = data
			return "msg-1", nil
		},
	}
	store := &mock.TableStoreMock{}
	uc := usecase.New(
		usecase.WithPublisher(publisher),
		usecase.WithTableStore(store),
		usecase.WithTable(testTable),
	)

	reading := model.Reading{Name: "Alice", Temperature: 37.25, HeartRate: 88}
	gt.R1(uc.PublishReading(context.Background(), reading)).NoError(t)
	gt.NoError(t, uc.HandleMessage(context.Background(), model.NewPubSubMessage(published)))

	calls := store.InsertCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Rows[0], reading)
}
