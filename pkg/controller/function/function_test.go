package function_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vitalsink/pkg/controller/function"
	"github.com/m-mizutani/vitalsink/pkg/domain/mock"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
)

func newEvent(t *testing.T, data any) event.Event {
	t.Helper()

	e := event.New()
	e.SetID("8414474441283495")
	e.SetType("google.cloud.pubsub.topic.v1.messagePublished")
	e.SetSource("//pubsub.googleapis.com/projects/gcp-iot-tut/topics/device-events")
	gt.NoError(t, e.SetData(event.ApplicationJSON, data))
	return e
}

func TestIngestReading(t *testing.T) {
	type testCase struct {
		data     any
		err      error
		testMock func(t *testing.T, store *mock.TableStoreMock)
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			store := &mock.TableStoreMock{}
			uc := usecase.New(
				usecase.WithTableStore(store),
				usecase.WithTable(model.TableRef{Project: "gcp-iot-tut", Dataset: "device", Table: "data"}),
			)

			err := function.New(uc)(context.Background(), newEvent(t, tc.data))
			if tc.err != nil {
				gt.True(t, errors.Is(err, tc.err))
			} else {
				gt.NoError(t, err)
			}
			tc.testMock(t, store)
		}
	}

	t.Run("valid reading", runTest(testCase{
		data: model.PushRequest{
			Message: *model.NewPubSubMessage([]byte("De Rong,36.1,62")),
		},
		testMock: func(t *testing.T, store *mock.TableStoreMock) {
			calls := store.InsertCalls()
			gt.A(t, calls).Length(1)
			gt.Equal(t, calls[0].Rows[0], model.Reading{Name: "De Rong", Temperature: 36.1, HeartRate: 62})
		},
	}))

	t.Run("invalid base64", runTest(testCase{
		data: map[string]any{
			"message": map[string]any{"data": "@@@", "messageId": "1"},
		},
		err: types.ErrDecode,
		testMock: func(t *testing.T, store *mock.TableStoreMock) {
			gt.A(t, store.InsertCalls()).Length(0)
		},
	}))

	t.Run("invalid envelope", runTest(testCase{
		data: []string{"not", "an", "envelope"},
		err:  types.ErrInvalidInput,
		testMock: func(t *testing.T, store *mock.TableStoreMock) {
			gt.A(t, store.InsertCalls()).Length(0)
		},
	}))

	t.Run("parse error", runTest(testCase{
		data: model.PushRequest{
			Message: *model.NewPubSubMessage([]byte("A,abc,5")),
		},
		err: types.ErrParse,
		testMock: func(t *testing.T, store *mock.TableStoreMock) {
			gt.A(t, store.InsertCalls()).Length(0)
		},
	}))
}
