package server_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/vitalsink/pkg/controller/server"
	"github.com/m-mizutani/vitalsink/pkg/domain/mock"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/usecase"
	"github.com/m-mizutani/vitalsink/pkg/utils/testutil"
)

func TestHealthCheck(t *testing.T) {
	ucMock := mock.UseCasesMock{}
	w := httptest.NewRecorder()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	mux := server.New(&ucMock)
	mux.ServeHTTP(w, r)
	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains("OK:")
}

func newPushRequest(body []byte) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/pubsub", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestPush(t *testing.T) {
	ucMock := &mock.UseCasesMock{
		HandleMessageFunc: func(ctx context.Context, msg *model.PubSubMessage) error {
			return nil
		},
	}
	w := httptest.NewRecorder()

	mux := server.New(ucMock)
	mux.ServeHTTP(w, newPushRequest(testutil.PushBody(t, "1234", []byte("De Rong,36.1,62"))))

	gt.Equal(t, w.Code, http.StatusOK)
	calls := ucMock.HandleMessageCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Msg.MessageID, "1234")
	gt.Equal(t, gt.R1(calls[0].Msg.Text()).NoError(t), "De Rong,36.1,62")
}

func TestServerError(t *testing.T) {
	type testCase struct {
		req      func() *http.Request
		handle   func(ctx context.Context, msg *model.PubSubMessage) error
		expCode  int
		testMock func(t *testing.T, ucMock *mock.UseCasesMock)
	}

	test := func(tc testCase) func(*testing.T) {
		return func(t *testing.T) {
			ucMock := mock.UseCasesMock{HandleMessageFunc: tc.handle}
			w := httptest.NewRecorder()

			mux := server.New(&ucMock)
			mux.ServeHTTP(w, tc.req())

			gt.Equal(t, w.Code, tc.expCode)
			if tc.testMock != nil {
				tc.testMock(t, &ucMock)
			}
		}
	}

	t.Run("invalid path", test(testCase{
		req: func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/invalid", nil)
		},
		expCode: http.StatusNotFound,
		testMock: func(t *testing.T, ucMock *mock.UseCasesMock) {
			gt.A(t, ucMock.HandleMessageCalls()).Length(0)
		},
	}))

	t.Run("invalid data", test(testCase{
		req: func() *http.Request {
			return newPushRequest([]byte("invalid"))
		},
		expCode: http.StatusBadRequest,
		testMock: func(t *testing.T, ucMock *mock.UseCasesMock) {
			gt.A(t, ucMock.HandleMessageCalls()).Length(0)
		},
	}))

	t.Run("invalid content type", test(testCase{
		req: func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/pubsub", bytes.NewReader(testutil.PushBody(t, "1", []byte("A,1,2"))))
			r.Header.Set("Content-Type", "text/plain")
			return r
		},
		expCode: http.StatusBadRequest,
	}))

	t.Run("parse error", test(testCase{
		req: func() *http.Request {
			return newPushRequest(testutil.PushBody(t, "1", []byte("OnlyName")))
		},
		handle: func(ctx context.Context, msg *model.PubSubMessage) error {
			return goerr.Wrap(types.ErrParse)
		},
		expCode: http.StatusBadRequest,
	}))

	t.Run("resolution error", test(testCase{
		req: func() *http.Request {
			return newPushRequest(testutil.PushBody(t, "1", []byte("De Rong,36.1,62")))
		},
		handle: func(ctx context.Context, msg *model.PubSubMessage) error {
			return goerr.Wrap(types.ErrResolution.Wrap(goerr.New("not found")))
		},
		expCode: http.StatusInternalServerError,
	}))
}

func TestPushWithUseCase(t *testing.T) {
	store := &mock.TableStoreMock{}
	uc := usecase.New(
		usecase.WithTableStore(store),
		usecase.WithTable(model.TableRef{Project: "gcp-iot-tut", Dataset: "device", Table: "data"}),
	)
	mux := server.New(uc)

	t.Run("valid reading is inserted", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, newPushRequest(testutil.PushBody(t, "1", []byte("De Rong,36.1,62"))))
		gt.Equal(t, w.Code, http.StatusOK)
		gt.A(t, store.InsertCalls()).Length(1)
	})

	t.Run("non-base64 data is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, newPushRequest([]byte(`{"message":{"data":"***","messageId":"2"}}`)))
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.A(t, store.InsertCalls()).Length(1)
	})
}
