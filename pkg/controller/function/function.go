package function

import (
	"context"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
	"github.com/m-mizutani/vitalsink/pkg/utils/errutil"
)

// Register makes the ingestion handler available to the Functions Framework as
// types.FunctionName.
func Register(uc interfaces.UseCases) {
	functions.CloudEvent(types.FunctionName, New(uc))
}

// New returns a handler for google.cloud.pubsub.topic.v1.messagePublished events. Returning an
// error makes the runtime retry the event if retries are enabled for the function.
func New(uc interfaces.UseCases) func(ctx context.Context, e event.Event) error {
	return func(ctx context.Context, e event.Event) error {
		var req model.PushRequest
		if err := e.DataAs(&req); err != nil {
			err = goerr.Wrap(types.ErrInvalidInput.Wrap(err)).With("event_id", e.ID())
			errutil.Handle(ctx, "failed to decode CloudEvent", err)
			return err
		}

		ctx = ctxutil.WithLogAttrs(ctx,
			"event_id", e.ID(),
			"event_type", e.Type(),
			"message_id", req.Message.MessageID,
		)

		if err := uc.HandleMessage(ctx, &req.Message); err != nil {
			errutil.Handle(ctx, "failed to handle published message", err)
			return err
		}

		return nil
	}
}
