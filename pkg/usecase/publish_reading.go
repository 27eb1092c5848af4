package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
)

func (x *UseCases) PublishReading(ctx context.Context, reading model.Reading) (string, error) {
	if x.publisher == nil {
		return "", goerr.New("publisher is not configured")
	}

	// The wire form has no quoting, so a comma would shift the numeric fields.
	if strings.Contains(reading.Name, ",") {
		return "", goerr.New("name must not contain a comma").With("name", reading.Name)
	}

	msgID, err := x.publisher.Publish(ctx, []byte(reading.Format()), nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to publish reading").With("reading", reading)
	}
	ctxutil.Logger(ctx).Info("reading published", "message_id", msgID, "reading", reading)

	return msgID, nil
}
