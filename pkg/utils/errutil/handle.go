package errutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
)

// Handle logs err and reports it to Sentry. Errors caused by a malformed message (4xx kinds)
// are logged only, since redelivery cannot fix them and they are not bugs of this service.
func Handle(ctx context.Context, msg string, err error) {
	var xErr types.Error
	if errors.As(err, &xErr) && xErr.Code() < http.StatusInternalServerError {
		ctxutil.Logger(ctx).Warn(msg, "error", err)
		return
	}

	var goErr *goerr.Error
	if err != nil {
		goErr = goerr.Unwrap(err)
	}

	// Sending error to Sentry
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(k, v)
			}
		}
	})
	evID := hub.CaptureException(err)

	ctxutil.Logger(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
