package usecase

import (
	"context"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
)

// HandleMessage decodes a reading from msg and appends it to the target table as one row.
// Redelivery of the same message appends the row again.
func (x *UseCases) HandleMessage(ctx context.Context, msg *model.PubSubMessage) error {
	if x.tableStore == nil {
		return goerr.Wrap(types.ErrResolution, "table store is not configured")
	}

	text, err := msg.Text()
	if err != nil {
		return err
	}

	reading, err := model.ParseReading(text)
	if err != nil {
		return goerr.Wrap(err).With("message_id", msg.MessageID)
	}

	rowErrs, err := x.tableStore.Insert(ctx, x.table, []model.Reading{*reading})
	if err != nil {
		return goerr.Wrap(types.ErrResolution.Wrap(err)).With("table", x.table.String())
	}
	if len(rowErrs) > 0 {
		return goerr.Wrap(types.ErrInsert).
			With("table", x.table.String()).
			With("reading", reading).
			With("row_errors", rowErrs)
	}

	ctxutil.Logger(ctx).Info("New rows have been added.",
		"table", x.table.String(),
		"reading", reading,
		"message_id", msg.MessageID,
	)

	return nil
}
