package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// delivery is filled by handlePush once the envelope is decoded. Requests rejected before that
// are logged without message fields.
type delivery struct {
	messageID    string
	subscription string
	publishTime  string
	attributes   map[string]string
	pushEmail    string
}

type deliveryKey struct{}

func recordDelivery(ctx context.Context, req *model.PushRequest, pushEmail string) {
	d, ok := ctx.Value(deliveryKey{}).(*delivery)
	if !ok {
		return
	}
	d.messageID = req.Message.MessageID
	d.subscription = req.Subscription
	d.publishTime = req.Message.PublishTime
	d.attributes = req.Message.Attributes
	d.pushEmail = pushEmail
}

func (x *delivery) attrs() []any {
	if x.messageID == "" && x.subscription == "" {
		return nil
	}

	attrs := []any{
		"message_id", x.messageID,
		"subscription", x.subscription,
		"publish_time", x.publishTime,
	}
	if len(x.attributes) > 0 {
		attrs = append(attrs, "attributes", x.attributes)
	}
	if x.pushEmail != "" {
		attrs = append(attrs, "push_email", x.pushEmail)
	}
	return attrs
}

// logger emits one record per push delivery. A 2xx status acks the message; anything else is
// logged at warn level because Pub/Sub will redeliver it.
func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := ctxutil.Logger(r.Context()).With("request_id", uuid.NewString())

		d := &delivery{}
		ctx := ctxutil.WithLogger(r.Context(), logger)
		ctx = context.WithValue(ctx, deliveryKey{}, d)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		ts := time.Now()
		next.ServeHTTP(sw, r.WithContext(ctx))

		acked := sw.status >= 200 && sw.status < 300
		level := slog.LevelInfo
		if !acked {
			level = slog.LevelWarn
		}

		attrs := append([]any{
			"status", sw.status,
			"acked", acked,
			"latency", time.Since(ts),
		}, d.attrs()...)
		attrs = append(attrs,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"headers", r.Header,
		)

		logger.Log(ctx, level, "push delivery", attrs...)
	})
}
