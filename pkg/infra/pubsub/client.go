package pubsub

import (
	"context"
	"encoding/base64"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/interfaces"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
	"github.com/m-mizutani/vitalsink/pkg/utils/ctxutil"
)

type Client struct {
	client *pubsub.Client
}

func New(ctx context.Context, projectID string) (*Client, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Pub/Sub client").With("project_id", projectID)
	}

	return &Client{client: client}, nil
}

func (x *Client) Close() error {
	return x.client.Close()
}

// Publisher returns a publisher for topicID. Stop must be called to flush pending messages.
func (x *Client) Publisher(topicID string) *Publisher {
	return &Publisher{topic: x.client.Topic(topicID)}
}

type Publisher struct {
	topic *pubsub.Topic
}

var _ interfaces.Publisher = (*Publisher)(nil)

// Publish sends data and waits for the server-assigned message ID.
func (x *Publisher) Publish(ctx context.Context, data []byte, attrs map[string]string) (string, error) {
	result := x.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})

	msgID, err := result.Get(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to publish message").With("topic", x.topic.ID())
	}
	return msgID, nil
}

func (x *Publisher) Stop() {
	x.topic.Stop()
}

// Handler processes one message. A nil return acks the message; an error nacks it.
type Handler func(ctx context.Context, msg *model.PubSubMessage) error

// Receive pulls from subscriptionID until ctx is canceled. At most maxOutstanding messages are
// handled at once; it must be 1 or more since the client treats a negative limit as unlimited.
func (x *Client) Receive(ctx context.Context, subscriptionID string, maxOutstanding int, handler Handler) error {
	if maxOutstanding < 1 {
		return goerr.New("max outstanding messages must be 1 or more").
			With("subscription", subscriptionID).
			With("max_outstanding", maxOutstanding)
	}

	sub := x.client.Subscription(subscriptionID)
	sub.ReceiveSettings.MaxOutstandingMessages = maxOutstanding
	if maxOutstanding == 1 {
		sub.ReceiveSettings.NumGoroutines = 1
	}

	err := sub.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		msg := toPubSubMessage(m)
		ctx = ctxutil.WithLogAttrs(ctx, "message_id", m.ID)

		if err := handler(ctx, msg); err != nil {
			ctxutil.Logger(ctx).Warn("nack message", "error", err)
			m.Nack()
			return
		}
		m.Ack()
	})
	if err != nil {
		return goerr.Wrap(err, "failed to receive messages").With("subscription", subscriptionID)
	}

	return nil
}

// toPubSubMessage re-encodes the payload as on push delivery so every adapter shares one
// decoding path.
func toPubSubMessage(m *pubsub.Message) *model.PubSubMessage {
	return &model.PubSubMessage{
		Data:        base64.StdEncoding.EncodeToString(m.Data),
		Attributes:  m.Attributes,
		MessageID:   m.ID,
		PublishTime: m.PublishTime.Format(time.RFC3339Nano),
	}
}
