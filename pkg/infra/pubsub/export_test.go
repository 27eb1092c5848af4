package pubsub

var ToPubSubMessage = toPubSubMessage

// NewUnconnected returns a client without a Pub/Sub connection for argument checks.
func NewUnconnected() *Client {
	return &Client{}
}
