package testutil

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
)

// PushBody builds a Pub/Sub push request body carrying text as message data.
func PushBody(t *testing.T, messageID string, text []byte) []byte {
	t.Helper()

	msg := model.NewPubSubMessage(text)
	msg.MessageID = messageID
	return gt.R1(json.Marshal(model.PushRequest{
		Message:      *msg,
		Subscription: "projects/gcp-iot-tut/subscriptions/vitalsink-push",
	})).NoError(t)
}
