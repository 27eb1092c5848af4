package model

import (
	"encoding/base64"
	"encoding/json"
	"mime"
	"net/http"
	"unicode/utf8"

	"github.com/m-mizutani/goerr"
	"github.com/m-mizutani/vitalsink/pkg/domain/types"
)

// PubSubMessage is a single Pub/Sub message as delivered by push subscriptions and by
// messagePublished CloudEvents. Data is base64 text and is decoded explicitly so that a
// broken payload surfaces as ErrDecode instead of a JSON error.
type PubSubMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// PushRequest is the envelope wrapping a PubSubMessage.
type PushRequest struct {
	Message      PubSubMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// NewPushRequest reads a push envelope from an HTTP request.
func NewPushRequest(r *http.Request) (*PushRequest, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, goerr.Wrap(types.ErrInvalidContentType).With("content_type", r.Header.Get("Content-Type"))
	}

	var req PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, types.ErrInvalidInput.Wrap(err)
	}

	return &req, nil
}

// Text decodes Data into UTF-8 text.
func (x *PubSubMessage) Text() (string, error) {
	raw, err := base64.StdEncoding.DecodeString(x.Data)
	if err != nil {
		return "", goerr.Wrap(types.ErrDecode.Wrap(err)).With("message_id", x.MessageID)
	}
	if !utf8.Valid(raw) {
		return "", goerr.Wrap(types.ErrDecode, "data is not valid UTF-8").With("message_id", x.MessageID)
	}

	return string(raw), nil
}

// NewPubSubMessage builds a message carrying text, encoding it the way Pub/Sub does on delivery.
func NewPubSubMessage(text []byte) *PubSubMessage {
	return &PubSubMessage{
		Data: base64.StdEncoding.EncodeToString(text),
	}
}
