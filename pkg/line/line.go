// Package line is the thin slice of the LINE Messaging API this bot needs:
// webhook signature verification, event decoding and the reply endpoint.
package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
)

// ErrInvalidSignature rejects a webhook delivery whose X-Line-Signature does
// not match the request body. The only error allowed to fail the webhook.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// Event is one entry of a webhook delivery batch.
type Event struct {
	Type       string `json:"type"`
	ReplyToken string `json:"replyToken"`
	Source     struct {
		UserID string `json:"userId"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
}

type webhookBody struct {
	Events []Event `json:"events"`
}

// ValidateSignature checks the base64 HMAC-SHA256 of body against signature.
func ValidateSignature(channelSecret, signature string, body []byte) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}

// ParseRequest verifies the signature and decodes the event batch. No event
// is returned from an unverified body.
func ParseRequest(channelSecret, signature string, body []byte) ([]Event, error) {
	if !ValidateSignature(channelSecret, signature, body) {
		return nil, ErrInvalidSignature
	}
	var wb webhookBody
	if err := json.Unmarshal(body, &wb); err != nil {
		return nil, err
	}
	return wb.Events, nil
}
