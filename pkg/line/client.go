package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.line.me"

type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		endpoint: defaultEndpoint,
		token:    token,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ReplyText sends one text message using the event's one-time reply token.
// The token is bound to its originating event and expires after a single use.
func (c *Client) ReplyText(ctx context.Context, replyToken, text string) error {
	payload := map[string]any{
		"replyToken": replyToken,
		"messages": []map[string]string{
			{"type": "text", "text": text},
		},
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, "POST",
		strings.TrimRight(c.endpoint, "/")+"/v2/bot/message/reply", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("line reply: status %d", resp.StatusCode)
	}
	return nil
}
