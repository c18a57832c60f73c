package controllerImp

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ribbon/pkg/chat/service"
	"ribbon/pkg/line"
)

// Replier delivers one reply for one inbound event.
type Replier interface {
	ReplyText(ctx context.Context, replyToken, text string) error
}

type WebhookCtrl struct {
	svc    service.ChatService
	bot    Replier
	secret string
}

func New(svc service.ChatService, bot Replier, channelSecret string) *WebhookCtrl {
	return &WebhookCtrl{svc: svc, bot: bot, secret: channelSecret}
}

// Callback handles a signed batch of webhook events. An invalid signature
// rejects the whole delivery before any event is processed.
func (h *WebhookCtrl) Callback(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read body"})
	}

	events, err := line.ParseRequest(h.secret, c.Request().Header.Get("X-Line-Signature"), body)
	if err != nil {
		if errors.Is(err, line.ErrInvalidSignature) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "signature"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed body"})
	}

	ctx := c.Request().Context()
	for _, ev := range events {
		if ev.Type != "message" || ev.Message.Type != "text" {
			continue
		}
		reply := h.svc.Reply(ctx, ev.Source.UserID, ev.Message.Text)
		if err := h.bot.ReplyText(ctx, ev.ReplyToken, reply); err != nil {
			log.Printf("[webhook] reply: %v", err)
		}
	}
	return c.String(http.StatusOK, "OK")
}
