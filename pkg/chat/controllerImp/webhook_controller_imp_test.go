package controllerImp

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyService struct {
	calls    int
	lastUser string
	lastMsg  string
}

func (s *spyService) Reply(ctx context.Context, userID, message string) string {
	s.calls++
	s.lastUser = userID
	s.lastMsg = message
	return "返信テキスト"
}

type spyReplier struct {
	tokens []string
	texts  []string
}

func (s *spyReplier) ReplyText(ctx context.Context, replyToken, text string) error {
	s.tokens = append(s.tokens, replyToken)
	s.texts = append(s.texts, text)
	return nil
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

const webhookBody = `{"events":[` +
	`{"type":"message","replyToken":"rt-1","source":{"userId":"U1"},"message":{"type":"text","text":"体験したいです"}},` +
	`{"type":"message","replyToken":"rt-2","source":{"userId":"U2"},"message":{"type":"sticker"}},` +
	`{"type":"follow","replyToken":"rt-3","source":{"userId":"U3"}}` +
	`]}`

func doCallback(t *testing.T, h *WebhookCtrl, body, signature string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/callback", strings.NewReader(body))
	req.Header.Set("X-Line-Signature", signature)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Callback(e.NewContext(req, rec)))
	return rec
}

func TestCallback_RepliesOncePerTextEvent(t *testing.T) {
	svc := &spyService{}
	bot := &spyReplier{}
	h := New(svc, bot, "secret")

	rec := doCallback(t, h, webhookBody, sign("secret", []byte(webhookBody)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "U1", svc.lastUser)
	assert.Equal(t, "体験したいです", svc.lastMsg)
	require.Len(t, bot.tokens, 1)
	assert.Equal(t, "rt-1", bot.tokens[0])
	assert.Equal(t, "返信テキスト", bot.texts[0])
}

func TestCallback_BadSignatureRejectedWithoutSideEffects(t *testing.T) {
	svc := &spyService{}
	bot := &spyReplier{}
	h := New(svc, bot, "secret")

	rec := doCallback(t, h, webhookBody, sign("wrong", []byte(webhookBody)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
	assert.Empty(t, bot.tokens)
}

func TestCallback_MalformedBodyRejected(t *testing.T) {
	svc := &spyService{}
	h := New(svc, &spyReplier{}, "secret")
	body := `{"events":`

	rec := doCallback(t, h, body, sign("secret", []byte(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}
