package service

import "context"

// ChatService resolves one inbound text message into exactly one reply.
// It never returns an error: every failure degrades to a defined fallback
// text so the webhook can always answer.
type ChatService interface {
	Reply(ctx context.Context, userID, message string) string
}
