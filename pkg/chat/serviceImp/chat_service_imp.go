package serviceImp

import (
	"context"
	"log"
	"unicode/utf8"

	"ribbon/pkg/ai"
	kbservice "ribbon/pkg/kb/service"
)

// FallbackReply is sent whenever the completion provider fails. The phone
// number gives the user a channel that works even when the bot does not.
const FallbackReply = `申し訳ございません。ただいま回答をご用意できませんでした。
お急ぎの場合は、お電話（06-6651-3832）でお問い合わせください。`

// gapMinRunes: messages this short ("はい", greetings, stamps as text) are
// not worth queuing for curation.
const gapMinRunes = 5

type Svc struct {
	kb  kbservice.KBService
	llm ai.Client
}

func New(kb kbservice.KBService, llm ai.Client) *Svc {
	return &Svc{kb: kb, llm: llm}
}

// Reply runs the resolution pipeline: FAQ match first, completion fallback
// on a miss, gap capture for misses long enough to curate. The single Match
// result drives both the reply and the logging decision.
func (s *Svc) Reply(ctx context.Context, userID, message string) string {
	reply, matched := s.kb.Match(message)

	if !matched {
		out, err := s.llm.Complete(ctx, s.kb.BuildPrompt(), message)
		if err != nil {
			log.Printf("[chat] completion: %v", err)
			reply = FallbackReply
		} else {
			reply = out
		}

		if utf8.RuneCountInString(message) > gapMinRunes {
			if err := s.kb.AddQuestion(message, userID); err != nil {
				log.Printf("[chat] record question: %v", err)
			}
		}
	}

	return reply
}
