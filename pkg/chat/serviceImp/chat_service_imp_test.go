package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ribbon/entities"
	"ribbon/pkg/ai"
)

// fakeKB stubs the knowledge service with a fixed match result and records
// gap captures.
type fakeKB struct {
	answer   string
	ok       bool
	recorded []string
}

func (f *fakeKB) Match(message string) (string, bool) { return f.answer, f.ok }
func (f *fakeKB) BuildPrompt() string                 { return "system prompt" }

func (f *fakeKB) AddQuestion(question, userID string) error {
	f.recorded = append(f.recorded, question)
	return nil
}

func (f *fakeKB) ListFAQ() ([]entities.FAQEntry, error)             { return nil, nil }
func (f *fakeKB) PutFAQ(keyword, answer string) error               { return nil }
func (f *fakeKB) ReplaceFAQ(o, n, a string) error                   { return nil }
func (f *fakeKB) DeleteFAQ(keyword string) error                    { return nil }
func (f *fakeKB) Questions() ([]entities.UnansweredQuestion, error) { return nil, nil }
func (f *fakeKB) DeleteQuestion(id uint) error                      { return nil }
func (f *fakeKB) Document() (string, error)                         { return "", nil }
func (f *fakeKB) IngestDocument(string, []byte) (int, error)        { return 0, nil }
func (f *fakeKB) IngestURL(string) (int, error)                     { return 0, nil }

type fakeLLM struct {
	out   string
	err   error
	calls int
}

func (f *fakeLLM) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	return f.out, f.err
}

func TestReply_MatchSkipsCompletionAndGapCapture(t *testing.T) {
	kb := &fakeKB{answer: "体験レッスンは無料です。", ok: true}
	llm := &fakeLLM{out: "should not be used"}
	svc := New(kb, llm)

	reply := svc.Reply(context.Background(), "U1", "体験について知りたいのですが")

	assert.Equal(t, "体験レッスンは無料です。", reply)
	assert.Zero(t, llm.calls)
	assert.Empty(t, kb.recorded)
}

func TestReply_MissUsesCompletionAndRecordsGap(t *testing.T) {
	kb := &fakeKB{}
	llm := &fakeLLM{out: "駐車場は近隣のコインパーキングをご利用ください。"}
	svc := New(kb, llm)

	reply := svc.Reply(context.Background(), "U1", "駐車場はありますか？")

	assert.Equal(t, llm.out, reply)
	assert.Equal(t, 1, llm.calls)
	require.Len(t, kb.recorded, 1)
	assert.Equal(t, "駐車場はありますか？", kb.recorded[0])
}

func TestReply_ProviderErrorFallsBackAndStillRecordsGap(t *testing.T) {
	kb := &fakeKB{}
	llm := &fakeLLM{err: fmt.Errorf("%w: status 500", ai.ErrProvider)}
	svc := New(kb, llm)

	reply := svc.Reply(context.Background(), "U1", "駐車場はありますか？")

	assert.Equal(t, FallbackReply, reply)
	assert.Contains(t, reply, "06-6651-3832")
	require.Len(t, kb.recorded, 1)
}

func TestReply_TimeoutTreatedAsProviderError(t *testing.T) {
	kb := &fakeKB{}
	llm := &fakeLLM{err: errors.New("context deadline exceeded")}
	svc := New(kb, llm)

	reply := svc.Reply(context.Background(), "U1", "発表会はいつですか？")

	assert.Equal(t, FallbackReply, reply)
}

func TestReply_ShortMissNotRecorded(t *testing.T) {
	kb := &fakeKB{}
	llm := &fakeLLM{out: "こんにちは！"}
	svc := New(kb, llm)

	// 5 runes: at the boundary, still too short to queue
	svc.Reply(context.Background(), "U1", "こんにちは")

	assert.Empty(t, kb.recorded)
	assert.Equal(t, 1, llm.calls)
}

func TestReply_SixRuneMissRecorded(t *testing.T) {
	kb := &fakeKB{}
	llm := &fakeLLM{out: "x"}
	svc := New(kb, llm)

	svc.Reply(context.Background(), "U1", "こんにちは！")

	assert.Len(t, kb.recorded, 1)
}
