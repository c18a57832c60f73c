package serviceImp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"ribbon/entities"
	"ribbon/pkg/extract"
	"ribbon/pkg/kb/repository"
	"ribbon/pkg/kb/service"
)

// promptDocLimit is the hard cut applied to the reference document inside the
// prompt, counted in runes.
const promptDocLimit = 2000

const promptPreamble = `あなたは「リボンスクール」の案内アシスタントです。
生徒や保護者からの質問に、丁寧で親しみやすい日本語で簡潔に答えてください。
わからないことは推測で答えず、お電話（06-6651-3832）でのお問い合わせをご案内ください。`

// fetchMaxBytes caps a page fetched for URL ingestion.
const fetchMaxBytes = 1500000

type Svc struct {
	r  repository.KnowledgeRepository
	ex *extract.Registry
}

func New(r repository.KnowledgeRepository, ex *extract.Registry) *Svc {
	if ex == nil {
		ex = extract.Default()
	}
	return &Svc{r: r, ex: ex}
}

// faq returns the stored entries, falling back to the built-in default set
// when the store is unreadable. The reply pipeline never fails on storage.
func (s *Svc) faq() []entities.FAQEntry {
	es, err := s.r.LoadFAQ()
	if err != nil {
		log.Printf("[kb] load faq: %v (using defaults)", err)
		return entities.DefaultFAQ()
	}
	return es
}

func (s *Svc) Match(message string) (string, bool) {
	for _, e := range s.faq() {
		if strings.Contains(message, e.Keyword) {
			return e.Answer, true
		}
	}
	return "", false
}

func (s *Svc) BuildPrompt() string {
	doc, err := s.r.GetDocument()
	if err != nil {
		log.Printf("[kb] load document: %v (prompt without document)", err)
		doc = ""
	}

	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n\nよくある質問と回答:\n")
	for _, e := range s.faq() {
		fmt.Fprintf(&b, "- %s: %s\n", e.Keyword, e.Answer)
	}
	if doc != "" {
		b.WriteString("\n参考資料:\n")
		b.WriteString(truncateRunes(doc, promptDocLimit))
	}
	return b.String()
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func (s *Svc) ListFAQ() ([]entities.FAQEntry, error) { return s.r.LoadFAQ() }

func (s *Svc) PutFAQ(keyword, answer string) error {
	if strings.TrimSpace(keyword) == "" || strings.TrimSpace(answer) == "" {
		return service.ErrInvalidEntry
	}
	return s.r.UpsertFAQ(keyword, answer)
}

func (s *Svc) ReplaceFAQ(oldKeyword, newKeyword, answer string) error {
	if strings.TrimSpace(newKeyword) == "" || strings.TrimSpace(answer) == "" {
		return service.ErrInvalidEntry
	}
	return s.r.ReplaceFAQ(oldKeyword, newKeyword, answer)
}

func (s *Svc) DeleteFAQ(keyword string) error { return s.r.DeleteFAQ(keyword) }

func (s *Svc) Questions() ([]entities.UnansweredQuestion, error) { return s.r.ListQuestions() }

func (s *Svc) AddQuestion(question, userID string) error {
	return s.r.AddQuestion(question, userID)
}

func (s *Svc) DeleteQuestion(id uint) error { return s.r.DeleteQuestion(id) }

func (s *Svc) Document() (string, error) { return s.r.GetDocument() }

func (s *Svc) IngestDocument(filename string, data []byte) (int, error) {
	text, err := s.ex.Extract(filename, data)
	if err != nil {
		// prior document stays untouched
		return 0, err
	}
	if err := s.r.SaveDocument(text); err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(text), nil
}

func (s *Svc) IngestURL(url string) (int, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", extract.ErrExtraction, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("%w: status %d", extract.ErrExtraction, resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return 0, fmt.Errorf("%w: content-type %q", extract.ErrUnsupported, ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: fetchMaxBytes}
	body, err := io.ReadAll(&limited)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", extract.ErrExtraction, err)
	}

	text := string(body)
	if strings.Contains(ct, "text/html") {
		text, _, err = extract.FromHTML(body)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", extract.ErrExtraction, err)
		}
	}
	if err := s.r.SaveDocument(text); err != nil {
		return 0, err
	}
	return utf8.RuneCountInString(text), nil
}
