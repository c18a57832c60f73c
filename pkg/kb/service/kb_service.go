package service

import (
	"errors"

	"ribbon/entities"
)

// ErrInvalidEntry rejects malformed FAQ input before any storage mutation.
var ErrInvalidEntry = errors.New("keyword and answer are required")

// KBService is every operation over the knowledge base: the resolution-side
// reads (Match, BuildPrompt) and the admin-side mutations.
type KBService interface {
	// Match returns the answer of the first FAQ entry, in stored order, whose
	// keyword occurs as a substring of message. Exact bytes, no normalization.
	// ok is false when no keyword matches.
	Match(message string) (answer string, ok bool)
	// BuildPrompt assembles the system prompt: persona preamble, one bullet
	// per FAQ entry, then the reference document cut at 2000 runes.
	BuildPrompt() string

	ListFAQ() ([]entities.FAQEntry, error)
	PutFAQ(keyword, answer string) error
	ReplaceFAQ(oldKeyword, newKeyword, answer string) error
	DeleteFAQ(keyword string) error

	Questions() ([]entities.UnansweredQuestion, error)
	AddQuestion(question, userID string) error
	DeleteQuestion(id uint) error

	Document() (string, error)
	// IngestDocument validates the extension, extracts text and replaces the
	// reference document. Returns the stored rune count.
	IngestDocument(filename string, data []byte) (int, error)
	// IngestURL fetches an HTML page and stores its main text as the
	// reference document.
	IngestURL(url string) (int, error)
}
