package repository

import "ribbon/entities"

// KnowledgeRepository owns every durable record of the bot: the FAQ mapping,
// the single reference document and the unanswered-question log. No other
// component keeps a long-lived copy of this state.
type KnowledgeRepository interface {
	// LoadFAQ returns all entries in match order (insertion order).
	LoadFAQ() ([]entities.FAQEntry, error)
	// UpsertFAQ creates the keyword or replaces its answer in place.
	UpsertFAQ(keyword, answer string) error
	// ReplaceFAQ removes oldKeyword if present, then upserts newKeyword.
	// Both steps run in one transaction.
	ReplaceFAQ(oldKeyword, newKeyword, answer string) error
	// DeleteFAQ removes the keyword; deleting an absent keyword succeeds.
	DeleteFAQ(keyword string) error

	// GetDocument returns the reference text, empty when none was ingested.
	GetDocument() (string, error)
	// SaveDocument replaces the reference text wholesale.
	SaveDocument(text string) error

	ListQuestions() ([]entities.UnansweredQuestion, error)
	// AddQuestion appends a pending record with a generated id.
	AddQuestion(question, userID string) error
	DeleteQuestion(id uint) error
}
