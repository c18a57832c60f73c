package repositoryImp

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"ribbon/entities"
	"ribbon/pkg/kb/repository"
)

// documentRow is the fixed id of the single reference-document record.
const documentRow = 1

type repo struct {
	db *gorm.DB
	// mu serializes multi-step read-modify-write cycles; sqlite alone would
	// let two admin edits interleave between the read and the write.
	mu sync.Mutex
}

func New(db *gorm.DB) repository.KnowledgeRepository { return &repo{db: db} }

func (r *repo) LoadFAQ() ([]entities.FAQEntry, error) {
	var es []entities.FAQEntry
	return es, r.db.Order("id ASC").Find(&es).Error
}

func (r *repo) UpsertFAQ(keyword, answer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return upsert(r.db, keyword, answer)
}

func (r *repo) ReplaceFAQ(oldKeyword, newKeyword, answer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if oldKeyword != newKeyword {
			if err := tx.Where("keyword = ?", oldKeyword).Delete(&entities.FAQEntry{}).Error; err != nil {
				return err
			}
		}
		return upsert(tx, newKeyword, answer)
	})
}

func (r *repo) DeleteFAQ(keyword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("keyword = ?", keyword).Delete(&entities.FAQEntry{}).Error
}

func upsert(tx *gorm.DB, keyword, answer string) error {
	var e entities.FAQEntry
	err := tx.Where("keyword = ?", keyword).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&entities.FAQEntry{Keyword: keyword, Answer: answer}).Error
	}
	if err != nil {
		return err
	}
	e.Answer = answer
	return tx.Save(&e).Error
}

func (r *repo) GetDocument() (string, error) {
	var d entities.ReferenceDocument
	err := r.db.First(&d, documentRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return d.Content, err
}

func (r *repo) SaveDocument(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var d entities.ReferenceDocument
	err := r.db.First(&d, documentRow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&entities.ReferenceDocument{ID: documentRow, Content: text}).Error
	}
	if err != nil {
		return err
	}
	d.Content = text
	return r.db.Save(&d).Error
}

func (r *repo) ListQuestions() ([]entities.UnansweredQuestion, error) {
	var qs []entities.UnansweredQuestion
	return qs, r.db.Order("id ASC").Find(&qs).Error
}

func (r *repo) AddQuestion(question, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := entities.UnansweredQuestion{
		Timestamp: time.Now(),
		Question:  question,
		UserID:    userID,
		Status:    entities.QuestionPending,
	}
	return r.db.Create(&q).Error
}

func (r *repo) DeleteQuestion(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Delete(&entities.UnansweredQuestion{}, id).Error
}
