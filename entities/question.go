package entities

import "time"

// QuestionPending is the only status the bot itself produces; other values
// are reserved for admin curation.
const QuestionPending = "pending"

// UnansweredQuestion is a message the FAQ table could not resolve, queued
// for human review.
type UnansweredQuestion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
}
