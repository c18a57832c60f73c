package entities

import "time"

// ReferenceDocument holds the single ingested reference text appended to the
// completion prompt. One row only; each ingest replaces it wholesale.
type ReferenceDocument struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}
