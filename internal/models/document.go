package models

import "time"

// Document is the SQL row behind the gorm document store: one JSON body per
// (collection, key).
type Document struct {
	Collection string    `gorm:"primaryKey;size:128"`
	Key        string    `gorm:"primaryKey;column:doc_key;size:255"`
	Body       string    `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Document) TableName() string {
	return "documents"
}

// SequenceCounter is the persisted state of a named sequence.
type SequenceCounter struct {
	Value int64 `json:"value"`
}
