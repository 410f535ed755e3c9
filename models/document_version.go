package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentVersion is an immutable snapshot of a document's content.
// Version numbers start at 1 and are strictly increasing per document;
// they are assigned as max+1 inside a transaction and never reused.
type DocumentVersion struct {
	ID         string    `json:"id" gorm:"type:uuid;primarykey"`
	DocumentID string    `json:"document_id" gorm:"type:uuid;not null;index"`
	Document   *Document `json:"document,omitempty" gorm:"foreignKey:DocumentID"`
	Content    string    `json:"content" gorm:"type:text"`
	Version    int       `json:"version" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (v *DocumentVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
