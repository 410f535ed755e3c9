package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	TypeCoursework DocumentType = "COURSEWORK"
	TypeThesis     DocumentType = "THESIS"
	TypeEssay      DocumentType = "ESSAY"
	TypeReport     DocumentType = "REPORT"
	TypeArticle    DocumentType = "ARTICLE"
)

type Document struct {
	ID          string            `json:"id" gorm:"type:uuid;primarykey"`
	UserID      string            `json:"user_id" gorm:"type:uuid;not null;index"`
	User        *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title       string            `json:"title" gorm:"not null"`
	Content     string            `json:"content" gorm:"type:text"`
	Type        DocumentType      `json:"type" gorm:"not null"`
	LastChecked *time.Time        `json:"last_checked"`
	Versions    []DocumentVersion `json:"versions,omitempty" gorm:"foreignKey:DocumentID"`
	Checks      []PlagiarismCheck `json:"checks,omitempty" gorm:"foreignKey:DocumentID"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// DocumentSummary is the listing projection; content is deliberately
// excluded to keep listing cheap.
type DocumentSummary struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Type      DocumentType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
