package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"thesisai-backend/plagiarism"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckReport stores a scorer report as a jsonb column.
type CheckReport plagiarism.Report

func (r CheckReport) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *CheckReport) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return errors.New("unsupported type for check report")
	}
}

// PlagiarismCheck is immutable once created; history is browsed newest
// first and only removed when the owning document is deleted.
type PlagiarismCheck struct {
	ID               string      `json:"id" gorm:"type:uuid;primarykey"`
	DocumentID       string      `json:"document_id" gorm:"type:uuid;not null;index"`
	Document         *Document   `json:"document,omitempty" gorm:"foreignKey:DocumentID"`
	OriginalityScore float64     `json:"originality_score" gorm:"not null"`
	Report           CheckReport `json:"report" gorm:"type:jsonb"`
	CheckedAt        time.Time   `json:"checked_at" gorm:"autoCreateTime"`
}

func (c *PlagiarismCheck) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
