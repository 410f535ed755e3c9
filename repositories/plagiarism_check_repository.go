package repositories

import (
	"thesisai-backend/models"

	"gorm.io/gorm"
)

type PlagiarismCheckRepository interface {
	Create(check *models.PlagiarismCheck) error
	GetByID(id string) (*models.PlagiarismCheck, error)
	GetHistory(documentID string) ([]models.CheckHistoryEntry, error)
}

type plagiarismCheckRepository struct {
	db *gorm.DB
}

func NewPlagiarismCheckRepository(db *gorm.DB) PlagiarismCheckRepository {
	return &plagiarismCheckRepository{db: db}
}

func (r *plagiarismCheckRepository) Create(check *models.PlagiarismCheck) error {
	return r.db.Create(check).Error
}

func (r *plagiarismCheckRepository) GetByID(id string) (*models.PlagiarismCheck, error) {
	var check models.PlagiarismCheck
	err := r.db.Preload("Document").First(&check, "id = ?", id).Error
	return &check, err
}

func (r *plagiarismCheckRepository) GetHistory(documentID string) ([]models.CheckHistoryEntry, error) {
	var entries []models.CheckHistoryEntry
	err := r.db.Model(&models.PlagiarismCheck{}).
		Select("id", "originality_score", "checked_at").
		Where("document_id = ?", documentID).
		Order("checked_at desc").
		Find(&entries).Error
	return entries, err
}
