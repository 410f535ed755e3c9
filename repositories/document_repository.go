package repositories

import (
	"time"

	"thesisai-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository interface {
	CreateWithFirstVersion(document *models.Document) error
	GetByID(id string) (*models.Document, error)
	GetList(userID string) ([]models.DocumentSummary, error)
	GetVersions(documentID string, limit int) ([]models.DocumentVersion, error)
	Update(document *models.Document) error
	UpdateWithVersion(document *models.Document, content string) (*models.DocumentVersion, error)
	SetLastChecked(documentID string, at time.Time) error
	Delete(id string) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// CreateWithFirstVersion persists the document together with version 1
// in a single transaction; neither exists without the other.
func (r *documentRepository) CreateWithFirstVersion(document *models.Document) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(document).Error; err != nil {
			return err
		}

		version := &models.DocumentVersion{
			DocumentID: document.ID,
			Content:    document.Content,
			Version:    1,
		}
		return tx.Create(version).Error
	})
}

func (r *documentRepository) GetByID(id string) (*models.Document, error) {
	var document models.Document
	err := r.db.First(&document, "id = ?", id).Error
	return &document, err
}

func (r *documentRepository) GetList(userID string) ([]models.DocumentSummary, error) {
	var summaries []models.DocumentSummary
	err := r.db.Model(&models.Document{}).
		Select("id", "title", "type", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&summaries).Error
	return summaries, err
}

func (r *documentRepository) GetVersions(documentID string, limit int) ([]models.DocumentVersion, error) {
	var versions []models.DocumentVersion
	err := r.db.Where("document_id = ?", documentID).
		Order("version desc").
		Limit(limit).
		Find(&versions).Error
	return versions, err
}

func (r *documentRepository) Update(document *models.Document) error {
	return r.db.Save(document).Error
}

// UpdateWithVersion writes the patched document and appends the next
// version snapshot in one transaction. The parent row is locked FOR
// UPDATE first so concurrent updates cannot assign the same number.
func (r *documentRepository) UpdateWithVersion(document *models.Document, content string) (*models.DocumentVersion, error) {
	var version models.DocumentVersion

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var locked models.Document
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", document.ID).Error; err != nil {
			return err
		}

		document.Content = content
		if err := tx.Save(document).Error; err != nil {
			return err
		}

		var maxVersion int
		if err := tx.Model(&models.DocumentVersion{}).
			Where("document_id = ?", document.ID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error; err != nil {
			return err
		}

		version = models.DocumentVersion{
			DocumentID: document.ID,
			Content:    content,
			Version:    maxVersion + 1,
		}
		return tx.Create(&version).Error
	})
	if err != nil {
		return nil, err
	}

	return &version, nil
}

func (r *documentRepository) SetLastChecked(documentID string, at time.Time) error {
	return r.db.Model(&models.Document{}).
		Where("id = ?", documentID).
		Update("last_checked", at).Error
}

// Delete removes the document and cascades to its versions and checks.
func (r *documentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.PlagiarismCheck{}).Error; err != nil {
			return err
		}
		if err := tx.Where("document_id = ?", id).Delete(&models.DocumentVersion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Document{}, "id = ?", id).Error
	})
}
