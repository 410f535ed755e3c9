package services

import (
	"errors"
	"time"

	"thesisai-backend/models"
	"thesisai-backend/plagiarism"
	"thesisai-backend/repositories"

	"gorm.io/gorm"
)

type PlagiarismService interface {
	CheckDocument(documentID string, userID string) (*models.PlagiarismCheck, error)
	GetHistory(documentID string, userID string) ([]models.CheckHistoryEntry, error)
	GetReport(checkID string, userID string) (*models.PlagiarismCheck, error)
}

type plagiarismService struct {
	documentRepo repositories.DocumentRepository
	checkRepo    repositories.PlagiarismCheckRepository
}

func NewPlagiarismService(documentRepo repositories.DocumentRepository, checkRepo repositories.PlagiarismCheckRepository) PlagiarismService {
	return &plagiarismService{
		documentRepo: documentRepo,
		checkRepo:    checkRepo,
	}
}

// CheckDocument scores the stored content, persists the check and stamps
// the document's last-checked timestamp. The scorer itself stays a pure
// function of the text.
func (s *plagiarismService) CheckDocument(documentID string, userID string) (*models.PlagiarismCheck, error) {
	document, err := s.ownedDocument(documentID, userID)
	if err != nil {
		return nil, err
	}

	report := plagiarism.Score(document.Content)

	check := &models.PlagiarismCheck{
		DocumentID:       document.ID,
		OriginalityScore: report.OriginalityScore,
		Report:           models.CheckReport(report),
	}

	if err := s.checkRepo.Create(check); err != nil {
		return nil, err
	}

	if err := s.documentRepo.SetLastChecked(document.ID, time.Now()); err != nil {
		return nil, err
	}

	return check, nil
}

func (s *plagiarismService) GetHistory(documentID string, userID string) ([]models.CheckHistoryEntry, error) {
	if _, err := s.ownedDocument(documentID, userID); err != nil {
		return nil, err
	}

	return s.checkRepo.GetHistory(documentID)
}

func (s *plagiarismService) GetReport(checkID string, userID string) (*models.PlagiarismCheck, error) {
	check, err := s.checkRepo.GetByID(checkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if check.Document == nil || check.Document.UserID != userID {
		return nil, models.ErrNotFound
	}

	return check, nil
}

func (s *plagiarismService) ownedDocument(id string, userID string) (*models.Document, error) {
	document, err := s.documentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if document.UserID != userID {
		return nil, models.ErrNotFound
	}

	return document, nil
}
