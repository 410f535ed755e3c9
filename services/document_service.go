package services

import (
	"errors"
	"fmt"
	"strings"

	"thesisai-backend/models"
	"thesisai-backend/repositories"

	"gorm.io/gorm"
)

const recentVersionCount = 10

var documentTypes = map[models.DocumentType]bool{
	models.TypeCoursework: true,
	models.TypeThesis:     true,
	models.TypeEssay:      true,
	models.TypeReport:     true,
	models.TypeArticle:    true,
}

type DocumentService interface {
	CreateDocument(req models.CreateDocumentRequest, userID string) (*models.Document, error)
	GetDocument(id string, userID string) (*models.Document, error)
	GetDocuments(userID string) ([]models.DocumentSummary, error)
	UpdateDocument(id string, req models.UpdateDocumentRequest, userID string) (*models.Document, error)
	DeleteDocument(id string, userID string) error
}

type documentService struct {
	documentRepo repositories.DocumentRepository
}

func NewDocumentService(documentRepo repositories.DocumentRepository) DocumentService {
	return &documentService{documentRepo: documentRepo}
}

func (s *documentService) CreateDocument(req models.CreateDocumentRequest, userID string) (*models.Document, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", models.ErrValidation)
	}
	if !documentTypes[req.Type] {
		return nil, fmt.Errorf("%w: unknown document type %q", models.ErrValidation, req.Type)
	}

	document := &models.Document{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Type:    req.Type,
	}

	if err := s.documentRepo.CreateWithFirstVersion(document); err != nil {
		return nil, err
	}

	return document, nil
}

func (s *documentService) GetDocument(id string, userID string) (*models.Document, error) {
	document, err := s.ownedDocument(id, userID)
	if err != nil {
		return nil, err
	}

	versions, err := s.documentRepo.GetVersions(id, recentVersionCount)
	if err != nil {
		return nil, err
	}
	document.Versions = versions

	return document, nil
}

func (s *documentService) GetDocuments(userID string) ([]models.DocumentSummary, error) {
	return s.documentRepo.GetList(userID)
}

func (s *documentService) UpdateDocument(id string, req models.UpdateDocumentRequest, userID string) (*models.Document, error) {
	document, err := s.ownedDocument(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", models.ErrValidation)
		}
		document.Title = *req.Title
	}

	// A non-empty content patch always snapshots a new version; a
	// title-only patch never does.
	if req.Content != nil && *req.Content != "" {
		if _, err := s.documentRepo.UpdateWithVersion(document, *req.Content); err != nil {
			return nil, err
		}
	} else {
		if err := s.documentRepo.Update(document); err != nil {
			return nil, err
		}
	}

	return document, nil
}

func (s *documentService) DeleteDocument(id string, userID string) error {
	if _, err := s.ownedDocument(id, userID); err != nil {
		return err
	}

	return s.documentRepo.Delete(id)
}

// ownedDocument resolves a document for the calling user. A missing
// document and one owned by someone else yield the same ErrNotFound.
func (s *documentService) ownedDocument(id string, userID string) (*models.Document, error) {
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
