package services

import (
	"sort"
	"time"

	"thesisai-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. The repositories are injected interfaces,
// so the services can be exercised without a database.

type fakeDocumentRepo struct {
	documents map[string]*models.Document
	versions  map[string][]models.DocumentVersion
	checkRepo *fakeCheckRepo
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		documents: map[string]*models.Document{},
		versions:  map[string][]models.DocumentVersion{},
	}
}

func (r *fakeDocumentRepo) CreateWithFirstVersion(document *models.Document) error {
	document.ID = uuid.New().String()
	document.CreatedAt = time.Now()
	document.UpdatedAt = document.CreatedAt
	stored := *document
	r.documents[document.ID] = &stored
	r.versions[document.ID] = []models.DocumentVersion{{
		ID:         uuid.New().String(),
		DocumentID: document.ID,
		Content:    document.Content,
		Version:    1,
		CreatedAt:  time.Now(),
	}}
	return nil
}

func (r *fakeDocumentRepo) GetByID(id string) (*models.Document, error) {
	stored, ok := r.documents[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeDocumentRepo) GetList(userID string) ([]models.DocumentSummary, error) {
	var summaries []models.DocumentSummary
	for _, d := range r.documents {
		if d.UserID == userID {
			summaries = append(summaries, models.DocumentSummary{
				ID:        d.ID,
				Title:     d.Title,
				Type:      d.Type,
				CreatedAt: d.CreatedAt,
				UpdatedAt: d.UpdatedAt,
			})
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

func (r *fakeDocumentRepo) GetVersions(documentID string, limit int) ([]models.DocumentVersion, error) {
	versions := append([]models.DocumentVersion{}, r.versions[documentID]...)
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version > versions[j].Version
	})
	if len(versions) > limit {
		versions = versions[:limit]
	}
	return versions, nil
}

func (r *fakeDocumentRepo) Update(document *models.Document) error {
	if _, ok := r.documents[document.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	document.UpdatedAt = time.Now()
	stored := *document
	r.documents[document.ID] = &stored
	return nil
}

func (r *fakeDocumentRepo) UpdateWithVersion(document *models.Document, content string) (*models.DocumentVersion, error) {
	if _, ok := r.documents[document.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	document.Content = content
	document.UpdatedAt = time.Now()
	stored := *document
	r.documents[document.ID] = &stored

	maxVersion := 0
	for _, v := range r.versions[document.ID] {
		if v.Version > maxVersion {
			maxVersion = v.Version
		}
	}
	version := models.DocumentVersion{
		ID:         uuid.New().String(),
		DocumentID: document.ID,
		Content:    content,
		Version:    maxVersion + 1,
		CreatedAt:  time.Now(),
	}
	r.versions[document.ID] = append(r.versions[document.ID], version)
	return &version, nil
}

func (r *fakeDocumentRepo) SetLastChecked(documentID string, at time.Time) error {
	stored, ok := r.documents[documentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.LastChecked = &at
	return nil
}

func (r *fakeDocumentRepo) Delete(id string) error {
	delete(r.documents, id)
	delete(r.versions, id)
	if r.checkRepo != nil {
		r.checkRepo.deleteByDocument(id)
	}
	return nil
}

type fakeCheckRepo struct {
	checks    map[string]*models.PlagiarismCheck
	documents *fakeDocumentRepo
}

func newFakeCheckRepo(documents *fakeDocumentRepo) *fakeCheckRepo {
	repo := &fakeCheckRepo{
		checks:    map[string]*models.PlagiarismCheck{},
		documents: documents,
	}
	documents.checkRepo = repo
	return repo
}

func (r *fakeCheckRepo) Create(check *models.PlagiarismCheck) error {
	check.ID = uuid.New().String()
	check.CheckedAt = time.Now()
	stored := *check
	r.checks[check.ID] = &stored
	return nil
}

func (r *fakeCheckRepo) GetByID(id string) (*models.PlagiarismCheck, error) {
	stored, ok := r.checks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *stored
	if doc, err := r.documents.GetByID(copied.DocumentID); err == nil {
		copied.Document = doc
	}
	return &copied, nil
}

func (r *fakeCheckRepo) GetHistory(documentID string) ([]models.CheckHistoryEntry, error) {
	var entries []models.CheckHistoryEntry
	for _, c := range r.checks {
		if c.DocumentID == documentID {
			entries = append(entries, models.CheckHistoryEntry{
				ID:               c.ID,
				OriginalityScore: c.OriginalityScore,
				CheckedAt:        c.CheckedAt,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CheckedAt.After(entries[j].CheckedAt)
	})
	return entries, nil
}

func (r *fakeCheckRepo) deleteByDocument(documentID string) {
	for id, c := range r.checks {
		if c.DocumentID == documentID {
			delete(r.checks, id)
		}
	}
}
