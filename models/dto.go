package models

import "time"

type RegisterRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateDocumentRequest struct {
	Title   string       `json:"title" binding:"required,min=1,max=255"`
	Content string       `json:"content"`
	Type    DocumentType `json:"type" binding:"required,oneof=COURSEWORK THESIS ESSAY REPORT ARTICLE"`
}

type UpdateDocumentRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content"`
}

type CheckPlagiarismRequest struct {
	DocumentID string `json:"document_id" binding:"required,uuid"`
}

type CheckHistoryEntry struct {
	ID               string    `json:"id"`
	OriginalityScore float64   `json:"originality_score"`
	CheckedAt        time.Time `json:"checked_at"`
}

type AICheckRequest struct {
	Text string `json:"text" binding:"required,min=1"`
	Type string `json:"type" binding:"required,oneof=grammar style logic facts"`
}

type AIGenerateRequest struct {
	Prompt  string `json:"prompt" binding:"required,min=1"`
	Context string `json:"context"`
	Type    string `json:"type" binding:"required,oneof=continue rephrase outline introduction conclusion"`
}

type AISourcesRequest struct {
	Topic string `json:"topic" binding:"required,min=1"`
	Count int    `json:"count" binding:"omitempty,min=1,max=10"`
}

type AIAnalyzeStructureRequest struct {
	Content string `json:"content" binding:"required"`
}
