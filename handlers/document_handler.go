package handlers

import (
	"errors"

	"thesisai-backend/helper"
	"thesisai-backend/models"
	"thesisai-backend/services"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService services.DocumentService
	Helper          *helper.HTTPHelper
}

func NewDocumentHandler(documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// sendServiceError maps the service error taxonomy onto the response
// envelope. Storage failures stay opaque to the caller.
func (h *DocumentHandler) sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.Helper.SendNotFoundError(c, "Document not found", h.Helper.EmptyJsonMap())
	case errors.Is(err, models.ErrValidation):
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
	default:
		h.Helper.SendInternalServerError(c, "Something went wrong", h.Helper.EmptyJsonMap())
	}
}

func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	document, err := h.documentService.CreateDocument(req, userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Document created successfully", document)
}

func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	userID, _ := c.Get("user_id")

	documents, err := h.documentService.GetDocuments(userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", documents)
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	userID, _ := c.Get("user_id")

	document, err := h.documentService.GetDocument(c.Param("id"), userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", document)
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	document, err := h.documentService.UpdateDocument(c.Param("id"), req, userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Document updated successfully", document)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.documentService.DeleteDocument(c.Param("id"), userID.(string)); err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Document deleted successfully", h.Helper.EmptyJsonMap())
}
