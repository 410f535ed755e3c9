package handlers

import (
	"errors"

	"thesisai-backend/helper"
	"thesisai-backend/models"
	"thesisai-backend/services"

	"github.com/gin-gonic/gin"
)

type PlagiarismHandler struct {
	plagiarismService services.PlagiarismService
	Helper            *helper.HTTPHelper
}

func NewPlagiarismHandler(plagiarismService services.PlagiarismService) *PlagiarismHandler {
	return &PlagiarismHandler{plagiarismService: plagiarismService}
}

func (h *PlagiarismHandler) sendServiceError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		h.Helper.SendNotFoundError(c, "Not found", h.Helper.EmptyJsonMap())
		return
	}
	h.Helper.SendInternalServerError(c, "Something went wrong", h.Helper.EmptyJsonMap())
}

func (h *PlagiarismHandler) CheckDocument(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CheckPlagiarismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	check, err := h.plagiarismService.CheckDocument(req.DocumentID, userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Plagiarism check completed", gin.H{
		"id":                check.ID,
		"originality_score": check.OriginalityScore,
		"report":            check.Report,
		"checked_at":        check.CheckedAt,
	})
}

func (h *PlagiarismHandler) GetHistory(c *gin.Context) {
	userID, _ := c.Get("user_id")

	history, err := h.plagiarismService.GetHistory(c.Param("document_id"), userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", history)
}

func (h *PlagiarismHandler) GetReport(c *gin.Context) {
	userID, _ := c.Get("user_id")

	check, err := h.plagiarismService.GetReport(c.Param("check_id"), userID.(string))
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"id":                check.ID,
		"document_title":    check.Document.Title,
		"originality_score": check.OriginalityScore,
		"report":            check.Report,
		"checked_at":        check.CheckedAt,
	})
}
