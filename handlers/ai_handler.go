package handlers

import (
	"thesisai-backend/helper"
	"thesisai-backend/models"
	"thesisai-backend/services"

	"github.com/gin-gonic/gin"
)

const defaultSourceCount = 5

type AIHandler struct {
	aiService services.AIService
	Helper    *helper.HTTPHelper
}

func NewAIHandler(aiService services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) CheckText(c *gin.Context) {
	var req models.AICheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	feedback, err := h.aiService.CheckText(c.Request.Context(), req.Text, req.Type)
	if err != nil {
		h.Helper.SendInternalServerError(c, "Failed to check text", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"type":     req.Type,
		"feedback": feedback,
	})
}

func (h *AIHandler) Generate(c *gin.Context) {
	var req models.AIGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	generated, err := h.aiService.Generate(c.Request.Context(), req.Prompt, req.Context, req.Type)
	if err != nil {
		h.Helper.SendInternalServerError(c, "Failed to generate content", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"type":      req.Type,
		"generated": generated,
	})
}

func (h *AIHandler) SuggestSources(c *gin.Context) {
	var req models.AISourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if req.Count == 0 {
		req.Count = defaultSourceCount
	}

	sources, err := h.aiService.SuggestSources(c.Request.Context(), req.Topic, req.Count)
	if err != nil {
		h.Helper.SendInternalServerError(c, "Failed to find sources", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"topic":   req.Topic,
		"sources": sources,
	})
}

func (h *AIHandler) AnalyzeStructure(c *gin.Context) {
	var req models.AIAnalyzeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	analysis, err := h.aiService.AnalyzeStructure(c.Request.Context(), req.Content)
	if err != nil {
		h.Helper.SendInternalServerError(c, "Failed to analyze structure", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{"analysis": analysis})
}
