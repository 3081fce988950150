package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/http/response"
	"github.com/yungbote/portfolio-backend/internal/services"
)

// PortfolioHandler serves the static read surface. Everything here resolves
// from the in-memory dataset snapshot; no authorization, no external I/O.
type PortfolioHandler struct {
	content services.ContentService
}

func NewPortfolioHandler(content services.ContentService) *PortfolioHandler {
	return &PortfolioHandler{content: content}
}

// GET /profile
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	response.RespondOK(c, gin.H{"profile": h.content.Profile()})
}

// GET /timeline
func (h *PortfolioHandler) GetTimeline(c *gin.Context) {
	response.RespondOK(c, gin.H{"timeline": h.content.Timeline()})
}

// GET /academia
func (h *PortfolioHandler) GetAcademia(c *gin.Context) {
	response.RespondOK(c, gin.H{"academia": h.content.Academia()})
}

// GET /experiences
func (h *PortfolioHandler) GetExperiences(c *gin.Context) {
	response.RespondOK(c, gin.H{"experiences": h.content.Experiences()})
}

// GET /tracking
func (h *PortfolioHandler) GetTracking(c *gin.Context) {
	response.RespondOK(c, gin.H{"tracking": h.content.Tracking()})
}
