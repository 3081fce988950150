package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/repos"
	"github.com/yungbote/portfolio-backend/internal/services"
)

// AdminHandler owns the delete surface. The three handlers are structurally
// identical: check the identifier before any I/O, issue the delete, map the
// outcome. Store diagnostics are logged here and never reach the caller.
type AdminHandler struct {
	log   *logger.Logger
	admin services.AdminService
}

func NewAdminHandler(log *logger.Logger, admin services.AdminService) *AdminHandler {
	return &AdminHandler{
		log:   log.With("handler", "AdminHandler"),
		admin: admin,
	}
}

// DELETE /admin/education/:id
func (h *AdminHandler) DeleteEducation(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Education ID is required"})
		return
	}
	if err := h.admin.DeleteEducation(c.Request.Context(), id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Education record not found"})
			return
		}
		h.logStoreFailure("DeleteEducation", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete education record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education record deleted successfully"})
}

// DELETE /admin/experiences/:id
func (h *AdminHandler) DeleteExperience(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Experience ID is required"})
		return
	}
	if err := h.admin.DeleteExperience(c.Request.Context(), id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Experience record not found"})
			return
		}
		h.logStoreFailure("DeleteExperience", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete experience record"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience record deleted successfully"})
}

// DELETE /admin/publications/:id
func (h *AdminHandler) DeletePublication(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Publication ID is required"})
		return
	}
	if err := h.admin.DeletePublication(c.Request.Context(), id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
			return
		}
		h.logStoreFailure("DeletePublication", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete publication"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Publication deleted successfully"})
}

// GET /test-db
func (h *AdminHandler) TestDB(c *gin.Context) {
	count, err := h.admin.CheckDatabase(c.Request.Context())
	if err != nil {
		code := storeCode(err)
		h.log.Error("TestDB failed", "error", err, "code", code)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  err.Error(),
			"code":   code,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        "Database connection successful",
		"educationCount": count,
	})
}

func (h *AdminHandler) logStoreFailure(op, id string, err error) {
	h.log.Error("Store delete failed", "op", op, "id", id, "error", err, "code", storeCode(err))
}

func storeCode(err error) string {
	var storeErr *repos.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ""
}
