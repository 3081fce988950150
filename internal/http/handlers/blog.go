package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/pkg/logger"
	"github.com/yungbote/portfolio-backend/internal/services"
	"github.com/yungbote/portfolio-backend/internal/types"
)

type BlogHandler struct {
	log  *logger.Logger
	blog services.BlogService
}

func NewBlogHandler(log *logger.Logger, blog services.BlogService) *BlogHandler {
	return &BlogHandler{
		log:  log.With("handler", "BlogHandler"),
		blog: blog,
	}
}

// GET /blog
//
// Posts come straight from the external provider in provider order. Any
// adapter failure collapses to one generic body; the cause stays in the
// server log.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blog.ListPosts(c.Request.Context())
	if err != nil {
		h.log.Error("ListPosts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}
	if posts == nil {
		posts = []types.BlogPost{}
	}
	c.JSON(http.StatusOK, posts)
}
