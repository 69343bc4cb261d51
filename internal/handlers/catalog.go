package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/swipegen-backend/internal/catalog"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListSites handles GET /api/sites: the fixed swipe deck the client walks
// through before requesting generation.
func (h *CatalogHandler) ListSites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sites": catalog.Sites})
}
