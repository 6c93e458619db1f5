package handlers

import (
	"net/http"

	"mediaboard/internal/middleware"
	"mediaboard/internal/store"
	"mediaboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *store.CatalogStore
}

func NewCatalogHandler(catalog *store.CatalogStore) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) List(c *gin.Context) {
	h.renderList(c)
}

func (h *CatalogHandler) renderList(c *gin.Context) {
	entries, err := h.catalog.List()
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListByCategory filters the catalog to one category. An unknown category
// is simply an empty list.
func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	entries, err := h.catalog.ListByCategory(c.Param("category"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var body store.CreateEntry
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{})
		return
	}

	if _, err := h.catalog.Create(user.ID, body); err != nil {
		abortError(c, err)
		return
	}
	h.renderList(c)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{})
		return
	}

	if err := h.catalog.Delete(id, user.ID); err != nil {
		abortError(c, err)
		return
	}
	h.renderList(c)
}
