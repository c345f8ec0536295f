package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /api/v1/categories
func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	categories, err := h.refs.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Categories retrieved", categories)
}

// ListCities handles GET /api/v1/cities
func (h *ReferenceHandler) ListCities(c *gin.Context) {
	cities, err := h.refs.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respondOK(c, http.StatusOK, "Cities retrieved", cities)
}
