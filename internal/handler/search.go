package handler

import (
	"net/http"

	"agenda/internal/model"
	"agenda/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles direct search HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	defaultLimit  int
	maxLimit      int
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		defaultLimit:  defaultLimit,
		maxLimit:      maxLimit,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Options == nil {
		req.Options = &model.SearchOptions{Limit: h.defaultLimit}
	} else {
		if req.Options.Limit <= 0 {
			req.Options.Limit = h.defaultLimit
		}
		if req.Options.Limit > h.maxLimit {
			req.Options.Limit = h.maxLimit
		}
	}

	response, err := h.searchService.Search(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}
