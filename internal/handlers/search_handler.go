package handlers

import (
	"net/http"

	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(rg *gin.RouterGroup) {
	search := rg.Group("/search")
	{
		search.GET("/caregivers", h.SearchCaregivers)
	}
}

// SearchCaregivers finds verified caregivers around a point, nearest first.
func (h *SearchHandler) SearchCaregivers(c *gin.Context) {
	var criteria dto.SearchCaregiversCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	result, err := h.searchService.SearchCaregivers(&criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
