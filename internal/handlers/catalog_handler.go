package handlers

import (
	"net/http"

	"pawmatch_backend/internal/middleware"
	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the service catalog. Reads are public, writes are
// admin-only.
type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/services")
	{
		public.GET("", h.List)
		public.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/admin/services")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalogService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) GetByID(c *gin.Context) {
	service, err := h.catalogService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.catalogService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	service, err := h.catalogService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
