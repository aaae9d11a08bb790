package handlers

import (
	"net/http"

	"pawmatch_backend/internal/middleware"
	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	*BaseHandler
	petService services.PetService
}

func NewPetHandler(base *BaseHandler, petService services.PetService) *PetHandler {
	return &PetHandler{
		BaseHandler: base,
		petService:  petService,
	}
}

func (h *PetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pets := rg.Group("/pets")
	pets.Use(middleware.AuthMiddleware())
	{
		pets.POST("", h.Create)
		pets.GET("", h.ListMine)
		pets.GET("/:id", h.GetByID)
		pets.PATCH("/:id", h.Update)
		pets.DELETE("/:id", h.Delete)
	}
}

func (h *PetHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pet, err := h.petService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	pets, err := h.petService.ListByOwner(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

func (h *PetHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	pet, err := h.petService.GetByID(userID, h.CallerRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pet, err := h.petService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.petService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted"})
}
