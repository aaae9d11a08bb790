package handlers

import (
	"net/http"

	"pawmatch_backend/internal/middleware"
	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CaregiverHandler struct {
	*BaseHandler
	caregiverService services.CaregiverService
}

func NewCaregiverHandler(base *BaseHandler, caregiverService services.CaregiverService) *CaregiverHandler {
	return &CaregiverHandler{
		BaseHandler:      base,
		caregiverService: caregiverService,
	}
}

func (h *CaregiverHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public profile reads
	public := rg.Group("/caregivers")
	{
		public.GET("/:id", h.GetProfile)
		public.GET("/:id/rates", h.GetRates)
		public.GET("/:id/availability", h.GetAvailability)
	}

	// Caregiver self-management
	me := rg.Group("/caregivers")
	me.Use(middleware.AuthMiddleware())
	{
		me.POST("", h.BecomeCaretaker)
		me.GET("/me", h.GetMyProfile)
		me.PATCH("/me", h.UpdateMyProfile)
		me.PUT("/me/rates", h.UpsertRates)
		me.PUT("/me/availability", h.ReplaceAvailability)
	}

	admin := rg.Group("/admin/caregivers")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/:id/verify", h.Verify)
	}
}

// BecomeCaretaker creates a caregiver profile for the caller and flips their
// role in the same transaction.
func (h *CaregiverHandler) BecomeCaretaker(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BecomeCaretakerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.caregiverService.BecomeCaretaker(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *CaregiverHandler) GetProfile(c *gin.Context) {
	profile, err := h.caregiverService.GetProfile(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CaregiverHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.caregiverService.GetMyProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CaregiverHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCaregiverProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.caregiverService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *CaregiverHandler) UpsertRates(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertRatesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	rates, err := h.caregiverService.UpsertRates(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rates": rates})
}

func (h *CaregiverHandler) GetRates(c *gin.Context) {
	rates, err := h.caregiverService.GetRates(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rates": rates})
}

func (h *CaregiverHandler) ReplaceAvailability(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReplaceAvailabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	slots, err := h.caregiverService.ReplaceAvailability(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": slots})
}

func (h *CaregiverHandler) GetAvailability(c *gin.Context) {
	slots, err := h.caregiverService.GetAvailability(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": slots})
}

func (h *CaregiverHandler) Verify(c *gin.Context) {
	profile, err := h.caregiverService.Verify(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
