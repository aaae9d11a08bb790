package handlers

import (
	"net/http"

	"pawmatch_backend/internal/middleware"
	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListMine)
		bookings.GET("/assigned", h.ListAssigned)
		bookings.GET("/:id", h.GetByID)
		bookings.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListMine returns the caller's bookings as a pet owner.
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForOwner(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListAssigned returns the bookings assigned to the caller's caregiver
// profile.
func (h *BookingHandler) ListAssigned(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForCaregiver(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(userID, h.CallerRole(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateStatus(userID, h.CallerRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
