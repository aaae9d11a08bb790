package handlers

import (
	"net/http"

	"pawmatch_backend/internal/middleware"
	"pawmatch_backend/internal/services"
	"pawmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public: a caregiver's review page
	rg.GET("/caregivers/:id/reviews", h.ListForCaregiver)

	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("/:id/review", h.Create)
		bookings.GET("/:id/review", h.GetForBooking)
	}

	reviews := rg.Group("/reviews")
	reviews.Use(middleware.AuthMiddleware())
	{
		reviews.DELETE("/:id", h.Delete)
	}
}

// Create leaves a review on a completed booking. Only the booking's owner may
// review, and only once.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetForBooking(c *gin.Context) {
	review, err := h.reviewService.GetByBooking(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) ListForCaregiver(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	reviews, err := h.reviewService.ListForCaregiver(c.Param("id"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(userID, h.CallerRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
