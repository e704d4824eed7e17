package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
	log           *zap.Logger
}

func NewReviewController(reviewService services.ReviewServiceInterface, log *zap.Logger) *ReviewController {
	return &ReviewController{reviewService: reviewService, log: log}
}

// CreateReview godoc
// @Summary Review an itinerary
// @Description Stores the review and recomputes the itinerary's average rating
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review"
// @Success 201 {object} db_models.Review
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req request_models.CreateReviewRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, rc.log, err)
		return
	}

	review, err := rc.reviewService.AddReview(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, rc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, review)
}
