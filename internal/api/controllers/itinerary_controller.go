package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	log              *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, log *zap.Logger) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService, log: log}
}

// ListItineraries godoc
// @Summary List itineraries
// @Description Every filter is optional; the ones given are ANDed together
// @Tags Itineraries
// @Produce json
// @Param query query string false "Free text over title, description and location"
// @Param category query string false "Category"
// @Param packageType query string false "Package type"
// @Param country query string false "Country"
// @Param difficultyLevel query string false "Difficulty level"
// @Success 200 {array} db_models.Itinerary
// @Failure 500 {object} utils.APIResponse
// @Router /itineraries [get]
func (ic *ItineraryController) ListItineraries(c *gin.Context) {
	var filter request_models.ItineraryFilter
	if err := utils.BindQuery(c, &filter); err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}

	itineraries, err := ic.itineraryService.ListItineraries(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, itineraries)
}

// GetItinerary godoc
// @Summary Get itinerary
// @Tags Itineraries
// @Produce json
// @Param id path int true "Itinerary ID"
// @Success 200 {object} db_models.Itinerary
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		// A malformed id cannot match any itinerary.
		utils.HandleServiceError(c, ic.log, utils.ErrItineraryNotFound)
		return
	}

	itinerary, err := ic.itineraryService.GetItinerary(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, itinerary)
}

// ListReviews godoc
// @Summary List reviews of an itinerary
// @Tags Reviews
// @Produce json
// @Param id path int true "Itinerary ID"
// @Success 200 {array} db_models.Review
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/{id}/reviews [get]
func (ic *ItineraryController) ListReviews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		utils.RespondValidationError(c, utils.NewValidationError("id", "type", "must be a positive integer"))
		return
	}

	reviews, err := ic.itineraryService.ListReviews(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, reviews)
}

// CreateItinerary godoc
// @Summary Create itinerary
// @Tags Itineraries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Itinerary"
// @Success 201 {object} db_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /itineraries [post]
func (ic *ItineraryController) CreateItinerary(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}

	itinerary, err := ic.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ic.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, itinerary)
}
