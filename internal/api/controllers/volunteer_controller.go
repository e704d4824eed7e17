package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type VolunteerController struct {
	volunteerService services.VolunteerServiceInterface
	log              *zap.Logger
}

func NewVolunteerController(volunteerService services.VolunteerServiceInterface, log *zap.Logger) *VolunteerController {
	return &VolunteerController{volunteerService: volunteerService, log: log}
}

// ListVolunteers godoc
// @Summary List active volunteers
// @Tags Volunteers
// @Produce json
// @Success 200 {array} db_models.Volunteer
// @Router /volunteers [get]
func (vc *VolunteerController) ListVolunteers(c *gin.Context) {
	volunteers, err := vc.volunteerService.ListActiveVolunteers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, vc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, volunteers)
}

// CreateVolunteer godoc
// @Summary Apply as a volunteer
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param request body request_models.CreateVolunteerRequest true "Application"
// @Success 201 {object} db_models.Volunteer
// @Failure 400 {object} utils.APIResponse
// @Router /volunteers [post]
func (vc *VolunteerController) CreateVolunteer(c *gin.Context) {
	var req request_models.CreateVolunteerRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, vc.log, err)
		return
	}

	volunteer, err := vc.volunteerService.CreateVolunteer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, vc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, volunteer)
}
