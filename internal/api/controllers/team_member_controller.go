package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type TeamMemberController struct {
	teamService services.TeamMemberServiceInterface
	log         *zap.Logger
}

func NewTeamMemberController(teamService services.TeamMemberServiceInterface, log *zap.Logger) *TeamMemberController {
	return &TeamMemberController{teamService: teamService, log: log}
}

// ListTeamMembers godoc
// @Summary List team members
// @Tags Team
// @Produce json
// @Success 200 {array} db_models.TeamMember
// @Router /team-members [get]
func (tc *TeamMemberController) ListTeamMembers(c *gin.Context) {
	members, err := tc.teamService.ListTeamMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, tc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, members)
}

// CreateTeamMember godoc
// @Summary Add a team member
// @Tags Team
// @Accept json
// @Produce json
// @Param request body request_models.CreateTeamMemberRequest true "Team member"
// @Success 201 {object} db_models.TeamMember
// @Failure 400 {object} utils.APIResponse
// @Router /team-members [post]
func (tc *TeamMemberController) CreateTeamMember(c *gin.Context) {
	var req request_models.CreateTeamMemberRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, tc.log, err)
		return
	}

	member, err := tc.teamService.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, tc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, member)
}
