package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
	log          *zap.Logger
}

func NewAdminController(adminService services.AdminServiceInterface, log *zap.Logger) *AdminController {
	return &AdminController{adminService: adminService, log: log}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Credentials"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (ac *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, ac.log, err)
		return
	}

	token, err := ac.adminService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, ac.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, token)
}
