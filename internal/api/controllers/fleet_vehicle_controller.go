package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"safari/internal/models/request_models"
	"safari/internal/services"
	"safari/pkg/utils"
)

type FleetVehicleController struct {
	fleetService services.FleetVehicleServiceInterface
	log          *zap.Logger
}

func NewFleetVehicleController(fleetService services.FleetVehicleServiceInterface, log *zap.Logger) *FleetVehicleController {
	return &FleetVehicleController{fleetService: fleetService, log: log}
}

// ListVehicles godoc
// @Summary List available vehicles
// @Tags Fleet
// @Produce json
// @Success 200 {array} db_models.FleetVehicle
// @Router /fleet-vehicles [get]
func (fc *FleetVehicleController) ListVehicles(c *gin.Context) {
	vehicles, err := fc.fleetService.ListAvailableVehicles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, fc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, vehicles)
}

// CreateVehicle godoc
// @Summary Add a vehicle
// @Description available defaults to true
// @Tags Fleet
// @Accept json
// @Produce json
// @Param request body request_models.CreateFleetVehicleRequest true "Vehicle"
// @Success 201 {object} db_models.FleetVehicle
// @Failure 400 {object} utils.APIResponse
// @Router /fleet-vehicles [post]
func (fc *FleetVehicleController) CreateVehicle(c *gin.Context) {
	var req request_models.CreateFleetVehicleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.HandleServiceError(c, fc.log, err)
		return
	}

	vehicle, err := fc.fleetService.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, fc.log, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, vehicle)
}
