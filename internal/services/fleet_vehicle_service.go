package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
	"safari/pkg/utils"
)

type FleetVehicleServiceInterface interface {
	ListAvailableVehicles(ctx context.Context) ([]db_models.FleetVehicle, error)
	CreateVehicle(ctx context.Context, req request_models.CreateFleetVehicleRequest) (*db_models.FleetVehicle, error)
}

type FleetVehicleService struct {
	fleetRepo repositories.FleetVehicleRepository
	log       *zap.Logger
}

func NewFleetVehicleService(fleetRepo repositories.FleetVehicleRepository, log *zap.Logger) FleetVehicleServiceInterface {
	return &FleetVehicleService{fleetRepo: fleetRepo, log: log}
}

// ListAvailableVehicles never returns a vehicle marked unavailable.
func (s *FleetVehicleService) ListAvailableVehicles(ctx context.Context) ([]db_models.FleetVehicle, error) {
	vehicles, err := s.fleetRepo.ListAvailable(ctx)
	if err != nil {
		s.log.Error("list fleet", zap.Error(err))
		return nil, fmt.Errorf("%w: list fleet", utils.ErrDatabaseError)
	}
	return vehicles, nil
}

func (s *FleetVehicleService) CreateVehicle(ctx context.Context, req request_models.CreateFleetVehicleRequest) (*db_models.FleetVehicle, error) {
	vehicle := NewFleetVehicleFromRequest(req)
	if err := s.fleetRepo.Create(ctx, vehicle); err != nil {
		s.log.Error("create vehicle", zap.Error(err))
		return nil, fmt.Errorf("%w: create vehicle", utils.ErrDatabaseError)
	}
	return vehicle, nil
}

func NewFleetVehicleFromRequest(req request_models.CreateFleetVehicleRequest) *db_models.FleetVehicle {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return &db_models.FleetVehicle{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Capacity:    req.Capacity,
		Features:    db_models.StringList(nonNilStrings(req.Features)),
		ImageURL:    req.ImageURL,
		Type:        req.Type,
		Available:   available,
	}
}
