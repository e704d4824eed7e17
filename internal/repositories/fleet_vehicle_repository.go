package repositories

import (
	"context"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
)

type FleetVehicleRepository interface {
	Create(ctx context.Context, vehicle *db_models.FleetVehicle) error
	ListAvailable(ctx context.Context) ([]db_models.FleetVehicle, error)
}

type fleetVehicleRepository struct {
	db *gorm.DB
}

func NewFleetVehicleRepository(db *gorm.DB) FleetVehicleRepository {
	return &fleetVehicleRepository{db: db}
}

func (r *fleetVehicleRepository) Create(ctx context.Context, vehicle *db_models.FleetVehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *fleetVehicleRepository) ListAvailable(ctx context.Context) ([]db_models.FleetVehicle, error) {
	vehicles := []db_models.FleetVehicle{}
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("id ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}
