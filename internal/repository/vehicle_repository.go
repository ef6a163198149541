package repository

import (
	"core_api/internal/models"

	"gorm.io/gorm"
)

type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id uint) (*models.Vehicle, error)
	GetAll() ([]models.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetAll() ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	err := r.db.Order("id ASC").Find(&vehicles).Error
	return vehicles, err
}
