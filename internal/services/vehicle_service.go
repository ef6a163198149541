package services

import (
	"errors"

	"core_api/internal/models"
	"core_api/internal/repository"

	"gorm.io/gorm"
)

type VehicleService interface {
	CreateVehicle(vehicle *models.Vehicle) error
	GetVehicleByID(id uint) (*models.Vehicle, error)
	GetAllVehicles() ([]models.Vehicle, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateVehicle(vehicle *models.Vehicle) error {
	return s.vehicleRepo.Create(vehicle)
}

func (s *vehicleService) GetVehicleByID(id uint) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return vehicle, err
}

func (s *vehicleService) GetAllVehicles() ([]models.Vehicle, error) {
	return s.vehicleRepo.GetAll()
}
