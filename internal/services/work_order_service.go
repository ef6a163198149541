package services

import (
	"errors"

	"core_api/internal/models"
	"core_api/internal/repository"

	"gorm.io/gorm"
)

// WorkOrderUpdate carries a partial update: nil fields keep their stored
// value.
type WorkOrderUpdate struct {
	Status     *string
	Notes      *string
	LaborTotal *float64
	PartsTotal *float64
	TaxTotal   *float64
}

type WorkOrderService interface {
	CreateWorkOrder(order *models.WorkOrder) error
	GetWorkOrderByID(id uint) (*models.WorkOrder, error)
	GetAllWorkOrders() ([]models.WorkOrderDetail, error)
	UpdateWorkOrder(id uint, update WorkOrderUpdate) (*models.WorkOrder, error)
	UpdateStatus(id uint, status string) (*models.WorkOrder, error)
}

type workOrderService struct {
	workOrderRepo repository.WorkOrderRepository
}

func NewWorkOrderService(workOrderRepo repository.WorkOrderRepository) WorkOrderService {
	return &workOrderService{workOrderRepo: workOrderRepo}
}

func (s *workOrderService) CreateWorkOrder(order *models.WorkOrder) error {
	if order.Status == "" {
		order.Status = string(models.StatusOpen)
	}
	if !models.IsValidStatus(order.Status) {
		return ErrInvalidStatus
	}

	// Grand total is never client-settable.
	computeGrandTotal(order)

	return s.workOrderRepo.Create(order)
}

func (s *workOrderService) GetWorkOrderByID(id uint) (*models.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

func (s *workOrderService) GetAllWorkOrders() ([]models.WorkOrderDetail, error) {
	return s.workOrderRepo.GetAllDetailed()
}

// UpdateWorkOrder merges the supplied fields into the stored row and
// recomputes the grand total from the post-merge sub-totals.
func (s *workOrderService) UpdateWorkOrder(id uint, update WorkOrderUpdate) (*models.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		if !models.IsValidStatus(*update.Status) {
			return nil, ErrInvalidStatus
		}
		order.Status = *update.Status
	}
	if update.Notes != nil {
		order.Notes = *update.Notes
	}
	if update.LaborTotal != nil {
		order.LaborTotal = *update.LaborTotal
	}
	if update.PartsTotal != nil {
		order.PartsTotal = *update.PartsTotal
	}
	if update.TaxTotal != nil {
		order.TaxTotal = *update.TaxTotal
	}

	computeGrandTotal(order)

	if err := s.workOrderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *workOrderService) UpdateStatus(id uint, status string) (*models.WorkOrder, error) {
	return s.UpdateWorkOrder(id, WorkOrderUpdate{Status: &status})
}

func computeGrandTotal(order *models.WorkOrder) {
	order.GrandTotal = order.LaborTotal + order.PartsTotal + order.TaxTotal
}
