package repository

import (
	"core_api/internal/models"

	"gorm.io/gorm"
)

type WorkOrderRepository interface {
	Create(order *models.WorkOrder) error
	GetByID(id uint) (*models.WorkOrder, error)
	GetAllDetailed() ([]models.WorkOrderDetail, error)
	Update(order *models.WorkOrder) error
}

type workOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(order *models.WorkOrder) error {
	return r.db.Create(order).Error
}

func (r *workOrderRepository) GetByID(id uint) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAllDetailed returns all work orders joined with customer name and
// vehicle make/model/year, most recent first.
func (r *workOrderRepository) GetAllDetailed() ([]models.WorkOrderDetail, error) {
	rows := make([]models.WorkOrderDetail, 0)
	err := r.db.Table("work_orders").
		Select(`work_orders.id, work_orders.customer_id, work_orders.vehicle_id,
			work_orders.status, work_orders.notes,
			work_orders.labor_total, work_orders.parts_total, work_orders.tax_total, work_orders.grand_total,
			work_orders.created_at, work_orders.updated_at,
			customers.name AS customer_name,
			vehicles.make AS vehicle_make, vehicles.model AS vehicle_model, vehicles.year AS vehicle_year`).
		Joins("JOIN customers ON customers.id = work_orders.customer_id").
		Joins("JOIN vehicles ON vehicles.id = work_orders.vehicle_id").
		Order("work_orders.created_at DESC, work_orders.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *workOrderRepository) Update(order *models.WorkOrder) error {
	return r.db.Save(order).Error
}
