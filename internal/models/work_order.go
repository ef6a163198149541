package models

import "time"

type WorkOrder struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	VehicleID  uint      `json:"vehicle_id" gorm:"not null;index"`
	Customer   *Customer `json:"-" gorm:"foreignKey:CustomerID"`
	Vehicle    *Vehicle  `json:"-" gorm:"foreignKey:VehicleID"`
	Status     string    `json:"status" gorm:"default:'open'"` // open, in_progress, completed, cancelled
	Notes      string    `json:"notes"`
	LaborTotal float64   `json:"labor_total"`
	PartsTotal float64   `json:"parts_total"`
	TaxTotal   float64   `json:"tax_total"`
	GrandTotal float64   `json:"grand_total"` // always labor + parts + tax, set by the service
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WorkOrderStatus string

const (
	StatusOpen       WorkOrderStatus = "open"
	StatusInProgress WorkOrderStatus = "in_progress"
	StatusCompleted  WorkOrderStatus = "completed"
	StatusCancelled  WorkOrderStatus = "cancelled"
)

func IsValidStatus(s string) bool {
	switch WorkOrderStatus(s) {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// WorkOrderDetail is a work order joined with its customer and vehicle,
// the shape returned by the listing endpoint.
type WorkOrderDetail struct {
	ID           uint      `json:"id"`
	CustomerID   uint      `json:"customer_id"`
	VehicleID    uint      `json:"vehicle_id"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	LaborTotal   float64   `json:"labor_total"`
	PartsTotal   float64   `json:"parts_total"`
	TaxTotal     float64   `json:"tax_total"`
	GrandTotal   float64   `json:"grand_total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CustomerName string    `json:"customer_name"`
	VehicleMake  string    `json:"vehicle_make"`
	VehicleModel string    `json:"vehicle_model"`
	VehicleYear  int       `json:"vehicle_year"`
}
