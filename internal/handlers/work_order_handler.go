package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"core_api/internal/models"
	"core_api/internal/services"

	"github.com/gin-gonic/gin"
)

type WorkOrderHandler struct {
	workOrderService services.WorkOrderService
}

func NewWorkOrderHandler(workOrderService services.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderService: workOrderService}
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.workOrderService.GetAllWorkOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.workOrderService.GetWorkOrderByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID uint    `json:"customer_id" binding:"required"`
		VehicleID  uint    `json:"vehicle_id" binding:"required"`
		Status     string  `json:"status"`
		Notes      string  `json:"notes"`
		LaborTotal float64 `json:"labor_total"`
		PartsTotal float64 `json:"parts_total"`
		TaxTotal   float64 `json:"tax_total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id and vehicle_id are required"})
		return
	}

	order := &models.WorkOrder{
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		Status:     req.Status,
		Notes:      req.Notes,
		LaborTotal: req.LaborTotal,
		PartsTotal: req.PartsTotal,
		TaxTotal:   req.TaxTotal,
	}
	if err := h.workOrderService.CreateWorkOrder(order); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Update applies a partial update: only the fields present in the body
// overwrite stored values.
func (h *WorkOrderHandler) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		Status     *string  `json:"status"`
		Notes      *string  `json:"notes"`
		LaborTotal *float64 `json:"labor_total"`
		PartsTotal *float64 `json:"parts_total"`
		TaxTotal   *float64 `json:"tax_total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.workOrderService.UpdateWorkOrder(id, services.WorkOrderUpdate{
		Status:     req.Status,
		Notes:      req.Notes,
		LaborTotal: req.LaborTotal,
		PartsTotal: req.PartsTotal,
		TaxTotal:   req.TaxTotal,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	order, err := h.workOrderService.UpdateStatus(id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *WorkOrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "work order not found"})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work order id"})
		return 0, false
	}
	return uint(id), true
}
